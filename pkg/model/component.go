package model

import "time"

// ComponentType classifies an infrastructure component.
type ComponentType string

const (
	TypeServer       ComponentType = "server"
	TypeDatabase     ComponentType = "database"
	TypeAPI          ComponentType = "api"
	TypeLoadBalancer ComponentType = "load-balancer"
	TypeNetwork      ComponentType = "network"
	TypeApplication  ComponentType = "application"
	TypeService      ComponentType = "service"
)

// Valid reports whether the component type is one of the known values.
func (t ComponentType) Valid() bool {
	switch t {
	case TypeServer, TypeDatabase, TypeAPI, TypeLoadBalancer, TypeNetwork, TypeApplication, TypeService:
		return true
	}
	return false
}

// ComponentStatus is the operational state of a component.
type ComponentStatus string

const (
	StatusOnline      ComponentStatus = "online"
	StatusOffline     ComponentStatus = "offline"
	StatusWarning     ComponentStatus = "warning"
	StatusMaintenance ComponentStatus = "maintenance"
)

// Valid reports whether the status is one of the known values.
func (s ComponentStatus) Valid() bool {
	switch s {
	case StatusOnline, StatusOffline, StatusWarning, StatusMaintenance:
		return true
	}
	return false
}

// Criticality expresses business importance of a component or workflow.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// Valid reports whether the criticality is one of the known values.
func (c Criticality) Valid() bool {
	switch c {
	case CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical:
		return true
	}
	return false
}

// Rank maps criticality to an ordinal: low=1 .. critical=4.
// Unknown values rank below low so sorting stays total.
func (c Criticality) Rank() int {
	switch c {
	case CriticalityLow:
		return 1
	case CriticalityMedium:
		return 2
	case CriticalityHigh:
		return 3
	case CriticalityCritical:
		return 4
	default:
		return 0
	}
}

// Component is a single node in the infrastructure graph.
// Identity is the ID; every other field is mutable by the CRUD layer.
// The analysis core only ever reads a snapshot copy.
type Component struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        ComponentType     `json:"type"`
	Status      ComponentStatus   `json:"status"`
	Criticality Criticality       `json:"criticality"`
	Description string            `json:"description,omitempty"`
	Location    string            `json:"location,omitempty"`
	Owner       string            `json:"owner,omitempty"`
	Vendor      string            `json:"vendor,omitempty"`
	LastUpdated time.Time         `json:"lastUpdated"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
