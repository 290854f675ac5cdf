package model

// DependencyType classifies the relationship an edge represents.
type DependencyType string

const (
	DepRequires DependencyType = "requires"
	DepUses     DependencyType = "uses"
	DepFeeds    DependencyType = "feeds"
	DepMonitors DependencyType = "monitors"
)

// Valid reports whether the dependency type is one of the known values.
func (t DependencyType) Valid() bool {
	switch t {
	case DepRequires, DepUses, DepFeeds, DepMonitors:
		return true
	}
	return false
}

// Dependency is a directed edge SourceID -> TargetID. Propagation during
// impact analysis walks the stored direction: when SourceID goes offline,
// TargetID is downstream. Endpoint referential integrity is enforced by the
// storage layer, not by the analysis core.
type Dependency struct {
	ID          string         `json:"id"`
	SourceID    string         `json:"sourceId"`
	TargetID    string         `json:"targetId"`
	Type        DependencyType `json:"type"`
	Criticality Criticality    `json:"criticality"`
	Description string         `json:"description,omitempty"`
}
