package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/furyczech/it-impact-navigator-sub001/pkg/model"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Closed enumerations from the data model.
	validate.RegisterValidation("componenttype", func(fl validator.FieldLevel) bool {
		return model.ComponentType(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("componentstatus", func(fl validator.FieldLevel) bool {
		return model.ComponentStatus(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("criticality", func(fl validator.FieldLevel) bool {
		return model.Criticality(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("dependencytype", func(fl validator.FieldLevel) bool {
		return model.DependencyType(fl.Field().String()).Valid()
	})
}

// Error is the typed validation failure surfaced at the snapshot boundary.
// Analysis never starts on a snapshot that fails validation.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// componentRules mirrors model.Component for struct-tag validation.
type componentRules struct {
	ID          string `validate:"required"`
	Name        string `validate:"required,max=200"`
	Type        string `validate:"required,componenttype"`
	Status      string `validate:"required,componentstatus"`
	Criticality string `validate:"required,criticality"`
}

// dependencyRules mirrors model.Dependency for struct-tag validation.
type dependencyRules struct {
	ID       string `validate:"required"`
	SourceID string `validate:"required"`
	TargetID string `validate:"required"`
	Type     string `validate:"required,dependencytype"`
}

// workflowRules mirrors model.BusinessWorkflow for struct-tag validation.
type workflowRules struct {
	ID          string `validate:"required"`
	Name        string `validate:"required,max=200"`
	Criticality string `validate:"required,criticality"`
}

// ValidateNewComponent checks a component that has not been stored yet, so an
// empty id is allowed; the store assigns one on create.
func ValidateNewComponent(c model.Component) error {
	if c.ID == "" {
		c.ID = "unassigned"
	}
	return ValidateComponent(c)
}

// ValidateNewDependency is ValidateNewComponent's counterpart for dependencies.
func ValidateNewDependency(d model.Dependency) error {
	if d.ID == "" {
		d.ID = "unassigned"
	}
	return ValidateDependency(d)
}

// ValidateNewWorkflow is ValidateNewComponent's counterpart for workflows.
func ValidateNewWorkflow(w model.BusinessWorkflow) error {
	if w.ID == "" {
		w.ID = "unassigned"
	}
	return ValidateWorkflow(w)
}

// ValidateComponent checks a single component's required fields and enums.
func ValidateComponent(c model.Component) error {
	rules := componentRules{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Status:      string(c.Status),
		Criticality: string(c.Criticality),
	}
	if err := validate.Struct(rules); err != nil {
		return formatValidationError("component "+c.ID, err)
	}
	return nil
}

// ValidateDependency checks a single dependency's required fields and enum.
// Endpoint existence is checked at snapshot level, not here.
func ValidateDependency(d model.Dependency) error {
	rules := dependencyRules{
		ID:       d.ID,
		SourceID: d.SourceID,
		TargetID: d.TargetID,
		Type:     string(d.Type),
	}
	if err := validate.Struct(rules); err != nil {
		return formatValidationError("dependency "+d.ID, err)
	}
	return nil
}

// ValidateWorkflow checks a workflow's required fields, enum, and step ids.
func ValidateWorkflow(w model.BusinessWorkflow) error {
	rules := workflowRules{
		ID:          w.ID,
		Name:        w.Name,
		Criticality: string(w.Criticality),
	}
	if err := validate.Struct(rules); err != nil {
		return formatValidationError("workflow "+w.ID, err)
	}
	for _, s := range w.Steps {
		if s.ID == "" {
			return &Error{Field: "workflow " + w.ID, Reason: "step without id"}
		}
	}
	return nil
}

// ValidateSnapshot validates a full snapshot before it enters the analysis
// core: per-entity field rules plus dependency endpoint referential integrity.
// Workflow step component references are deliberately not checked here; the
// core tolerates dangling step references and reports them as unknown.
func ValidateSnapshot(snap model.Snapshot) error {
	known := make(map[string]bool, len(snap.Components))
	for _, c := range snap.Components {
		if err := ValidateComponent(c); err != nil {
			return err
		}
		if known[c.ID] {
			return &Error{Field: "component " + c.ID, Reason: "duplicate id"}
		}
		known[c.ID] = true
	}

	for _, d := range snap.Dependencies {
		if err := ValidateDependency(d); err != nil {
			return err
		}
		if !known[d.SourceID] {
			return &Error{Field: "dependency " + d.ID, Reason: fmt.Sprintf("source %q references no known component", d.SourceID)}
		}
		if !known[d.TargetID] {
			return &Error{Field: "dependency " + d.ID, Reason: fmt.Sprintf("target %q references no known component", d.TargetID)}
		}
	}

	for _, w := range snap.Workflows {
		if err := ValidateWorkflow(w); err != nil {
			return err
		}
	}

	return nil
}

// formatValidationError converts go-playground errors into the typed boundary
// error, keeping the first failing field.
func formatValidationError(entity string, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		reason := fmt.Sprintf("field %s failed rule %q", strings.ToLower(first.Field()), first.Tag())
		return &Error{Field: entity, Reason: reason}
	}
	return &Error{Field: entity, Reason: err.Error()}
}
