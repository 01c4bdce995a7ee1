package heritage

import (
	"fmt"
)

// Selection captures the user's heritage choices that drive which ancestor
// persona is simulated. A Selection is treated as immutable once a persona has
// been derived from it; re-selecting replaces it wholesale.
type Selection struct {
	Ethnicity    string `json:"ethnicity"`
	Region       string `json:"region"`
	TimePeriod   string `json:"timePeriod"`
	Relationship string `json:"relationship"`
	Occupation   string `json:"occupation,omitempty"`
	Traits       string `json:"traits,omitempty"`
}

// Persona is the derived character the generation backend is instructed to
// roleplay. One persona is active per session.
type Persona struct {
	Name       string `json:"name"`
	Ethnicity  string `json:"ethnicity"`
	Region     string `json:"region"`
	TimePeriod string `json:"timePeriod"`
	Occupation string `json:"occupation"`
	Traits     string `json:"traits"`
}

// NewPersona derives the ancestor persona from a heritage selection. The
// display name follows the relationship label ("Your grandfather").
func NewPersona(sel Selection) Persona {
	return Persona{
		Name:       fmt.Sprintf("Your %s", sel.Relationship),
		Ethnicity:  sel.Ethnicity,
		Region:     sel.Region,
		TimePeriod: sel.TimePeriod,
		Occupation: sel.Occupation,
		Traits:     sel.Traits,
	}
}

// Validate checks a selection against the option catalog. Region is only
// validated when the ethnicity is known, since regions are scoped per
// ethnicity.
func Validate(sel Selection) error {
	if sel.Ethnicity == "" {
		return &ValidationError{Field: "ethnicity", Reason: "must not be empty"}
	}
	opt, ok := EthnicityBySlug(sel.Ethnicity)
	if !ok {
		return &ValidationError{Field: "ethnicity", Reason: fmt.Sprintf("unknown ethnicity %q", sel.Ethnicity)}
	}
	if sel.Region != "" && !opt.HasRegion(sel.Region) {
		return &ValidationError{Field: "region", Reason: fmt.Sprintf("region %q is not part of %s heritage", sel.Region, opt.Label)}
	}
	if sel.TimePeriod != "" {
		if _, ok := TimePeriodByValue(sel.TimePeriod); !ok {
			return &ValidationError{Field: "timePeriod", Reason: fmt.Sprintf("unknown time period %q", sel.TimePeriod)}
		}
	}
	if sel.Relationship == "" {
		return &ValidationError{Field: "relationship", Reason: "must not be empty"}
	}
	if _, ok := RelationshipLabels[sel.Relationship]; !ok {
		return &ValidationError{Field: "relationship", Reason: fmt.Sprintf("unknown relationship %q", sel.Relationship)}
	}
	return nil
}

// ValidationError reports a selection field that does not match the option
// catalog.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid heritage selection (%s): %s", e.Field, e.Reason)
}
