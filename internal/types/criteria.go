package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JobCriteria represents the screening criteria for one job opening.
// Immutable for the duration of an analysis run; concurrent runs with
// different criteria never share state.
type JobCriteria struct {
	JobTitle         string   `json:"job_title" validate:"required,min=1"`
	RequiredKeywords []string `json:"required_keywords"` // ordered; may be empty (degraded run)
	RequiredSkills   []string `json:"required_skills,omitempty"`
	PreferredSkills  []string `json:"preferred_skills,omitempty"`
}

// Validate validates the criteria using the validator.
// An empty keyword list is legal: Stage 1 then fails everyone closed
// rather than silently shortlisting.
func (c *JobCriteria) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid job criteria: %w", err)
	}
	for i, kw := range c.RequiredKeywords {
		if kw == "" {
			return fmt.Errorf("invalid job criteria: required keyword %d is empty", i)
		}
	}
	return nil
}
