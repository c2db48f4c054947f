// Package types provides type definitions for structured data used throughout the fairscreen system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Gender is the candidate's recorded gender category. Detectors treat the
// value as an opaque group label, so any recorded category is valid.
type Gender string

// Common gender categories seen in candidate records
const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderNonBinary   Gender = "nonbinary"
	GenderUnspecified Gender = "unspecified"
)

// JobFamily is one of the ten broad role categories used to group candidates
// for peer comparison. See parsing.AssignJobFamily for classification.
type JobFamily string

// The closed set of job families, in canonical enumeration order.
// Classification ties break toward the earlier family.
const (
	FamilySoftwareEngineering JobFamily = "Software Engineering"
	FamilyDataScience         JobFamily = "Data Science"
	FamilyProductManagement   JobFamily = "Product Management"
	FamilyDesign              JobFamily = "Design"
	FamilyMarketing           JobFamily = "Marketing"
	FamilySales               JobFamily = "Sales"
	FamilyFinance             JobFamily = "Finance"
	FamilyHumanResources      JobFamily = "Human Resources"
	FamilyOperations          JobFamily = "Operations"
	FamilyCustomerSupport     JobFamily = "Customer Support"
)

// JobFamilies lists all families in enumeration order.
func JobFamilies() []JobFamily {
	return []JobFamily{
		FamilySoftwareEngineering,
		FamilyDataScience,
		FamilyProductManagement,
		FamilyDesign,
		FamilyMarketing,
		FamilySales,
		FamilyFinance,
		FamilyHumanResources,
		FamilyOperations,
		FamilyCustomerSupport,
	}
}

// Candidate represents one normalized candidate record supplied by the data source.
// Records are immutable once the analysis run starts.
type Candidate struct {
	CandidateID     string    `json:"candidate_id" validate:"required,min=1"`
	Age             int       `json:"age" validate:"gte=0"`
	Gender          Gender    `json:"gender"`
	ExperienceYears int       `json:"experience_years" validate:"gte=0"`
	Skills          []string  `json:"skills"`
	ResumeText      string    `json:"resume_text"`
	TargetRole      string    `json:"target_role,omitempty"`
	JobFamily       JobFamily `json:"job_family,omitempty"` // derived when empty
}

// Validate validates the candidate record using the validator.
func (c *Candidate) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid candidate %q: %w", c.CandidateID, err)
	}
	return nil
}

// AgeBracket is the fixed age bucketing used by the bias detectors.
type AgeBracket string

// Age brackets match the product's reporting buckets and are not configurable.
const (
	BracketUnder30 AgeBracket = "<30"
	Bracket30To45  AgeBracket = "30-45"
	BracketOver45  AgeBracket = ">45"
)

// BracketForAge buckets an age into one of the three fixed brackets.
func BracketForAge(age int) AgeBracket {
	switch {
	case age < 30:
		return BracketUnder30
	case age <= 45:
		return Bracket30To45
	default:
		return BracketOver45
	}
}
