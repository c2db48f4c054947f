// Package ingestion loads and validates candidate batch and job criteria
// input files before a run starts.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/fairscreen/internal/schemas"
	"github.com/jonathan/fairscreen/internal/types"
)

// CandidateBatch is the on-disk shape of a batch input file.
type CandidateBatch struct {
	Candidates []types.Candidate `json:"candidates"`
}

// LoadCandidateBatch reads a batch file, validates it against the batch
// schema when the schema file can be resolved, and decodes the records.
// Per-record semantic validation stays with the analysis run.
func LoadCandidateBatch(path string) ([]types.Candidate, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.CandidateBatchSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("batch file %s failed schema validation: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file %s: %w", path, err)
	}

	var batch CandidateBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	return batch.Candidates, nil
}

// LoadJobCriteria reads and validates a criteria file.
func LoadJobCriteria(path string) (*types.JobCriteria, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.JobCriteriaSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("criteria file %s failed schema validation: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file %s: %w", path, err)
	}

	var criteria types.JobCriteria
	if err := json.Unmarshal(data, &criteria); err != nil {
		return nil, fmt.Errorf("failed to parse criteria file %s: %w", path, err)
	}
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	return &criteria, nil
}
