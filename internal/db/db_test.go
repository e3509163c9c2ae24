package db

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/jobradar/internal/types"
)

func TestSchemaEmbedded(t *testing.T) {
	if strings.TrimSpace(schemaSQL) == "" {
		t.Fatal("embedded schema is empty")
	}

	// One live extraction per job depends on the unique job_id constraint.
	if !strings.Contains(schemaSQL, "job_id") || !strings.Contains(schemaSQL, "UNIQUE") {
		t.Error("schema missing unique job_id constraint on extractions")
	}
	if !strings.Contains(schemaSQL, "ON DELETE CASCADE") {
		t.Error("schema missing cascade from extractions to jobs")
	}
}

func TestExtractionResultStoresAsJSON(t *testing.T) {
	years := 5
	result := types.EmptyResult(types.MethodRuleBased)
	result.Keywords = append(result.Keywords, types.Keyword{
		Term: "Python", Category: types.CategoryLanguage, Score: 4.3, Count: 1,
	})
	result.MustHave = append(result.MustHave, "Python")
	result.YearsRequired = &years

	payload, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored types.ExtractionResult
	if err := json.Unmarshal(payload, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !restored.HasTerm("Python") {
		t.Error("round-tripped result lost its keyword")
	}
	if restored.YearsRequired == nil || *restored.YearsRequired != 5 {
		t.Error("round-tripped result lost years_required")
	}
	if restored.Method != types.MethodRuleBased {
		t.Errorf("Method = %q, want %q", restored.Method, types.MethodRuleBased)
	}
}

func TestJobFilterZeroValueMeansUnbounded(t *testing.T) {
	var filter JobFilter
	if filter.Source != "" || filter.RoleFamily != "" || filter.Limit != 0 || filter.Offset != 0 {
		t.Error("zero-value filter should carry no constraints")
	}
}
