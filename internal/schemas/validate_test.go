package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtraction_Valid(t *testing.T) {
	payload := `{
		"keywords": [
			{"term": "Python", "category": "language", "count": 3},
			{"term": "Selenium", "category": "testing", "count": 1}
		],
		"must_have": ["Python"],
		"nice_to_have": ["Selenium"],
		"years_required": 5,
		"degree_required": "bachelor",
		"certifications": ["ISTQB"],
		"summary": "Senior QA role"
	}`

	assert.NoError(t, ValidateExtraction(payload))
}

func TestValidateExtraction_NullableFields(t *testing.T) {
	payload := `{
		"keywords": [],
		"must_have": [],
		"nice_to_have": [],
		"years_required": null,
		"degree_required": null
	}`

	assert.NoError(t, ValidateExtraction(payload))
}

func TestValidateExtraction_MissingRequiredField(t *testing.T) {
	payload := `{"keywords": [], "must_have": []}`

	err := ValidateExtraction(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateExtraction_BadCategory(t *testing.T) {
	payload := `{
		"keywords": [{"term": "Python", "category": "programming"}],
		"must_have": [],
		"nice_to_have": []
	}`

	err := ValidateExtraction(payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateExtraction_WrongType(t *testing.T) {
	payload := `{
		"keywords": [],
		"must_have": "Python",
		"nice_to_have": []
	}`

	err := ValidateExtraction(payload)
	require.Error(t, err)
}

func TestValidateExtraction_RoleFields(t *testing.T) {
	assert.NoError(t, ValidateExtraction(`{
		"keywords": [],
		"must_have": [],
		"nice_to_have": [],
		"role_family": "devops",
		"seniority": "senior"
	}`))

	assert.NoError(t, ValidateExtraction(`{
		"keywords": [],
		"must_have": [],
		"nice_to_have": [],
		"role_family": null,
		"seniority": null
	}`))

	err := ValidateExtraction(`{
		"keywords": [],
		"must_have": [],
		"nice_to_have": [],
		"role_family": "wizard",
		"seniority": "senior"
	}`)
	require.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "keywords", Message: "is required"},
			{Field: "years_required", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "keywords")
	assert.Contains(t, errorMsg, "years_required")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(ExtractionResultSchema(), "{ invalid json }")
	require.Error(t, err)
}
