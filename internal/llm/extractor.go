// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobradar/internal/prompts"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "KeywordExtraction")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// KeywordExtractionSchema returns the extraction schema for job-posting
// analysis. Keywords, requirements, and the role classification share one
// response object so a posting costs a single call. The output shape mirrors
// the rule-based pipeline so the two paths are interchangeable downstream.
func KeywordExtractionSchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "KeywordExtraction",
		Description: prompts.MustGet("extraction.json", "extract-keywords"),
		Fields: []SchemaField{
			{
				Name:        "keywords",
				Type:        "[{\"term\": \"string\", \"category\": \"string\", \"count\": 1}]",
				Description: "Every technical skill mentioned, canonical name, with its category and mention count",
				Required:    true,
			},
			{
				Name:        "must_have",
				Type:        "[\"string\"]",
				Description: "Canonical names of skills the posting treats as hard requirements",
				Required:    true,
			},
			{
				Name:        "nice_to_have",
				Type:        "[\"string\"]",
				Description: "Canonical names of skills the posting treats as preferred or bonus",
				Required:    true,
			},
			{
				Name:        "years_required",
				Type:        "number|null",
				Description: "Minimum years of experience the posting requires, or null",
				Required:    false,
			},
			{
				Name:        "degree_required",
				Type:        "\"string\"|null",
				Description: "Highest degree mentioned: associate, bachelor, master, doctorate, or null",
				Required:    false,
			},
			{
				Name:        "certifications",
				Type:        "[\"string\"]",
				Description: "Professional certifications the posting mentions, canonical names",
				Required:    false,
			},
			{
				Name:        "role_family",
				Type:        "\"string\"|null",
				Description: "One of: testing, ai, fullstack, frontend, devops, data, business analyst, product manager, mobile, other, or null",
				Required:    false,
			},
			{
				Name:        "seniority",
				Type:        "\"string\"|null",
				Description: "One of: graduate, junior, intermediate, senior, manager, lead, architect, unknown, or null",
				Required:    false,
			},
			{
				Name:        "summary",
				Type:        "\"string\"",
				Description: "One-sentence summary of what the role is about",
				Required:    false,
			},
		},
	}
}
