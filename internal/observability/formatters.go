// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobradar/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResult outputs a human-readable summary of an extraction result.
func (p *Printer) PrintResult(result *types.ExtractionResult) {
	if result == nil {
		return
	}

	p.printKeywords(result)
	p.printRequirements(result)
}

// printKeywords shows the top scored keywords.
func (p *Printer) printKeywords(result *types.ExtractionResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Method:   %s\n", result.Method))
	if result.RoleFamily != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s", result.RoleFamily))
		if result.Seniority != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", result.Seniority))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(result.Keywords) == 0 {
		sb.WriteString("No keywords found.")
		p.printBox("EXTRACTED KEYWORDS", sb.String())
		return
	}

	count := min(len(result.Keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := result.Keywords[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, kw.Term))
		sb.WriteString(fmt.Sprintf("    %.2f  (%s, ×%d)\n", kw.Score, kw.Category, kw.Count))
	}
	if len(result.Keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more keywords", len(result.Keywords)-maxItemsToShow))
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// printRequirements shows must/nice lists and the parsed requirement fields.
func (p *Printer) printRequirements(result *types.ExtractionResult) {
	var sb strings.Builder

	if len(result.MustHave) > 0 {
		sb.WriteString("Must have:\n")
		count := min(len(result.MustHave), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MustHave[i]))
		}
		if len(result.MustHave) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MustHave)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.NiceToHave) > 0 {
		sb.WriteString("Nice to have:\n")
		count := min(len(result.NiceToHave), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.NiceToHave[i]))
		}
		if len(result.NiceToHave) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.NiceToHave)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if result.YearsRequired != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d+\n", *result.YearsRequired))
	}
	if result.DegreeRequired != nil {
		sb.WriteString(fmt.Sprintf("Degree:   %s\n", result.DegreeRequired.String()))
	}
	if len(result.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certs:    %s\n", strings.Join(result.Certifications, ", ")))
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "No explicit requirements found."
	}
	p.printBox("REQUIREMENTS", content)
}

// PrintSummary outputs the AI-provided summary when present.
func (p *Printer) PrintSummary(result *types.ExtractionResult) {
	if result == nil || result.Summary == "" {
		return
	}

	// Wrap the summary to the box width.
	var sb strings.Builder
	words := strings.Fields(result.Summary)
	line := ""
	for _, word := range words {
		if line != "" && len(line)+1+len(word) > boxWidth-4 {
			sb.WriteString(line + "\n")
			line = word
			continue
		}
		if line == "" {
			line = word
		} else {
			line += " " + word
		}
	}
	if line != "" {
		sb.WriteString(line)
	}

	p.printBox("SUMMARY", sb.String())
}
