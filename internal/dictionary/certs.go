package dictionary

import "strings"

// CertEntry declares one canonical certification name with alias spellings.
type CertEntry struct {
	Canonical string
	Aliases   []string
}

// certEntries is the built-in certification dictionary, from the original
// ATS-style name list.
var certEntries = []CertEntry{
	{Canonical: "AWS Certified Solutions Architect", Aliases: []string{"aws solutions architect", "aws certified"}},
	{Canonical: "AWS Certified Developer", Aliases: []string{"aws developer certification"}},
	{Canonical: "Azure Solutions Architect", Aliases: []string{"azure certified", "azure architect"}},
	{Canonical: "Google Cloud Professional", Aliases: []string{"gcp certified", "google cloud certified"}},
	{Canonical: "PMP", Aliases: []string{"project management professional"}},
	{Canonical: "Certified Scrum Master", Aliases: []string{"scrum master certification", "csm"}},
	{Canonical: "CISSP"},
	{Canonical: "CCNA", Aliases: []string{"cisco certified network associate"}},
	{Canonical: "CCNP"},
	{Canonical: "CKA", Aliases: []string{"certified kubernetes administrator"}},
	{Canonical: "CKAD", Aliases: []string{"certified kubernetes application developer"}},
	{Canonical: "ISTQB", Aliases: []string{"istqb certified"}},
	{Canonical: "Oracle Certified Professional", Aliases: []string{"oracle certified"}},
	{Canonical: "Microsoft Certified", Aliases: []string{"mcse"}},
	{Canonical: "Salesforce Administrator", Aliases: []string{"salesforce certified"}},
	{Canonical: "Red Hat Certified Engineer", Aliases: []string{"rhce", "red hat certified"}},
}

// Certifications returns the built-in certification entries in declared order.
func Certifications() []CertEntry {
	return certEntries
}

// AliasForms returns every surface form of the entry, canonical included,
// lowercased for matching.
func (c CertEntry) AliasForms() []string {
	forms := make([]string, 0, len(c.Aliases)+1)
	forms = append(forms, strings.ToLower(c.Canonical))
	for _, a := range c.Aliases {
		forms = append(forms, strings.ToLower(a))
	}
	return forms
}
