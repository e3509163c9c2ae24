// Package dictionary provides the static skill and certification dictionaries
// used by the rule-based extraction pipeline. A Dictionary is built once at
// startup, validated fail-fast, and never mutated afterwards, so concurrent
// extractions can share it without synchronization.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobradar/internal/types"
)

// SkillEntry declares one canonical skill with its alias surface forms.
// The canonical name is implicitly one of its own aliases.
type SkillEntry struct {
	Canonical string
	Category  types.Category
	Aliases   []string
}

// EntryError reports a malformed dictionary entry detected at load time.
type EntryError struct {
	Canonical string
	Message   string
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("dictionary entry %q: %s", e.Canonical, e.Message)
}

// Dictionary is an immutable alias-resolving skill dictionary. Entry order is
// the declared order and is part of the match tie-break contract.
type Dictionary struct {
	entries    []SkillEntry
	aliasIndex map[string]int // lowercase alias -> index into entries
}

// New validates entries and builds the alias index. Aliases must be
// case-insensitively unique across the whole dictionary; violations are
// returned as errors rather than silently skipped.
func New(entries []SkillEntry) (*Dictionary, error) {
	d := &Dictionary{
		entries:    make([]SkillEntry, len(entries)),
		aliasIndex: make(map[string]int),
	}
	copy(d.entries, entries)

	for i, entry := range d.entries {
		if strings.TrimSpace(entry.Canonical) == "" {
			return nil, &EntryError{Canonical: entry.Canonical, Message: "canonical name is empty"}
		}
		if !types.ValidCategory(entry.Category) {
			return nil, &EntryError{Canonical: entry.Canonical, Message: fmt.Sprintf("unknown category %q", entry.Category)}
		}

		for _, alias := range append([]string{entry.Canonical}, entry.Aliases...) {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				return nil, &EntryError{Canonical: entry.Canonical, Message: "empty alias"}
			}
			if prev, exists := d.aliasIndex[key]; exists && prev != i {
				return nil, &EntryError{
					Canonical: entry.Canonical,
					Message:   fmt.Sprintf("alias %q already claimed by %q", alias, d.entries[prev].Canonical),
				}
			}
			d.aliasIndex[key] = i
		}
	}

	return d, nil
}

// MustNew is New for static dictionaries that are required at startup.
func MustNew(entries []SkillEntry) *Dictionary {
	d, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("invalid skill dictionary: %v", err))
	}
	return d
}

// Len returns the number of canonical entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries returns the entries in declared order. The returned slice is shared;
// callers must not modify it.
func (d *Dictionary) Entries() []SkillEntry {
	return d.entries
}

// Entry returns the entry at declared-order position i.
func (d *Dictionary) Entry(i int) SkillEntry {
	return d.entries[i]
}

// Resolve maps an alias (case-insensitive) to its canonical entry and its
// declared-order index.
func (d *Dictionary) Resolve(alias string) (SkillEntry, int, bool) {
	i, ok := d.aliasIndex[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return SkillEntry{}, 0, false
	}
	return d.entries[i], i, true
}

// Aliases returns every alias in the dictionary (canonical names included),
// in declared entry order, each paired with its entry index. Used by the
// matcher to drive the scan.
func (d *Dictionary) Aliases() []AliasRef {
	refs := make([]AliasRef, 0, len(d.aliasIndex))
	for i, entry := range d.entries {
		refs = append(refs, AliasRef{Alias: entry.Canonical, EntryIndex: i})
		for _, alias := range entry.Aliases {
			refs = append(refs, AliasRef{Alias: alias, EntryIndex: i})
		}
	}
	return refs
}

// AliasRef pairs one alias surface form with its dictionary entry index.
type AliasRef struct {
	Alias      string
	EntryIndex int
}
