package main

import (
	"database/sql"
	"fmt"
	"math"
	"regexp"
	"sort"
)

// Checklist progress aggregation and the CLI-side mirror of the page's
// persisted state. The page itself keeps state in localStorage under the
// same namespace; the SQLite store lets progress be inspected, imported
// and reset from the command line.

// ProgressNamespace scopes persisted state to one season.
func ProgressNamespace(seasonNumber int) string {
	return fmt.Sprintf("d3s%d", seasonNumber)
}

// ProgressPercent is checked/total rounded to the nearest percent. A page
// with no controls reports 0, never a division error.
func ProgressPercent(checked, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(checked) / float64(total) * 100))
}

var checkboxIDPattern = regexp.MustCompile(`<input type="checkbox" (?:id="([^"]+)"|data-slot="([^"]+)" data-stat="([^"]+)")`)

// CollectControlIDs extracts every checkbox identity from a generated page,
// in document order. Gear-checker boxes have no id attribute and take the
// composite slot_stat key, matching the client script.
func CollectControlIDs(html string) []string {
	var ids []string
	for _, m := range checkboxIDPattern.FindAllStringSubmatch(html, -1) {
		if m[1] != "" {
			ids = append(ids, m[1])
		} else {
			ids = append(ids, m[2]+"_"+m[3])
		}
	}
	return ids
}

// ImportChecklist writes an exported state map into the store, ignoring
// identifiers that do not exist on the page. Returns how many entries were
// applied and how many were skipped.
func ImportChecklist(db *sql.DB, namespace string, state map[string]bool, knownIDs []string) (applied, skipped int, err error) {
	known := make(map[string]bool, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = true
	}
	// Deterministic write order keeps the updated_at sequence stable.
	ids := make([]string, 0, len(state))
	for id := range state {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if !known[id] {
			skipped++
			continue
		}
		if err := SetChecked(db, namespace, id, state[id]); err != nil {
			return applied, skipped, err
		}
		applied++
	}
	return applied, skipped, nil
}

// ChecklistProgress reports checked/total over the known controls of a
// page. Stored identifiers not on the page are ignored.
func ChecklistProgress(db *sql.DB, namespace string, knownIDs []string) (checked, total int, err error) {
	state, err := LoadChecklist(db, namespace)
	if err != nil {
		return 0, 0, err
	}
	for _, id := range knownIDs {
		if state[id] {
			checked++
		}
	}
	return checked, len(knownIDs), nil
}
