package main

import (
	"encoding/json"
	"strings"
	"testing"
)

// extractJSTable pulls the JSON literal assigned to `const <name> = ...;`
// out of the rendered script.
func extractJSTable(t *testing.T, script, name string) string {
	t.Helper()
	marker := "const " + name + " = "
	start := strings.Index(script, marker)
	if start < 0 {
		t.Fatalf("declaration of %s not found in script", name)
	}
	start += len(marker)
	end := strings.Index(script[start:], ";\n")
	if end < 0 {
		t.Fatalf("declaration of %s not terminated", name)
	}
	return script[start : start+end]
}

func TestRenderScriptEmbedsRuleTables(t *testing.T) {
	script, err := renderScript(33)
	if err != nil {
		t.Fatalf("renderScript failed: %v", err)
	}

	var rules map[string][]AdviceRule
	if err := json.Unmarshal([]byte(extractJSTable(t, script, "gearRules")), &rules); err != nil {
		t.Fatalf("gearRules is not valid JSON: %v", err)
	}
	if len(rules) != len(GearSlotOrder) {
		t.Fatalf("gearRules covers %d slots, want %d", len(rules), len(GearSlotOrder))
	}
	for _, slot := range GearSlotOrder {
		slotRules, ok := rules[slot]
		if !ok || len(slotRules) == 0 {
			t.Fatalf("slot %q missing from embedded rules", slot)
		}
		want, _ := SlotRulesFor(slot)
		if len(slotRules) != len(want.Rules) {
			t.Fatalf("slot %q: %d embedded rules, want %d", slot, len(slotRules), len(want.Rules))
		}
	}

	var order []string
	if err := json.Unmarshal([]byte(extractJSTable(t, script, "slotOrder")), &order); err != nil {
		t.Fatalf("slotOrder is not valid JSON: %v", err)
	}
	if len(order) != len(GearSlotOrder) || order[0] != "mh" || order[12] != "amulet" {
		t.Fatalf("unexpected slot order: %v", order)
	}

	var stats []TrackedStat
	if err := json.Unmarshal([]byte(extractJSTable(t, script, "statTable")), &stats); err != nil {
		t.Fatalf("statTable is not valid JSON: %v", err)
	}
	if len(stats) != len(TrackedStats) {
		t.Fatalf("statTable has %d stats, want %d", len(stats), len(TrackedStats))
	}
	for i, stat := range stats {
		if stat.Key != TrackedStats[i].Key {
			t.Fatalf("stat %d key = %q, want %q", i, stat.Key, TrackedStats[i].Key)
		}
		if stat.Breakpoint != TrackedStats[i].Breakpoint {
			t.Fatalf("stat %q breakpoints drifted through serialization", stat.Key)
		}
	}
	// The okay-tier note flag has to survive into the client: cdr notes,
	// cold does not.
	for _, stat := range stats {
		switch stat.Key {
		case "cdr":
			if !stat.OkayNote {
				t.Fatalf("cdr lost its okay-note flag")
			}
		case "cold", "ad":
			if stat.OkayNote {
				t.Fatalf("%s must not note on the okay tier", stat.Key)
			}
		}
	}
}

func TestRenderScriptNamespace(t *testing.T) {
	script, err := renderScript(34)
	if err != nil {
		t.Fatalf("renderScript failed: %v", err)
	}
	if !strings.Contains(script, "localStorage.setItem('d3s34'") {
		t.Fatalf("namespace not substituted")
	}
	if strings.Contains(script, "__NAMESPACE__") {
		t.Fatalf("namespace placeholder survived")
	}
}
