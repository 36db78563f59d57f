package main

import (
	"strings"
	"testing"
)

func testBuildDoc() *BuildDoc {
	return &BuildDoc{
		Build: BuildMeta{ShortName: "Sunwuko Tempest Rush", Class: "Monk"},
		Gear: GearDoc{Worn: map[string]WornSlot{
			"main_hand": {Item: "Vengeful Wind", StatsPriority: []string{"Socket", "% Damage", "Attack Speed", "Area Damage"}},
			"helm":      {Item: "Sunwuko's Crown", StatsPriority: []string{"Socket", "Dexterity", "CHC"}},
		}},
	}
}

func TestRenderGearCheckerPerSlot(t *testing.T) {
	var out strings.Builder
	renderGearChecker(&out, testBuildDoc())
	html := out.String()

	// One checker per advisory slot, worn item in the heading when known.
	if !strings.Contains(html, "⚔️ Mainhand (Vengeful Wind)") {
		t.Fatalf("mainhand checker heading missing the worn item")
	}
	if !strings.Contains(html, "👑 Helm (Sunwuko&#39;s Crown)") {
		t.Fatalf("helm checker heading missing the escaped worn item")
	}
	// Slots without a worn entry still get a checker, heading only.
	if !strings.Contains(html, "<h2>📿 Amulet</h2>") {
		t.Fatalf("amulet checker missing")
	}
	for _, slot := range GearSlotOrder {
		if !strings.Contains(html, `id="advice-`+slot+`"`) {
			t.Fatalf("advice container for %q missing", slot)
		}
	}
	if !strings.Contains(html, `data-slot="helm" data-stat="socket"`) {
		t.Fatalf("stat checkbox attributes missing")
	}
}

func TestRenderGearTrackers(t *testing.T) {
	html := renderGear(testBuildDoc())

	if !strings.Contains(html, `id="aug1"`) || !strings.Contains(html, `id="aug13"`) {
		t.Fatalf("augment tracker ids missing")
	}
	if !strings.Contains(html, "Weapon augmentiert (Rank 100+ = +500 Dex)") {
		t.Fatalf("first augment label missing its rank note")
	}
	if !strings.Contains(html, `id="anc13"`) {
		t.Fatalf("ancient checklist ids missing")
	}
	if !strings.Contains(html, `id="gr70"`) {
		t.Fatalf("gr70 unlock checkbox missing")
	}
	// Slot list shows at most three priority stats.
	if !strings.Contains(html, "Socket, % Damage, Attack Speed") {
		t.Fatalf("mainhand priority stats missing or not truncated")
	}
	if strings.Contains(html, "Socket, % Damage, Attack Speed, Area Damage") {
		t.Fatalf("priority stats must truncate to three")
	}
}
