package main

import (
	"strings"
	"testing"
)

func loadShippedDocs(t *testing.T) *GuideDocs {
	t.Helper()
	docs, err := LoadGuideDocs("data", "monk-sunwuko-tr")
	if err != nil {
		t.Fatalf("LoadGuideDocs failed: %v", err)
	}
	return docs
}

func generateShippedPage(t *testing.T) string {
	t.Helper()
	page, err := GeneratePage(loadShippedDocs(t))
	if err != nil {
		t.Fatalf("GeneratePage failed: %v", err)
	}
	return page
}

func TestGeneratePageContainsAllTabs(t *testing.T) {
	page := generateShippedPage(t)

	for i, tab := range pageTabs {
		want := `<div id="` + tab.ID + `" class="content`
		if !strings.Contains(page, want) {
			t.Fatalf("tab div %q missing from page", tab.ID)
		}
		if i == 0 && !strings.Contains(page, `<div id="`+tab.ID+`" class="content active">`) {
			t.Fatalf("first tab %q must start active", tab.ID)
		}
	}
	if !strings.Contains(page, "<title>D3 S33 Sunwuko Tempest Rush</title>") {
		t.Fatalf("page title missing or wrong")
	}
	if !strings.Contains(page, "Alles zurücksetzen") {
		t.Fatalf("reset button missing")
	}
}

func TestGeneratePageKnownControlIDs(t *testing.T) {
	page := generateShippedPage(t)

	for _, id := range []string{
		"j1", "j20", "j40", // journey chapters II-IV
		"lg1",                            // legendary gem checklist
		"aug13", "anc13", "gr70",         // gear trackers
		"altar_1", "altar_26",            // altar seals
		"cp4", "fc2", "bounty_act_1",     // farm tab
		"start_p1_1", "start_gamble_Ringe", // start guide
	} {
		if !strings.Contains(page, `id="`+id+`"`) {
			t.Fatalf("checkbox id %q missing from page", id)
		}
	}
}

func TestGeneratePageControlIDsAreUnique(t *testing.T) {
	page := generateShippedPage(t)

	ids := CollectControlIDs(page)
	if len(ids) == 0 {
		t.Fatalf("no checkbox controls found")
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate control id %q", id)
		}
		seen[id] = true
	}
	// Gear checker boxes carry the composite slot_stat key.
	if !seen["helm_socket"] || !seen["mh_socket"] || !seen["amulet_chd"] {
		t.Fatalf("gear checker composite ids missing, got %d ids", len(ids))
	}
}

func TestGeneratePageEmbedsScriptData(t *testing.T) {
	page := generateShippedPage(t)

	if !strings.Contains(page, "localStorage.setItem('d3s33'") {
		t.Fatalf("season namespace not wired into the script")
	}
	for _, placeholder := range []string{
		"__NAMESPACE__", "__GEAR_RULES__", "__SLOT_ORDER__",
		"__SWAP_LABELS__", "__STAT_TABLE__",
	} {
		if strings.Contains(page, placeholder) {
			t.Fatalf("placeholder %s survived into the page", placeholder)
		}
	}
	// Rule texts travel into the page through the JSON tables.
	if !strings.Contains(page, "CHC 6% rerolled") {
		t.Fatalf("gear rule data missing from script")
	}
}

func TestGeneratePagePlaceholdersForOptionalDocs(t *testing.T) {
	docs := loadShippedDocs(t)
	docs.StartGuide = nil
	docs.Glossary = nil

	page, err := GeneratePage(docs)
	if err != nil {
		t.Fatalf("GeneratePage failed: %v", err)
	}
	if !strings.Contains(page, "Keine Start-Guide Daten gefunden.") {
		t.Fatalf("start placeholder missing")
	}
	if !strings.Contains(page, "Keine Glossar-Daten.") {
		t.Fatalf("glossary placeholder missing")
	}
}

func TestRenderJourneyUsesHaedrigSet(t *testing.T) {
	docs := loadShippedDocs(t)
	html := renderJourney(docs.Journey, docs.Build)

	// HTML-escaped: the apostrophe in the set name becomes &#39;.
	if !strings.Contains(html, "Monkey King&#39;s Garb 2pc") {
		t.Fatalf("chapter II reward missing the haedrig set")
	}
	if !strings.Contains(html, "Monkey King&#39;s Garb 6pc") {
		t.Fatalf("chapter IV reward missing the haedrig set")
	}
	// Boss tasks show the merged location line.
	if !strings.Contains(html, "A1: Crypt of the Skeleton King") {
		t.Fatalf("boss location not rendered")
	}
}
