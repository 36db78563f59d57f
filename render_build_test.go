package main

import (
	"strings"
	"testing"
)

func TestRenderStatCalculatorInputs(t *testing.T) {
	html := renderStatCalculator()

	for _, si := range statInputs {
		if !strings.Contains(html, `id="stat-`+si.Key+`"`) {
			t.Fatalf("input for %q missing", si.Key)
		}
		if !strings.Contains(html, `id="fill-`+si.Key+`"`) || !strings.Contains(html, `id="value-`+si.Key+`"`) {
			t.Fatalf("result row for %q missing", si.Key)
		}
	}
	if !strings.Contains(html, `id="stat-recommendations"`) {
		t.Fatalf("recommendations box missing")
	}
}

func TestRenderBreakpointInfoMatchesEvaluator(t *testing.T) {
	html := renderBreakpointInfo("Sunwuko Tempest Rush")

	if !strings.Contains(html, "📖 Breakpoints für Sunwuko Tempest Rush") {
		t.Fatalf("heading missing")
	}
	// Thresholds come straight from the evaluator tables.
	if !strings.Contains(html, "Minimum: 45%") || !strings.Contains(html, "Gut: 50%") {
		t.Fatalf("cdr thresholds missing:\n%s", html)
	}
	if !strings.Contains(html, "Perfekt: 55%+") {
		t.Fatalf("open-ended perfect threshold must carry a plus")
	}
	// Cold caps at its perfect value, so no plus suffix there.
	if !strings.Contains(html, "Perfekt: 40%</span> - Max (2 Slots)") {
		t.Fatalf("capped perfect threshold must not carry a plus:\n%s", html)
	}
	if !strings.Contains(html, "Perfekt: 500%+") {
		t.Fatalf("chd perfect threshold missing")
	}
}

func TestFormatThreshold(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{45, "%", "45%"},
		{43.3, "%", "43.3%"},
		{500, "%", "500%"},
	}
	for _, tc := range cases {
		if got := formatThreshold(tc.value, tc.unit); got != tc.want {
			t.Fatalf("formatThreshold(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRenderBuildSections(t *testing.T) {
	docs := loadShippedDocs(t)
	html := renderBuild(docs.Build)

	for _, want := range []string{
		"Tempest Rush",  // active skill
		"Bane of the Trapped", // legendary gem
		`id="lg1"`,
		"Kyoshiro",      // cube weapon power
		"Cooldown Reduction", // paragon offense priority
		`id="stat-cdr"`, // calculator wired into the tab
		"📖 Breakpoints für Sunwuko Tempest Rush",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("build tab missing %q", want)
		}
	}
}
