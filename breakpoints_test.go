package main

import (
	"math"
	"strings"
	"testing"
)

func trackedStat(t *testing.T, key string) TrackedStat {
	t.Helper()
	for _, stat := range TrackedStats {
		if stat.Key == key {
			return stat
		}
	}
	t.Fatalf("no tracked stat %q", key)
	return TrackedStat{}
}

func TestClassifyStatBoundaries(t *testing.T) {
	bp := trackedStat(t, "cdr").Breakpoint // 45 / 50 / 55 / 80

	cases := []struct {
		value float64
		want  StatTier
	}{
		{0, StatLow},
		{44.9, StatLow},
		{45, StatOkay},
		{49.9, StatOkay},
		{50, StatGood},
		{54.9, StatGood},
		{55, StatPerfect},
		{58, StatPerfect},
		{80, StatPerfect},
		{120, StatPerfect},
	}
	for _, tc := range cases {
		if got := ClassifyStat(tc.value, bp); got != tc.want {
			t.Fatalf("ClassifyStat(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFillRatio(t *testing.T) {
	bp := trackedStat(t, "cdr").Breakpoint

	if got := FillRatio(58, bp); math.Abs(got-0.725) > 1e-9 {
		t.Fatalf("FillRatio(58) = %v, want 0.725", got)
	}
	if got := FillRatio(200, bp); got != 1 {
		t.Fatalf("FillRatio(200) = %v, want clamp to 1", got)
	}
	if got := FillRatio(-5, bp); got != 0 {
		t.Fatalf("FillRatio(-5) = %v, want 0", got)
	}
	if got := FillRatio(40, Breakpoint{}); got != 0 {
		t.Fatalf("FillRatio with zero max = %v, want 0", got)
	}
}

func TestColdGoodEqualsPerfect(t *testing.T) {
	// Cold% jumps straight from okay to perfect: good and perfect thresholds
	// coincide at 40.
	bp := trackedStat(t, "cold").Breakpoint
	if got := ClassifyStat(40, bp); got != StatPerfect {
		t.Fatalf("ClassifyStat(40) = %q, want perfect", got)
	}
	if got := ClassifyStat(39.9, bp); got != StatOkay {
		t.Fatalf("ClassifyStat(39.9) = %q, want okay", got)
	}
}

func TestEvaluateStatsOkayNoteAsymmetry(t *testing.T) {
	// cdr in the okay band produces a note; cold in the okay band does not.
	eval := EvaluateStats(map[string]float64{
		"cdr": 47, "rcr": 55, "chc": 55, "chd": 520, "cold": 20, "ad": 140,
	})
	if eval.AllGood {
		t.Fatalf("expected AllGood=false with cdr in okay band")
	}
	if len(eval.Notes) != 1 {
		t.Fatalf("expected exactly 1 note, got %d: %v", len(eval.Notes), eval.Notes)
	}
	if eval.Notes[0] != trackedStat(t, "cdr").TipOkay {
		t.Fatalf("note = %q, want cdr okay tip", eval.Notes[0])
	}
	for _, res := range eval.Results {
		if res.Stat.Key == "cold" {
			if res.Tier != StatOkay {
				t.Fatalf("cold tier = %q, want okay", res.Tier)
			}
			if res.Note != "" {
				t.Fatalf("cold okay tier should not note, got %q", res.Note)
			}
		}
	}
}

func TestEvaluateStatsLowAlwaysNotes(t *testing.T) {
	eval := EvaluateStats(map[string]float64{
		"cdr": 55, "rcr": 55, "chc": 55, "chd": 520, "cold": 10, "ad": 140,
	})
	if eval.AllGood {
		t.Fatalf("expected AllGood=false with cold low")
	}
	if len(eval.Notes) != 1 || eval.Notes[0] != trackedStat(t, "cold").TipLow {
		t.Fatalf("notes = %v, want the cold low tip", eval.Notes)
	}
}

func TestEvaluateStatsMissingValuesReadAsZero(t *testing.T) {
	eval := EvaluateStats(nil)
	if len(eval.Results) != len(TrackedStats) {
		t.Fatalf("got %d results, want %d", len(eval.Results), len(TrackedStats))
	}
	if len(eval.Notes) != len(TrackedStats) {
		t.Fatalf("all-zero input should note every stat, got %d notes", len(eval.Notes))
	}
	for _, res := range eval.Results {
		if res.Tier != StatLow {
			t.Fatalf("stat %q tier = %q, want low for zero value", res.Stat.Key, res.Tier)
		}
	}
}

func TestEvaluateStatsAllGoodSummary(t *testing.T) {
	eval := EvaluateStats(map[string]float64{
		"cdr": 56, "rcr": 56, "chc": 56, "chd": 510, "cold": 40, "ad": 135,
	})
	if !eval.AllGood {
		t.Fatalf("expected AllGood=true, notes=%v", eval.Notes)
	}
	if got := eval.Summary(); got != AllGoodSummary {
		t.Fatalf("Summary() = %q, want the fixed all-good message", got)
	}
}

func TestSummaryJoinsNotesInStatOrder(t *testing.T) {
	eval := EvaluateStats(map[string]float64{
		"cdr": 10, "rcr": 55, "chc": 10, "chd": 520, "cold": 40, "ad": 140,
	})
	got := eval.Summary()
	want := trackedStat(t, "cdr").TipLow + "\n" + trackedStat(t, "chc").TipLow
	if got != want {
		t.Fatalf("Summary() = %q, want notes in declared stat order", got)
	}
	if strings.Contains(got, AllGoodSummary) {
		t.Fatalf("Summary() must not contain the all-good message when notes exist")
	}
}
