package main

import "strings"

// Stat breakpoint evaluator. Six tracked character stats, each with a fixed
// breakpoint quadruple; EvaluateStats classifies every value and aggregates
// the improvement notes. Pure functions, mirrored client-side via the JSON
// tables in script.go.

// StatTier classifies one numeric stat value against its breakpoints.
type StatTier string

const (
	StatLow     StatTier = "low"
	StatOkay    StatTier = "okay"
	StatGood    StatTier = "good"
	StatPerfect StatTier = "perfect"
)

// Breakpoint is the immutable threshold quadruple for one stat.
type Breakpoint struct {
	Min     float64 `json:"min"`
	Good    float64 `json:"good"`
	Perfect float64 `json:"perfect"`
	Max     float64 `json:"max"`
	Unit    string  `json:"unit"`
}

// TrackedStat describes one of the six stats: key, display name,
// breakpoints and the per-tier improvement tips. OkayNote controls whether
// the okay tier contributes an improvement note; stats whose good threshold
// already equals max carry no meaningful intermediate state and keep it off.
type TrackedStat struct {
	Key        string     `json:"key"`
	Name       string     `json:"name"`
	Breakpoint Breakpoint `json:"bp"`
	OkayNote   bool       `json:"okayNote"`
	TipLow     string     `json:"tipLow"`
	TipOkay    string     `json:"tipOkay"`
	TipGood    string     `json:"tipGood"`
}

// TrackedStats is the fixed stat order; aggregation reports notes in this
// order, not by severity.
var TrackedStats = []TrackedStat{
	{
		Key: "cdr", Name: "CDR",
		Breakpoint: Breakpoint{Min: 45, Good: 50, Perfect: 55, Max: 80, Unit: "%"},
		OkayNote:   true,
		TipLow:     "CDR zu niedrig! Epiphany hat keine Uptime. → CDR auf Shoulders, Gloves, Rings, Amulet, Paragon",
		TipOkay:    "CDR okay, aber mehr wäre besser für Epiphany Uptime",
		TipGood:    "CDR perfekt! Epiphany hat fast 100% Uptime",
	},
	{
		Key: "rcr", Name: "RCR",
		Breakpoint: Breakpoint{Min: 40, Good: 50, Perfect: 55, Max: 80, Unit: "%"},
		OkayNote:   true,
		TipLow:     "RCR zu niedrig! Spirit Probleme! → Topaz in Helm, RCR auf Shoulders/Gloves, Paragon",
		TipOkay:    "RCR okay, evtl. noch Spirit Probleme bei langen Fights",
		TipGood:    "RCR perfekt! Smooth Tempest Rush",
	},
	{
		Key: "chc", Name: "CHC",
		Breakpoint: Breakpoint{Min: 40, Good: 50, Perfect: 55, Max: 65, Unit: "%"},
		OkayNote:   true,
		TipLow:     "CHC zu niedrig! Damage sehr inkonsistent. → CHC auf Helm, Gloves, Bracers, Rings, Amulet",
		TipOkay:    "CHC okay, Damage ist consistent genug",
		TipGood:    "CHC perfekt! Crits überall",
	},
	{
		Key: "chd", Name: "CHD",
		Breakpoint: Breakpoint{Min: 350, Good: 450, Perfect: 500, Max: 600, Unit: "%"},
		OkayNote:   true,
		TipLow:     "CHD zu niedrig! Crits sind schwach. → CHD auf Gloves, Rings, Amulet + Emeralds in Weapons",
		TipOkay:    "CHD okay, guter Crit Damage",
		TipGood:    "CHD perfekt! Fette Crits!",
	},
	{
		Key: "cold", Name: "Cold%",
		Breakpoint: Breakpoint{Min: 20, Good: 40, Perfect: 40, Max: 40, Unit: "%"},
		OkayNote:   false,
		TipLow:     "Cold% fehlt! → Cold% auf Bracers (20%) und Amulet (20%)",
		TipOkay:    "Cold% nur auf einem Slot. Amulet oder Bracers fehlt",
		TipGood:    "Cold% perfekt! Max aus Bracers + Amulet",
	},
	{
		Key: "ad", Name: "Area Damage",
		Breakpoint: Breakpoint{Min: 50, Good: 100, Perfect: 130, Max: 150, Unit: "%"},
		OkayNote:   false,
		TipLow:     "Area Damage niedrig. → AD auf Shoulders, Gloves, Rings, Weapons, Paragon",
		TipOkay:    "Area Damage okay für AoE",
		TipGood:    "Area Damage perfekt! Explosive AoE Kills",
	},
}

// AllGoodSummary is the fixed aggregate message when no stat produced a
// note.
const AllGoodSummary = "✅ Alle Stats sind gut! Dein Build ist solide. Fokus jetzt auf: Ancient Gear farmen, Augments hinzufügen, Paragon leveln"

// FillRatio is value/max clamped to [0,1]. Negative values clamp to 0.
func FillRatio(value float64, bp Breakpoint) float64 {
	if bp.Max <= 0 || value <= 0 {
		return 0
	}
	ratio := value / bp.Max
	if ratio > 1 {
		return 1
	}
	return ratio
}

// ClassifyStat maps a value onto its tier. Unset input is evaluated as 0.
func ClassifyStat(value float64, bp Breakpoint) StatTier {
	switch {
	case value < bp.Min:
		return StatLow
	case value < bp.Good:
		return StatOkay
	case value >= bp.Perfect:
		return StatPerfect
	default:
		return StatGood
	}
}

// StatResult is the evaluation of a single stat.
type StatResult struct {
	Stat      TrackedStat
	Value     float64
	Tier      StatTier
	FillRatio float64
	Note      string // improvement note, empty unless the tier generates one
}

// StatEvaluation aggregates all six stat results.
type StatEvaluation struct {
	Results []StatResult
	Notes   []string
	AllGood bool
}

// Summary returns the recommendation text: the fixed all-good message, or
// the notes joined in declared stat order.
func (e StatEvaluation) Summary() string {
	if e.AllGood {
		return AllGoodSummary
	}
	return strings.Join(e.Notes, "\n")
}

// EvaluateStats classifies each tracked stat. Missing keys in values read
// as 0. At most one note per stat: low always notes, okay notes only for
// stats with OkayNote set.
func EvaluateStats(values map[string]float64) StatEvaluation {
	eval := StatEvaluation{AllGood: true}
	for _, stat := range TrackedStats {
		val := values[stat.Key]
		tier := ClassifyStat(val, stat.Breakpoint)
		res := StatResult{
			Stat:      stat,
			Value:     val,
			Tier:      tier,
			FillRatio: FillRatio(val, stat.Breakpoint),
		}
		switch tier {
		case StatLow:
			res.Note = stat.TipLow
			eval.AllGood = false
		case StatOkay:
			if stat.OkayNote {
				res.Note = stat.TipOkay
			}
		}
		if res.Note != "" {
			eval.Notes = append(eval.Notes, res.Note)
		}
		eval.Results = append(eval.Results, res)
	}
	if len(eval.Notes) > 0 {
		eval.AllGood = false
	}
	return eval
}
