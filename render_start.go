package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func renderPhaseItems(out *strings.Builder, idPrefix string, steps []StartStep, annotate func(StartStep) string) {
	for i, step := range steps {
		id := fmt.Sprintf("%s_%d", idPrefix, i+1)
		note := annotate(step)
		fmt.Fprintf(out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\">%s %s</label></div>\n",
			id, id, esc(step.Action), note)
		if step.Effect != "" {
			fmt.Fprintf(out, "            <p class=\"note\">%s</p>\n", esc(step.Effect))
		}
	}
}

// timelineKeys sorts the timeline map by the leading minute number of each
// key ("0-5 min" before "15-30 min"), falling back to string order.
func timelineKeys(timeline map[string]string) []string {
	keys := make([]string, 0, len(timeline))
	for k := range timeline {
		keys = append(keys, k)
	}
	leading := func(s string) int {
		digits := s
		for i, r := range s {
			if r < '0' || r > '9' {
				digits = s[:i]
				break
			}
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return 1 << 30
		}
		return n
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := leading(keys[i]), leading(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// renderStart builds the Season Start tab from the optional start guide
// document. Without the document the tab carries a single placeholder
// section.
func renderStart(guide *StartGuide) string {
	if guide == nil {
		return `<div class="section"><h2>Season Start</h2><p>Keine Daten.</p></div>`
	}

	var out strings.Builder
	cache := guide.Preparation.ChallengeRift.CacheContents
	gold := cache.Gold
	if gold == "" {
		gold = "5.1M"
	}
	fmt.Fprintf(&out, `        <div class="section">
            <h2>Challenge Rift Cache</h2>
            <div class="info-box">
                <strong>Inhalt:</strong><br>
                💰 %s Gold<br>
                🩸 %d Blood Shards<br>
                💀 %d Death's Breath<br>
                📦 %d Reusable Parts + Arcane Dust + Veiled Crystal<br>
                🗺️ 15x Bounty Mats (jeder Act)
            </div>
            <p class="note">⚠️ WICHTIG: Erst NACH Season-Start öffnen! Vorher Season-Char erstellen!</p>
        </div>

        <div class="section">
            <h2>Phase 1: Nach Login</h2>
`, esc(gold), cache.BloodShards, cache.DeathsBreath, cache.ReusableParts)

	steps := guide.SeasonStartSteps
	renderPhaseItems(&out, "start_p1", steps.Phase1.Steps, func(s StartStep) string {
		if s.Notes == "" {
			return ""
		}
		return fmt.Sprintf(`<span class="diff">%s</span>`, esc(s.Notes))
	})

	out.WriteString(`        </div>

        <div class="section">
            <h2>Phase 2: Altar of Rites</h2>
            <p class="note">📍 Act 1, New Tristram - links vom Waypoint</p>
`)
	renderPhaseItems(&out, "start_p2", steps.Phase2.Steps, func(s StartStep) string {
		if s.Cost == "" {
			return ""
		}
		return fmt.Sprintf(`<span class="diff">(%s)</span>`, esc(s.Cost))
	})

	out.WriteString(`        </div>

        <div class="section">
            <h2>Phase 3: Level 70 Gear craften</h2>
            <p class="note">⚠️ Braucht Anointed Seal!</p>
`)
	renderPhaseItems(&out, "start_p3", steps.Phase3.Steps, func(s StartStep) string {
		if s.Notes == "" {
			return ""
		}
		return fmt.Sprintf(`<span class="diff">%s</span>`, esc(s.Notes))
	})

	out.WriteString(`        </div>

        <div class="section">
            <h2>Phase 4: Kanai's Cube</h2>
            <p class="note">📍 Act 3, Ruins of Sescheron → Elder Sanctum</p>
`)
	renderPhaseItems(&out, "start_p4", steps.Phase4.Steps, func(s StartStep) string {
		if s.Location == "" {
			return ""
		}
		return fmt.Sprintf(`<span class="diff">%s</span>`, esc(s.Location))
	})

	out.WriteString(`        </div>

        <div class="section">
            <h2>Phase 5: Necro Gambling (Level 1)</h2>
            <p class="note">Necro hat die besten Level-1-Gambling Optionen!</p>
`)
	for _, g := range steps.Phase5.GamblingPriority.Level1 {
		id := "start_gamble_" + g.Slot
		fmt.Fprintf(&out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\"><strong>%s</strong> → %s</label></div>\n",
			id, id, esc(g.Slot), esc(g.Target))
		if g.Effect != "" {
			fmt.Fprintf(&out, "            <p class=\"note\">%s</p>\n", esc(g.Effect))
		}
	}

	out.WriteString(`        </div>

        <div class="section">
            <h2>⏱️ Zeitleiste (Solo)</h2>
            <div class="info-box">
`)
	solo := guide.Timeline["solo"]
	for _, key := range timelineKeys(solo) {
		fmt.Fprintf(&out, "<strong>%s</strong> - %s<br>\n", esc(key), esc(solo[key]))
	}

	out.WriteString(`            </div>
        </div>

        <div class="section">
            <h2>⚠️ Häufige Fehler</h2>
            <div class="info-box">
`)
	mistakes := guide.CommonMistakes
	if len(mistakes) > 5 {
		mistakes = mistakes[:5]
	}
	for _, m := range mistakes {
		fmt.Fprintf(&out, "<strong>❌ %s</strong><br>✅ %s<br><br>\n", esc(m.Mistake), esc(m.Fix))
	}
	out.WriteString("            </div>\n        </div>\n")

	return out.String()
}
