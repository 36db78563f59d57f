package main

import (
	"fmt"
	"strings"
)

// statInput carries the build-tab markup details for one tracked stat:
// input label, number-field attributes and the short tier annotations for
// the breakpoint info box. Ordered like TrackedStats.
type statInput struct {
	Key         string
	Label       string
	RowName     string
	Step        string
	Max         string
	Placeholder string
	InfoHeading string
	NoteMin     string
	NoteGood    string
	NotePerfect string
}

var statInputs = []statInput{
	{
		Key: "cdr", Label: "CDR (Cooldown Reduction)", RowName: "CDR",
		Step: "0.1", Max: "100", Placeholder: "z.B. 50",
		InfoHeading: "CDR (Cooldown Reduction)",
		NoteMin:     "Epiphany alle ~13s", NoteGood: "Epiphany alle ~11s", NotePerfect: "Fast permanente Uptime",
	},
	{
		Key: "rcr", Label: "RCR (Resource Cost Reduction)", RowName: "RCR",
		Step: "0.1", Max: "100", Placeholder: "z.B. 43.3",
		InfoHeading: "RCR (Resource Cost Reduction)",
		NoteMin:     "Spirit Probleme möglich", NoteGood: "Smooth Channeling", NotePerfect: "Nie Spirit Probleme",
	},
	{
		Key: "chc", Label: "CHC (Critical Hit Chance)", RowName: "CHC",
		Step: "0.1", Max: "100", Placeholder: "z.B. 45",
		InfoHeading: "CHC (Critical Hit Chance)",
		NoteMin:     "Damage inconsistent", NoteGood: "Solide Crits", NotePerfect: "Sehr consistent",
	},
	{
		Key: "chd", Label: "CHD (Critical Hit Damage)", RowName: "CHD",
		Step: "1", Max: "1000", Placeholder: "z.B. 450",
		InfoHeading: "CHD (Critical Hit Damage)",
		NoteMin:     "Wenig Burst", NoteGood: "Solider Damage", NotePerfect: "Fette Crits",
	},
	{
		Key: "cold", Label: "Cold Damage %", RowName: "Cold%",
		Step: "1", Max: "100", Placeholder: "z.B. 40",
		InfoHeading: "Cold Damage %",
		NoteMin:     "Nur Bracers", NoteGood: "Bracers + Ammy", NotePerfect: "Max (2 Slots)",
	},
	{
		Key: "ad", Label: "Area Damage", RowName: "AD",
		Step: "1", Max: "200", Placeholder: "z.B. 100",
		InfoHeading: "Area Damage",
		NoteMin:     "Basis", NoteGood: "Solide AoE", NotePerfect: "Max AoE",
	},
}

func trackedStatByKey(key string) *TrackedStat {
	for i := range TrackedStats {
		if TrackedStats[i].Key == key {
			return &TrackedStats[i]
		}
	}
	return nil
}

func formatThreshold(v float64, unit string) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.1f", v), "0"), ".") + unit
}

// renderBreakpointInfo lays out the static reference box listing every
// tracked stat with its minimum/good/perfect thresholds and tier notes.
// Generated from TrackedStats so the box can never drift from the
// evaluator.
func renderBreakpointInfo(buildName string) string {
	var out strings.Builder
	fmt.Fprintf(&out, "        <div class=\"section\">\n            <h2>📖 Breakpoints für %s</h2>\n            <div class=\"info-box\">\n", esc(buildName))
	for i, si := range statInputs {
		stat := trackedStatByKey(si.Key)
		if stat == nil {
			continue
		}
		bp := stat.Breakpoint
		perfectSuffix := "+"
		if bp.Perfect == bp.Max {
			perfectSuffix = ""
		}
		fmt.Fprintf(&out, "                <strong>%s:</strong><br>\n", si.InfoHeading)
		fmt.Fprintf(&out, "                • <span style=\"color:#e94560\">Minimum: %s</span> - %s<br>\n",
			formatThreshold(bp.Min, bp.Unit), si.NoteMin)
		fmt.Fprintf(&out, "                • <span style=\"color:#f4a460\">Gut: %s</span> - %s<br>\n",
			formatThreshold(bp.Good, bp.Unit), si.NoteGood)
		fmt.Fprintf(&out, "                • <span style=\"color:#4a9\">Perfekt: %s%s</span> - %s",
			formatThreshold(bp.Perfect, bp.Unit), perfectSuffix, si.NotePerfect)
		if i < len(statInputs)-1 {
			out.WriteString("<br><br>\n\n")
		} else {
			out.WriteString("\n")
		}
	}
	out.WriteString("            </div>\n        </div>\n")
	return out.String()
}

func renderStatCalculator() string {
	var out strings.Builder
	out.WriteString(`        <div class="section">
            <h2>🔢 Build Stat Calculator</h2>
            <p class="note">Trage deine aktuellen Stats ein (aus Details-Tab im Spiel) und sieh was du verbessern musst!</p>
        </div>

        <div class="section stat-calculator">
            <h2>Deine Stats</h2>
            <div class="stat-inputs">
`)
	for _, si := range statInputs {
		fmt.Fprintf(&out, `                <div class="stat-input-row">
                    <label for="stat-%s">%s</label>
                    <div class="input-with-unit">
                        <input type="number" id="stat-%s" step="%s" min="0" max="%s" placeholder="%s">
                        <span>%%</span>
                    </div>
                </div>
`, si.Key, si.Label, si.Key, si.Step, si.Max, si.Placeholder)
	}
	out.WriteString(`            </div>
        </div>

        <div class="section">
            <h2>📊 Auswertung</h2>
            <div id="stat-results">
`)
	for _, si := range statInputs {
		fmt.Fprintf(&out, `                <div class="stat-result" id="result-%s">
                    <span class="stat-name">%s</span>
                    <span class="stat-bar"><span class="stat-fill" id="fill-%s"></span></span>
                    <span class="stat-value" id="value-%s">-</span>
                </div>
`, si.Key, si.RowName, si.Key, si.Key)
	}
	out.WriteString(`            </div>
        </div>

        <div class="section">
            <h2>💡 Empfehlungen</h2>
            <div id="stat-recommendations" class="info-box">
                Trage oben deine Stats ein...
            </div>
        </div>
`)
	return out.String()
}

// renderBuild builds the Build tab: skills, gems, cube powers, paragon
// priorities, rotation and the interactive stat calculator.
func renderBuild(build *BuildDoc) string {
	var out strings.Builder

	out.WriteString("        <div class=\"section\">\n            <h2>Active Skills</h2>\n            <table class=\"skill-table\">\n                <tr><th>Slot</th><th>Skill</th><th>Rune</th></tr>\n")
	for _, s := range build.Skills.Active {
		fmt.Fprintf(&out, "                <tr><td>%s</td><td><strong>%s</strong></td><td>%s</td></tr>\n",
			esc(s.Slot), esc(s.Skill), esc(s.Rune))
	}
	out.WriteString("            </table>\n        </div>\n\n")

	out.WriteString("        <div class=\"section\">\n            <h2>Passive Skills</h2>\n            <div class=\"info-box\">\n")
	passives := append(append([]Passive{}, build.Skills.Passives.Required...), build.Skills.Passives.Recommended...)
	for i, p := range passives {
		fmt.Fprintf(&out, "                <strong>%d. %s</strong> - %s<br>\n", i+1, esc(p.Name), esc(p.Effect))
	}
	out.WriteString("            </div>\n        </div>\n\n")

	out.WriteString("        <div class=\"section\">\n            <h2>Legendary Gems</h2>\n")
	gems := append([]Gem{}, build.LegendaryGems.Required...)
	if len(build.LegendaryGems.Pushing) > 0 {
		gems = append(gems, build.LegendaryGems.Pushing[0])
	}
	for i, g := range gems {
		id := fmt.Sprintf("lg%d", i+1)
		fmt.Fprintf(&out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\"><strong>%s</strong> - %s</label></div>\n",
			id, id, esc(g.Name), esc(g.Notes))
	}
	out.WriteString("        </div>\n\n")

	cube := build.KanaisCube
	fmt.Fprintf(&out, `        <div class="section">
            <h2>Kanai's Cube</h2>
            <div class="cube-slot"><strong>Weapon:</strong> %s - %s</div>
            <div class="cube-slot"><strong>Armor:</strong> %s - %s</div>
            <div class="cube-slot"><strong>Jewelry:</strong> %s - %s</div>
        </div>

`, esc(cube.Weapon.Item), esc(cube.Weapon.Power),
		esc(cube.Armor.Primary.Item), esc(cube.Armor.Primary.Notes),
		esc(cube.Jewelry.Item), esc(cube.Jewelry.Power))

	out.WriteString("        <div class=\"section\">\n            <h2>Paragon Points</h2>\n            <div class=\"paragon-section\">\n")
	paragonCats := []struct {
		Title  string
		Points map[int]string
	}{
		{"Core", build.Paragon.Core},
		{"Offense", build.Paragon.Offense},
		{"Defense", build.Paragon.Defense},
		{"Utility", build.Paragon.Utility},
	}
	for _, cat := range paragonCats {
		var items strings.Builder
		for i := 1; i <= 4; i++ {
			val := cat.Points[i]
			if val == "" {
				val = "?"
			}
			fmt.Fprintf(&items, "<li>%s</li>", esc(val))
		}
		fmt.Fprintf(&out, "                <div class=\"paragon-box\">\n                    <h4>%s</h4>\n                    <ol>%s</ol>\n                </div>\n",
			cat.Title, items.String())
	}
	out.WriteString("            </div>\n        </div>\n\n")

	out.WriteString("        <div class=\"section\">\n            <h2>🎮 Gameplay Rotation</h2>\n            <div class=\"info-box\">\n")
	for _, step := range build.Gameplay.Rotation {
		fmt.Fprintf(&out, "<strong>%d.</strong> %s<br><span style=\"color:#888;font-size:0.85em\">%s</span><br>\n",
			step.Step, esc(step.Action), esc(step.Notes))
	}
	out.WriteString("            </div>\n        </div>\n\n")

	out.WriteString("        <div class=\"section\">\n            <h2>💡 Tipps</h2>\n            <ul style=\"margin-left: 15px; font-size: 0.9em; line-height: 1.6;\">\n")
	for _, tip := range build.Gameplay.Tips {
		fmt.Fprintf(&out, "<li>%s</li>", esc(tip))
	}
	out.WriteString("\n            </ul>\n        </div>\n\n")

	out.WriteString(renderStatCalculator())
	out.WriteString("\n")
	out.WriteString(renderBreakpointInfo(build.Build.ShortName))

	return out.String()
}
