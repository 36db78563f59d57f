package main

import (
	"fmt"
	"html"
	"strings"
)

// Section renderers build one HTML fragment per page tab from the loaded
// documents. All document-sourced text goes through esc; the fragments are
// assembled into the final page by GeneratePage.

func esc(s string) string {
	return html.EscapeString(s)
}

var classEmojis = map[string]string{
	"monk":         "🐵",
	"barbarian":    "⚔️",
	"crusader":     "🛡️",
	"demon hunter": "🏹",
	"necromancer":  "💀",
	"witch doctor": "🧙",
	"wizard":       "🔮",
}

func classEmoji(class string) string {
	if e, ok := classEmojis[strings.ToLower(class)]; ok {
		return e
	}
	return "🎮"
}

// haedrigSetName resolves the season's gift set for the build's class.
func haedrigSetName(journey *Journey, build *BuildDoc) string {
	classKey := strings.ReplaceAll(strings.ToLower(build.Build.Class), " ", "_")
	if set, ok := journey.Season.HaedrigGifts[classKey]; ok {
		return set
	}
	return "Unknown Set"
}

func renderTask(out *strings.Builder, taskID string, task Task) {
	location := ""
	if task.BossData != nil {
		location = fmt.Sprintf(" - A%d: %s", task.BossData.Act, esc(task.BossData.Location))
	} else if task.KeywardenData != nil {
		location = fmt.Sprintf(" - A%d: %s", task.KeywardenData.Act, esc(task.KeywardenData.Location))
	}

	diff := ""
	if task.Difficulty != "" {
		diff = fmt.Sprintf(`<span class="diff">(%s)%s</span>`, esc(task.Difficulty), location)
	} else if location != "" {
		diff = fmt.Sprintf(`<span class="diff">%s</span>`, location)
	}

	milestone := ""
	if task.Milestone {
		milestone = "⭐ "
	}

	fmt.Fprintf(out,
		"            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\">%s%s %s</label></div>\n",
		taskID, taskID, milestone, esc(task.Name), diff)
}

func renderChapter(out *strings.Builder, heading, reward string, tasks []Task, firstID int) {
	fmt.Fprintf(out, "        <div class=\"section\">\n            <h2>%s</h2>\n", heading)
	fmt.Fprintf(out, "            <div class=\"reward\"><strong>Reward:</strong> %s</div>\n", esc(reward))
	for i, task := range tasks {
		renderTask(out, fmt.Sprintf("j%d", firstID+i), task)
	}
	out.WriteString("        </div>\n")
}

// renderJourney builds the Journey tab: chapters II-IV with their Haedrig
// gift rewards. Task ids are numbered from fixed offsets per chapter so
// they stay stable when a chapter grows.
func renderJourney(journey *Journey, build *BuildDoc) string {
	setName := haedrigSetName(journey, build)
	var out strings.Builder
	renderChapter(&out, "Chapter II → Haedrig #1", setName+" 2pc", journey.Chapter2.Tasks, 1)
	renderChapter(&out, "Chapter III → Haedrig #2", setName+" 4pc", journey.Chapter3.Tasks, 20)
	renderChapter(&out, "Chapter IV → Haedrig #3", setName+" 6pc", journey.Chapter4.Tasks, 40)
	return out.String()
}
