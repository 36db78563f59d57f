package main

import (
	"fmt"
	"strings"
)

var pageTabs = []struct {
	ID    string
	Label string
}{
	{"start", "Start"},
	{"journey", "Journey"},
	{"build", "Build"},
	{"gear", "Gear"},
	{"bosses", "Bosses"},
	{"altar", "Altar"},
	{"farm", "Farm"},
	{"glossary", "A-Z"},
}

// GeneratePage assembles the complete self-contained HTML page from the
// loaded documents: style, eight tab fragments, and the client script with
// its embedded rule tables.
func GeneratePage(docs *GuideDocs) (string, error) {
	seasonNum := docs.Journey.Season.Number
	buildName := docs.Build.Build.ShortName
	if buildName == "" {
		buildName = "Unknown"
	}

	startHTML := `<div class="section"><h2>Season Start Guide</h2><p>Keine Start-Guide Daten gefunden.</p></div>`
	if docs.StartGuide != nil {
		startHTML = renderStart(docs.StartGuide)
	}
	glossaryHTML := `<div class="section"><h2>Glossar</h2><p>Keine Glossar-Daten.</p></div>`
	if docs.Glossary != nil {
		glossaryHTML = renderGlossary(docs.Glossary)
	}

	tabFragments := map[string]string{
		"start":    startHTML,
		"journey":  renderJourney(docs.Journey, docs.Build),
		"build":    renderBuild(docs.Build),
		"gear":     renderGear(docs.Build),
		"bosses":   renderBosses(docs.Static),
		"altar":    renderAltar(docs.Static),
		"farm":     renderFarm(docs.Static),
		"glossary": glossaryHTML,
	}

	script, err := renderScript(seasonNum)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	fmt.Fprintf(&out, `<!DOCTYPE html>
<html lang="de">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>D3 S%d %s</title>
    <style>
%s
    </style>
</head>
<body>
    <h1>%s %s - S%d</h1>

    <div class="progress"><div class="progress-bar" id="progressBar"></div></div>
    <div class="progress-text" id="progressText">0 / 0</div>

    <div class="tabs">
`, seasonNum, esc(buildName), pageCSS, classEmoji(docs.Build.Build.Class), esc(buildName), seasonNum)

	for i, tab := range pageTabs {
		active := ""
		if i == 0 {
			active = " active"
		}
		fmt.Fprintf(&out, "        <button class=\"tab%s\" data-tab=\"%s\">%s</button>\n", active, tab.ID, tab.Label)
	}
	out.WriteString("    </div>\n")

	for i, tab := range pageTabs {
		active := ""
		if i == 0 {
			active = " active"
		}
		fmt.Fprintf(&out, "\n    <!-- %s TAB -->\n    <div id=\"%s\" class=\"content%s\">\n%s\n    </div>\n",
			strings.ToUpper(tab.ID), tab.ID, active, tabFragments[tab.ID])
	}

	fmt.Fprintf(&out, `
    <button class="reset" onclick="resetAll()">Alles zurücksetzen</button>

    <script>
%s
    </script>
</body>
</html>`, script)

	return out.String(), nil
}
