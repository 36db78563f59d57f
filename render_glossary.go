package main

import (
	"fmt"
	"sort"
	"strings"
)

type glossaryTerm struct {
	Abbr     string
	Category string
	Entry    GlossaryEntry
}

var glossaryCategories = []struct {
	Name    string
	Entries func(*Glossary) map[string]GlossaryEntry
}{
	{"Stats & Attribute", func(g *Glossary) map[string]GlossaryEntry { return g.Stats }},
	{"Game Content", func(g *Glossary) map[string]GlossaryEntry { return g.Content }},
	{"Items & Gear", func(g *Glossary) map[string]GlossaryEntry { return g.Items }},
	{"Cube & Crafting", func(g *Glossary) map[string]GlossaryEntry { return g.Cube }},
	{"Gameplay", func(g *Glossary) map[string]GlossaryEntry { return g.Gameplay }},
	{"Klassen", func(g *Glossary) map[string]GlossaryEntry { return g.Classes }},
	{"Community & Meta", func(g *Glossary) map[string]GlossaryEntry { return g.Community }},
}

// collectGlossaryTerms flattens all categories into one list sorted by
// abbreviation, case-insensitive.
func collectGlossaryTerms(glossary *Glossary) []glossaryTerm {
	var terms []glossaryTerm
	for _, cat := range glossaryCategories {
		for abbr, entry := range cat.Entries(glossary) {
			terms = append(terms, glossaryTerm{Abbr: abbr, Category: cat.Name, Entry: entry})
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		a, b := strings.ToLower(terms[i].Abbr), strings.ToLower(terms[j].Abbr)
		if a != b {
			return a < b
		}
		return terms[i].Category < terms[j].Category
	})
	return terms
}

// renderGlossary builds the searchable abbreviation glossary tab.
func renderGlossary(glossary *Glossary) string {
	if glossary == nil {
		return `<div class="section"><h2>Glossar</h2><p>Keine Daten.</p></div>`
	}

	terms := collectGlossaryTerms(glossary)

	var out strings.Builder
	fmt.Fprintf(&out, `        <div class="section">
            <h2>Glossar / Abkürzungen</h2>
            <input type="text" id="glossarySearch" class="search-box" placeholder="Suchen... (z.B. CHC, CDR, GR, Primal)">
            <p class="note">%d Einträge</p>
        </div>
`, len(terms))

	for _, term := range terms {
		deutsch := ""
		if term.Entry.Deutsch != "" && term.Entry.Deutsch != term.Entry.Full {
			deutsch = " / " + esc(term.Entry.Deutsch)
		}
		notes := ""
		if term.Entry.Notes != "" {
			notes = fmt.Sprintf(`<div class="notes" style="color:#888;font-size:0.8em;margin-top:3px">%s</div>`, esc(term.Entry.Notes))
		}
		fmt.Fprintf(&out, `            <div class="boss-card glossary-term">
                <h4 style="color:#e94560">%s</h4>
                <div style="color:#f4a460">%s%s</div>
                <div style="color:#ccc;font-size:0.85em;margin-top:3px">%s</div>
                %s
                <div style="color:#666;font-size:0.7em;margin-top:5px">%s</div>
            </div>
`, esc(term.Abbr), esc(term.Entry.Full), deutsch, esc(term.Entry.Description), notes, term.Category)
	}

	out.WriteString(`
        <script>
            const glossarySearch = document.getElementById('glossarySearch');
            if (glossarySearch) {
                glossarySearch.addEventListener('input', (e) => {
                    const query = e.target.value.toLowerCase();
                    document.querySelectorAll('.glossary-term').forEach(card => {
                        const text = card.textContent.toLowerCase();
                        card.classList.toggle('hidden', !text.includes(query));
                    });
                });
            }
        </script>
`)
	return out.String()
}
