package main

import (
	"fmt"
	"sort"
	"strings"
)

// renderBosses builds the Bosses tab: searchable cards for every story
// boss followed by the keywardens. Cards are sorted by act, then name, so
// the output is stable across runs.
func renderBosses(static *StaticData) string {
	var out strings.Builder
	out.WriteString(`        <div class="section">
            <h2>Boss & Keywarden Suche</h2>
            <input type="text" id="bossSearch" class="search-box" placeholder="Boss suchen... (z.B. Belial, Act 3, Oasis)">
        </div>
`)

	type keyedBoss struct {
		id   string
		boss Boss
	}
	bosses := make([]keyedBoss, 0, len(static.Bosses.StoryBosses))
	for id, b := range static.Bosses.StoryBosses {
		bosses = append(bosses, keyedBoss{id, b})
	}
	sort.Slice(bosses, func(i, j int) bool {
		if bosses[i].boss.Act != bosses[j].boss.Act {
			return bosses[i].boss.Act < bosses[j].boss.Act
		}
		if bosses[i].boss.Name != bosses[j].boss.Name {
			return bosses[i].boss.Name < bosses[j].boss.Name
		}
		return bosses[i].id < bosses[j].id
	})

	for _, kb := range bosses {
		b := kb.boss
		name := b.Name
		if name == "" {
			name = kb.id
		}
		display := esc(name)
		if b.NameDE != "" {
			display = fmt.Sprintf("%s (%s)", esc(name), esc(b.NameDE))
		}
		notes := ""
		if b.Notes != "" {
			notes = fmt.Sprintf(`<div class="notes">%s</div>`, esc(b.Notes))
		}
		fmt.Fprintf(&out, `            <div class="boss-card" data-type="boss">
                <h4>%s <span class="act-badge">Act %d</span></h4>
                <div class="location">%s</div>
                <div class="waypoint">WP: %s</div>
                %s
            </div>
`, display, b.Act, esc(b.Location), esc(b.Waypoint), notes)
	}

	out.WriteString(`            <div class="section" style="margin-top: 15px; padding: 0;">
                <h2 style="padding: 12px 12px 8px 12px;">Keywardens</h2>
            </div>
`)

	type keyedWarden struct {
		id string
		kw Keywarden
	}
	wardens := make([]keyedWarden, 0, len(static.Keywardens))
	for id, kw := range static.Keywardens {
		wardens = append(wardens, keyedWarden{id, kw})
	}
	sort.Slice(wardens, func(i, j int) bool {
		if wardens[i].kw.Act != wardens[j].kw.Act {
			return wardens[i].kw.Act < wardens[j].kw.Act
		}
		return wardens[i].id < wardens[j].id
	})

	for _, kw := range wardens {
		name := kw.kw.Name
		if name == "" {
			name = kw.id
		}
		fmt.Fprintf(&out, `            <div class="boss-card" data-type="keywarden">
                <h4>%s <span class="act-badge">Act %d</span></h4>
                <div class="location">%s</div>
                <div class="waypoint">Drops: %s</div>
            </div>
`, esc(name), kw.kw.Act, esc(kw.kw.Location), esc(kw.kw.Drops))
	}

	return out.String()
}
