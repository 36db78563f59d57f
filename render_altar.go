package main

import (
	"fmt"
	"strings"
)

// renderAltar builds the Altar tab: the 26 seals as a checklist in unlock
// order plus the potion power reference.
func renderAltar(static *StaticData) string {
	var out strings.Builder
	out.WriteString(`        <div class="section">
            <h2>Altar of Rites</h2>
            <p class="note">📍 Act I, New Tristram - links vom Waypoint</p>
            <div class="info-box">
                26 Seals + 3 Potion Powers | Alle Powers permanent für Season
            </div>
        </div>

        <div class="section">
            <h2>Alle 26 Seals (mit Kosten)</h2>
`)
	for _, seal := range static.AltarOfRites.UnlockOrder {
		warning := ""
		if seal.Warning != "" {
			warning = fmt.Sprintf(` <span style="color:#e94560">⚠️ %s</span>`, esc(seal.Warning))
		}
		fmt.Fprintf(&out, `            <div class="item">
                <input type="checkbox" id="altar_%d">
                <label for="altar_%d">
                    <strong style="color:#f4a460">%d. %s</strong><br>
                    <span style="font-size:0.85em">%s</span><br>
                    <span class="diff">Kosten: %s</span>%s
                </label>
            </div>
`, seal.Seal, seal.Seal, seal.Seal, esc(seal.Name), esc(seal.Effect), esc(seal.Cost), warning)
	}
	out.WriteString(`        </div>

        <div class="section">
            <h2>🧪 Potion Powers</h2>
            <div class="info-box">
                <strong>AA (55 Ashes):</strong> Runic circles - Dmg/CDR/RCR<br>
                <strong>AB (110 Ashes):</strong> Enemies deal 25% less damage<br>
                <strong>AC (165 Ashes):</strong> Random shrine effect<br>
                <strong>AD (Auto nach 26 Seals):</strong> Double Primal drops
            </div>
            <p class="note">Primordial Ashes = Primal Items salvagen</p>
        </div>
`)
	return out.String()
}
