package main

import (
	"fmt"
	"strings"
)

// Static guide sections of the Gear tab, between the slot list and the
// interactive checkers. Fixed prose, no document data.
const gearEnchantGuide = `        <div class="section">
            <h2>🔧 Gear verbessern (Paragon 300+)</h2>
            <p class="note">Priorität: 1. Richtige Items → 2. Richtige Stats → 3. Ancient → 4. Augment</p>
        </div>

        <div class="section">
            <h2>1. Enchanting (Mystic)</h2>
            <div class="info-box">
                <strong>Was ist das?</strong><br>
                Bei der Mystic kannst du EINEN Stat auf einem Item neu würfeln.<br>
                Der alte Stat wird durch einen zufälligen neuen ersetzt.
            </div>
        </div>

        <div class="section">
            <h2>📋 Enchanting Schritt-für-Schritt</h2>
            <div class="info-box">
                <strong>Schritt 1:</strong> Zur Mystic gehen (in jeder Stadt)<br><br>
                <strong>Schritt 2:</strong> "Enchant" wählen<br><br>
                <strong>Schritt 3:</strong> Item reinlegen<br><br>
                <strong>Schritt 4:</strong> Stat zum Reroll auswählen<br>
                → ⚠️ Dieser Stat ist PERMANENT markiert!<br>
                → Du kannst später NUR diesen Stat rerolled<br><br>
                <strong>Schritt 5:</strong> Aus 2 Optionen wählen<br>
                → Oder "Keep Original" behalten<br><br>
                <strong>Schritt 6:</strong> Wiederholen bis perfekter Roll
            </div>
            <p class="note">⚠️ WICHTIG: Einmal gewählt, kannst du nur noch DIESEN Stat ändern!</p>
        </div>

        <div class="section">
            <h2>📖 Stat-Namen im Spiel (Mystic)</h2>
            <div class="info-box">
                <strong>Abkürzungen → Echter Name im Spiel:</strong><br><br>
                <table style="width:100%; font-size:0.9em;">
                    <tr><td><strong>All Res</strong></td><td>→ "Resistance to All Elements"</td></tr>
                    <tr><td><strong>CHC</strong></td><td>→ "Critical Hit Chance"</td></tr>
                    <tr><td><strong>CHD</strong></td><td>→ "Critical Hit Damage"</td></tr>
                    <tr><td><strong>CDR</strong></td><td>→ "Cooldown Reduction"</td></tr>
                    <tr><td><strong>RCR</strong></td><td>→ "Resource Cost Reduction"</td></tr>
                    <tr><td><strong>AD</strong></td><td>→ "Area Damage"</td></tr>
                    <tr><td><strong>IAS / AS</strong></td><td>→ "Attack Speed" oder "Attacks per Second"</td></tr>
                    <tr><td><strong>Vit</strong></td><td>→ "Vitality"</td></tr>
                    <tr><td><strong>LpH</strong></td><td>→ "Life per Hit"</td></tr>
                    <tr><td><strong>LpS</strong></td><td>→ "Life Regeneration" oder "Regenerates X Life per Second"</td></tr>
                    <tr><td><strong>Elite DR</strong></td><td>→ "Reduces damage from elites by X%"</td></tr>
                    <tr><td><strong>Cold%</strong></td><td>→ "Cold skills deal X% more damage"</td></tr>
                    <tr><td><strong>TR%</strong></td><td>→ "Tempest Rush deals X% more damage"</td></tr>
                </table>
            </div>
            <p class="note">💡 Bei der Mystic: Scroll durch die Liste um den Stat zu finden!</p>
        </div>

        <div class="section">
            <h2>🛡️ Defensive Stats - Was behalten?</h2>
            <div class="info-box">
                <strong>Resistenzen:</strong><br>
                ✅ <strong>"Resistance to All Elements"</strong> = SEHR GUT<br>
                &nbsp;&nbsp;&nbsp;→ Schützt gegen ALLE Damage-Typen<br><br>
                ❌ <strong>"Arcane/Poison/Fire/etc. Resistance"</strong> = SCHLECHT<br>
                &nbsp;&nbsp;&nbsp;→ Schützt nur gegen 1 von 6 Elementen<br>
                &nbsp;&nbsp;&nbsp;→ IMMER zu "Resistance to All Elements" rerolled!
            </div>
        </div>

        <div class="section">
            <h2>❤️ Life Stats - Priorität</h2>
            <div class="info-box">
                <strong>Von BEST zu WORST:</strong><br><br>
                1️⃣ <strong>Vitality</strong> = BEHALTEN ✅<br>
                &nbsp;&nbsp;&nbsp;→ Mehr HP = mehr EHP<br>
                &nbsp;&nbsp;&nbsp;→ Skaliert mit Life% Bonus<br>
                &nbsp;&nbsp;&nbsp;→ Sehr wertvoll!<br><br>
                2️⃣ <strong>Life per Hit</strong> = SITUATIV 🔄<br>
                &nbsp;&nbsp;&nbsp;→ Heilt X HP pro Hit den du machst<br>
                &nbsp;&nbsp;&nbsp;→ Gut wenn du viele Hits machst<br>
                &nbsp;&nbsp;&nbsp;→ Für TR Monk: okay auf Bracers, nicht kritisch<br><br>
                3️⃣ <strong>Life Regeneration</strong> = IMMER REROLLED ❌<br>
                &nbsp;&nbsp;&nbsp;→ Heilt ~10.000 HP pro Sekunde<br>
                &nbsp;&nbsp;&nbsp;→ Dein HP: 500.000+<br>
                &nbsp;&nbsp;&nbsp;→ Ein Hit: 100.000+ Damage<br>
                &nbsp;&nbsp;&nbsp;→ <strong>Komplett nutzlos in hohen GRs!</strong>
            </div>
        </div>

        <div class="section">
            <h2>🔄 Beispiele: Was rerolled wenn beide da sind?</h2>
            <div class="info-box">
                <strong>Hast: Dex, Vit, Life Regen, LpH</strong><br>
                → Life Regen rerolled (schlechtester Stat)<br><br>

                <strong>Hast: Dex, Vit, Life Regen, Armor</strong><br>
                → Life Regen rerolled<br><br>

                <strong>Hast: Dex, LpH, Life Regen, Armor</strong><br>
                → Life Regen zu Vit rerolled (Vit > LpH)<br><br>

                <strong>Hast: Dex, Vit, Poison Res, Armor</strong><br>
                → Poison Res zu "Resistance to All Elements" rerolled<br><br>

                <strong>Hast: Dex, Vit, All Res, Life Regen</strong><br>
                → Life Regen zu Armor oder Life% rerolled
            </div>
            <p class="note">💡 Merke: Life Regen ist IMMER der erste Kandidat zum Rerolled!</p>
        </div>

        <div class="section">
            <h2>🎯 Was sollte ich rerolled?</h2>
            <div class="info-box">
                <strong>Jewelry (Ring/Amulet) - Socket fehlt:</strong><br>
                → Immer zuerst Socket rerolled!<br>
                → Ohne Socket kein Legendary Gem!<br><br>
                <strong>Waffen - Socket fehlt:</strong><br>
                → NICHT rerolled! Ramaladni's Gift nutzen!<br>
                → Gift gibt gratis Socket<br><br>
                <strong>Fehlender Offensive Stat:</strong><br>
                → CHC, CHD, CDR, Elemental% rerolled<br><br>
                <strong>Falscher Mainstat:</strong><br>
                → Int auf Monk Item → zu Dex rerolled<br><br>
                <strong>Unnützer Stat:</strong><br>
                → Life Regen, Thorns, Gold Find → weg damit
            </div>
        </div>
`

const gearReforgeGuide = `        <div class="section">
            <h2>2. Reforging (Cube)</h2>
            <div class="info-box">
                <strong>Was ist das?</strong><br>
                Du würfelst ein Legendary Item KOMPLETT neu.<br>
                Alle Stats werden zufällig neu generiert.<br>
                Das Item kann dabei Ancient oder sogar Primal werden!
            </div>
        </div>

        <div class="section">
            <h2>📋 Reforging Schritt-für-Schritt</h2>
            <div class="info-box">
                <strong>Schritt 1:</strong> Bounties farmen (alle 5 Acts)<br>
                → Brauchst: 5x JEDES Bounty Material<br><br>
                <strong>Schritt 2:</strong> Forgotten Souls farmen<br>
                → Brauchst: 50 Forgotten Souls<br>
                → (Legendaries salvagen)<br><br>
                <strong>Schritt 3:</strong> Kanai's Cube → "Law of Kulle"<br><br>
                <strong>Schritt 4:</strong> Item + Mats reinlegen<br><br>
                <strong>Schritt 5:</strong> Transmute<br>
                → 10% Chance auf Ancient<br>
                → 0.25% Chance auf Primal
            </div>
        </div>

        <div class="section">
            <h2>🎯 Wann Reforgen?</h2>
            <div class="info-box">
                <strong>REFORGE wenn:</strong><br>
                • Du ein wichtiges Item hast aber es ist nicht Ancient<br>
                • Das Item ist Ancient aber Stats sind Müll<br>
                • Du ein Primal willst (viel Glück!)<br><br>
                <strong>NICHT REFORGE wenn:</strong><br>
                • Das Item hat bereits gute Stats<br>
                • Du wenig Bounty Mats hast<br>
                • Das Item ist leicht zu farmen (→ lieber neu droppen)
            </div>
        </div>
`

const gearAugmentGuide = `        <div class="section">
            <h2>3. Augmenting (Caldesann's Despair)</h2>
            <div class="info-box">
                <strong>Was ist das?</strong><br>
                Du "opferst" einen hochgelevelten Legendary Gem um einem Ancient Item<br>
                permanent extra Mainstat zu geben. Der Gem wird dabei zerstört!
            </div>
        </div>

        <div class="section">
            <h2>📋 Augment Schritt-für-Schritt</h2>
            <div class="info-box">
                <strong>Schritt 1:</strong> Legendary Gem hochleveln<br>
                → GRs farmen, nach jedem GR Gem upgraden<br>
                → Ziel: mindestens Rank 50-100<br><br>
                <strong>Schritt 2:</strong> Ancient Item besorgen<br>
                → Nur ANCIENT (orange Rand) oder PRIMAL (rot) funktioniert!<br>
                → Normale Legendaries können NICHT augmentiert werden<br><br>
                <strong>Schritt 3:</strong> Kanai's Cube öffnen<br>
                → Letztes Rezept: "Caldesann's Despair"<br><br>
                <strong>Schritt 4:</strong> Items in den Cube legen<br>
                → Das Ancient Item<br>
                → Den Legendary Gem (wird zerstört!)<br>
                → 3x Flawless Royal Gem (passend zum Mainstat)<br><br>
                <strong>Schritt 5:</strong> Transmute drücken<br>
                → Item bekommt permanent +5 Mainstat pro Gem Level
            </div>
        </div>

        <div class="section">
            <h2>💎 Welchen Gem für welche Klasse?</h2>
            <div class="info-box">
                <strong style="color:#4ade80">Emerald (Grün)</strong> → Dexterity → Monk, Demon Hunter<br>
                <strong style="color:#ef4444">Ruby (Rot)</strong> → Strength → Barbarian, Crusader<br>
                <strong style="color:#facc15">Topaz (Gelb)</strong> → Intelligence → Wizard, WD, Necro<br>
                <strong style="color:#a78bfa">Amethyst (Lila)</strong> → Vitality → Alle (für Toughness)
            </div>
        </div>

        <div class="section">
            <h2>🔢 Beispielrechnung (Monk)</h2>
            <div class="info-box">
                <strong>Gem Rank 100 + Ancient Helm:</strong><br>
                → 100 × 5 = <strong>+500 Dexterity</strong> permanent auf dem Helm!<br><br>
                <strong>Alle 13 Slots mit Rank 100:</strong><br>
                → 13 × 500 = <strong>+6500 Dexterity</strong> extra!<br><br>
                <strong>Das entspricht ~650 Paragon Levels!</strong>
            </div>
            <p class="note">💡 Deshalb sind Augments so wichtig fürs Endgame</p>
        </div>

        <div class="section">
            <h2>⚠️ Augment Regeln</h2>
            <div class="info-box">
                • <strong>Nur Ancient/Primal</strong> - normale Legendaries gehen nicht!<br>
                • <strong>Gem wird zerstört</strong> - weg ist weg!<br>
                • <strong>Überschreibbar</strong> - neuer Augment ersetzt alten<br>
                • <strong>Minimum Gem Level:</strong><br>
                &nbsp;&nbsp;→ Waffen: Rank 30<br>
                &nbsp;&nbsp;→ Jewelry: Rank 40<br>
                &nbsp;&nbsp;→ Armor: Rank 50
            </div>
            <p class="note">Tipp: Erst augmenten wenn Item wirklich gut ist! Sonst Gem verschwendet.</p>
        </div>
`

const gearPrimalGuide = `        <div class="section">
            <h2>4. Ancient vs Primal</h2>
            <div class="info-box">
                <strong style="color:#f4a460">Ancient (Orange Rand):</strong><br>
                • ~10% höhere Stat Rolls als normal<br>
                • 10% Drop-Chance bei jeder Legendary<br>
                • Kann augmentiert werden<br><br>
                <strong style="color:#ef4444">Primal (Roter Rand + Pentagram):</strong><br>
                • PERFEKTE max Rolls auf allen Stats<br>
                • Nur ~0.25% Chance (1 von 400 Legendaries!)<br>
                • Kann augmentiert werden
            </div>
            <p class="note">⚠️ Wichtig: Schlechtes Ancient mit falschen Stats &lt; Gutes Normal mit richtigen Stats!</p>
        </div>

        <div class="section">
            <h2>🔓 Primals freischalten</h2>
            <div class="info-box">
                <strong>Requirement:</strong> Solo GR70 abschließen!<br><br>
                • Muss SOLO sein (keine Gruppe)<br>
                • Einmal pro Season/Modus nötig<br>
                • Danach droppen Primals überall<br>
                • Erster Primal ist GARANTIERT nach GR70!
            </div>
            <div class="item"><input type="checkbox" id="gr70"><label for="gr70"><strong>Solo GR70 geschafft</strong> → Primals freigeschaltet!</label></div>
        </div>

        <div class="section">
            <h2>🎯 Primals "farmen"</h2>
            <div class="info-box">
                <strong>Schlechte Nachricht:</strong> Keine gezielte Farm möglich!<br>
                <strong>Gute Nachricht:</strong> Mehr Legendaries = Mehr Chancen<br><br>
                <strong>Beste Methoden:</strong><br>
                1. <strong>Speed GRs (85-95)</strong> in unter 5 Min<br>
                &nbsp;&nbsp;&nbsp;→ Meiste Legendaries pro Stunde<br><br>
                2. <strong>Kadala Gambling</strong><br>
                &nbsp;&nbsp;&nbsp;→ Kann Primal droppen!<br><br>
                3. <strong>Cube Upgrade Rare</strong><br>
                &nbsp;&nbsp;&nbsp;→ Kann Primal werden!<br><br>
                4. <strong>Cube Reforge</strong><br>
                &nbsp;&nbsp;&nbsp;→ 0.25% Chance auf Primal
            </div>
            <p class="note">📊 Statistik: ~2 Stunden Speed GR60 = 1 Primal (im Durchschnitt)</p>
        </div>
`

const gearAshesGuide = `        <div class="section">
            <h2>♻️ Primal salvagen = Primordial Ashes</h2>
            <div class="info-box">
                <strong>Primal Item salvagen:</strong> Gibt 55 Primordial Ashes<br>
                <strong>Nutzen:</strong> Altar Potion Powers freischalten<br><br>
                → Salvage unnütze Primals (falsche Klasse/Build)<br>
                → Behalte nur Primals die du wirklich nutzt
            </div>
        </div>
`

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

var augmentSlots = []string{
	"Weapon", "Helm", "Chest", "Pants", "Boots", "Gloves", "Shoulders",
	"Bracers", "Belt", "Amulet", "Ring 1", "Ring 2", "Offhand",
}

var ancientSlots = []string{
	"Mainhand", "Offhand", "Helm", "Chest", "Shoulders", "Gloves",
	"Bracers", "Belt", "Pants", "Boots", "Amulet", "Ring 1", "Ring 2",
}

func renderAugmentTracker(out *strings.Builder) {
	out.WriteString("        <div class=\"section\">\n            <h2>✅ Augment Tracker</h2>\n")
	for i, slot := range augmentSlots {
		id := fmt.Sprintf("aug%d", i+1)
		label := slot + " augmentiert"
		if i == 0 {
			label += " (Rank 100+ = +500 Dex)"
		}
		fmt.Fprintf(out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\">%s</label></div>\n", id, id, label)
	}
	out.WriteString("            <p class=\"note\">💡 13 Slots × Rank 100 Gem = +6500 Mainstat!</p>\n        </div>\n")
}

func renderAncientChecklist(out *strings.Builder) {
	out.WriteString("        <div class=\"section\">\n            <h2>✅ Ancient Checklist</h2>\n")
	for i, slot := range ancientSlots {
		id := fmt.Sprintf("anc%d", i+1)
		fmt.Fprintf(out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\">%s Ancient</label></div>\n", id, id, slot)
	}
	out.WriteString("        </div>\n")
}

// renderGearChecker emits one interactive checker per advisory slot. The
// checkboxes carry data-slot/data-stat attributes; the client-side
// interpreter reads them and updates the advice line below.
func renderGearChecker(out *strings.Builder, build *BuildDoc) {
	out.WriteString(`        <div class="section">
            <h2>🔍 Gear Checker - Was soll ich rerolled?</h2>
            <p class="note">Wähle welche Stats dein Item HAT, dann siehst du was du rerolled sollst!</p>
        </div>

`)
	for _, slot := range GearSlotOrder {
		rules, ok := SlotRulesFor(slot)
		if !ok {
			continue
		}
		title := rules.Title
		if worn, ok := build.Gear.Worn[rules.WornKey]; ok && worn.Item != "" {
			title = fmt.Sprintf("%s (%s)", rules.Title, esc(worn.Item))
		}
		fmt.Fprintf(out, "        <div class=\"section gear-checker\">\n            <h2>%s</h2>\n            <div class=\"stat-checks\">\n", title)
		for _, check := range rules.Checks {
			fmt.Fprintf(out, "                <label><input type=\"checkbox\" data-slot=\"%s\" data-stat=\"%s\"> %s</label>\n",
				rules.Slot, check.Flag, check.Label)
		}
		fmt.Fprintf(out, "            </div>\n            <div class=\"reroll-advice\" id=\"advice-%s\">Wähle deine Stats...</div>\n        </div>\n\n", rules.Slot)
	}
}

// renderGear builds the Gear tab: worn slot list, improvement guide,
// augment and ancient trackers and the per-slot reroll checkers.
func renderGear(build *BuildDoc) string {
	var out strings.Builder

	out.WriteString("        <div class=\"section\">\n            <h2>Gear Slots</h2>\n")
	for _, slot := range GearSlotOrder {
		rules, ok := SlotRulesFor(slot)
		if !ok {
			continue
		}
		worn, ok := build.Gear.Worn[rules.WornKey]
		if !ok {
			continue
		}
		stats := worn.StatsPriority
		if len(stats) > 3 {
			stats = stats[:3]
		}
		displaySlot := titleWords(strings.ReplaceAll(rules.WornKey, "_", " "))
		item := worn.Item
		if item == "" {
			item = "?"
		}
		fmt.Fprintf(&out, `            <div class="gear-slot">
                <span class="slot">%s</span>
                <span class="item-name">%s</span>
                <span class="stats">%s</span>
            </div>
`, displaySlot, esc(item), esc(strings.Join(stats, ", ")))
	}
	out.WriteString("        </div>\n\n")

	out.WriteString(gearEnchantGuide)
	out.WriteString("\n")
	out.WriteString(gearReforgeGuide)
	out.WriteString("\n")
	out.WriteString(gearAugmentGuide)
	renderAugmentTracker(&out)
	out.WriteString("\n")
	out.WriteString(gearPrimalGuide)
	out.WriteString("\n")
	renderGearChecker(&out, build)
	out.WriteString(gearAshesGuide)
	out.WriteString("\n")
	renderAncientChecklist(&out)

	return out.String()
}
