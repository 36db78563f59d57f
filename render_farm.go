package main

import (
	"fmt"
	"strings"
)

const farmSpeedGuide = `        <div class="section">
            <h2>🚀 Farming Grundregel</h2>
            <div class="info-box">
                <strong>SCHNELL &gt; HOCH!</strong><br><br>
                ❌ GR70 in 6 Minuten = wenig Loot pro Stunde<br>
                ✅ GR55 in 2 Minuten = VIEL mehr Loot pro Stunde!<br><br>
                <strong>Ziel:</strong> Das höchste GR in 2-3 Minuten clearen
            </div>
            <p class="note">💡 Mehr Runs = Mehr Drops = Mehr Upgrades + Mehr Ramaladni Chancen!</p>
        </div>

        <div class="section">
            <h2>📊 Finde dein Speed-GR Level</h2>
            <div class="info-box">
                <strong>So findest du dein optimales Level:</strong><br><br>
                1. Starte bei GR55<br>
                2. War es unter 3 Min? → Das ist dein Farm-Level<br>
                3. Zu leicht? → GR60 probieren<br>
                4. Zu langsam? → GR50 probieren<br><br>
                <strong>Ziel-Zeit pro GR:</strong> 2-3 Minuten
            </div>
        </div>

        <div class="section">
            <h2>🎁 Ramaladni's Gift farmen</h2>
            <div class="info-box">
                <strong>Was ist das?</strong><br>
                Fügt einer Waffe einen GRATIS Socket hinzu!<br>
                Verbraucht keinen Reroll-Slot!<br><br>
                <strong>Wo droppt es?</strong><br>
                ✅ Greater Rifts (beste Methode!)<br>
                ✅ Nephalem Rifts<br>
                ✅ Überall als World Drop<br>
                ❌ NICHT gezielt farmbar<br><br>
                <strong>Wie bekomme ich es?</strong><br>
                → Mehr Legendaries sehen = Mehr Chancen<br>
                → Speed GRs/Rifts auf deinem schnellen Level<br>
                → Einfach spielen, es kommt irgendwann!
            </div>
            <p class="note">⚠️ Ramaladni's Gift ist selten! Nicht aufgeben, weiterspielen!</p>
        </div>

        <div class="section">
            <h2>📋 Aktivitäten - Wann was machen?</h2>
            <div class="info-box">
                <table style="width:100%; font-size:0.9em;">
                    <tr style="border-bottom:1px solid #444"><td><strong>Speed GRs</strong></td><td>Hauptaktivität! Loot, Gems leveln, Paragon, Keys</td></tr>
                    <tr style="border-bottom:1px solid #444"><td><strong>Nephalem Rifts</strong></td><td>GR Keys farmen, Death's Breath</td></tr>
                    <tr style="border-bottom:1px solid #444"><td><strong>Bounties</strong></td><td>Nur wenn du Reforge-Mats brauchst</td></tr>
                    <tr style="border-bottom:1px solid #444"><td><strong>Echoing Nightmare</strong></td><td>Augment-Gems (Whisper of Atonement)</td></tr>
                    <tr><td><strong>Uber Bosses</strong></td><td>Hellfire Amulet (optional)</td></tr>
                </table>
            </div>
        </div>

        <div class="section">
            <h2>🧱 Plateau durchbrechen</h2>
            <div class="info-box">
                <strong>Steckst du fest? Hier ist der Plan:</strong><br><br>
                1️⃣ <strong>Runter mit dem GR Level!</strong><br>
                &nbsp;&nbsp;&nbsp;→ Farm auf 2-3 Min Level, nicht am Limit<br><br>
                2️⃣ <strong>Legendary Gems leveln</strong><br>
                &nbsp;&nbsp;&nbsp;→ Bane of Trapped, Taeguk auf 80+<br>
                &nbsp;&nbsp;&nbsp;→ Oft mehr Damage als Gear-Upgrades!<br><br>
                3️⃣ <strong>Paragon sammeln</strong><br>
                &nbsp;&nbsp;&nbsp;→ Jeder Paragon = +5 Mainstat<br>
                &nbsp;&nbsp;&nbsp;→ Passiver, stetiger Power-Gewinn<br><br>
                4️⃣ <strong>Cube Reforge für Ancient</strong><br>
                &nbsp;&nbsp;&nbsp;→ Bounties für Mats<br>
                &nbsp;&nbsp;&nbsp;→ Schlechte Items reforgen<br>
                &nbsp;&nbsp;&nbsp;→ 10% Chance auf Ancient!<br><br>
                5️⃣ <strong>Augments starten</strong><br>
                &nbsp;&nbsp;&nbsp;→ Auch Level 80 Gems lohnen sich<br>
                &nbsp;&nbsp;&nbsp;→ +400 Dex × 13 Slots = +5200 Dex!
            </div>
        </div>

        <div class="section">
            <h2>⚡ Quick Farm Session (30 Min)</h2>
            <div class="info-box">
                <strong>Ziel:</strong> Maximaler Loot in kurzer Zeit<br><br>
                1. GR auf Speed-Level starten (2-3 Min)<br>
                2. 10-15 GRs durchrushen<br>
                3. Alle Legendaries mitnehmen<br>
                4. Am Ende: Gems upgraden<br>
                5. Schlechte Legs salvagen = Forgotten Souls<br><br>
                <strong>Ergebnis:</strong><br>
                • 50-100+ Legendaries gesehen<br>
                • Paragon XP<br>
                • Gem Level ups<br>
                • Chance auf Ramaladni's Gift<br>
                • Forgotten Souls für Reforge
            </div>
        </div>

        <div class="section">
            <h2>🎯 Was bringt am meisten Power?</h2>
            <div class="info-box">
                <strong>Ranking (von meiste zu wenigste Impact):</strong><br><br>
                1. <strong>Richtige Items + Set</strong> → Hast du ✅<br>
                2. <strong>Legendary Gems 80+</strong> → Riesiger Damage!<br>
                3. <strong>Ancient Weapons</strong> → 15-20% mehr Damage<br>
                4. <strong>Richtige Stats (CHC/CHD)</strong> → Enchanting<br>
                5. <strong>Augments</strong> → +5000 Mainstat möglich<br>
                6. <strong>Ancient Armor</strong> → Weniger Impact als Waffen<br>
                7. <strong>Paragon</strong> → Langsam aber stetig<br>
                8. <strong>Primal Items</strong> → Nice to have, nicht nötig
            </div>
        </div>
`

const farmKadalaGuide = `        <div class="section">
            <h2>🎰 Kadala Gambling Guide</h2>
            <div class="info-box">
                <strong>Kosten pro Slot:</strong><br>
                • <strong>25 Shards:</strong> Helm, Shoulders, Chest, Gloves, Belt, Pants, Boots, Bracers<br>
                • <strong>50 Shards:</strong> Rings<br>
                • <strong>75 Shards:</strong> 1H Weapons, Offhands, Shields<br>
                • <strong>100 Shards:</strong> Amulet, 2H Weapons
            </div>
        </div>

        <div class="section">
            <h2>✅ Bei Kadala gamblen (kleine Pools)</h2>
            <div class="info-box">
                <strong>Bracers - BESTE Kadala Slot!</strong><br>
                → Nur ~15 mögliche Legendaries<br>
                → Cesar's Memento relativ leicht zu bekommen<br>
                → Spirit Guards auch hier<br><br>

                <strong>Belt - Sehr guter Slot</strong><br>
                → Kleiner Pool ~20 Items<br>
                → Witching Hour, Kyoshiro's Soul, etc.<br><br>

                <strong>Helm - Okay</strong><br>
                → Sunwuko's Crown, Eye of Peshkov<br>
                → Mittlerer Pool<br><br>

                <strong>Gloves/Boots/Shoulders/Chest/Pants</strong><br>
                → Set-Teile hier gamblen<br>
                → Mittlerer Pool, okay Chancen
            </div>
        </div>

        <div class="section">
            <h2>❌ NICHT bei Kadala (große Pools / teuer)</h2>
            <div class="info-box">
                <strong>Waffen - NIEMALS bei Kadala!</strong><br>
                → Riesiger Loot Pool (100+ Legendaries!)<br>
                → 75 Shards pro Versuch<br>
                → Chance auf spezifische Waffe = winzig<br>
                → <strong>IMMER im Cube upgraden!</strong><br><br>

                <strong>Ringe - Nur wenn verzweifelt</strong><br>
                → 50 Shards, großer Pool<br>
                → Cube Upgrade ist besser<br><br>

                <strong>Amulet - Fast nie</strong><br>
                → 100 Shards pro Versuch!<br>
                → Riesiger Pool<br>
                → Cube Upgrade nutzen
            </div>
        </div>

        <div class="section">
            <h2>⚗️ Cube Upgrade statt Kadala</h2>
            <div class="info-box">
                <strong>Rezept:</strong> Rare (Yellow) + 25 DB + 50 jeder Mat<br>
                <strong>Ergebnis:</strong> Zufällige Legendary DERSELBEN Kategorie<br><br>

                <strong>Warum besser für Waffen?</strong><br>
                → 1H Fist Weapons = nur ~8 mögliche!<br>
                → Kadala 1H Weapons = 100+ möglich!<br>
                → Chance auf Won Khim Lau/Vengeful Wind viel höher!<br><br>

                <strong>So geht's:</strong><br>
                1. Rare Fist Weapon beim Blacksmith craften<br>
                2. Im Cube: "Upgrade Rare Item"<br>
                3. Wird zu random Legendary Fist Weapon<br>
                4. Wiederholen bis WKL/VW
            </div>
        </div>

        <div class="section">
            <h2>🎯 Sunwuko Monk - Wo was farmen?</h2>
            <div class="info-box">
                <strong>KADALA (gamblen):</strong><br>
                ✅ Bracers → Cesar's Memento, Spirit Guards<br>
                ✅ Belt → Kyoshiro's Soul<br>
                ✅ Helm → Sunwuko's Crown<br>
                ✅ Boots → Sunwuko's Shines, Crudest Boots<br>
                ✅ Shoulders → Sunwuko's Balance, Mantle of Channeling<br>
                ✅ Chest → Sunwuko's Soul<br>
                ✅ Gloves → Sunwuko's Paws<br>
                ✅ Pants → Sunwuko's Leggings<br><br>

                <strong>CUBE UPGRADE (nicht Kadala!):</strong><br>
                ⚗️ Fist Weapons → Won Khim Lau, Vengeful Wind<br>
                ⚗️ Rings → Ring of Royal Grandeur (oder A1 Bounty)<br>
                ⚗️ Amulet → Squirt's Necklace, Flavor of Time<br><br>

                <strong>BOUNTIES:</strong><br>
                🎁 Act 1 → Ring of Royal Grandeur<br>
                🎁 Act 2 → Gloves of Worship (Follower)<br>
                🎁 Act 3 → Avarice Band (Follower)<br><br>

                <strong>RANDOM DROP:</strong><br>
                💀 Balance Daibo → überall (World Drop)
            </div>
        </div>
`

const farmCubePortals = `        <div class="section">
            <h2>Cube Upgrade (Rare → Legendary)</h2>
            <div class="info-box">
                25 Death's Breath + 50 jeder Mat-Art<br>
                <strong>Tipp:</strong> Weapons hier upgraden, nicht bei Kadala!
            </div>
        </div>

        <div class="section">
            <h2>🎲 Cube Portal Items</h2>
            <p class="note">Diese Items im Cube transmuten (ohne weitere Zutaten):</p>
            <div class="item"><input type="checkbox" id="cp1"><label for="cp1"><strong>Puzzle Ring</strong> → The Vault<br><span class="diff">Gold, Gems, Boon of the Hoarder von Greed</span></label></div>
            <div class="item"><input type="checkbox" id="cp2"><label for="cp2"><strong>Ancient Puzzle Ring</strong> → Ancient Vault<br><span class="diff">Viel mehr Gold/Gems/Goblins!</span></label></div>
            <div class="item"><input type="checkbox" id="cp3"><label for="cp3"><strong>Bovine Bardiche</strong> → Not The Cow Level<br><span class="diff">Chests, Shrines, Pools (1x pro Game!)</span></label></div>
            <div class="item"><input type="checkbox" id="cp4"><label for="cp4"><strong>Petrified Scream</strong> → Echoing Nightmare<br><span class="diff">Whisper of Atonement für Augments</span></label></div>
        </div>

        <div class="section">
            <h2>🧙 Follower Crafting (Enchantress)</h2>
            <p class="note">⚠️ Auf INT-Char craften (Wiz/WD/Necro) für richtigen Mainstat!</p>
            <div class="item"><input type="checkbox" id="fc1"><label for="fc1"><strong>Cain's Destiny</strong> (2pc) - Helm + Boots<br><span class="diff">+25% GR Key Drops (Emanate)</span></label></div>
            <div class="item"><input type="checkbox" id="fc2"><label for="fc2"><strong>Sage's Journey</strong> (2pc) - Helm + Boots oder Gloves<br><span class="diff">+1 Death's Breath (Emanate)</span></label></div>
            <div class="info-box">
                <strong>Weitere Emanate Items:</strong><br>
                • Nemesis Bracers - Elite bei Shrine<br>
                • Gloves of Worship - 10min Shrine (A2 Bounty)<br>
                • Flavor of Time - 2x Pylon Dauer<br>
                • Ring of Royal Grandeur - Set -1 (A1 Bounty)<br>
                • Oculus Ring - +85% Damage Circle<br>
                • Avarice Band - 30yd Pickup (A3 Bounty)
            </div>
            <p class="note">Templar → STR-Char (Barb/Sader), Scoundrel → DEX-Char (Monk/DH)</p>
        </div>
`

// tormentOrder fixes the difficulty table rows; keys missing from the
// document are skipped.
var tormentOrder = []string{
	"torment_1", "torment_2", "torment_3", "torment_4", "torment_5",
	"torment_6", "torment_7", "torment_8", "torment_9", "torment_10",
	"torment_11", "torment_12", "torment_13", "torment_14", "torment_15",
	"torment_16",
}

// renderFarm builds the Farm tab: speed-farming guide, torment drop rate
// table, Kadala guide, high-priority bounty caches and the cube portal and
// follower checklists.
func renderFarm(static *StaticData) string {
	var out strings.Builder
	out.WriteString(farmSpeedGuide)
	out.WriteString("\n")

	out.WriteString("        <div class=\"section\">\n            <h2>Torment Drop Rates</h2>\n            <table class=\"skill-table\">\n                <tr><th>Stufe</th><th>Leg%</th><th>Rift%</th><th>DB%</th><th>GR</th></tr>\n")
	for _, key := range tormentOrder {
		d, ok := static.Difficulties[key]
		if !ok {
			continue
		}
		name := d.Name
		if name == "" {
			name = key
		}
		fmt.Fprintf(&out, "<tr><td>%s</td><td>+%d%%</td><td>+%d%%</td><td>%s%%</td><td>GR%s</td></tr>\n",
			esc(name), d.LegendaryBonus, d.LegendaryBonusRift, esc(d.DeathsBreathChance), esc(d.GREquivalent))
	}
	out.WriteString("            </table>\n            <p class=\"note\">Leg% = Legendary Bonus (Open World), Rift% = in Nephalem Rifts, DB% = Death's Breath Chance</p>\n        </div>\n\n")

	out.WriteString(farmKadalaGuide)
	out.WriteString("\n")

	out.WriteString("        <div class=\"section\">\n            <h2>Bounty Cache Items</h2>\n")
	for _, actKey := range []string{"act_1", "act_2", "act_3"} {
		actNum := strings.TrimPrefix(actKey, "act_")
		for _, item := range static.BountyCaches[actKey] {
			if item.Priority != "high" {
				continue
			}
			id := "bounty_" + actKey
			fmt.Fprintf(&out, "            <div class=\"item\"><input type=\"checkbox\" id=\"%s\"><label for=\"%s\">Act %s → %s</label></div>\n",
				id, id, actNum, esc(item.Name))
		}
	}
	out.WriteString("        </div>\n\n")

	out.WriteString(farmCubePortals)
	return out.String()
}
