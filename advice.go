package main

// Gear advisory engine. Each equipment slot carries an ordered rule table;
// EvaluateSlot runs a generic first-match interpreter over it. The same
// tables are serialized to JSON and embedded in the page so the client-side
// checker interprets identical data (see script.go).

// Tier is the qualitative class of an advice result. The zero value means
// "action required"; the string doubles as the CSS class on the advice box.
type Tier string

const (
	TierNone    Tier = ""
	TierGood    Tier = "good"
	TierPerfect Tier = "perfect"
)

// StatFlags maps a stat-category key to its presence on the item. Absent
// keys read as false.
type StatFlags map[string]bool

// AdviceResult is the single recommendation produced per evaluation.
type AdviceResult struct {
	Text string `json:"text"`
	Tier Tier   `json:"tier"`
}

// AdviceRule is one prioritized condition. All populated predicate fields
// must hold for the rule to match; an empty predicate always matches and
// serves as the fallback. Swap lists low-value stats in tie-break order: the
// first one present has its label substituted for "{stat}" in Text.
type AdviceRule struct {
	Missing   []string   `json:"missing,omitempty"`
	Has       []string   `json:"has,omitempty"`
	HasAny    []string   `json:"hasAny,omitempty"`
	HasGroups [][]string `json:"hasGroups,omitempty"`
	Swap      []string   `json:"swap,omitempty"`
	Text      string     `json:"text"`
	Tier      Tier       `json:"tier"`
}

// StatCheck is one checkbox offered by the gear checker for a slot.
type StatCheck struct {
	Flag  string `json:"flag"`
	Label string `json:"label"`
}

// SlotRules is the full advisory definition for one equipment slot.
type SlotRules struct {
	Slot     string       `json:"slot"`
	Title    string       `json:"title"`
	WornKey  string       `json:"-"` // key into gear.worn for the item name
	Priority []string     `json:"priority"`
	Checks   []StatCheck  `json:"checks"`
	Rules    []AdviceRule `json:"rules"`
}

// swapLabels are the display names substituted into replacement rules.
var swapLabels = map[string]string{
	"vit":    "Vit",
	"lph":    "LpH",
	"life":   "Life%",
	"allres": "All Res",
	"ms":     "Movement Speed",
	"armor":  "Armor",
}

func (r AdviceRule) matches(has StatFlags) bool {
	for _, f := range r.Missing {
		if has[f] {
			return false
		}
	}
	for _, f := range r.Has {
		if !has[f] {
			return false
		}
	}
	if len(r.HasAny) > 0 {
		any := false
		for _, f := range r.HasAny {
			if has[f] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	if len(r.HasGroups) > 0 {
		any := false
		for _, group := range r.HasGroups {
			full := true
			for _, f := range group {
				if !has[f] {
					full = false
					break
				}
			}
			if full {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	return true
}

func (r AdviceRule) render(has StatFlags) string {
	for _, f := range r.Swap {
		if has[f] {
			label := swapLabels[f]
			if label == "" {
				label = f
			}
			return replacePlaceholder(r.Text, label)
		}
	}
	return r.Text
}

func replacePlaceholder(text, label string) string {
	out := make([]byte, 0, len(text)+len(label))
	for i := 0; i < len(text); {
		if i+6 <= len(text) && text[i:i+6] == "{stat}" {
			out = append(out, label...)
			i += 6
			continue
		}
		out = append(out, text[i])
		i++
	}
	return string(out)
}

// EvaluateSlot returns the first matching rule's advice for the slot. Every
// table ends in a catch-all rule, so exactly one result always comes back;
// an unknown slot yields the zero AdviceResult and false.
func EvaluateSlot(slot string, has StatFlags) (AdviceResult, bool) {
	rules, ok := slotRulesByKey[slot]
	if !ok {
		return AdviceResult{}, false
	}
	for _, rule := range rules.Rules {
		if rule.matches(has) {
			return AdviceResult{Text: rule.render(has), Tier: rule.Tier}, true
		}
	}
	// Unreachable as long as every table keeps its fallback rule.
	return AdviceResult{}, false
}

// GearSlotOrder is the render and evaluation order of the 13 slots.
var GearSlotOrder = []string{
	"mh", "oh", "helm", "shoulders", "chest", "gloves", "bracers",
	"belt", "pants", "boots", "ring1", "ring2", "amulet",
}

var slotRulesByKey = buildSlotIndex()

func buildSlotIndex() map[string]SlotRules {
	idx := make(map[string]SlotRules, len(slotRuleTables))
	for _, sr := range slotRuleTables {
		idx[sr.Slot] = sr
	}
	return idx
}

// SlotRulesFor exposes a slot's table to the renderers.
func SlotRulesFor(slot string) (SlotRules, bool) {
	sr, ok := slotRulesByKey[slot]
	return sr, ok
}

// slotRuleTables is the advisory rule data for all 13 slots. Rule order is
// the evaluation priority; the first match wins.
var slotRuleTables = []SlotRules{
	{
		Slot: "mh", Title: "⚔️ Mainhand", WornKey: "main_hand",
		Priority: []string{"socket", "dex", "dmgpct", "ad"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"dex", "Dex"}, {"dmgpct", "+% Damage"},
			{"ad", "Area Damage"}, {"vit", "Vit"}, {"lph", "Life per Hit"},
			{"cdr", "CDR"}, {"rcr", "RCR"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "🎁 Ramaladnis Gift für Socket nutzen! Dann schlechtesten Stat rerolled."},
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt → anderer Stat zu DEX rerolled"},
			{Missing: []string{"dmgpct"}, HasAny: []string{"vit", "lph"}, Swap: []string{"vit", "lph"}, Text: "🔄 {stat} → +10% Damage rerolled"},
			{Missing: []string{"dmgpct", "ad"}, Text: "🔄 Schlechtesten Stat → +10% Damage rerolled"},
			{HasAny: []string{"vit", "lph"}, Swap: []string{"vit", "lph"}, Text: "🔄 {stat} → Area Damage rerolled", Tier: TierGood},
			{Has: []string{"socket", "dex", "dmgpct", "ad"}, Text: "✅ PERFEKT! Nichts rerolled nötig!", Tier: TierPerfect},
			{Text: "👍 Gute Stats! Optional: +AD oder CDR", Tier: TierGood},
		},
	},
	{
		Slot: "oh", Title: "⚔️ Offhand", WornKey: "off_hand",
		Priority: []string{"socket", "dex", "dmgpct", "ad"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"dex", "Dex"}, {"dmgpct", "+% Damage"},
			{"ad", "Area Damage"}, {"vit", "Vit"}, {"lph", "Life per Hit"},
			{"cdr", "CDR"}, {"rcr", "RCR"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "🎁 Ramaladnis Gift für Socket nutzen!"},
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt → rerolled zu DEX"},
			{Missing: []string{"dmgpct"}, HasAny: []string{"vit", "lph"}, Swap: []string{"vit", "lph"}, Text: "🔄 {stat} → +10% Damage"},
			{HasAny: []string{"vit", "lph"}, Swap: []string{"vit", "lph"}, Text: "🔄 {stat} → Area Damage", Tier: TierGood},
			{Has: []string{"socket", "dex", "dmgpct"}, Text: "✅ Sehr gut! Optional: AD", Tier: TierPerfect},
			{Text: "👍 Okay Stats", Tier: TierGood},
		},
	},
	{
		Slot: "helm", Title: "👑 Helm", WornKey: "helm",
		Priority: []string{"socket", "dex", "chc", "skill"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"dex", "Dex"}, {"chc", "CHC 6%"},
			{"skill", "TR% oder Skill%"}, {"vit", "Vit"}, {"allres", "All Res"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "❌ Socket fehlt! → Reroll zu Socket (für Topaz = RCR!)"},
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt → rerolled zu DEX"},
			{Missing: []string{"chc"}, Has: []string{"allres"}, Text: "🔄 All Res → CHC 6% rerolled"},
			{Missing: []string{"chc"}, Has: []string{"vit"}, Text: "🔄 Vit → CHC 6% rerolled (Defense woanders holen)"},
			{Missing: []string{"chc"}, Text: "🔄 Schlechtesten Stat → CHC 6%"},
			{Has: []string{"socket", "dex", "chc", "skill"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Has: []string{"socket", "dex", "chc"}, Text: "👍 Sehr gut! TR% wäre Bonus", Tier: TierGood},
			{Text: "👍 Okay", Tier: TierGood},
		},
	},
	{
		Slot: "shoulders", Title: "💪 Shoulders", WornKey: "shoulders",
		Priority: []string{"dex", "rcr", "cdr", "ad"},
		Checks: []StatCheck{
			{"dex", "Dex"}, {"rcr", "RCR 8%"}, {"cdr", "CDR 8%"},
			{"ad", "Area Damage"}, {"vit", "Vit"}, {"allres", "All Res"}, {"life", "Life%"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt → rerolled"},
			{Missing: []string{"rcr"}, Has: []string{"life"}, Text: "🔄 Life% → RCR 8% (Spirit Management!)"},
			{Missing: []string{"rcr", "cdr"}, Text: "🔄 Defensiven Stat → RCR 8% oder CDR 8%"},
			{Has: []string{"dex", "rcr", "cdr", "ad"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Has: []string{"dex"}, HasAny: []string{"rcr", "cdr"}, Text: "👍 Gut! Vit/AllRes okay für Defense", Tier: TierGood},
			{Text: "👍 Okay", Tier: TierGood},
		},
	},
	{
		Slot: "chest", Title: "🦺 Chest", WornKey: "chest",
		Priority: []string{"sockets", "dex", "vit", "allres"},
		Checks: []StatCheck{
			{"sockets", "3 Sockets"}, {"dex", "Dex"}, {"vit", "Vit"},
			{"allres", "All Res"}, {"elite", "Elite DR%"}, {"armor", "Armor"}, {"life", "Life%"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"sockets"}, Text: "❌ 3 Sockets fehlen! → Reroll!"},
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt → rerolled"},
			{Missing: []string{"vit"}, Text: "🔄 Schlechtesten Stat → Vit"},
			{Missing: []string{"allres", "elite"}, Has: []string{"life"}, Text: "🔄 Life% → All Res oder Elite DR%"},
			{Has: []string{"sockets", "dex", "vit"}, HasAny: []string{"allres", "elite"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Text: "👍 Gut! Chest ist defensiv", Tier: TierGood},
		},
	},
	{
		Slot: "gloves", Title: "🧤 Gloves", WornKey: "gloves",
		Priority: []string{"dex", "chc", "chd", "rcr"},
		Checks: []StatCheck{
			{"dex", "Dex"}, {"chc", "CHC 10%"}, {"chd", "CHD 50%"},
			{"rcr", "RCR 8%"}, {"ad", "Area Damage"}, {"as", "Attack Speed"}, {"vit", "Vit"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt!"},
			{Missing: []string{"chc", "chd"}, Text: "❌ CHC UND CHD fehlen! Gloves sind OFFENSIV! → CHC rerolled"},
			{Missing: []string{"chc"}, Text: "🔄 Schlechtesten Stat → CHC 10%"},
			{Missing: []string{"chd"}, Has: []string{"vit"}, Text: "🔄 Vit → CHD 50% (Gloves = Offense!)"},
			{Missing: []string{"chd"}, Text: "🔄 Schlechtesten Stat → CHD 50%"},
			{Has: []string{"dex", "chc", "chd"}, HasAny: []string{"rcr", "ad"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Has: []string{"dex", "chc", "chd"}, Text: "👍 Core Stats da! 4. Stat: RCR/AD ideal", Tier: TierGood},
			{Text: "👍 Okay", Tier: TierGood},
		},
	},
	{
		Slot: "bracers", Title: "🔮 Bracers", WornKey: "bracers",
		Priority: []string{"ele", "chc", "dex", "vit"},
		Checks: []StatCheck{
			{"ele", "Cold% 20%"}, {"chc", "CHC 6%"}, {"dex", "Dex"},
			{"vit", "Vit"}, {"lph", "Life per Hit"}, {"allres", "All Res"}, {"armor", "Armor"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"ele", "chc"}, Text: "❌ Cold% UND CHC fehlen! → Cold% 20% rerolled (riesiger DMG Boost!)"},
			{Missing: []string{"ele"}, Text: "🔄 Schlechtesten Stat → Cold% 20% (WICHTIG!)"},
			{Missing: []string{"chc"}, Text: "🔄 Schlechtesten Stat → CHC 6%"},
			{Missing: []string{"dex"}, Text: "🔄 → Dex"},
			{Has: []string{"ele", "chc", "dex"}, HasAny: []string{"vit", "lph"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Text: "👍 Gut!", Tier: TierGood},
		},
	},
	{
		Slot: "belt", Title: "🎀 Belt", WornKey: "belt",
		Priority: []string{"dex", "vit", "allres", "life"},
		Checks: []StatCheck{
			{"dex", "Dex"}, {"vit", "Vit"}, {"allres", "All Res"},
			{"life", "Life%"}, {"armor", "Armor"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt"},
			{Missing: []string{"vit"}, Text: "🔄 → Vit"},
			{Missing: []string{"allres", "life"}, Text: "🔄 Schlechtesten → All Res oder Life%"},
			{Has: []string{"dex", "vit", "allres"}, Text: "✅ PERFEKT! Belt ist rein defensiv", Tier: TierPerfect},
			{Text: "👍 Gut! Belt = Defense", Tier: TierGood},
		},
	},
	{
		Slot: "pants", Title: "👖 Pants", WornKey: "pants",
		Priority: []string{"sockets", "dex", "vit", "allres"},
		Checks: []StatCheck{
			{"sockets", "2 Sockets"}, {"dex", "Dex"}, {"vit", "Vit"},
			{"allres", "All Res"}, {"armor", "Armor"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"sockets"}, Text: "❌ 2 Sockets fehlen!"},
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt"},
			{Missing: []string{"vit"}, Text: "🔄 → Vit"},
			{Missing: []string{"allres", "armor"}, Text: "🔄 → All Res oder Armor"},
			{Has: []string{"sockets", "dex", "vit", "allres"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Text: "👍 Gut! Pants = Defense", Tier: TierGood},
		},
	},
	{
		Slot: "boots", Title: "👢 Boots", WornKey: "boots",
		Priority: []string{"dex", "vit", "skill", "allres"},
		Checks: []StatCheck{
			{"dex", "Dex"}, {"vit", "Vit"}, {"skill", "TR% 15%"},
			{"allres", "All Res"}, {"armor", "Armor"}, {"ms", "Movement Speed"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"dex"}, Text: "❌ Dex fehlt"},
			{Has: []string{"ms"}, Text: "🔄 Movement Speed → TR% 15%! (MS aus Paragon!)"},
			{Missing: []string{"skill"}, Text: "🔄 Schlechtesten Stat → TR% 15% (mehr Damage!)"},
			{Missing: []string{"vit"}, Text: "🔄 → Vit"},
			{Has: []string{"dex", "vit", "skill", "allres"}, Text: "✅ PERFEKT!", Tier: TierPerfect},
			{Text: "👍 Gut!", Tier: TierGood},
		},
	},
	{
		Slot: "ring1", Title: "💍 Ring 1", WornKey: "ring_1",
		Priority: []string{"socket", "chc", "chd", "dex"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"chc", "CHC"}, {"chd", "CHD"},
			{"dex", "Dex"}, {"ad", "Area Damage"}, {"as", "Attack Speed"}, {"rcr", "RCR"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "❌ Socket fehlt! → IMMER zuerst Socket rerolled!"},
			{Missing: []string{"chc", "chd"}, Text: "🔄 → CHC oder CHD"},
			{Has: []string{"socket", "chc", "chd"}, Text: "✅ Top Stats! Dex/AD wäre Bonus", Tier: TierPerfect},
			{Has: []string{"socket"}, HasAny: []string{"chc", "chd"}, Text: "👍 Okay, Socket + 1 Crit Stat", Tier: TierGood},
			{Text: "👍 Socket da = nutzbar", Tier: TierGood},
		},
	},
	{
		Slot: "ring2", Title: "💍 Ring 2", WornKey: "ring_2",
		Priority: []string{"socket", "chc", "chd", "dex"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"chc", "CHC"}, {"chd", "CHD"},
			{"dex", "Dex"}, {"ad", "Area Damage"}, {"as", "Attack Speed"}, {"rcr", "RCR"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "❌ Socket fehlt! → IMMER zuerst Socket!"},
			{Missing: []string{"chc", "chd"}, Text: "🔄 → CHC oder CHD"},
			{Has: []string{"socket", "chc", "chd"}, Text: "✅ Top Stats!", Tier: TierPerfect},
			{Has: []string{"socket"}, HasAny: []string{"chc", "chd"}, Text: "👍 Okay", Tier: TierGood},
			{Text: "👍 Socket da = nutzbar", Tier: TierGood},
		},
	},
	{
		Slot: "amulet", Title: "📿 Amulet", WornKey: "amulet",
		Priority: []string{"socket", "ele", "chc", "chd"},
		Checks: []StatCheck{
			{"socket", "Socket"}, {"ele", "Cold% 20%"}, {"chc", "CHC 10%"},
			{"chd", "CHD 100%"}, {"dex", "Dex"}, {"rcr", "RCR"},
		},
		Rules: []AdviceRule{
			{Missing: []string{"socket"}, Text: "❌ Socket fehlt! → IMMER zuerst Socket für Legendary Gem!"},
			{Missing: []string{"ele", "chc", "chd"}, Text: "🔄 → Cold% 20% (bester Stat für Ammy!)"},
			{Missing: []string{"chc", "chd"}, Text: "🔄 → CHC 10% oder CHD 100%"},
			{Has: []string{"socket", "ele", "chc", "chd"}, Text: "✅ PERFEKT! Traumhaftes Amulet!", Tier: TierPerfect},
			{Has: []string{"socket"}, HasGroups: [][]string{{"ele", "chc"}, {"ele", "chd"}, {"chc", "chd"}}, Text: "👍 Sehr gut! 3 gute Stats", Tier: TierGood},
			{Text: "👍 Socket da = nutzbar", Tier: TierGood},
		},
	},
}
