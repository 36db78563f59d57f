package main

// Document types for the YAML data files. Field names mirror the keys used
// in data/*.yaml; optional fields stay zero-valued when absent.

// StaticData is the fixed game reference data (d3-static-data.yaml).
type StaticData struct {
	Bosses       BossIndex               `yaml:"bosses"`
	Keywardens   map[string]Keywarden    `yaml:"keywardens"`
	Difficulties map[string]Difficulty   `yaml:"difficulties"`
	AltarOfRites AltarOfRites            `yaml:"altar_of_rites"`
	BountyCaches map[string][]BountyItem `yaml:"bounty_cache_items"`
}

type BossIndex struct {
	StoryBosses map[string]Boss `yaml:"story_bosses"`
}

type Boss struct {
	Name     string `yaml:"name"`
	NameDE   string `yaml:"name_de"`
	Act      int    `yaml:"act"`
	Location string `yaml:"location"`
	Waypoint string `yaml:"waypoint"`
	Notes    string `yaml:"notes"`
}

type Keywarden struct {
	Name     string `yaml:"name"`
	Act      int    `yaml:"act"`
	Location string `yaml:"location"`
	Drops    string `yaml:"drops"`
}

type Difficulty struct {
	Name               string `yaml:"name"`
	LegendaryBonus     int    `yaml:"legendary_bonus"`
	LegendaryBonusRift int    `yaml:"legendary_bonus_rift"`
	DeathsBreathChance string `yaml:"deaths_breath_chance"`
	GREquivalent       string `yaml:"gr_equivalent"`
}

type AltarOfRites struct {
	UnlockOrder []AltarSeal `yaml:"unlock_order"`
}

type AltarSeal struct {
	Seal    int    `yaml:"seal"`
	Name    string `yaml:"name"`
	Effect  string `yaml:"effect"`
	Cost    string `yaml:"cost"`
	Warning string `yaml:"warning"`
}

type BountyItem struct {
	Name     string `yaml:"name"`
	Priority string `yaml:"priority"`
}

// Journey is the season journey template (season-journey-template.yaml).
// Chapters II-IV carry the checklist tasks; each completed chapter unlocks
// one Haedrig's Gift.
type Journey struct {
	Season   Season  `yaml:"season"`
	Chapter2 Chapter `yaml:"chapter_2"`
	Chapter3 Chapter `yaml:"chapter_3"`
	Chapter4 Chapter `yaml:"chapter_4"`
}

type Season struct {
	Number       int               `yaml:"number"`
	HaedrigGifts map[string]string `yaml:"haedrig_gifts"`
}

type Chapter struct {
	Tasks []Task `yaml:"tasks"`
}

// Task is one journey checklist entry. Boss and KeywardenRef are document
// keys; BossData/KeywardenData are attached by MergeBossData.
type Task struct {
	Name         string `yaml:"name"`
	Difficulty   string `yaml:"difficulty"`
	Milestone    bool   `yaml:"milestone"`
	Type         string `yaml:"type"`
	Boss         string `yaml:"boss"`
	KeywardenRef string `yaml:"keywarden"`

	BossData      *Boss      `yaml:"-"`
	KeywardenData *Keywarden `yaml:"-"`
}

// BuildDoc is one build definition (<name>.yaml).
type BuildDoc struct {
	Build         BuildMeta     `yaml:"build"`
	Skills        Skills        `yaml:"skills"`
	LegendaryGems LegendaryGems `yaml:"legendary_gems"`
	KanaisCube    KanaisCube    `yaml:"kanais_cube"`
	Paragon       Paragon       `yaml:"paragon"`
	Gear          GearDoc       `yaml:"gear"`
	Gameplay      Gameplay      `yaml:"gameplay"`
}

type BuildMeta struct {
	ShortName string `yaml:"short_name"`
	Class     string `yaml:"class"`
}

type Skills struct {
	Active   []ActiveSkill `yaml:"active"`
	Passives Passives      `yaml:"passives"`
}

type ActiveSkill struct {
	Slot  string `yaml:"slot"`
	Skill string `yaml:"skill"`
	Rune  string `yaml:"rune"`
}

type Passives struct {
	Required    []Passive `yaml:"required"`
	Recommended []Passive `yaml:"recommended"`
}

type Passive struct {
	Name   string `yaml:"name"`
	Effect string `yaml:"effect"`
}

type LegendaryGems struct {
	Required []Gem `yaml:"required"`
	Pushing  []Gem `yaml:"pushing"`
}

type Gem struct {
	Name  string `yaml:"name"`
	Notes string `yaml:"notes"`
}

type KanaisCube struct {
	Weapon  CubePower `yaml:"weapon"`
	Armor   CubeArmor `yaml:"armor"`
	Jewelry CubePower `yaml:"jewelry"`
}

type CubePower struct {
	Item  string `yaml:"item"`
	Power string `yaml:"power"`
}

type CubeArmor struct {
	Primary CubeChoice `yaml:"primary"`
}

type CubeChoice struct {
	Item  string `yaml:"item"`
	Notes string `yaml:"notes"`
}

// Paragon holds the point priorities per category, keyed 1-4.
type Paragon struct {
	Core    map[int]string `yaml:"core"`
	Offense map[int]string `yaml:"offense"`
	Defense map[int]string `yaml:"defense"`
	Utility map[int]string `yaml:"utility"`
}

type GearDoc struct {
	Worn map[string]WornSlot `yaml:"worn"`
}

type WornSlot struct {
	Item          string   `yaml:"item"`
	StatsPriority []string `yaml:"stats_priority"`
}

type Gameplay struct {
	Rotation []RotationStep `yaml:"rotation"`
	Tips     []string       `yaml:"tips"`
}

type RotationStep struct {
	Step   int    `yaml:"step"`
	Action string `yaml:"action"`
	Notes  string `yaml:"notes"`
}

// StartGuide is the optional season-start walkthrough
// (season-start-guide.yaml).
type StartGuide struct {
	Preparation      Preparation                  `yaml:"preparation"`
	SeasonStartSteps StartSteps                   `yaml:"season_start_steps"`
	CommonMistakes   []Mistake                    `yaml:"common_mistakes"`
	Timeline         map[string]map[string]string `yaml:"timeline"`
}

type Preparation struct {
	ChallengeRift ChallengeRift `yaml:"challenge_rift"`
}

type ChallengeRift struct {
	CacheContents CacheContents `yaml:"cache_contents"`
}

type CacheContents struct {
	Gold          string `yaml:"gold"`
	BloodShards   int    `yaml:"blood_shards"`
	DeathsBreath  int    `yaml:"deaths_breath"`
	ReusableParts int    `yaml:"reusable_parts"`
}

type StartSteps struct {
	Phase1 Phase `yaml:"phase_1"`
	Phase2 Phase `yaml:"phase_2"`
	Phase3 Phase `yaml:"phase_3"`
	Phase4 Phase `yaml:"phase_4"`
	Phase5 Phase `yaml:"phase_5"`
}

type Phase struct {
	Steps            []StartStep      `yaml:"steps"`
	GamblingPriority GamblingPriority `yaml:"gambling_priority"`
}

type StartStep struct {
	Action   string `yaml:"action"`
	Notes    string `yaml:"notes"`
	Effect   string `yaml:"effect"`
	Cost     string `yaml:"cost"`
	Location string `yaml:"location"`
}

type GamblingPriority struct {
	Level1 []GambleTarget `yaml:"level_1"`
}

type GambleTarget struct {
	Slot   string `yaml:"slot"`
	Target string `yaml:"target"`
	Effect string `yaml:"effect"`
}

type Mistake struct {
	Mistake string `yaml:"mistake"`
	Fix     string `yaml:"fix"`
}

// Glossary groups abbreviation entries into seven fixed categories
// (d3-glossary.yaml).
type Glossary struct {
	Stats     map[string]GlossaryEntry `yaml:"stats"`
	Content   map[string]GlossaryEntry `yaml:"content"`
	Items     map[string]GlossaryEntry `yaml:"items"`
	Cube      map[string]GlossaryEntry `yaml:"cube"`
	Gameplay  map[string]GlossaryEntry `yaml:"gameplay"`
	Classes   map[string]GlossaryEntry `yaml:"classes"`
	Community map[string]GlossaryEntry `yaml:"community"`
}

type GlossaryEntry struct {
	Full        string `yaml:"full"`
	Deutsch     string `yaml:"deutsch"`
	Description string `yaml:"description"`
	Notes       string `yaml:"notes"`
}

// GuideDocs bundles everything the page assembler needs. StartGuide and
// Glossary stay nil when their files are absent.
type GuideDocs struct {
	Static     *StaticData
	Journey    *Journey
	Build      *BuildDoc
	StartGuide *StartGuide
	Glossary   *Glossary
}
