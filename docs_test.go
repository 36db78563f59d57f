package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newTestDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeDataFile(t, dir, staticDataFile, `
bosses:
  story_bosses:
    skeleton_king:
      name: "Skeleton King"
      act: 1
      waypoint: "Cathedral Level 3"
keywardens:
  act_1:
    name: "Odeg the Keywarden"
    act: 1
    location: "Fields of Misery"
    drops: "Infernal Machine of Regret"
difficulties:
  torment_1:
    name: "Torment I"
    legendary_bonus: 15
    legendary_bonus_rift: 25
    deaths_breath_chance: "15%"
    gr_equivalent: "10"
`)
	writeDataFile(t, dir, journeyFile, `
season:
  number: 33
  haedrig_gifts:
    monk: "Monkey King's Garb"
chapter_2:
  tasks:
    - name: "Reach level 50"
    - name: "Kill the Skeleton King"
      type: "boss_kill"
      boss: "skeleton_king"
      difficulty: "Hard"
      milestone: true
`)
	writeDataFile(t, dir, "monk-test.yaml", `
build:
  short_name: "Test Monk"
  class: "Monk"
gear:
  worn:
    main_hand:
      item: "Vengeful Wind"
      stats_priority: ["Socket", "% Damage"]
`)
	return dir
}

func TestLoadStaticData(t *testing.T) {
	dir := newTestDataDir(t)

	static, err := LoadStaticData(dir)
	if err != nil {
		t.Fatalf("LoadStaticData failed: %v", err)
	}
	boss, ok := static.Bosses.StoryBosses["skeleton_king"]
	if !ok || boss.Act != 1 {
		t.Fatalf("unexpected boss record: %+v", boss)
	}
	if static.Difficulties["torment_1"].LegendaryBonus != 15 {
		t.Fatalf("difficulty not parsed: %+v", static.Difficulties["torment_1"])
	}
}

func TestLoadJourney(t *testing.T) {
	dir := newTestDataDir(t)

	journey, err := LoadJourney(dir)
	if err != nil {
		t.Fatalf("LoadJourney failed: %v", err)
	}
	if journey.Season.Number != 33 {
		t.Fatalf("season number = %d, want 33", journey.Season.Number)
	}
	if len(journey.Chapter2.Tasks) != 2 {
		t.Fatalf("chapter 2 tasks = %d, want 2", len(journey.Chapter2.Tasks))
	}
	task := journey.Chapter2.Tasks[1]
	if task.Type != "boss_kill" || task.Boss != "skeleton_king" || !task.Milestone {
		t.Fatalf("task not parsed: %+v", task)
	}
}

func TestLoadBuildNotFound(t *testing.T) {
	dir := newTestDataDir(t)

	_, err := LoadBuild(dir, "wizard-missing")
	var notFound *ErrBuildNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrBuildNotFound, got %v", err)
	}
	if notFound.Name != "wizard-missing" {
		t.Fatalf("error name = %q, want %q", notFound.Name, "wizard-missing")
	}
	if len(notFound.Available) != 1 || notFound.Available[0] != "monk-test" {
		t.Fatalf("available builds = %v, want [monk-test]", notFound.Available)
	}
}

func TestOptionalDocsAbsent(t *testing.T) {
	dir := newTestDataDir(t)

	guide, err := LoadStartGuide(dir)
	if err != nil || guide != nil {
		t.Fatalf("absent start guide: got (%v, %v), want (nil, nil)", guide, err)
	}
	glossary, err := LoadGlossary(dir)
	if err != nil || glossary != nil {
		t.Fatalf("absent glossary: got (%v, %v), want (nil, nil)", glossary, err)
	}
}

func TestListBuildsExcludesFixedFiles(t *testing.T) {
	dir := newTestDataDir(t)
	writeDataFile(t, dir, "barb-ww.yaml", "build:\n  short_name: WW\n")

	builds := ListBuilds(dir)
	want := []string{"barb-ww", "monk-test"}
	if len(builds) != len(want) {
		t.Fatalf("builds = %v, want %v", builds, want)
	}
	for i := range want {
		if builds[i] != want[i] {
			t.Fatalf("builds = %v, want %v", builds, want)
		}
	}
}

func TestLoadGuideDocsMergesBossData(t *testing.T) {
	dir := newTestDataDir(t)

	docs, err := LoadGuideDocs(dir, "monk-test")
	if err != nil {
		t.Fatalf("LoadGuideDocs failed: %v", err)
	}
	if docs.Build.Build.ShortName != "Test Monk" {
		t.Fatalf("build short name = %q", docs.Build.Build.ShortName)
	}
	task := docs.Journey.Chapter2.Tasks[1]
	if task.BossData == nil || task.BossData.Waypoint != "Cathedral Level 3" {
		t.Fatalf("boss data not merged: %+v", task.BossData)
	}
	if docs.StartGuide != nil || docs.Glossary != nil {
		t.Fatalf("optional docs should be nil when files are absent")
	}
}
