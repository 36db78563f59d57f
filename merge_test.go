package main

import "testing"

func testStatic() *StaticData {
	return &StaticData{
		Bosses: BossIndex{StoryBosses: map[string]Boss{
			"skeleton_king": {Name: "Skeleton King", Act: 1, Waypoint: "Cathedral Level 3"},
		}},
		Keywardens: map[string]Keywarden{
			"act_1": {Name: "Odeg the Keywarden", Act: 1, Location: "Fields of Misery"},
		},
	}
}

func TestMergeBossDataAttachesRecords(t *testing.T) {
	journey := &Journey{
		Chapter2: Chapter{Tasks: []Task{
			{Name: "Kill the Skeleton King", Type: "boss_kill", Boss: "skeleton_king"},
			{Name: "Reach level 50"},
		}},
		Chapter3: Chapter{Tasks: []Task{
			{Name: "Kill the Act I keywarden", Type: "keywarden", KeywardenRef: "act_1"},
		}},
	}

	MergeBossData(journey, testStatic())

	boss := journey.Chapter2.Tasks[0].BossData
	if boss == nil || boss.Name != "Skeleton King" {
		t.Fatalf("boss data not attached: %+v", boss)
	}
	if journey.Chapter2.Tasks[1].BossData != nil {
		t.Fatalf("plain task must not get boss data")
	}
	kw := journey.Chapter3.Tasks[0].KeywardenData
	if kw == nil || kw.Name != "Odeg the Keywarden" {
		t.Fatalf("keywarden data not attached: %+v", kw)
	}
}

func TestMergeBossDataSkipsUnknownRefs(t *testing.T) {
	journey := &Journey{
		Chapter4: Chapter{Tasks: []Task{
			{Name: "Kill Mystery Boss", Type: "boss_kill", Boss: "no_such_boss"},
			{Name: "Kill keywarden", Type: "keywarden", KeywardenRef: "act_9"},
		}},
	}

	MergeBossData(journey, testStatic())

	if journey.Chapter4.Tasks[0].BossData != nil {
		t.Fatalf("unknown boss ref must stay nil")
	}
	if journey.Chapter4.Tasks[1].KeywardenData != nil {
		t.Fatalf("unknown keywarden ref must stay nil")
	}
}

func TestMergeBossDataIdempotent(t *testing.T) {
	journey := &Journey{
		Chapter2: Chapter{Tasks: []Task{
			{Name: "Kill the Skeleton King", Type: "boss_kill", Boss: "skeleton_king"},
		}},
	}
	static := testStatic()

	MergeBossData(journey, static)
	first := journey.Chapter2.Tasks[0].BossData
	MergeBossData(journey, static)
	second := journey.Chapter2.Tasks[0].BossData

	if second == nil || second.Name != first.Name {
		t.Fatalf("second merge changed the attachment: %+v", second)
	}
}

func TestMergeBossDataNilInputs(t *testing.T) {
	// Must not panic.
	MergeBossData(nil, testStatic())
	MergeBossData(&Journey{}, nil)
}
