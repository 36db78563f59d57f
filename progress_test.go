package main

import "testing"

func TestProgressNamespace(t *testing.T) {
	if got := ProgressNamespace(33); got != "d3s33" {
		t.Fatalf("ProgressNamespace(33) = %q, want %q", got, "d3s33")
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		checked, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{0, 80, 0},
		{1, 3, 33},
		{2, 3, 67},
		{80, 80, 100},
	}
	for _, tc := range cases {
		if got := ProgressPercent(tc.checked, tc.total); got != tc.want {
			t.Fatalf("ProgressPercent(%d, %d) = %d, want %d", tc.checked, tc.total, got, tc.want)
		}
	}
}

func TestCollectControlIDs(t *testing.T) {
	html := `
<label><input type="checkbox" id="j1" onchange="saveState()"> Task</label>
<label><input type="checkbox" data-slot="helm" data-stat="socket" onchange="updateGearAdvice('helm')"> Socket</label>
<label><input type="checkbox" id="aug13" onchange="saveState()"> Augment</label>
`
	ids := CollectControlIDs(html)
	want := []string{"j1", "helm_socket", "aug13"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestImportChecklistSkipsUnknown(t *testing.T) {
	db := newTestDB(t)
	ns := ProgressNamespace(33)
	known := []string{"j1", "j2", "helm_socket"}

	applied, skipped, err := ImportChecklist(db, ns, map[string]bool{
		"j1":          true,
		"helm_socket": true,
		"ghost_id":    true,
	}, known)
	if err != nil {
		t.Fatalf("ImportChecklist failed: %v", err)
	}
	if applied != 2 || skipped != 1 {
		t.Fatalf("applied=%d skipped=%d, want 2/1", applied, skipped)
	}

	state, err := LoadChecklist(db, ns)
	if err != nil {
		t.Fatalf("LoadChecklist failed: %v", err)
	}
	if !state["j1"] || !state["helm_socket"] {
		t.Fatalf("imported entries missing: %v", state)
	}
	if _, exists := state["ghost_id"]; exists {
		t.Fatalf("unknown id must not be stored")
	}
}

func TestChecklistProgressIgnoresStaleIDs(t *testing.T) {
	db := newTestDB(t)
	ns := ProgressNamespace(33)

	// j99 was checked against an older page layout and no longer exists.
	for _, id := range []string{"j1", "j2", "j99"} {
		if err := SetChecked(db, ns, id, true); err != nil {
			t.Fatalf("SetChecked failed: %v", err)
		}
	}

	checked, total, err := ChecklistProgress(db, ns, []string{"j1", "j2", "j3", "j4"})
	if err != nil {
		t.Fatalf("ChecklistProgress failed: %v", err)
	}
	if checked != 2 || total != 4 {
		t.Fatalf("checked=%d total=%d, want 2/4", checked, total)
	}
	if got := ProgressPercent(checked, total); got != 50 {
		t.Fatalf("percent = %d, want 50", got)
	}
}
