package main

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "seasonguide-test.db")
	db, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestChecklistStateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ns := ProgressNamespace(33)

	if err := SetChecked(db, ns, "j1", true); err != nil {
		t.Fatalf("SetChecked failed: %v", err)
	}
	if err := SetChecked(db, ns, "aug1", true); err != nil {
		t.Fatalf("SetChecked failed: %v", err)
	}
	if err := SetChecked(db, ns, "j1", false); err != nil {
		t.Fatalf("SetChecked upsert failed: %v", err)
	}

	state, err := LoadChecklist(db, ns)
	if err != nil {
		t.Fatalf("LoadChecklist failed: %v", err)
	}
	if state["j1"] || !state["aug1"] {
		t.Fatalf("unexpected state: %v", state)
	}
}

func TestChecklistNamespaceIsolation(t *testing.T) {
	db := newTestDB(t)

	if err := SetChecked(db, "d3s33", "j1", true); err != nil {
		t.Fatalf("SetChecked failed: %v", err)
	}
	state, err := LoadChecklist(db, "d3s34")
	if err != nil {
		t.Fatalf("LoadChecklist failed: %v", err)
	}
	if len(state) != 0 {
		t.Fatalf("namespace leak: %v", state)
	}
}

func TestResetChecklistPreservesStats(t *testing.T) {
	db := newTestDB(t)
	ns := ProgressNamespace(33)

	if err := SetChecked(db, ns, "gr70", true); err != nil {
		t.Fatalf("SetChecked failed: %v", err)
	}
	if err := SetStatValue(db, ns, "cdr", 58); err != nil {
		t.Fatalf("SetStatValue failed: %v", err)
	}

	if err := ResetChecklist(db, ns); err != nil {
		t.Fatalf("ResetChecklist failed: %v", err)
	}

	state, err := LoadChecklist(db, ns)
	if err != nil {
		t.Fatalf("LoadChecklist failed: %v", err)
	}
	if state["gr70"] {
		t.Fatalf("gr70 still checked after reset")
	}
	values, err := LoadStatValues(db, ns)
	if err != nil {
		t.Fatalf("LoadStatValues failed: %v", err)
	}
	if values["cdr"] != 58 {
		t.Fatalf("stat values must survive a checklist reset, got %v", values)
	}
}

func TestStatValueUpsert(t *testing.T) {
	db := newTestDB(t)
	ns := ProgressNamespace(33)

	if err := SetStatValue(db, ns, "chc", 42.5); err != nil {
		t.Fatalf("SetStatValue failed: %v", err)
	}
	if err := SetStatValue(db, ns, "chc", 55); err != nil {
		t.Fatalf("SetStatValue upsert failed: %v", err)
	}

	values, err := LoadStatValues(db, ns)
	if err != nil {
		t.Fatalf("LoadStatValues failed: %v", err)
	}
	if values["chc"] != 55 {
		t.Fatalf("chc = %v, want 55", values["chc"])
	}
}

func TestGenerationLog(t *testing.T) {
	db := newTestDB(t)

	recs := []GenerationRecord{
		{Build: "monk-sunwuko-tr", OutputPath: "index.html", SizeBytes: 120000},
		{Build: "barb-ww", OutputPath: "barb.html", SizeBytes: 118000},
		{Build: "monk-sunwuko-tr", OutputPath: "index.html", SizeBytes: 121000},
	}
	for _, rec := range recs {
		if err := InsertGeneration(db, rec); err != nil {
			t.Fatalf("InsertGeneration failed: %v", err)
		}
	}

	got, err := RecentGenerations(db, 2)
	if err != nil {
		t.Fatalf("RecentGenerations failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	// Newest first; same-timestamp rows break the tie on id.
	if got[0].SizeBytes != 121000 || got[1].SizeBytes != 118000 {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].GeneratedAt.IsZero() {
		t.Fatalf("generated_at not populated")
	}
}
