package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateGuideWritesAndLogs(t *testing.T) {
	db := newTestDB(t)
	outPath := filepath.Join(t.TempDir(), "out", "index.html")

	result, err := GenerateGuide(db, "data", "monk-sunwuko-tr", outPath)
	if err != nil {
		t.Fatalf("GenerateGuide failed: %v", err)
	}
	if result.Build != "monk-sunwuko-tr" || result.OutputPath != outPath {
		t.Fatalf("unexpected result: %+v", result)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if int64(len(content)) != result.SizeBytes {
		t.Fatalf("size = %d, file has %d bytes", result.SizeBytes, len(content))
	}
	if !strings.HasPrefix(string(content), "<!DOCTYPE html>") {
		t.Fatalf("output is not an HTML page")
	}

	recs, err := RecentGenerations(db, 5)
	if err != nil {
		t.Fatalf("RecentGenerations failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Build != "monk-sunwuko-tr" || recs[0].SizeBytes != result.SizeBytes {
		t.Fatalf("generation not logged: %+v", recs)
	}
}

func TestGenerateGuideNilDBSkipsLog(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "index.html")
	if _, err := GenerateGuide(nil, "data", "monk-sunwuko-tr", outPath); err != nil {
		t.Fatalf("GenerateGuide without db failed: %v", err)
	}
}

func TestGenerateGuideUnknownBuild(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "index.html")
	_, err := GenerateGuide(nil, "data", "wizard-missing", outPath)
	if err == nil {
		t.Fatalf("expected error for unknown build")
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Fatalf("no output file may be written on failure")
	}
}
