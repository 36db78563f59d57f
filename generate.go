package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// GenerateResult describes one finished guide build.
type GenerateResult struct {
	Build      string
	OutputPath string
	SizeBytes  int64
}

// GenerateGuide loads all documents for the build, renders the page and
// writes it to outputPath. When db is non-nil the build is recorded in the
// generation log.
func GenerateGuide(db *sql.DB, dataDir, buildName, outputPath string) (GenerateResult, error) {
	log.Println("Loading data files...")
	docs, err := LoadGuideDocs(dataDir, buildName)
	if err != nil {
		return GenerateResult{}, err
	}

	log.Printf("Generating HTML for %s...", buildName)
	page, err := GeneratePage(docs)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generate page: %w", err)
	}

	path, err := WriteGuideFile(page, outputPath)
	if err != nil {
		return GenerateResult{}, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return GenerateResult{}, err
	}
	result := GenerateResult{Build: buildName, OutputPath: path, SizeBytes: fi.Size()}
	log.Printf("Generated: %s", path)
	log.Printf("File size: %.1f KB", float64(fi.Size())/1024)

	if db != nil {
		if err := InsertGeneration(db, GenerationRecord{
			Build:      buildName,
			OutputPath: path,
			SizeBytes:  fi.Size(),
		}); err != nil {
			log.Printf("Error recording generation: %v", err)
		}
	}
	return result, nil
}

// WriteGuideFile writes the page, creating the target directory if needed.
func WriteGuideFile(content, outputPath string) (string, error) {
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return outputPath, nil
}
