package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Fixed document file names inside the data directory. Every other *.yaml
// file is treated as a build definition.
const (
	staticDataFile = "d3-static-data.yaml"
	journeyFile    = "season-journey-template.yaml"
	startGuideFile = "season-start-guide.yaml"
	glossaryFile   = "d3-glossary.yaml"
)

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func LoadStaticData(dataDir string) (*StaticData, error) {
	var static StaticData
	if err := loadYAML(filepath.Join(dataDir, staticDataFile), &static); err != nil {
		return nil, fmt.Errorf("load static data: %w", err)
	}
	return &static, nil
}

func LoadJourney(dataDir string) (*Journey, error) {
	var journey Journey
	if err := loadYAML(filepath.Join(dataDir, journeyFile), &journey); err != nil {
		return nil, fmt.Errorf("load journey template: %w", err)
	}
	return &journey, nil
}

// ErrBuildNotFound wraps the build name and the available alternatives so
// the command layer can print them before exiting non-zero.
type ErrBuildNotFound struct {
	Name      string
	Available []string
}

func (e *ErrBuildNotFound) Error() string {
	return fmt.Sprintf("build file '%s.yaml' not found", e.Name)
}

func LoadBuild(dataDir, name string) (*BuildDoc, error) {
	path := filepath.Join(dataDir, name+".yaml")
	if _, err := os.Stat(path); err != nil {
		return nil, &ErrBuildNotFound{Name: name, Available: ListBuilds(dataDir)}
	}
	var build BuildDoc
	if err := loadYAML(path, &build); err != nil {
		return nil, fmt.Errorf("load build %s: %w", name, err)
	}
	return &build, nil
}

// LoadStartGuide returns nil without error when the file is absent; the
// start tab then renders a placeholder.
func LoadStartGuide(dataDir string) (*StartGuide, error) {
	path := filepath.Join(dataDir, startGuideFile)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	var guide StartGuide
	if err := loadYAML(path, &guide); err != nil {
		return nil, fmt.Errorf("load start guide: %w", err)
	}
	return &guide, nil
}

// LoadGlossary returns nil without error when the file is absent.
func LoadGlossary(dataDir string) (*Glossary, error) {
	path := filepath.Join(dataDir, glossaryFile)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	var glossary Glossary
	if err := loadYAML(path, &glossary); err != nil {
		return nil, fmt.Errorf("load glossary: %w", err)
	}
	return &glossary, nil
}

// ListBuilds returns the build document names (without extension) found in
// the data directory, sorted.
func ListBuilds(dataDir string) []string {
	fixed := map[string]bool{
		staticDataFile: true,
		journeyFile:    true,
		startGuideFile: true,
		glossaryFile:   true,
	}
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		log.Printf("list builds: %v", err)
		return nil
	}
	var builds []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".yaml") || fixed[name] {
			continue
		}
		builds = append(builds, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(builds)
	return builds
}

// LoadGuideDocs loads everything needed for one generation run. Static
// data, journey and the selected build are required; the start guide and
// glossary are optional.
func LoadGuideDocs(dataDir, buildName string) (*GuideDocs, error) {
	static, err := LoadStaticData(dataDir)
	if err != nil {
		return nil, err
	}
	journey, err := LoadJourney(dataDir)
	if err != nil {
		return nil, err
	}
	build, err := LoadBuild(dataDir, buildName)
	if err != nil {
		return nil, err
	}
	startGuide, err := LoadStartGuide(dataDir)
	if err != nil {
		return nil, err
	}
	glossary, err := LoadGlossary(dataDir)
	if err != nil {
		return nil, err
	}

	MergeBossData(journey, static)

	return &GuideDocs{
		Static:     static,
		Journey:    journey,
		Build:      build,
		StartGuide: startGuide,
		Glossary:   glossary,
	}, nil
}
