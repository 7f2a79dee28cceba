package pokedex

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names read by LoadFromDir.
const (
	SpeciesFile      = "species.yaml"
	MovesFile        = "moves.yaml"
	SpeciesMovesFile = "species_moves.yaml"
)

type yamlSpeciesFile struct {
	Species []Species `yaml:"species"`
}

type yamlMovesFile struct {
	Moves []Move `yaml:"moves"`
}

type yamlLinksFile struct {
	Links []Link `yaml:"species_moves"`
}

// LoadFromBytes parses the three tables from raw YAML documents.
//
// Precondition: each argument must be a YAML document for its table.
// Postcondition: Returns a validated Pokedex or a non-nil error.
func LoadFromBytes(species, moves, links []byte) (*Pokedex, error) {
	var sf yamlSpeciesFile
	if err := yaml.Unmarshal(species, &sf); err != nil {
		return nil, fmt.Errorf("parsing species YAML: %w", err)
	}
	var mf yamlMovesFile
	if err := yaml.Unmarshal(moves, &mf); err != nil {
		return nil, fmt.Errorf("parsing moves YAML: %w", err)
	}
	var lf yamlLinksFile
	if err := yaml.Unmarshal(links, &lf); err != nil {
		return nil, fmt.Errorf("parsing species_moves YAML: %w", err)
	}
	return New(sf.Species, mf.Moves, lf.Links)
}

// LoadFromDir reads species.yaml, moves.yaml and species_moves.yaml from dir.
//
// Precondition: dir must be a readable directory containing all three files.
// Postcondition: Returns a validated Pokedex or the first error encountered.
func LoadFromDir(dir string) (*Pokedex, error) {
	var docs [3][]byte
	for i, name := range []string{SpeciesFile, MovesFile, SpeciesMovesFile} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		docs[i] = data
	}
	p, err := LoadFromBytes(docs[0], docs[1], docs[2])
	if err != nil {
		return nil, fmt.Errorf("loading pokedex from %q: %w", dir, err)
	}
	return p, nil
}
