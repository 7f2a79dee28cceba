package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlMapFile is the top-level YAML structure for map files.
type yamlMapFile struct {
	Map yamlMap `yaml:"map"`
}

type yamlMap struct {
	Name     string        `yaml:"name"`
	Region   yamlPos       `yaml:"region"`
	Rows     []string      `yaml:"rows"`
	Player   yamlPos       `yaml:"player"`
	Trainers []yamlTrainer `yaml:"trainers"`
}

type yamlPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type yamlTrainer struct {
	Class string `yaml:"class"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
}

// LoadMapFromFile reads and validates a single map YAML file.
//
// Precondition: path must point to a valid YAML map file.
// Postcondition: Returns a populated Map or a non-nil error.
func LoadMapFromFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file %s: %w", path, err)
	}
	return LoadMapFromBytes(data)
}

// LoadMapFromBytes parses a map, places the player and every trainer, and
// checks that each actor stands on terrain its class can enter. Rosters are
// left empty.
//
// Precondition: data must be valid YAML conforming to the map schema.
// Postcondition: Returns a populated Map or a non-nil error.
func LoadMapFromBytes(data []byte) (*Map, error) {
	var file yamlMapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing map YAML: %w", err)
	}
	ym := file.Map
	if ym.Name == "" {
		return nil, fmt.Errorf("map name must not be empty")
	}

	terrain := make([][]Terrain, len(ym.Rows))
	for y, row := range ym.Rows {
		for x, r := range []rune(row) {
			t, ok := terrainGlyphs[r]
			if !ok {
				return nil, fmt.Errorf("map %q: unknown terrain %q at (%d,%d)", ym.Name, r, x, y)
			}
			terrain[y] = append(terrain[y], t)
		}
	}

	m, err := NewMap(ym.Name, Region{X: ym.Region.X, Y: ym.Region.Y}, terrain)
	if err != nil {
		return nil, err
	}

	player := NewTrainer(ClassPlayer, Pos{X: ym.Player.X, Y: ym.Player.Y})
	if !m.Passable(ClassPlayer, player.Pos) {
		return nil, fmt.Errorf("map %q: player start %v is not passable", ym.Name, player.Pos)
	}
	if err := m.PlacePlayer(player); err != nil {
		return nil, fmt.Errorf("map %q: %w", ym.Name, err)
	}

	for i, yt := range ym.Trainers {
		class, err := ParseActorClass(yt.Class)
		if err != nil {
			return nil, fmt.Errorf("map %q: trainer %d: %w", ym.Name, i, err)
		}
		t := NewTrainer(class, Pos{X: yt.X, Y: yt.Y})
		if !m.Passable(class, t.Pos) {
			return nil, fmt.Errorf("map %q: trainer %d (%s) at %v is not passable", ym.Name, i, class, t.Pos)
		}
		if err := m.PlaceTrainer(t); err != nil {
			return nil, fmt.Errorf("map %q: trainer %d: %w", ym.Name, i, err)
		}
	}
	return m, nil
}
