package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

// Styles used throughout the TUI.
var (
	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	styleMore = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleStatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleNearest = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleNone = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	stylePlayer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	styleTrainer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleBattle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleListBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("243")).
			Padding(0, 1)
)

// terrainStyles colours terrain glyphs. Missing entries render unstyled.
var terrainStyles = map[world.Terrain]lipgloss.Style{
	world.Boulder:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	world.Mountain: lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	world.Tree:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	world.Forest:   lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	world.Grass:    lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	world.Clearing: lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
	world.Water:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	world.Mart:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	world.Center:   lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true),
	world.Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	world.Gate:     lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
}

// styledCell renders one map cell: an actor symbol when occupied,
// otherwise the terrain glyph.
func styledCell(m *world.Map, p world.Pos) string {
	occ := m.At(p)
	if occ.IsPlayer() {
		return stylePlayer.Render(string(occ.Trainer.Symbol()))
	}
	if t, ok := occ.NonPlayer(); ok {
		return styleTrainer.Render(string(t.Symbol()))
	}
	terrain := m.TerrainAt(p)
	glyph := string(terrain.Glyph())
	if s, ok := terrainStyles[terrain]; ok {
		return s.Render(glyph)
	}
	return glyph
}
