// Package tui is the Bubble Tea front end: starter selection, the map walk,
// battle screens, the trainer list and the message pager.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cory-johannsen/tallgrass/internal/game/battle"
	"github.com/cory-johannsen/tallgrass/internal/game/creature"
	"github.com/cory-johannsen/tallgrass/internal/game/roster"
	"github.com/cory-johannsen/tallgrass/internal/game/session"
	"github.com/cory-johannsen/tallgrass/internal/game/target"
	"github.com/cory-johannsen/tallgrass/internal/game/world"
)

// mode is the screen currently receiving keys.
type mode int

const (
	modeStarter mode = iota
	modeMap
	modeWild
	modeEngagement
	modeList
)

// Model is the Bubble Tea model for the game.
type Model struct {
	ctx     context.Context
	session *session.Session
	logger  *zap.Logger
	keys    keyMap

	mode     mode
	starters [roster.StarterCount]*creature.Instance
	wild     *battle.Wild
	// queued is an engagement bumped into on the same step as a wild
	// encounter; it opens once the wild battle ends.
	queued     *battle.Engagement
	engagement *battle.Engagement
	screen     []string
	listing    *target.Listing
	pager      *pager

	quitting bool
}

// New creates a model that opens on starter selection.
//
// Precondition: s must be a fresh session whose player has no starter.
// Postcondition: Returns a ready model or the error from drawing starters.
func New(ctx context.Context, s *session.Session, logger *zap.Logger) (Model, error) {
	cands, err := s.Starters()
	if err != nil {
		return Model{}, fmt.Errorf("drawing starters: %w", err)
	}
	return Model{
		ctx:      ctx,
		session:  s,
		logger:   logger,
		keys:     defaultKeyMap(),
		mode:     modeStarter,
		starters: cands,
		pager:    &pager{},
	}, nil
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, s *session.Session, logger *zap.Logger) error {
	m, err := New(ctx, s, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses. While the pager holds a message, every key
// dismisses it and nothing else happens.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if km.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.pager.active() {
		m.pager.dismiss()
		return m, nil
	}

	switch m.mode {
	case modeStarter:
		return m.updateStarter(km)
	case modeMap:
		return m.updateMap(km)
	case modeWild:
		return m.updateWild(km), nil
	case modeEngagement:
		return m.updateEngagement(km), nil
	case modeList:
		return m.updateList(km), nil
	}
	return m, nil
}

func (m Model) updateStarter(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(km, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	s := km.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '0'+roster.StarterCount {
		return m, nil
	}
	if err := m.session.ChooseStarter(m.starters, int(s[0]-'1')); err != nil {
		m.logger.Warn("starter rejected", zap.String("key", s), zap.Error(err))
		return m, nil
	}
	msgs := &battle.Messages{}
	msgs.Add("You chose %s!", m.session.Player.Roster.Active().Name())
	m.pager.push(msgs)
	m.mode = modeMap
	return m, nil
}

func (m Model) updateMap(km tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(km, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(km, m.keys.Enter):
		m.pager.push(m.session.Enter())
		return m, nil
	case key.Matches(km, m.keys.Trainers):
		m.listing = m.session.Listing()
		m.mode = modeList
		return m, nil
	}

	dx, dy, ok := m.keys.direction(km)
	if !ok {
		return m, nil
	}
	out, err := m.session.Step(m.ctx, dx, dy)
	if err != nil {
		m.logger.Error("movement failed", zap.Int("dx", dx), zap.Int("dy", dy), zap.Error(err))
		return m, nil
	}
	m.pager.push(out.Messages)
	switch {
	case out.Wild != nil:
		m = m.openWild(out.Wild)
		m.queued = out.Engagement
	case out.Engagement != nil:
		m = m.openEngagement(out.Engagement)
	}
	return m, nil
}

func (m Model) openWild(w *battle.Wild) Model {
	st := w.Opening()
	m.wild = w
	m.screen = st.Screen
	m.pager.push(st.Messages)
	m.mode = modeWild
	return m
}

func (m Model) openEngagement(e *battle.Engagement) Model {
	st := e.Opening()
	m.engagement = e
	m.screen = st.Screen
	m.pager.push(st.Messages)
	m.mode = modeEngagement
	return m
}

// updateWild forwards the key to the battle. Rejected keys leave the screen
// unchanged.
func (m Model) updateWild(km tea.KeyMsg) Model {
	st, err := m.wild.Advance(km.String())
	if err != nil && !errors.Is(err, battle.ErrInvalidAction) {
		m.logger.Error("wild battle input failed", zap.Error(err))
	}
	m.pager.push(st.Messages)
	m.screen = st.Screen
	if st.State != battle.Ended {
		return m
	}
	m.wild = nil
	if m.queued != nil {
		e := m.queued
		m.queued = nil
		return m.openEngagement(e)
	}
	m.mode = modeMap
	return m
}

func (m Model) updateEngagement(km tea.KeyMsg) Model {
	st, err := m.engagement.Advance(km.String())
	if err != nil {
		return m
	}
	m.pager.push(st.Messages)
	m.screen = st.Screen
	if st.State == battle.Ended {
		m.engagement = nil
		m.mode = modeMap
	}
	return m
}

func (m Model) updateList(km tea.KeyMsg) Model {
	switch {
	case key.Matches(km, m.keys.Close):
		m.listing = nil
		m.mode = modeMap
	case key.Matches(km, m.keys.ScrollUp):
		m.listing.ScrollUp()
	case key.Matches(km, m.keys.ScrollDown):
		m.listing.ScrollDown()
	}
	return m
}

// View implements tea.Model: the message line, then the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.mode {
	case modeStarter:
		body = m.starterView()
	case modeWild, modeEngagement:
		body = styleBattle.Render(strings.Join(m.screen, "\n"))
	case modeList:
		body = m.listView()
	default:
		body = m.mapView()
	}
	return m.pager.line() + "\n" + body
}

func (m Model) starterView() string {
	lines := []string{"Choose your starter pokemon:", ""}
	for i, c := range m.starters {
		lines = append(lines, fmt.Sprintf("%d - %s (level %d, HP %d, %s / %s)",
			i+1, c.Name(), c.Level(), c.MaxHP(), c.Move(0).Name, c.Move(1).Name))
	}
	return strings.Join(append(lines, "", "enter 1, 2 or 3"), "\n")
}

func (m Model) mapView() string {
	wm := m.session.Map
	var b strings.Builder
	for y := range wm.Height() {
		for x := range wm.Width() {
			b.WriteString(styledCell(wm, world.Pos{X: x, Y: y}))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.trainerStatus())
	b.WriteByte('\n')
	b.WriteString(styleStatusBar.Render(positionLine(m.session.Player.Pos, wm.Region)))
	return b.String()
}

// trainerStatus renders the known-trainer count and the nearest trainer.
func (m Model) trainerStatus() string {
	n := len(m.session.Map.NonPlayers())
	noun := "trainer"
	if n > 1 {
		noun = "trainers"
	}
	nearest := m.session.StatusLine()
	style := styleNearest
	if m.session.Nearest() == nil {
		style = styleNone
	}
	return styleStatusBar.Render(fmt.Sprintf("%d known %s.  Nearest visible trainer: ", n, noun)) +
		style.Render(nearest)
}

// positionLine describes where the player stands and which map they are on.
func positionLine(p world.Pos, r world.Region) string {
	ew, ns := 'E', 'N'
	if r.X < 0 {
		ew = 'W'
	}
	if r.Y > 0 {
		ns = 'S'
	}
	return fmt.Sprintf("PC position is (%2d,%2d) on map %d%cx%d%c.", p.X, p.Y, abs(r.X), ew, abs(r.Y), ns)
}

func (m Model) listView() string {
	lines := []string{m.listing.Header(), ""}
	lines = append(lines, m.listing.Page()...)
	lines = append(lines, "", m.listing.Footer())
	return lipgloss.JoinVertical(lipgloss.Left, m.mapView(), styleListBox.Render(strings.Join(lines, "\n")))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
