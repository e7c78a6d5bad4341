package tui

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navadeep2604/Reflex-Rush/internal/display"
	"github.com/navadeep2604/Reflex-Rush/internal/models"
	"github.com/navadeep2604/Reflex-Rush/internal/services/game"
)

// menuOptions is the local control surface, in cursor order
var menuOptions = []string{
	"Start Game",
	"View History",
	"View Leaderboard",
	"Delete History",
}

type viewState int

const (
	stateMenu viewState = iota
	stateRound
	stateResults
	stateText
)

type (
	roundFinishedMsg struct {
		err error
	}
	backToMenuMsg struct{}
	screenMsg     displayEvent
)

// Config holds configuration for the terminal front-end
type Config struct {
	// GameService runs rounds and serves the views
	GameService game.Service

	// Screen is the display surface wired into the game service
	Screen *Screen

	// MenuDebounce is the minimum gap between accepted cursor moves
	MenuDebounce time.Duration

	// ConfirmDebounce is the minimum gap between accepted selections
	ConfirmDebounce time.Duration

	// ResultDisplayTime is how long a result block stays on screen
	ResultDisplayTime time.Duration
}

// Model is the bubbletea model for the board UI
type Model struct {
	game   game.Service
	screen *Screen

	menuDebounce    time.Duration
	confirmDebounce time.Duration
	resultTime      time.Duration

	state    viewState
	cursor   int
	phase    models.Phase
	text     []string
	lastNav  time.Time
	lastSel  time.Time
	width    int
	height   int
}

// New creates the board UI model
func New(cfg *Config) (Model, error) {
	if cfg == nil || cfg.GameService == nil || cfg.Screen == nil {
		return Model{}, errors.New("game service and screen are required")
	}

	menuDebounce := cfg.MenuDebounce
	if menuDebounce == 0 {
		menuDebounce = 200 * time.Millisecond
	}
	confirmDebounce := cfg.ConfirmDebounce
	if confirmDebounce == 0 {
		confirmDebounce = 20 * time.Millisecond
	}
	resultTime := cfg.ResultDisplayTime
	if resultTime == 0 {
		resultTime = 5 * time.Second
	}

	return Model{
		game:            cfg.GameService,
		screen:          cfg.Screen,
		menuDebounce:    menuDebounce,
		confirmDebounce: confirmDebounce,
		resultTime:      resultTime,
		state:           stateMenu,
		phase:           models.PhaseIdle,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.listenScreen()
}

// listenScreen forwards the next device event into the update loop
func (m Model) listenScreen() tea.Cmd {
	return func() tea.Msg {
		return screenMsg(<-m.screen.events)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case screenMsg:
		event := displayEvent(msg)
		switch {
		case event.hasPhase:
			m.phase = event.phase
			if event.phase != models.PhaseIdle {
				m.state = stateRound
			}
		case event.results != "":
			m.state = stateResults
			m.text = display.Wrap(event.results, 0, 0)
			return m, tea.Batch(m.listenScreen(), m.returnToMenuAfter(m.resultTime))
		case event.message != "":
			m.text = display.Wrap(event.message, 0, 0)
		}
		return m, m.listenScreen()

	case roundFinishedMsg:
		if msg.err != nil {
			log.Printf("tui: round failed: %v", msg.err)
			m.state = stateMenu
		}
		// On success the results screen is already up via the device.
		return m, nil

	case backToMenuMsg:
		if m.state == stateResults || m.state == stateText {
			m.state = stateMenu
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Touch):
		slot := int(msg.String()[0] - '1')
		m.game.TriggerTouch(slot)
		return m, nil

	case key.Matches(msg, Keys.Up), key.Matches(msg, Keys.Down):
		if m.state != stateMenu || now.Sub(m.lastNav) < m.menuDebounce {
			return m, nil
		}
		m.lastNav = now
		if key.Matches(msg, Keys.Up) {
			m.cursor = (m.cursor + len(menuOptions) - 1) % len(menuOptions)
		} else {
			m.cursor = (m.cursor + 1) % len(menuOptions)
		}
		return m, nil

	case key.Matches(msg, Keys.Confirm):
		if now.Sub(m.lastSel) < m.confirmDebounce {
			return m, nil
		}
		m.lastSel = now

		switch m.state {
		case stateMenu:
			return m.selectOption()
		case stateText, stateResults:
			m.state = stateMenu
			return m, nil
		}
	}

	return m, nil
}

func (m Model) selectOption() (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch menuOptions[m.cursor] {
	case "Start Game":
		m.state = stateRound
		return m, m.runRound()

	case "View History":
		out, err := m.game.GetHistory(ctx, &game.GetHistoryInput{})
		if err != nil {
			log.Printf("tui: failed to read history: %v", err)
			return m, nil
		}
		m.state = stateText
		if out.Snapshot == "" {
			m.text = []string{"No history yet"}
		} else {
			m.text = display.Wrap(out.Snapshot, 0, 0)
		}
		return m, nil

	case "View Leaderboard":
		out, err := m.game.GetLeaderboard(ctx, &game.GetLeaderboardInput{})
		if err != nil {
			log.Printf("tui: failed to read leaderboard: %v", err)
			return m, nil
		}
		m.state = stateText
		if len(out.Entries) == 0 {
			m.text = []string{"No times recorded"}
		} else {
			lines := make([]string, 0, len(out.Entries))
			for _, entry := range out.Entries {
				lines = append(lines, entry.Line())
			}
			m.text = lines
		}
		return m, nil

	case "Delete History":
		_, err := m.game.DeleteHistory(ctx, &game.DeleteHistoryInput{})
		m.state = stateText
		if err != nil {
			m.text = []string{"No history file found"}
		} else {
			m.text = []string{"History deleted"}
		}
		return m, m.returnToMenuAfter(2 * time.Second)
	}

	return m, nil
}

func (m Model) runRound() tea.Cmd {
	return func() tea.Msg {
		_, err := m.game.StartRound(context.Background(), &game.StartRoundInput{})
		return roundFinishedMsg{err: err}
	}
}

func (m Model) returnToMenuAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return backToMenuMsg{}
	})
}

func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case stateMenu:
		b.WriteString(titleStyle.Render("REFLEX RUSH"))
		b.WriteString("\n\n")
		for i, option := range menuOptions {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> " + option))
			} else {
				b.WriteString(menuStyle.Render("  " + option))
			}
			b.WriteString("\n")
		}

	case stateRound:
		b.WriteString(phaseStyle(m.phase).Render(m.phase.Label()))
		b.WriteString("\n\n")
		b.WriteString(menuStyle.Render("Touch on green!"))

	case stateResults, stateText:
		for _, line := range m.text {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	screen := screenStyle.Render(b.String())
	help := helpStyle.Render(renderHelp())

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			screen+"\n"+help)
	}
	return screen + "\n" + help
}

func renderHelp() string {
	var parts []string
	for _, binding := range Keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
