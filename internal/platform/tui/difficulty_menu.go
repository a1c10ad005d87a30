package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mazechase/internal/config"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    - 5 lives, small pack"},
	{config.DifficultyNormal, "Normal  - ramps up every level"},
	{config.DifficultyHard, "Hard    - 2 lives, fast pursuers"},
	{config.DifficultyFixed, "Fixed   - no level scaling"},
}

// Presetter is implemented by games that accept a per-run difficulty.
type Presetter interface {
	SetPreset(config.DifficultyPreset)
}

// DifficultyModel lets the player choose a difficulty preset.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    *config.DifficultyPreset
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector with Normal highlighted.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(difficultyOptions)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			p := difficultyOptions[m.cursor].preset
			m.chosen = &p
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the selector.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("D I F F I C U L T Y", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-34s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

// Chosen returns the selected preset, or nil while still choosing.
func (m DifficultyModel) Chosen() *config.DifficultyPreset {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector asks for a preset in the local terminal. It returns
// nil when the player backs out or quits.
func RunDifficultySelector(width, height int) (*config.DifficultyPreset, error) {
	p := tea.NewProgram(NewDifficultyModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := finalModel.(DifficultyModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Chosen(), nil
}
