// Package setup is the interactive configurator. It asks for whatever the
// command line left out: the directory, the language and the standard.
package setup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mibal-ua/cyrillic-file-renamer/internal/transliteration"
)

// ErrAborted is returned by Run when the user quits the wizard.
var ErrAborted = errors.New("setup aborted")

type step int

const (
	stepPath step = iota
	stepLanguage
	stepStandard
	stepConfirm
	stepDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Config is what the wizard collects. Zero fields are asked for.
type Config struct {
	Path     string
	Language string
	Standard string
}

func (c Config) Complete() bool {
	return c.Path != "" && c.Language != "" && c.Standard != ""
}

// Variant parses the collected language and standard.
func (c Config) Variant() (transliteration.Variant, error) {
	return transliteration.ParseVariant(c.Language, c.Standard)
}

type model struct {
	step      step
	cfg       Config
	textInput textinput.Model
	err       error
	aborted   bool
	// pathExample is shown as the placeholder, e.g. /Users/home/path/to/catalog/.
	pathExample string
}

func newModel(cfg Config) model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 60

	m := model{
		cfg:         cfg,
		textInput:   ti,
		pathExample: pathExample(),
	}
	m.step = m.nextStep(stepPath)
	m.prepareInput()
	return m
}

func pathExample() string {
	if filepath.Separator == '\\' {
		return `C:\Users\home\path\to\catalog\`
	}
	return "/Users/home/path/to/catalog/"
}

// nextStep returns the first step at or after from that still needs input.
func (m model) nextStep(from step) step {
	for s := from; s < stepConfirm; s++ {
		switch {
		case s == stepPath && m.cfg.Path == "",
			s == stepLanguage && m.cfg.Language == "",
			s == stepStandard && m.cfg.Standard == "":
			return s
		}
	}
	return stepConfirm
}

func (m *model) prepareInput() {
	m.textInput.SetValue("")
	switch m.step {
	case stepPath:
		m.textInput.Placeholder = m.pathExample
	case stepLanguage:
		m.textInput.Placeholder = "ua or ru"
	case stepStandard:
		m.textInput.Placeholder = "official or extended"
	case stepConfirm:
		m.textInput.Placeholder = "Y/n"
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	m.err = nil
	value := strings.TrimSpace(m.textInput.Value())

	switch m.step {
	case stepPath:
		if value == "" {
			m.err = errors.New("a directory is required")
			return m, nil
		}
		info, err := os.Stat(value)
		if err != nil {
			m.err = fmt.Errorf("cannot open %s", value)
			return m, nil
		}
		if !info.IsDir() {
			m.err = fmt.Errorf("%s is not a directory", value)
			return m, nil
		}
		m.cfg.Path = value

	case stepLanguage:
		if _, err := transliteration.ParseLanguage(value); err != nil {
			m.err = errors.New("please enter ua for Ukrainian or ru for Russian")
			return m, nil
		}
		m.cfg.Language = strings.ToLower(value)

	case stepStandard:
		if _, err := transliteration.ParseStandard(value); err != nil {
			m.err = errors.New("please enter official or extended")
			return m, nil
		}
		m.cfg.Standard = strings.ToLower(value)

	case stepConfirm:
		switch strings.ToLower(value) {
		case "", "y", "yes":
			m.step = stepDone
			return m, tea.Quit
		case "n", "no":
			m.cfg = Config{}
			m.step = stepPath
			m.prepareInput()
			return m, nil
		default:
			m.err = errors.New("please answer y or n")
			return m, nil
		}
	}

	m.step = m.nextStep(m.step + 1)
	m.prepareInput()
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	switch m.step {
	case stepPath:
		s.WriteString(titleStyle.Render("Step 1: Directory"))
		s.WriteString("\n\n")
		s.WriteString("Files directly inside this directory are copied into\n")
		s.WriteString("a renamedToLatin subdirectory under their Latin names.\n\n")
		s.WriteString(labelStyle.Render("Enter the path to the directory:"))

	case stepLanguage:
		s.WriteString(titleStyle.Render("Step 2: Language"))
		s.WriteString("\n\n")
		s.WriteString("  ua  Ukrainian\n")
		s.WriteString("  ru  Russian\n\n")
		s.WriteString(labelStyle.Render("Which language are the file names in?"))

	case stepStandard:
		s.WriteString(titleStyle.Render("Step 3: Transliteration standard"))
		s.WriteString("\n\n")
		s.WriteString("  official  legal rules used for passports and documents\n")
		s.WriteString("  extended  phonetic rules that follow the pronunciation\n\n")
		s.WriteString(labelStyle.Render("Which standard should be used?"))

	case stepConfirm, stepDone:
		s.WriteString(titleStyle.Render("Configuration"))
		s.WriteString("\n\n")
		s.WriteString("  Directory: " + successStyle.Render(m.cfg.Path) + "\n")
		s.WriteString("  Language:  " + successStyle.Render(m.cfg.Language) + "\n")
		s.WriteString("  Standard:  " + successStyle.Render(m.cfg.Standard) + "\n\n")
		s.WriteString(labelStyle.Render("Start renaming? [Y/n]:"))
	}

	if m.step != stepDone {
		s.WriteString("\n")
		s.WriteString(m.textInput.View())
	}
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render(m.err.Error()))
	}
	s.WriteString("\n\n")
	s.WriteString(dimStyle.Render("Enter to continue, Esc or Ctrl+C to quit"))
	s.WriteString("\n")
	return s.String()
}

// Run asks for the fields cfg is missing and returns the completed Config.
// A complete cfg is returned as is without starting the terminal UI.
func Run(cfg Config) (Config, error) {
	if cfg.Complete() {
		return cfg, nil
	}
	return run(cfg)
}

// Confirm always starts the wizard, so even a complete cfg is shown for
// confirmation before it is used.
func Confirm(cfg Config) (Config, error) {
	return run(cfg)
}

func run(cfg Config) (Config, error) {
	p := tea.NewProgram(newModel(cfg))
	finalModel, err := p.Run()
	if err != nil {
		return Config{}, fmt.Errorf("running setup: %w", err)
	}

	m := finalModel.(model)
	if m.aborted || m.step != stepDone {
		return Config{}, ErrAborted
	}
	return m.cfg, nil
}
