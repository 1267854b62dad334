// SPDX-License-Identifier: EPL-2.0

// Package prompt asks for the codec mode and input path in the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrAborted = errors.New("prompt aborted")

const (
	ModeCompress = "compress"
	ModeRestore  = "restore"
)

var modes = []string{ModeCompress, ModeRestore}

type step int

const (
	stepMode step = iota
	stepPath
	stepDone
)

// Answers is what the user picked.
type Answers struct {
	Mode string
	Path string
}

// Model is the bubbletea model behind Run.
type Model struct {
	step    step
	cursor  int
	mode    string
	path    []rune
	errMsg  string
	aborted bool
}

// NewModel starts at the first question that has no preset answer.
func NewModel(mode, path string) Model {
	m := Model{mode: mode, path: []rune(path)}
	for i, name := range modes {
		if name == mode {
			m.cursor = i
		}
	}
	switch {
	case mode == "":
		m.step = stepMode
	case path == "":
		m.step = stepPath
	default:
		m.step = stepDone
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.step == stepDone {
		return tea.Quit
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}

	switch m.step {
	case stepMode:
		return m.updateMode(key)
	case stepPath:
		return m.updatePath(key)
	}
	return m, nil
}

func (m Model) updateMode(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(modes)-1 {
			m.cursor++
		}
		return m, nil
	case "c":
		m.cursor = 0
	case "r":
		m.cursor = 1
	case "enter":
	default:
		return m, nil
	}

	m.mode = modes[m.cursor]
	if len(m.path) > 0 {
		m.step = stepDone
		return m, tea.Quit
	}
	m.step = stepPath
	return m, nil
}

func (m Model) updatePath(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		if strings.TrimSpace(string(m.path)) == "" {
			m.errMsg = "path must not be empty"
			return m, nil
		}
		m.step = stepDone
		return m, tea.Quit
	case tea.KeyBackspace:
		if len(m.path) > 0 {
			m.path = m.path[:len(m.path)-1]
		}
	case tea.KeySpace:
		m.path = append(m.path, ' ')
	case tea.KeyRunes:
		m.path = append(m.path, key.Runes...)
	}
	m.errMsg = ""
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	switch m.step {
	case stepMode:
		b.WriteString("Mode:\n")
		for i, name := range modes {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%s\n", cursor, name)
		}
		b.WriteString("\n(up/down, enter, c/r, esc to quit)\n")
	case stepPath:
		label := "Input audio file"
		if m.mode == ModeRestore {
			label = "Compressed .bin file"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, string(m.path))
		if m.errMsg != "" {
			fmt.Fprintf(&b, "%s\n", m.errMsg)
		}
	}

	return b.String()
}

// Answers returns the picked mode and path, or ErrAborted.
func (m Model) Answers() (Answers, error) {
	if m.aborted || m.step != stepDone {
		return Answers{}, ErrAborted
	}
	return Answers{Mode: m.mode, Path: strings.TrimSpace(string(m.path))}, nil
}

// Run asks for whatever of mode and path is empty, reading keys from in and
// drawing to out.
func Run(in io.Reader, out io.Writer, mode, path string) (Answers, error) {
	p := tea.NewProgram(NewModel(mode, path), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return Answers{}, fmt.Errorf("prompt: %w", err)
	}
	return final.(Model).Answers()
}
