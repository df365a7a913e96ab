package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/binpack/pack"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	presetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	templateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectPreset modelState = iota
	stateEditRequest
	stateShowResult
)

type interactiveModel struct {
	err      error
	presets  []Preset
	inputs   []textinput.Model // 0: template, 1: values or hex
	result   string
	selected int
	focusIdx int
	unpack   bool
	state    modelState
}

type runResultMsg struct {
	err    error
	result string
}

func newInteractiveModel(presets *PresetSet) *interactiveModel {
	list := append([]Preset{{Name: "custom", Description: "start from an empty template"}}, presets.Sorted()...)
	return &interactiveModel{
		presets: list,
		state:   stateSelectPreset,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			// Plain q quits only outside text entry.
			if m.state != stateEditRequest {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectPreset && m.selected > 0 {
				m.selected--
			}
			if m.state == stateSelectPreset {
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectPreset && m.selected < len(m.presets)-1 {
				m.selected++
			}
			if m.state == stateSelectPreset {
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectPreset:
				m.prepareInputs()
				m.state = stateEditRequest
				return m, nil
			case stateEditRequest:
				return m, m.runRequest
			case stateShowResult:
				m.state = stateEditRequest
				m.result = ""
				m.err = nil
				return m, nil
			}

		case "tab":
			if m.state == stateEditRequest {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "ctrl+t":
			if m.state == stateEditRequest {
				m.unpack = !m.unpack
				m.inputs[1].Placeholder = m.dataPlaceholder()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateEditRequest:
				m.state = stateSelectPreset
				m.inputs = nil
			case stateShowResult:
				m.state = stateEditRequest
				m.result = ""
				m.err = nil
			}
			return m, nil
		}

	case runResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateEditRequest {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	p := m.presets[m.selected]

	tmpl := textinput.New()
	tmpl.Prompt = "template: "
	tmpl.Placeholder = "n2 A8"
	tmpl.SetValue(p.Template)
	tmpl.Width = 40

	data := textinput.New()
	data.Prompt = "input: "
	data.Placeholder = m.dataPlaceholder()
	data.Width = 60
	data.Focus()

	m.inputs = []textinput.Model{tmpl, data}
	m.focusIdx = 1
}

func (m *interactiveModel) dataPlaceholder() string {
	if m.unpack {
		return "hex bytes, e.g. 0102dead"
	}
	return `values, e.g. 1, 2, "name"`
}

func (m *interactiveModel) runRequest() tea.Msg {
	template := m.inputs[0].Value()
	input := m.inputs[1].Value()

	if m.unpack {
		data, err := hex.DecodeString(strings.Map(dropSpace, input))
		if err != nil {
			return runResultMsg{err: fmt.Errorf("decode hex input: %w", err)}
		}
		values, err := pack.Unpack(data, template)
		if err != nil {
			return runResultMsg{err: err}
		}
		var b strings.Builder
		for i, v := range values {
			fmt.Fprintf(&b, "[%d] %s\n", i, formatValue(v))
		}
		if len(values) == 0 {
			b.WriteString("(no values)")
		}
		return runResultMsg{result: b.String()}
	}

	buf, err := pack.Pack(parseValues(input), template)
	if err != nil {
		return runResultMsg{err: err}
	}
	return runResultMsg{result: fmt.Sprintf("hex: %s\nraw: %q", hex.EncodeToString(buf), buf)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Binary Packer"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectPreset:
		b.WriteString("Select a template preset:\n\n")
		for i, p := range m.presets {
			line := m.formatPreset(p)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter edit • q quit"))

	case stateEditRequest:
		mode := "pack"
		if m.unpack {
			mode = "unpack"
		}
		b.WriteString(fmt.Sprintf("Mode: %s\n\n", presetStyle.Render(mode)))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • ctrl+t pack/unpack • enter run • esc back"))

	case stateShowResult:
		b.WriteString("Result:\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter edit again • esc back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatPreset(p Preset) string {
	name := presetStyle.Render(fmt.Sprintf("%-10s", p.Name))
	tmpl := templateStyle.Render(fmt.Sprintf("%-8s", p.Template))
	return name + " " + tmpl + " " + p.Description
}

func runInteractive(presetsPath string) error {
	presets, err := loadPresets(presetsPath)
	if err != nil {
		return err
	}
	p := tea.NewProgram(newInteractiveModel(presets), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
