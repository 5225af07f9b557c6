package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/binpack/packer"
	"github.com/wippyai/binpack/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputTemplate = iota
	inputValues
	inputHex
)

// evaluation is what the model shows for the current inputs.
type evaluation struct {
	canonical string
	witType   string
	packed    string
	unpacked  string
	err       error
}

type interactiveModel struct {
	codec    *packer.Codec
	inputs   []textinput.Model
	focusIdx int
	eval     evaluation
}

func newInteractiveModel(codec *packer.Codec) *interactiveModel {
	prompts := []struct{ prompt, placeholder string }{
		inputTemplate: {"template: ", "n C a4"},
		inputValues:   {"values:   ", "513 7 abc"},
		inputHex:      {"unpack:   ", "hex bytes (empty: unpack the packed result)"},
	}
	m := &interactiveModel{codec: codec}
	for i, p := range prompts {
		ti := textinput.New()
		ti.Prompt = p.prompt
		ti.Placeholder = p.placeholder
		ti.Width = 60
		if i == inputTemplate {
			ti.Focus()
		}
		m.inputs = append(m.inputs, ti)
	}
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down", "shift+tab", "up":
			m.inputs[m.focusIdx].Blur()
			step := 1
			if s := key.String(); s == "shift+tab" || s == "up" {
				step = len(m.inputs) - 1
			}
			m.focusIdx = (m.focusIdx + step) % len(m.inputs)
			return m, m.inputs[m.focusIdx].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	m.eval = m.evaluate()
	return m, cmd
}

// evaluate parses the template, packs the values and unpacks either the
// packed bytes or the hex input.
func (m *interactiveModel) evaluate() evaluation {
	var ev evaluation
	format := m.inputs[inputTemplate].Value()
	if strings.TrimSpace(format) == "" {
		return ev
	}

	t, err := m.codec.Parse(format)
	if err != nil {
		ev.err = err
		return ev
	}
	ev.canonical = t.String()
	if ty, err := schema.Describe(t); err == nil {
		ev.witType = schema.TypeString(ty)
	}

	vals, err := parseValues(strings.Fields(m.inputs[inputValues].Value()))
	if err != nil {
		ev.err = err
		return ev
	}
	packed, err := m.codec.PackTemplate(t, vals)
	if err != nil {
		ev.err = err
		return ev
	}
	ev.packed = hex.EncodeToString(packed)

	data := packed
	if h := strings.Join(strings.Fields(m.inputs[inputHex].Value()), ""); h != "" {
		data, err = hex.DecodeString(h)
		if err != nil {
			ev.err = fmt.Errorf("decode hex: %w", err)
			return ev
		}
	}
	unpacked, err := m.codec.UnpackTemplate(t, data)
	if err != nil {
		ev.err = err
		return ev
	}
	ev.unpacked = formatValues(unpacked)
	return ev
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("binpack"))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(fmt.Sprintf("native order %s", nativeOrder(m.codec))))
	b.WriteString("\n\n")

	for _, input := range m.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	ev := m.eval
	if ev.canonical != "" {
		b.WriteString(labelStyle.Render("directives: "))
		b.WriteString(ev.canonical)
		b.WriteString("\n")
	}
	if ev.witType != "" {
		b.WriteString(labelStyle.Render("wit:        "))
		b.WriteString(typeStyle.Render(ev.witType))
		b.WriteString("\n")
	}
	if ev.packed != "" || (ev.err == nil && ev.canonical != "") {
		b.WriteString(labelStyle.Render("packed:     "))
		b.WriteString(resultStyle.Render(ev.packed))
		b.WriteString("\n")
	}
	if ev.unpacked != "" {
		b.WriteString(labelStyle.Render("unpacked:   "))
		b.WriteString(resultStyle.Render(ev.unpacked))
		b.WriteString("\n")
	}
	if ev.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", ev.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↓ next field • shift+tab/↑ previous • esc quit"))
	return b.String()
}

func nativeOrder(c *packer.Codec) string {
	if c.Platform().LittleEndian {
		return "little"
	}
	return "big"
}

func runInteractive(codec *packer.Codec) error {
	p := tea.NewProgram(newInteractiveModel(codec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
