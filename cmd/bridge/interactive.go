package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thewh1teagle/tauri/ipc"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cmdStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInput modelState = iota
	stateShowResult
)

type interactiveModel struct {
	err      error
	url      string
	bridge   *ipc.Bridge
	result   string
	lastCmd  string
	inputs   []textinput.Model
	focusIdx int
	state    modelState
}

type connectedMsg struct {
	err    error
	bridge *ipc.Bridge
}

type invokeResultMsg struct {
	err    error
	cmd    string
	result string
}

func newInteractiveModel(url string) *interactiveModel {
	cmdInput := textinput.New()
	cmdInput.Prompt = "command: "
	cmdInput.Placeholder = "plugin:app|version"
	cmdInput.Width = 60
	cmdInput.Focus()

	payloadInput := textinput.New()
	payloadInput.Prompt = "payload: "
	payloadInput.Placeholder = "{}"
	payloadInput.Width = 60

	return &interactiveModel{
		url:    url,
		inputs: []textinput.Model{cmdInput, payloadInput},
		state:  stateInput,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.connect
}

func (m *interactiveModel) connect() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := ipc.Dial(ctx, m.url)
	if err != nil {
		return connectedMsg{err: err}
	}
	return connectedMsg{bridge: ipc.New(t)}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.bridge != nil {
				m.bridge.Close()
			}
			return m, tea.Quit

		case "q":
			if m.state == stateShowResult {
				if m.bridge != nil {
					m.bridge.Close()
				}
				return m, tea.Quit
			}

		case "enter":
			switch m.state {
			case stateInput:
				return m, m.invoke
			case stateShowResult:
				m.state = stateInput
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInput {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			if m.state == stateShowResult {
				m.state = stateInput
				m.result = ""
				m.err = nil
			}
		}

	case connectedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.bridge = msg.bridge

	case invokeResultMsg:
		m.lastCmd = msg.cmd
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInput {
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

func (m *interactiveModel) invoke() tea.Msg {
	cmd := strings.TrimSpace(m.inputs[0].Value())
	if cmd == "" {
		return invokeResultMsg{err: fmt.Errorf("command is empty")}
	}
	if m.bridge == nil {
		return invokeResultMsg{cmd: cmd, err: fmt.Errorf("not connected")}
	}

	var args any
	if payload := strings.TrimSpace(m.inputs[1].Value()); payload != "" {
		var raw json.RawMessage
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			return invokeResultMsg{cmd: cmd, err: fmt.Errorf("parse payload: %w", err)}
		}
		args = raw
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	result, err := m.bridge.Invoke(ctx, cmd, args)
	if err != nil {
		return invokeResultMsg{cmd: cmd, err: err}
	}

	var pretty any
	if err := json.Unmarshal(result, &pretty); err == nil {
		out, _ := json.MarshalIndent(pretty, "", "  ")
		return invokeResultMsg{cmd: cmd, result: string(out)}
	}
	return invokeResultMsg{cmd: cmd, result: string(result)}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bridge Console"))
	b.WriteString(" ")
	b.WriteString(m.url)
	b.WriteString("\n\n")

	if m.err != nil && m.state != stateShowResult {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("ctrl+c quit"))
		return b.String()
	}

	if m.bridge == nil {
		b.WriteString("Connecting...")
		return b.String()
	}

	switch m.state {
	case stateInput:
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter invoke • ctrl+c quit"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", cmdStyle.Render(m.lastCmd)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(url string) error {
	p := tea.NewProgram(newInteractiveModel(url), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
