package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type echoMsg string

type counterModel struct {
	keys []string
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return echoMsg("init") }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		return m, func() tea.Msg { return echoMsg(msg.String()) }
	case echoMsg:
		m.keys = append(m.keys, "echo:"+string(msg))
	}
	return m, nil
}

func (m counterModel) View() string {
	return "\x1b[1mkeys\x1b[0m"
}

func TestHarness_InitCommandCaptured(t *testing.T) {
	h := NewHarness(counterModel{})
	if got := len(h.Commands()); got != 1 {
		t.Fatalf("len(Commands()) = %d, want 1", got)
	}
	msg, _ := h.ExecuteAndSend(h.Commands()[0])
	if msg != echoMsg("init") {
		t.Errorf("ExecuteAndSend msg = %v, want init", msg)
	}
}

func TestHarness_SendKeys(t *testing.T) {
	h := NewHarness(counterModel{})
	h.ClearCommands()

	h.SendKey("q")
	h.SendSpecialKey(tea.KeySpace)

	m := h.Model().(counterModel)
	if len(m.keys) != 2 || m.keys[0] != "q" {
		t.Errorf("keys = %v, want q then space", m.keys)
	}
	if got := len(h.Commands()); got != 2 {
		t.Errorf("len(Commands()) = %d, want 2", got)
	}
}

func TestHarness_ViewContains(t *testing.T) {
	h := NewHarness(counterModel{})
	if !h.ViewContains("keys") {
		t.Error("ViewContains(keys) = false, want true")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if got := ExecuteCmd(nil); got != nil {
		t.Errorf("ExecuteCmd(nil) = %v, want nil", got)
	}
}
