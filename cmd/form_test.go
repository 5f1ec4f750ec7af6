package main

import (
	"cardvalidator/internal/config"
	"cardvalidator/pkg/serrors"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T) *formModel {
	t.Helper()
	cfg := &config.Config{}
	cfg.Form.NumberCharLimit = 19
	cfg.Form.CvcCharLimit = 4

	m, err := newFormModel(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(m.graph.Close)

	return m
}

func typeText(m *formModel, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFormSubmitFlow(t *testing.T) {
	m := newTestForm(t)
	require.Equal(t, focusNumber, m.focus)
	require.Equal(t, "UNKNOWN", m.state.CardType)

	typeText(m, "4532015112830366")
	require.Equal(t, "VISA", m.state.CardType)
	require.False(t, m.state.NumberHighlighted)
	require.False(t, m.state.CanSubmit)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusCvc, m.focus)
	require.False(t, m.state.NumberHighlighted)

	typeText(m, "12a")
	require.Equal(t, "12", m.cvc.Value(), "non-digits are reverted")
	require.ErrorIs(t, m.err, serrors.ErrInvalidInput)

	typeText(m, "3")
	require.NoError(t, m.err)
	require.True(t, m.state.CanSubmit)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusSubmit, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.submitted)
	require.Equal(t, focusNone, m.focus)

	require.Contains(t, m.View(), "VISA")
}

func TestFormHighlightsAfterLeavingField(t *testing.T) {
	m := newTestForm(t)

	typeText(m, "1234")
	require.False(t, m.state.NumberHighlighted, "no highlight while typing")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, focusCvc, m.focus)
	require.True(t, m.state.NumberHighlighted)
	require.Contains(t, m.View(), "Invalid checksum")

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, focusNumber, m.focus)
	require.False(t, m.state.NumberHighlighted)
	require.True(t, m.state.CvcHighlighted, "cvc was left empty")
}

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "a.yml"}, configArgs([]string{"check", "-c", "a.yml", "--number", "4"}))
	require.Equal(t, []string{"-c", "b.yml"}, configArgs([]string{"--config", "b.yml", "form"}))
	require.Equal(t, []string{"-c=d.yml"}, configArgs([]string{"--config=d.yml"}))
	require.Equal(t, []string{"-c=e.yml"}, configArgs([]string{"-c=e.yml", "replay", "x"}))
	require.Nil(t, configArgs([]string{"check", "--number", "4"}))
}
