package main

import (
	"cardvalidator/internal/config"
	"cardvalidator/internal/validation"
	"cardvalidator/pkg/logger"
	"cardvalidator/pkg/luhn"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// formFocus is the element of the form holding focus.
type formFocus int

const (
	focusNone formFocus = iota
	focusNumber
	focusCvc
	focusSubmit
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle      = lipgloss.NewStyle().Width(8)
	fieldStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorFieldStyle = fieldStyle.BorderForeground(lipgloss.Color("9"))
	errorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	buttonStyle     = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("4"))
	activeButton    = buttonStyle.Underline(true).Bold(true)
	disabledButton  = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("8")).Strikethrough(true)
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
)

// formModel is the terminal counterpart of the card entry screen. The
// validation graph runs on the bubbletea update goroutine, so its outputs are
// written straight into state and read back by View.
type formModel struct {
	ctx   context.Context //nolint: containedctx
	graph *validation.Graph
	state *validation.State

	number textinput.Model
	cvc    textinput.Model
	focus  formFocus

	submitted bool
	err       error
}

func newFormModel(ctx context.Context, cfg *config.Config, opts ...validation.Option) (*formModel, error) {
	state := &validation.State{}
	g, err := validation.New(ctx, state, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create validation graph: %w", err)
	}

	number := textinput.New()
	number.Placeholder = "4532015112830366"
	number.CharLimit = cfg.Form.NumberCharLimit
	number.Width = cfg.Form.NumberCharLimit + 1
	number.Prompt = ""

	cvc := textinput.New()
	cvc.Placeholder = "123"
	cvc.CharLimit = cfg.Form.CvcCharLimit
	cvc.Width = cfg.Form.CvcCharLimit + 1
	cvc.Prompt = ""

	m := &formModel{
		ctx:    ctx,
		graph:  g,
		state:  state,
		number: number,
		cvc:    cvc,
	}
	m.setFocus(focusNumber)

	return m, nil
}

func (m *formModel) Init() tea.Cmd {
	return textinput.Blink
}

// report keeps the last graph error for display and logs it.
func (m *formModel) report(err error) {
	if err == nil {
		return
	}
	m.err = err
	logger.Warn(m.ctx, "form input rejected", zap.Error(err))
}

// setFocus blurs the current element before focusing next, in the order a
// platform toolkit delivers the two events.
func (m *formModel) setFocus(next formFocus) tea.Cmd {
	if next == m.focus {
		return nil
	}

	switch m.focus {
	case focusNumber:
		m.number.Blur()
		m.report(m.graph.NumberFocusChanged(false))
	case focusCvc:
		m.cvc.Blur()
		m.report(m.graph.CvcFocusChanged(false))
	case focusNone, focusSubmit:
	}

	m.focus = next
	var cmd tea.Cmd
	switch next {
	case focusNumber:
		cmd = m.number.Focus()
		m.report(m.graph.NumberFocusChanged(true))
	case focusCvc:
		cmd = m.cvc.Focus()
		m.report(m.graph.CvcFocusChanged(true))
	case focusNone, focusSubmit:
	}

	return cmd
}

func (m *formModel) cycleFocus(step int) tea.Cmd {
	next := int(m.focus) + step
	switch {
	case next > int(focusSubmit):
		next = int(focusNumber)
	case next < int(focusNumber):
		next = int(focusSubmit)
	}

	return m.setFocus(formFocus(next))
}

// updateInput forwards msg to input and pushes the new text through push. Text
// containing anything but digits is reverted.
func updateInput(input *textinput.Model, msg tea.Msg, push func(string) error) (tea.Cmd, error) {
	prev := input.Value()
	updated, cmd := input.Update(msg)
	*input = updated
	if input.Value() == prev {
		return cmd, nil
	}

	if _, err := luhn.ParseDigits(input.Value()); err != nil {
		input.SetValue(prev)

		return cmd, err
	}

	return cmd, push(input.Value())
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.cycleFocus(1)
		case "shift+tab", "up":
			return m, m.cycleFocus(-1)
		case "enter":
			if m.focus != focusSubmit {
				return m, m.cycleFocus(1)
			}
			if m.state.CanSubmit {
				logger.Info(m.ctx, "card submitted", zap.String("cardType", m.state.CardType))
				m.submitted = true
				// like tapping the button on a phone, submitting clears field focus
				return m, m.setFocus(focusNone)
			}

			return m, nil
		}
	}

	var (
		cmd tea.Cmd
		err error
	)
	switch m.focus {
	case focusNumber:
		cmd, err = updateInput(&m.number, msg, m.graph.NumberTextChanged)
	case focusCvc:
		cmd, err = updateInput(&m.cvc, msg, m.graph.CvcTextChanged)
	case focusNone, focusSubmit:
		return m, nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.err = nil
		m.submitted = false
	}
	m.report(err)

	return m, cmd
}

func (m *formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Card details"))
	b.WriteString("\n")

	field := func(label string, input textinput.Model, highlighted bool) string {
		style := fieldStyle
		if highlighted {
			style = errorFieldStyle
		}

		return lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(label), style.Render(input.View()))
	}
	b.WriteString(field("Number", m.number, m.state.NumberHighlighted))
	b.WriteString("\n")
	b.WriteString(field("CVC", m.cvc, m.state.CvcHighlighted))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Type") + m.state.CardType)
	b.WriteString("\n\n")

	switch {
	case !m.state.CanSubmit:
		b.WriteString(disabledButton.Render("Submit"))
	case m.focus == focusSubmit:
		b.WriteString(activeButton.Render("Submit"))
	default:
		b.WriteString(buttonStyle.Render("Submit"))
	}
	if m.submitted {
		b.WriteString("  submitted")
	}
	b.WriteString("\n\n")

	if m.state.ErrorText != "" {
		b.WriteString(errorTextStyle.Render(strings.TrimSuffix(m.state.ErrorText, "\n")))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorTextStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("tab/shift+tab: move focus • enter: next/submit • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// formCommand constructs the 'form' subcommand that runs an interactive card
// entry form in the terminal.
func formCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "form",
		Short:        "Runs an interactive card entry form",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			metrics, writeMetrics := getMetrics(ctx, cfg)
			defer writeMetrics()

			m, err := newFormModel(ctx, cfg, validation.WithMetrics(metrics))
			if err != nil {
				return err
			}
			defer m.graph.Close()

			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("could not run form: %w", err)
			}

			return nil
		},
	}

	return cmd
}
