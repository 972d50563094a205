package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/gofundme/internal/config"
	"github.com/jask/gofundme/internal/donation"
)

// App is the donation form. Every input is controlled: after each edit the
// form's draft is written back into the widgets.
type App struct {
	ctx       context.Context
	log       zerolog.Logger
	submitter donation.Submitter
	form      *donation.Form

	name    textinput.Model
	caption textinput.Model
	amount  slider
	focus   focusField

	// in-flight submission
	sending bool
	seq     int

	status   string
	statusOK bool
	currency string
	subtitle string
}

type focusField int

const (
	focusName focusField = iota
	focusCaption
	focusAmount
	focusDonate
	focusCount
)

const (
	appTitle           = "Go Fund Me"
	namePlaceholder    = "Jon Doe"
	captionPlaceholder = "Good luck"
)

// New builds the form. A nil submitter accepts donations locally.
func New(ctx context.Context, cfg config.Config, submitter donation.Submitter, log zerolog.Logger) *App {
	if submitter == nil {
		submitter = donation.LocalSubmitter{}
	}
	bounds := donation.Range{Min: cfg.Donation.Min, Max: cfg.Donation.Max, Step: cfg.Donation.Step}
	def := cfg.Donation.Default
	if cfg.Donation == (config.DonationConfig{}) {
		bounds, def = donation.DefaultRange, donation.DefaultAmount
	}
	currency := cfg.UI.CurrencySymbol
	if currency == "" {
		currency = "$"
	}
	form := donation.NewForm(bounds, def)

	a := &App{
		ctx:       ctx,
		log:       log,
		submitter: submitter,
		form:      form,
		name:      newTextInput(namePlaceholder),
		caption:   newTextInput(captionPlaceholder),
		amount:    newSlider(form.Bounds()),
		currency:  currency,
		subtitle:  strings.TrimSpace(cfg.UI.Subtitle),
	}
	a.setFocus(focusName)
	return a
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Form exposes the underlying form state.
func (a *App) Form() *donation.Form { return a.form }

// Sending reports whether a submission is in flight.
func (a *App) Sending() bool { return a.sending }

// Status returns the current status line.
func (a *App) Status() string { return a.status }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.WindowSizeMsg:
		w := m.Width - 4
		if w < 10 {
			w = 10
		}
		a.name.Width = w
		a.caption.Width = w
	case submittedMsg:
		return a.handleSubmitted(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	}
	if a.sending {
		return a, nil
	}
	switch m.String() {
	case "tab", "down":
		a.setFocus((a.focus + 1) % focusCount)
		return a, nil
	case "shift+tab", "up":
		a.setFocus((a.focus + focusCount - 1) % focusCount)
		return a, nil
	case "ctrl+s":
		return a, a.submit()
	case "enter":
		if a.focus == focusDonate {
			return a, a.submit()
		}
		a.setFocus(a.focus + 1)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusName:
		a.name, cmd = a.name.Update(m)
		a.form.SetName(a.name.Value())
	case focusCaption:
		a.caption, cmd = a.caption.Update(m)
		a.form.SetCaption(a.caption.Value())
	case focusAmount:
		if raw, ok := a.amount.handleKey(m, a.form.AmountValue()); ok {
			a.form.SetAmount(raw)
		}
	case focusDonate:
		if m.Type == tea.KeySpace {
			return a, a.submit()
		}
	}
	a.sync()
	return a, cmd
}

// sync writes the draft back into the inputs so the widgets never hold a
// value the form does not.
func (a *App) sync() {
	d := a.form.Draft()
	if a.name.Value() != d.Name {
		a.name.SetValue(d.Name)
	}
	if a.caption.Value() != d.Caption {
		a.caption.SetValue(d.Caption)
	}
}

func (a *App) setFocus(f focusField) {
	a.focus = f
	a.name.Blur()
	a.caption.Blur()
	if f != focusAmount {
		a.amount.blur()
	}
	switch f {
	case focusName:
		a.name.Focus()
	case focusCaption:
		a.caption.Focus()
	}
}

func (a *App) submit() tea.Cmd {
	if a.sending {
		return nil
	}
	rec := a.form.Snapshot()
	a.seq++
	a.sending = true
	a.status = "sending…"
	a.statusOK = true
	a.log.Debug().Str("donation_id", rec.ID).Int("amount", rec.Amount).Int("seq", a.seq).Msg("submitting donation")
	return submitCmd(a.ctx, a.submitter, a.seq, rec)
}

func submitCmd(ctx context.Context, sub donation.Submitter, seq int, rec donation.Record) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{seq: seq, record: rec, err: sub.Submit(ctx, rec)}
	}
}

func (a *App) handleSubmitted(m submittedMsg) (tea.Model, tea.Cmd) {
	if !a.sending || m.seq != a.seq {
		a.log.Debug().Int("seq", m.seq).Int("current", a.seq).Msg("dropping stale submission result")
		return a, nil
	}
	a.sending = false
	if m.err != nil {
		a.status = "error: " + m.err.Error()
		a.statusOK = false
		a.log.Warn().Err(m.err).Str("donation_id", m.record.ID).Msg("donation not accepted")
		return a, nil
	}

	prev, repeat := donation.FindRepeat(a.form.History(), m.record)
	a.form.Commit(m.record)
	a.sync()
	a.amount.blur()
	a.statusOK = true
	if repeat {
		a.status = fmt.Sprintf("Thanks again, %s!", strings.TrimSpace(prev.DonorName))
	} else {
		a.status = "Thank you!"
	}
	a.log.Info().Str("donation_id", m.record.ID).Int("amount", m.record.Amount).Bool("repeat", repeat).Msg("donation accepted")
	return a, nil
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n")
	if a.subtitle != "" {
		b.WriteString(hintStyle.Render(a.subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(a.name.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Caption"))
	b.WriteString("\n")
	b.WriteString(a.caption.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Amount"))
	b.WriteString("\n")
	b.WriteString(a.amount.view(a.form.AmountValue(), a.currency, a.focus == focusAmount))
	b.WriteString("\n")

	btn := buttonStyle
	if a.focus == focusDonate {
		btn = buttonFocusStyle
	}
	b.WriteString(btn.Render("Donate"))
	b.WriteString("\n")

	if a.status != "" {
		if a.statusOK {
			b.WriteString(a.status)
		} else {
			b.WriteString(errorStyle.Render(a.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("Recent donations (%d)", a.form.Count())))
	b.WriteString("\n")
	history := a.form.History()
	if len(history) == 0 {
		b.WriteString(hintStyle.Render("No donations yet."))
		b.WriteString("\n")
	}
	for _, r := range history {
		b.WriteString(headlineStyle.Render(r.Headline(a.currency)))
		b.WriteString("\n")
		if r.Caption != "" {
			b.WriteString(captionStyle.Render(r.Caption))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("[tab] Next  [←/→] Amount  [ctrl+s] Donate  [esc] Quit"))
	return b.String()
}
