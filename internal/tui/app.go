// internal/tui/app.go
//
// This is the full-screen converter. It uses bubbletea, which follows The Elm
// Architecture:
//
// 1. Model: the three input fields, the active language and the last result
// 2. Update: key presses move focus, toggle the language or fire a conversion
// 3. View: renders the inputs as three columns above the results panel
//
// Each enter press fires exactly one conversion, from the focused field.

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/logbook"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

// field identifies one of the three input columns
type field int

const (
	fieldFeet field = iota
	fieldArch
	fieldInches
	fieldCount
)

// source maps a column onto the conversion it triggers.
func (f field) source() measure.Source {
	switch f {
	case fieldArch:
		return measure.SourceArchitectural
	case fieldInches:
		return measure.SourceInches
	default:
		return measure.SourceFeet
	}
}

// label is the localized column heading.
func (f field) label() locale.Key {
	switch f {
	case fieldArch:
		return locale.ArchNotation
	case fieldInches:
		return locale.DecimalInches
	default:
		return locale.DecimalFeet
	}
}

func (f field) prompt() locale.Key {
	switch f {
	case fieldArch:
		return locale.ArchInput
	case fieldInches:
		return locale.DecimalInchesInput
	default:
		return locale.DecimalFeetInput
	}
}

// Options configures a new App.
type Options struct {
	Locale    locale.Locale
	ParseMode measure.ParseMode
	Logbook   *logbook.Logbook
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	locale    locale.Locale
	converter measure.Converter
	logbook   *logbook.Logbook

	inputs [fieldCount]textinput.Model
	focus  field

	// converted is set once the user has fired a trigger; source is that
	// trigger, result is nil when it failed and errKey names the message.
	converted bool
	source    field
	result    *measure.Result
	errKey    locale.Key

	keys keyMap
	help help.Model

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp creates a new App instance
func NewApp(opts Options) *App {
	loc := opts.Locale
	if loc == "" {
		loc = locale.Default
	}
	app := &App{
		locale:    loc,
		converter: measure.Converter{Mode: opts.ParseMode},
		logbook:   opts.Logbook,
		keys:      newKeyMap(loc),
		help:      help.New(),
	}
	for f := field(0); f < fieldCount; f++ {
		in := textinput.New()
		in.CharLimit = 32
		in.Width = 20
		in.Prompt = "› "
		if f == fieldArch {
			in.Placeholder = `5'-3 8/16"`
		} else {
			in.Placeholder = "0.000"
		}
		app.inputs[f] = in
	}
	app.inputs[fieldFeet].Focus()
	app.logInfo("Session opened · language: %s · parser: %s", loc.Code(), opts.ParseMode)
	return app
}

// Locale returns the language currently rendered.
func (a *App) Locale() locale.Locale { return a.locale }

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.windowTitle())
}

func (a *App) windowTitle() tea.Cmd {
	return tea.SetWindowTitle(a.locale.Text(locale.PageTitle))
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.logInfo("Session closed")
			return a, tea.Quit
		case key.Matches(msg, a.keys.Language):
			a.locale = a.locale.Toggle()
			a.keys = newKeyMap(a.locale)
			a.logInfo("Language switched to %s", a.locale.Code())
			return a, a.windowTitle()
		case key.Matches(msg, a.keys.Next):
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case key.Matches(msg, a.keys.Prev):
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case key.Matches(msg, a.keys.Convert):
			a.convert(a.focus)
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) setFocus(f field) tea.Cmd {
	a.inputs[a.focus].Blur()
	a.focus = f
	return a.inputs[f].Focus()
}

// convert fires the trigger for one column. Earlier results are discarded so
// the panel only ever shows the outcome of this trigger.
func (a *App) convert(from field) {
	a.converted = true
	a.source = from
	a.result = nil
	a.errKey = ""

	req, err := a.buildRequest(from)
	if err != nil {
		a.errKey = locale.InvalidNumber
		a.logWarn("Rejected %s input %q: %v", from.source(), a.inputs[from].Value(), err)
		return
	}

	res, err := a.converter.Convert(req)
	if err != nil {
		a.errKey = errorKey(err)
		a.logWarn("Conversion from %s failed: %v", from.source(), err)
		return
	}
	a.result = &res
	a.logInfo("Converted from %s: %s | %s | %s", res.Source, res.FeetText(), res.Architectural, res.InchesText())
}

func (a *App) buildRequest(from field) (measure.Request, error) {
	var feet, inches float64
	var err error
	switch from {
	case fieldFeet:
		feet, err = parseNumber(a.inputs[fieldFeet].Value())
	case fieldInches:
		inches, err = parseNumber(a.inputs[fieldInches].Value())
	}
	if err != nil {
		return measure.Request{}, err
	}
	return measure.NewRequest(from.source(), feet, a.inputs[fieldArch].Value(), inches), nil
}

// parseNumber reads a numeric field. An empty field counts as zero.
func parseNumber(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, measure.ErrInvalidInput
	}
	return v, nil
}

func errorKey(err error) locale.Key {
	if errors.Is(err, measure.ErrInvalidFormat) {
		return locale.InvalidArch
	}
	return locale.InvalidNumber
}
