package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/logbook"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

func newTestApp(t *testing.T, opts Options) *App {
	t.Helper()
	if opts.Logbook == nil {
		lb, err := logbook.New(filepath.Join(t.TempDir(), "conversions.log"))
		if err != nil {
			t.Fatalf("new logbook: %v", err)
		}
		opts.Logbook = lb
	}
	return NewApp(opts)
}

func send(t *testing.T, app *App, msg tea.Msg) *App {
	t.Helper()
	model, _ := app.Update(msg)
	next, ok := model.(*App)
	if !ok {
		t.Fatalf("expected *App model, got %T", model)
	}
	return next
}

func typeText(t *testing.T, app *App, text string) *App {
	t.Helper()
	return send(t, app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressKey(t *testing.T, app *App, kt tea.KeyType) *App {
	t.Helper()
	return send(t, app, tea.KeyMsg{Type: kt})
}

func TestConvertFromDecimalFeet(t *testing.T) {
	app := newTestApp(t, Options{})
	app = typeText(t, app, "5.25")
	app = pressKey(t, app, tea.KeyEnter)

	if app.result == nil {
		t.Fatalf("expected a result, got error key %q", app.errKey)
	}
	if app.result.Source != measure.SourceFeet {
		t.Fatalf("source = %s, want feet", app.result.Source)
	}
	view := app.View()
	for _, want := range []string{"5.250 ft", `5'-3"`, `63.000"`, "Converting from Decimal Feet"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTabMovesFocusAndSelectsTrigger(t *testing.T) {
	app := newTestApp(t, Options{})
	app = pressKey(t, app, tea.KeyTab)
	app = pressKey(t, app, tea.KeyTab)
	if app.focus != fieldInches {
		t.Fatalf("focus = %d, want inches", app.focus)
	}
	app = typeText(t, app, "63")
	app = pressKey(t, app, tea.KeyEnter)
	if app.result == nil || app.result.Source != measure.SourceInches {
		t.Fatalf("expected inches result, got %+v", app.result)
	}
	if app.result.Architectural != `5'-3"` {
		t.Fatalf("architectural = %q", app.result.Architectural)
	}

	app = pressKey(t, app, tea.KeyShiftTab)
	if app.focus != fieldArch {
		t.Fatalf("focus = %d, want arch after shift+tab", app.focus)
	}
	app = pressKey(t, app, tea.KeyTab)
	app = pressKey(t, app, tea.KeyTab)
	if app.focus != fieldFeet {
		t.Fatalf("focus should wrap to feet, got %d", app.focus)
	}
}

func TestArchitecturalConversion(t *testing.T) {
	app := newTestApp(t, Options{})
	app = pressKey(t, app, tea.KeyTab)
	app.inputs[fieldArch].SetValue(`5'-3 8/16"`)
	app = pressKey(t, app, tea.KeyEnter)
	if app.result == nil {
		t.Fatalf("expected result, got error key %q", app.errKey)
	}
	if got := app.result.FeetText(); got != "5.292 ft" {
		t.Fatalf("feet = %s, want 5.292 ft", got)
	}
	if got := app.result.InchesText(); got != `63.500"` {
		t.Fatalf("inches = %s", got)
	}
}

func TestInvalidArchitecturalShowsOnlyMessage(t *testing.T) {
	app := newTestApp(t, Options{})
	app = typeText(t, app, "2")
	app = pressKey(t, app, tea.KeyEnter)
	if app.result == nil {
		t.Fatalf("expected first conversion to succeed")
	}

	app = pressKey(t, app, tea.KeyTab)
	app = typeText(t, app, "garbage")
	app = pressKey(t, app, tea.KeyEnter)
	if app.result != nil {
		t.Fatalf("failed conversion must clear previous result")
	}
	if app.errKey != locale.InvalidArch {
		t.Fatalf("error key = %q, want %q", app.errKey, locale.InvalidArch)
	}
	view := app.View()
	if !strings.Contains(view, "Invalid architectural") {
		t.Fatalf("view missing error message:\n%s", view)
	}
	if strings.Contains(view, "2.000 ft") {
		t.Fatalf("view should not render metrics after a failure:\n%s", view)
	}

	lines, _ := app.logbook.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN") {
		t.Fatalf("expected warning logged, got %v", lines)
	}
}

func TestLenientModeAcceptsGarbage(t *testing.T) {
	app := newTestApp(t, Options{ParseMode: measure.ModeLenient})
	app = pressKey(t, app, tea.KeyTab)
	app = typeText(t, app, "garbage")
	app = pressKey(t, app, tea.KeyEnter)
	if app.result == nil || app.result.Feet != 0 {
		t.Fatalf("lenient parse should yield zero, got %+v err %q", app.result, app.errKey)
	}
}

func TestInvalidNumberShowsMessage(t *testing.T) {
	app := newTestApp(t, Options{})
	app = typeText(t, app, "abc")
	app = pressKey(t, app, tea.KeyEnter)
	if app.result != nil || app.errKey != locale.InvalidNumber {
		t.Fatalf("expected invalid number, got result %+v key %q", app.result, app.errKey)
	}
}

func TestEmptyNumericFieldConvertsZero(t *testing.T) {
	app := newTestApp(t, Options{})
	app = pressKey(t, app, tea.KeyEnter)
	if app.result == nil || app.result.Architectural != "0'" {
		t.Fatalf("expected 0' result, got %+v", app.result)
	}
}

func TestLanguageToggleRelabelsView(t *testing.T) {
	app := newTestApp(t, Options{})
	if !strings.Contains(app.View(), "Conversion Results") {
		t.Fatalf("english view expected")
	}
	app = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlL})
	if app.Locale() != locale.Spanish {
		t.Fatalf("locale = %s, want es", app.Locale())
	}
	view := app.View()
	for _, want := range []string{"Resultados de la Conversión", "Pies Decimales", "Español"} {
		if !strings.Contains(view, want) {
			t.Fatalf("spanish view missing %q:\n%s", want, view)
		}
	}
}

func TestStartsInConfiguredLocale(t *testing.T) {
	app := newTestApp(t, Options{Locale: locale.Spanish})
	if !strings.Contains(app.View(), "Décimos a pulgadas") {
		t.Fatalf("expected spanish title")
	}
}

func TestQuitKeys(t *testing.T) {
	app := newTestApp(t, Options{})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

// messages runs cmd and flattens any batch into the messages it produces.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

func hasTitle(msgs []tea.Msg, title string) bool {
	for _, msg := range msgs {
		if fmt.Sprint(msg) == title {
			return true
		}
	}
	return false
}

func TestWindowTitleFollowsLanguage(t *testing.T) {
	app := newTestApp(t, Options{})
	if !hasTitle(messages(app.Init()), "Tenth to Inch") {
		t.Fatalf("Init should set the english window title")
	}

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if !hasTitle(messages(cmd), "Décimos a pulgadas") {
		t.Fatalf("toggle should set the spanish window title")
	}
}

func TestHelpBarIsLocalized(t *testing.T) {
	app := newTestApp(t, Options{})
	if !strings.Contains(app.View(), "next field") {
		t.Fatalf("english help bar expected:\n%s", app.View())
	}

	app = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlL})
	view := app.View()
	for _, want := range []string{"campo siguiente", "salir", "idioma"} {
		if !strings.Contains(view, want) {
			t.Fatalf("spanish help bar missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "next field") {
		t.Fatalf("english help text left after toggle:\n%s", view)
	}
}

func TestSidebarShowsLogSession(t *testing.T) {
	app := newTestApp(t, Options{})
	view := app.View()
	if !strings.Contains(view, "Activity log") || !strings.Contains(view, "session "+app.logbook.Session()) {
		t.Fatalf("sidebar missing log session %q:\n%s", app.logbook.Session(), view)
	}

	app = NewApp(Options{})
	if !strings.Contains(app.View(), "Activity log disabled.") {
		t.Fatalf("expected disabled notice without a logbook:\n%s", app.View())
	}
}
