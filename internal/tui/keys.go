package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/kingrea/tenth-to-inch/internal/locale"
)

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Convert  key.Binding
	Language key.Binding
	Quit     key.Binding
}

// newKeyMap builds the bindings with help text in the given language.
func newKeyMap(t locale.Locale) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", t.Text(locale.HelpNextField)),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", t.Text(locale.HelpPrevField)),
		),
		Convert: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", t.Text(locale.HelpConvert)),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", t.Text(locale.HelpLanguage)),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", t.Text(locale.HelpQuit)),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Convert, k.Language, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Convert},
		{k.Language, k.Quit},
	}
}
