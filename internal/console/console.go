// Package console provides a line-oriented front end for terminals where the
// full-screen interface is unwanted. Each command fires one conversion.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kingrea/tenth-to-inch/internal/locale"
	"github.com/kingrea/tenth-to-inch/internal/logbook"
	"github.com/kingrea/tenth-to-inch/internal/measure"
)

// Options configures a Console.
type Options struct {
	Locale    locale.Locale
	ParseMode measure.ParseMode
	Logbook   *logbook.Logbook
}

// Console reads commands from a readline prompt.
type Console struct {
	rl        *readline.Instance
	out       io.Writer
	locale    locale.Locale
	converter measure.Converter
	logbook   *logbook.Logbook
}

// New creates a console attached to the process terminal.
func New(opts Options) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tenth> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	c := newConsole(rl.Stdout(), opts)
	c.rl = rl
	return c, nil
}

func newConsole(out io.Writer, opts Options) *Console {
	loc := opts.Locale
	if loc == "" {
		loc = locale.Default
	}
	return &Console{
		out:       out,
		locale:    loc,
		converter: measure.Converter{Mode: opts.ParseMode},
		logbook:   opts.Logbook,
	}
}

// Run starts the interactive command loop. It returns when the user quits,
// input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	defer c.rl.Close()

	c.logbook.Info("Console session opened · language: %s", c.locale.Code())
	fmt.Fprintln(c.out, c.locale.Text(locale.AppTitle))
	fmt.Fprintln(c.out, c.locale.Text(locale.ConsoleHelp))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				c.logbook.Info("Console session closed")
				return nil
			}
			return fmt.Errorf("console: read line: %w", err)
		}
		if c.Execute(line) {
			c.logbook.Info("Console session closed")
			return nil
		}
	}
}

// Execute runs one command line and reports whether the user asked to quit.
func (c *Console) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "help", "?":
		fmt.Fprintln(c.out, c.locale.Text(locale.ConsoleHelp))
	case "ft", "feet":
		c.convertNumber(measure.SourceFeet, arg)
	case "in", "inches":
		c.convertNumber(measure.SourceInches, arg)
	case "arch", "a":
		c.convert(measure.NewRequest(measure.SourceArchitectural, 0, arg, 0))
	case "lang", "language":
		c.cmdLanguage(arg)
	case "log":
		c.cmdLog(arg)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(c.out, "%s %s\n", c.locale.Text(locale.ConsoleUnknownCommand), cmd)
	}
	return false
}

func (c *Console) convertNumber(source measure.Source, arg string) {
	v := 0.0
	if arg != "" {
		parsed, err := strconv.ParseFloat(arg, 64)
		if err != nil || parsed < 0 {
			c.logbook.Warn("Rejected %s input %q", source, arg)
			c.printFailure(source, locale.InvalidNumber)
			return
		}
		v = parsed
	}
	c.convert(measure.NewRequest(source, v, "", v))
}

func (c *Console) convert(req measure.Request) {
	res, err := c.converter.Convert(req)
	source := requestSource(req)
	if err != nil {
		c.logbook.Warn("Conversion from %s failed: %v", source, err)
		key := locale.InvalidNumber
		if errors.Is(err, measure.ErrInvalidFormat) {
			key = locale.InvalidArch
		}
		c.printFailure(source, key)
		return
	}
	c.logbook.Info("Converted from %s: %s | %s | %s", res.Source, res.FeetText(), res.Architectural, res.InchesText())

	t := c.locale
	fmt.Fprintln(c.out, t.Textf(locale.ConvertingFrom, sourceLabel(res.Source)))
	fmt.Fprintf(c.out, "  %-26s %s\n", t.Text(locale.DecimalFeet), res.FeetText())
	fmt.Fprintf(c.out, "  %-26s %s\n", t.Text(locale.ArchNotation), res.Architectural)
	fmt.Fprintf(c.out, "  %-26s %s\n", t.Text(locale.DecimalInches), res.InchesText())
}

func (c *Console) printFailure(source measure.Source, key locale.Key) {
	fmt.Fprintln(c.out, c.locale.Textf(locale.ConvertingFrom, sourceLabel(source)))
	fmt.Fprintln(c.out, "  "+c.locale.Text(key))
}

func (c *Console) cmdLanguage(arg string) {
	next := c.locale.Toggle()
	if arg != "" {
		loc, err := locale.Parse(arg)
		if err != nil {
			fmt.Fprintf(c.out, "%v\n", err)
			return
		}
		next = loc
	}
	c.locale = next
	c.logbook.Info("Language switched to %s", next.Code())
	fmt.Fprintf(c.out, "%s: %s\n", c.locale.Text(locale.LanguageSelector), c.locale.Name())
}

const defaultLogLines = 10

// cmdLog prints the most recent activity log lines and the total count.
func (c *Console) cmdLog(arg string) {
	t := c.locale
	if c.logbook == nil {
		fmt.Fprintln(c.out, t.Text(locale.LogUnavailable))
		return
	}
	n := defaultLogLines
	if arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed <= 0 {
			fmt.Fprintln(c.out, t.Text(locale.InvalidNumber))
			return
		}
		n = parsed
	}

	lines, total := c.logbook.Tail(n)
	fmt.Fprintf(c.out, "%s (%s %s) %s\n", t.Text(locale.ActivityLog), t.Text(locale.LogSession), c.logbook.Session(), c.logbook.Path())
	if total == 0 {
		fmt.Fprintln(c.out, "  "+t.Text(locale.LogEmpty))
		return
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, "  "+line)
	}
	fmt.Fprintf(c.out, "  %d/%d\n", len(lines), total)
}

func requestSource(req measure.Request) measure.Source {
	switch {
	case req.FromFeet:
		return measure.SourceFeet
	case req.FromArchitectural:
		return measure.SourceArchitectural
	default:
		return measure.SourceInches
	}
}

// sourceLabel names a source in the label table.
func sourceLabel(s measure.Source) locale.Key {
	switch s {
	case measure.SourceArchitectural:
		return locale.ArchNotation
	case measure.SourceInches:
		return locale.DecimalInches
	default:
		return locale.DecimalFeet
	}
}
