// Package cli builds the tenth command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/tenth-to-inch/internal/config"
	"github.com/kingrea/tenth-to-inch/internal/console"
	"github.com/kingrea/tenth-to-inch/internal/logbook"
	"github.com/kingrea/tenth-to-inch/internal/measure"
	"github.com/kingrea/tenth-to-inch/internal/tui"
)

// Commands carries the collaborators the command tree needs. Tests swap the
// launchers so nothing takes over the terminal.
type Commands struct {
	Env        config.Environment
	RunTUI     func(ctx context.Context, model tea.Model) error
	RunConsole func(ctx context.Context, opts console.Options) error
}

// DefaultCommands wires the real environment and terminal front ends.
func DefaultCommands() Commands {
	return Commands{
		Env:        config.OSEnvironment(),
		RunTUI:     runProgram,
		RunConsole: runConsole,
	}
}

type rootFlags struct {
	configPath string
	language   string
	lenient    bool
	plain      bool
}

// NewRootCommand creates the tenth command.
func (c Commands) NewRootCommand() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "tenth",
		Short: "Convert between decimal feet, architectural notation and decimal inches",
		Long: `tenth converts lengths between decimal feet (5.25), architectural
notation (5'-3 8/16") and decimal inches (63.0).

Without a subcommand it opens the interactive converter.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(flags)
			if err != nil {
				return err
			}
			lb := openLogbook(cmd, cfg)

			if flags.plain {
				err = c.RunConsole(cmd.Context(), console.Options{
					Locale:    cfg.Locale,
					ParseMode: cfg.ParseMode,
					Logbook:   lb,
				})
			} else {
				err = c.RunTUI(cmd.Context(), tui.NewApp(tui.Options{
					Locale:    cfg.Locale,
					ParseMode: cfg.ParseMode,
					Logbook:   lb,
				}))
			}
			if err != nil {
				lb.Error("Front end stopped: %v", err)
			}
			return err
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to config.yaml (default: user config dir)")
	pf.StringVar(&flags.language, "lang", "", "display language: en, es or auto")
	pf.BoolVar(&flags.lenient, "lenient", false, "read architectural notation leniently; malformed input counts as zero")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "use the line-mode console instead of the full-screen interface")

	cmd.AddCommand(c.newConvertCommand(&flags))
	return cmd
}

func (c Commands) loadConfig(flags rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath, c.Env)
	if err != nil {
		return nil, err
	}
	if flags.language != "" {
		if err := cfg.SetLanguage(flags.language, c.Env); err != nil {
			return nil, err
		}
	}
	if flags.lenient {
		cfg.ParseMode = measure.ModeLenient
	}
	return cfg, nil
}

// openLogbook returns nil when the log cannot be opened; every Logbook
// method is a no-op on nil.
func openLogbook(cmd *cobra.Command, cfg *config.Config) *logbook.Logbook {
	lb, err := logbook.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: activity log disabled: %v\n", err)
		return nil
	}
	return lb
}

func runProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// interrupted through ctx, not a failure
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func runConsole(ctx context.Context, opts console.Options) error {
	con, err := console.New(opts)
	if err != nil {
		return err
	}
	return con.Run(ctx)
}
