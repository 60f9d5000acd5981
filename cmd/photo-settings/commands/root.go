package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/photo-settings/internal/app"
	"github.com/treykane/photo-settings/internal/config"
	"github.com/treykane/photo-settings/internal/logging"
)

var log = logging.New("cli")

// runtime carries the resolved configuration from PersistentPreRunE to the
// subcommands.
type runtime struct {
	lang    string
	section string
	cfg     config.Config
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:   "photo-settings",
		Short: "Bilingual photography exposure reference",
		Long: `photo-settings shows reference cards for aperture, shutter speed and
scene presets, in Italian or English, with bars placing each aperture and
ISO value on its scale.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runUI()
		},
	}

	root.PersistentFlags().StringVar(&rt.lang, "lang", "", "interface language: it or en (default from config or locale)")
	root.PersistentFlags().StringVar(&rt.section, "section", "", "start section: aperture, shutter or scenes")

	root.AddCommand(tableCmd(rt), exposureCmd())
	return root
}

// load resolves configuration: config file and environment first, then
// command-line flags.
func (rt *runtime) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("lang") {
		cfg.Language = rt.lang
	}
	if cmd.Flags().Changed("section") {
		cfg.Section = rt.section
	}
	cfg, err = config.Normalize(cfg)
	if err != nil {
		return err
	}
	rt.cfg = cfg
	log.Debug("configuration resolved", "language", cfg.Language, "section", cfg.Section)
	return nil
}

func (rt *runtime) runUI() error {
	m, err := app.New(app.Options{Config: rt.cfg})
	if err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
