package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treykane/photo-settings/internal/app"
	"github.com/treykane/photo-settings/internal/catalog"
	"github.com/treykane/photo-settings/internal/i18n"
)

func tableCmd(rt *runtime) *cobra.Command {
	var (
		all    bool
		width  int
		filter string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the cards of a section without the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			tr, err := i18n.NewTranslator()
			if err != nil {
				return err
			}

			sections := []catalog.Section{rt.cfg.StartSection()}
			if all {
				sections = catalog.Sections()
			}

			out := cmd.OutOrStdout()
			for i, s := range sections {
				state := app.AppState{Language: rt.cfg.LanguageTag(), Section: s}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n", tr.T(state.Language, "section."+string(s), nil))
				fmt.Fprintln(out, app.RenderCards(cat, tr, state, width, rt.cfg.CardWidth, filter))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print every section")
	cmd.Flags().IntVar(&width, "width", 80, "output width in columns")
	cmd.Flags().StringVar(&filter, "filter", "", "only print cards containing this text")
	return cmd
}
