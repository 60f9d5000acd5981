package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treykane/photo-settings/internal/exposure"
)

type apertureResult struct {
	Value    string   `json:"value"`
	Segments []string `json:"segments"`
	Progress float64  `json:"progress"`
}

type isoResult struct {
	Value    string  `json:"value"`
	Progress float64 `json:"progress"`
}

func exposureCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "exposure",
		Short: "Map aperture and ISO values onto the card scales",
		// The calculators need no configuration; a broken config file or
		// locale must not stop them.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON")

	cmd.AddCommand(&cobra.Command{
		Use:     "aperture <value>",
		Short:   "Classify an aperture against the canonical stops and place it on the 0-100 scale",
		Example: "  photo-settings exposure aperture f/2.8-4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			segments, err := exposure.ApertureSegments(args[0])
			if err != nil {
				return err
			}
			progress, err := exposure.ApertureProgress(args[0])
			if err != nil {
				return err
			}

			res := apertureResult{Value: args[0], Progress: progress}
			for _, seg := range segments {
				res.Segments = append(res.Segments, seg.String())
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			stops := exposure.Stops()
			labels := make([]string, len(stops))
			for i, stop := range stops {
				state := segments[i].String()
				if state == "" {
					state = "-"
				}
				labels[i] = fmt.Sprintf("%g:%s", stop, state)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:    %s\n", res.Value)
			fmt.Fprintf(out, "stops:    %s\n", strings.Join(labels, " "))
			fmt.Fprintf(out, "progress: %.2f\n", res.Progress)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "iso <value>",
		Short:   "Place an ISO value on the 0-100 scale",
		Example: "  photo-settings exposure iso 100-400",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progress, err := exposure.ISOProgress(args[0])
			if err != nil {
				return err
			}

			res := isoResult{Value: args[0], Progress: progress}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "value:    %s\n", res.Value)
			fmt.Fprintf(out, "progress: %.2f\n", res.Progress)
			return nil
		},
	})

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
