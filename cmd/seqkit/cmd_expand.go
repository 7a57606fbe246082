package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

func newExpandCmd(a *app) *cobra.Command {
	var seqExts []string

	cmd := &cobra.Command{
		Use:   "expand <file>",
		Short: "Find every frame of the sequence a file belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok, err := seqpath.ExpandSeq(cmd.Context(), args[0], a.cfg.PathOptions(), seqExts...)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%s: no sequence found", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.Get(), p.FrameRange())
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&seqExts, "seq-ext", nil, "Only expand files with these extensions")
	return cmd
}
