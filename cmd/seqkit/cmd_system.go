package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

func newDrivesCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List the filesystem root and mounted volumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range seqpath.Drives() {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}

func newUserPathCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "userpath [home|desktop|documents|downloads]",
		Short: "Print well-known user directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := seqpath.UserPaths()
			if len(args) == 1 {
				u, err := seqpath.ParseUserPath(args[0])
				if err != nil {
					return err
				}
				paths = []seqpath.UserPath{u}
			}

			for _, u := range paths {
				dir, err := seqpath.UserPathDir(u)
				if err != nil {
					return err
				}
				if len(paths) == 1 {
					fmt.Fprintln(cmd.OutOrStdout(), dir)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", u.String()+":", dir)
				}
			}
			return nil
		},
	}
}
