package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "List stored settings documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			keys, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <key>...",
		Short: "Remove stored settings documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args...); err != nil {
				return err
			}
			a.logger.Debug("settings removed", "keys", args)
			return nil
		},
	}

	cmd.AddCommand(rmCmd)
	return cmd
}
