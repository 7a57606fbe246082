package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/recent"
)

func (a *app) recentModel(cmd *cobra.Command) (*recent.Model, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	m := recent.New(&a.cfg.Recent, recent.WithStore(store), recent.WithObserver(a.observer))
	if err := m.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return m, nil
}

func newRecentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or update the recent files list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.recentModel(cmd)
			if err != nil {
				return err
			}
			for _, f := range m.Files().Get() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Add files to the recent list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.recentModel(cmd)
			if err != nil {
				return err
			}
			for _, p := range args {
				m.Add(p)
			}
			return m.Save(cmd.Context())
		},
	}

	maxCmd := &cobra.Command{
		Use:   "max <n>",
		Short: "Set how many recent files are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.Atoi(args[0])
			if err != nil || limit < 0 {
				return fmt.Errorf("invalid count %q", args[0])
			}
			m, err := a.recentModel(cmd)
			if err != nil {
				return err
			}
			m.SetMax(limit)
			return m.Save(cmd.Context())
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget the recent list and its saved limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.recentModel(cmd)
			if err != nil {
				return err
			}
			return m.Reset(cmd.Context())
		},
	}

	cmd.AddCommand(addCmd, maxCmd, clearCmd)
	return cmd
}
