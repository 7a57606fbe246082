package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/browser"
	"github.com/tailored-agentic-units/seqkit/observability"
	"github.com/tailored-agentic-units/seqkit/observable"
	"github.com/tailored-agentic-units/seqkit/seqpath"
	"github.com/tailored-agentic-units/seqkit/watch"
)

// Events traced by watch --verbose.
const (
	eventTracePath  observability.EventType = "trace.browser.path"
	eventTraceWatch observability.EventType = "trace.watch.events"
)

func newWatchCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print the listing of a directory every time it changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			ctx := cmd.Context()

			opts, err := flags.options(cmd, a.browserOptions())
			if err != nil {
				return err
			}
			bcfg := a.cfg.Browser
			bcfg.DirList = &opts

			model, err := browser.New(dir, &bcfg, browser.WithObserver(a.observer))
			if err != nil {
				return err
			}

			w, err := watch.New(&a.cfg.Watch, watch.WithObserver(a.observer))
			if err != nil {
				return err
			}
			defer w.Stop()

			if a.verbose {
				tp := observability.Trace(ctx, model.Path(), a.observer, eventTracePath, "browser.Model", observable.WithTrigger())
				defer tp.Close()
				tw := observability.Trace(ctx, w.Events(), a.observer, eventTraceWatch, "watch.Watcher")
				defer tw.Close()
			}

			out := cmd.OutOrStdout()
			printed := model.Entries().Observe(func(entries []seqpath.DirEntry) {
				fmt.Fprintf(out, "== %s\n", model.Path().Get().Get())
				printEntries(out, entries)
			})
			defer printed.Close()

			if err := w.Start(ctx); err != nil {
				return err
			}
			unbind := model.Bind(ctx, w)
			defer unbind()

			a.logger.Info("watching", "dir", w.Dir())
			<-ctx.Done()
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
