package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

const maxConcurrentLists = 4

// listFlags are the DirListOptions exposed on the command line.
type listFlags struct {
	sort     string
	reverse  bool
	filter   string
	dirsOnly bool
	exts     []string
	noSeq    bool
	seqExts  []string
	hidden   bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "", "Sort by name, extension, size, or time")
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "Reverse the sort order")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Only names containing this text")
	cmd.Flags().BoolVar(&f.dirsOnly, "dirs-only", false, "Only directories")
	cmd.Flags().StringSliceVar(&f.exts, "ext", nil, "Only files with these extensions")
	cmd.Flags().BoolVar(&f.noSeq, "no-seq", false, "Do not group sequences")
	cmd.Flags().StringSliceVar(&f.seqExts, "seq-ext", nil, "Only group files with these extensions")
	cmd.Flags().BoolVarP(&f.hidden, "all", "a", false, "Include dot files")
}

// options applies the flags that were set on top of base.
func (f *listFlags) options(cmd *cobra.Command, base seqpath.DirListOptions) (seqpath.DirListOptions, error) {
	opts := base
	if f.sort != "" {
		s, err := seqpath.ParseDirListSort(f.sort)
		if err != nil {
			return opts, err
		}
		opts.Sort = s
	}
	if cmd.Flags().Changed("reverse") {
		opts.SortReverse = f.reverse
	}
	if f.filter != "" {
		opts.Filter = f.filter
	}
	if cmd.Flags().Changed("dirs-only") {
		opts.FilterFiles = f.dirsOnly
	}
	if len(f.exts) > 0 {
		opts.FilterExt = f.exts
	}
	if cmd.Flags().Changed("no-seq") {
		opts.Seq = !f.noSeq
	}
	if len(f.seqExts) > 0 {
		opts.SeqExts = f.seqExts
	}
	if cmd.Flags().Changed("all") {
		opts.Hidden = f.hidden
	}
	return opts, nil
}

func newLsCmd(a *app) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "ls [dir]...",
		Short: "List directories with numbered files grouped into sequences",
		Long: `Lists each directory, grouping numbered files into one entry per
sequence. Several directories are listed concurrently and printed in
argument order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			opts, err := flags.options(cmd, a.browserOptions())
			if err != nil {
				return err
			}

			results := make([][]seqpath.DirEntry, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxConcurrentLists)
			for i, dir := range args {
				g.Go(func() error {
					entries, err := seqpath.DirList(ctx, dir, opts)
					if err != nil {
						return err
					}
					results[i] = entries
					a.logger.Debug("listed directory", "dir", dir, "entries", len(entries))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, dir := range args {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s:\n", dir)
				}
				printEntries(out, results[i])
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) browserOptions() seqpath.DirListOptions {
	if a.cfg.Browser.DirList != nil {
		return *a.cfg.Browser.DirList
	}
	return seqpath.DefaultDirListOptions()
}

func printEntries(w io.Writer, entries []seqpath.DirEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		name := e.Path.FileName()
		if e.IsDir {
			fmt.Fprintf(tw, "%s/\t\t\n", name)
			continue
		}
		frames := ""
		if e.Path.IsSeq() {
			frames = "[" + e.Path.FrameRange() + "]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", name, frames, e.Size)
	}
	tw.Flush()
}
