package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/seqkit/seqpath"
)

// pathView is the printable form of a seqpath.Path.
type pathView struct {
	Path     string         `json:"path"`
	Protocol string         `json:"protocol,omitempty"`
	Dir      string         `json:"dir,omitempty"`
	Base     string         `json:"base,omitempty"`
	Num      string         `json:"num,omitempty"`
	Pad      int            `json:"pad,omitempty"`
	Ext      string         `json:"ext,omitempty"`
	Request  string         `json:"request,omitempty"`
	Frames   *seqpath.Range `json:"frames,omitempty"`
}

func newPathView(p seqpath.Path) pathView {
	v := pathView{
		Path:     p.Get(),
		Protocol: p.Protocol,
		Dir:      p.Dir,
		Base:     p.Base,
		Num:      p.Num,
		Pad:      p.Pad,
		Ext:      p.Ext,
		Request:  p.Request,
	}
	if p.HasNum() {
		frames := p.Frames
		v.Frames = &frames
	}
	return v
}

func (v pathView) print(w io.Writer) {
	fields := []struct{ name, value string }{
		{"path", v.Path},
		{"protocol", v.Protocol},
		{"dir", v.Dir},
		{"base", v.Base},
		{"num", v.Num},
		{"pad", strconv.Itoa(v.Pad)},
		{"ext", v.Ext},
		{"request", v.Request},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-9s %s\n", f.name+":", f.value)
	}
	if v.Frames != nil {
		fmt.Fprintf(w, "%-9s %d-%d\n", "frames:", v.Frames.Min, v.Frames.Max)
	}
}

func newParseCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <path>...",
		Short: "Split paths into their components",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]pathView, 0, len(args))
			for _, arg := range args {
				views = append(views, newPathView(seqpath.ParseWithOptions(arg, a.cfg.PathOptions())))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			for i, v := range views {
				if i > 0 {
					fmt.Fprintln(out)
				}
				v.print(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newSplitCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split <path>",
		Short: "Print the root and each component of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, part := range seqpath.Split(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), part)
			}
			return nil
		},
	}
}

func newFrameCmd(a *app) *cobra.Command {
	var withDir bool

	cmd := &cobra.Command{
		Use:   "frame <path> <frame>...",
		Short: "Print the file name of frames of a sequence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := seqpath.ParseWithOptions(args[0], a.cfg.PathOptions())
			for _, arg := range args[1:] {
				frame, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid frame %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.FrameAt(frame, withDir))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&withDir, "dir", "d", false, "Include the directory")
	return cmd
}
