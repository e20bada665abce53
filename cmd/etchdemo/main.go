// Command etchdemo builds a small element tree, drives it through one
// layout+paint frame, and prints the resulting paint ops.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/etchline/etch"
	"github.com/etchline/etch/elements"
)

type demoView struct {
	Title  string
	Frames int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		width   int
		height  int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "etchdemo",
		Short: "Render a demo element tree and print its paint ops",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop()
			if verbose {
				var err error
				if log, err = zap.NewDevelopment(); err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer log.Sync()
			}

			view := demoView{Title: "etch demo"}
			root := buildTree()

			driver := etch.NewDriver[demoView](etch.WithLogger(log))
			ops, err := driver.RenderFrame(root, &view, width, height)
			if err != nil {
				return fmt.Errorf("render frame: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, op := range ops {
				kind := "fill"
				if op.Text != "" {
					kind = fmt.Sprintf("text %q", op.Text)
				}
				fmt.Fprintf(out, "#%02d (%d,%d) %dx%d %s\n",
					op.Order, op.Bounds.X, op.Bounds.Y, op.Bounds.Width, op.Bounds.Height, kind)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "available width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "available height in cells")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log pass diagnostics")
	return cmd
}

func buildTree() *etch.AnyElement[demoView] {
	header := elements.NewStack[demoView]().
		Height(etch.Fixed(1)).
		Justify(etch.JustifyCenter).
		Child(elements.TextFunc(func(v *demoView) string { return v.Title }))

	body := elements.NewStack[demoView]().
		Grow(1).
		Gap(1).
		Children(
			elements.NewBox[demoView]().Width(etch.Fixed(20)),
			elements.NewBox[demoView]().Grow(1),
		)

	footer := elements.NewStack[demoView]().
		Height(etch.Fixed(1)).
		Child(elements.TextFunc(func(v *demoView) string {
			v.Frames++
			return fmt.Sprintf("frame %d", v.Frames)
		}))

	root := elements.NewStack[demoView]().
		Direction(etch.Column).
		Padding(1).
		Children(header, body, footer)

	return root.IntoAny()
}
