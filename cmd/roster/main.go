package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
	"github.com/five82/roster/internal/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree: the interactive roster by default and
// a render subcommand for static HTML export.
func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse the member roster from a published sheet",
		Long: `roster fetches the published member sheet once, then shows
searchable, paginated member cards with background music.

Configuration is read from ~/.config/roster/config.toml and ROSTER_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/roster/config.toml)")
	root.PersistentFlags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/roster/prefs.toml)")
	root.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	root.AddCommand(newRenderCmd(&opts))
	return root
}

// newRenderCmd writes the roster page as HTML for a given search and page.
func newRenderCmd(base *app.Options) *cobra.Command {
	var (
		ropts   app.RenderOptions
		section string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the roster page as HTML",
		Long: `Fetch the sheet once and write the roster page as HTML.

The search text and page select the view state exactly as the
interactive controls would. --section limits output to the leader or
member markup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts.Options = *base
			switch render.Group(section) {
			case "", render.GroupLeader, render.GroupMember:
				ropts.Section = render.Group(section)
			default:
				return fmt.Errorf("unknown section %q (want %s or %s)", section, render.GroupLeader, render.GroupMember)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			return app.RenderStatic(cmd.Context(), ropts, w)
		},
	}

	cmd.Flags().StringVar(&ropts.Search, "search", "", "search text applied to member names")
	cmd.Flags().IntVar(&ropts.Page, "page", 1, "page number (clamped to the last page)")
	cmd.Flags().StringVar(&ropts.Title, "title", "", "document title (default Members)")
	cmd.Flags().StringVar(&section, "section", "", "render only the leader or member section")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
