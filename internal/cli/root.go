package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilemaze/gridgraph"
	"github.com/katalvlaran/tilemaze/maze"
)

const (
	formatText  = "text"
	formatEdges = "edges"
)

// rootOpts holds the persistent flags.
type rootOpts struct {
	verbose    bool
	configPath string
}

// Execute runs the mazegen CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Results go to out, logs to logOut.
func NewRootCommand(out, logOut io.Writer) *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "mazegen",
		Short:        "mazegen generates reproducible rectangular mazes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
	}
	root.SetOut(out)
	root.SetErr(logOut)
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with height, width, seed and order")

	root.AddCommand(newGenerateCmd(opts))
	root.AddCommand(newCompareCmd(opts))

	return root
}

// resolve merges the config file with explicitly set flags.
func resolve(cmd *cobra.Command, opts *rootOpts, flags *mazeFlags) (config, gridgraph.Order, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return cfg, gridgraph.OrderReference, err
	}
	cfg = flags.apply(cmd.Flags(), cfg)
	order, err := gridgraph.ParseOrder(cfg.Order)
	if err != nil {
		return cfg, order, err
	}
	return cfg, order, nil
}

// build generates a maze from cfg, drawing a seed when none is configured.
func build(ctx context.Context, cfg config, order gridgraph.Order) (*maze.Maze, error) {
	logger := loggerFromContext(ctx)
	opts := []maze.Option{maze.WithLogger(logger), maze.WithNeighborOrder(order)}

	var (
		m   *maze.Maze
		err error
	)
	if cfg.Seed == nil {
		m, err = maze.NewRandom(cfg.Height, cfg.Width, opts...)
	} else {
		m, err = maze.New(cfg.Height, cfg.Width, *cfg.Seed, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d maze: %w", cfg.Height, cfg.Width, err)
	}
	logger.Info("maze ready", "height", m.Height(), "width", m.Width(), "seed", m.Seed(), "order", order)

	return m, nil
}

func newGenerateCmd(opts *rootOpts) *cobra.Command {
	var (
		flags  mazeFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, order, err := resolve(cmd, opts, &flags)
			if err != nil {
				return err
			}
			m, err := build(cmd.Context(), cfg, order)
			if err != nil {
				return err
			}
			switch format {
			case formatText:
				_, err = fmt.Fprint(cmd.OutOrStdout(), renderText(m))
				return err
			case formatEdges:
				return writeEdges(cmd.OutOrStdout(), m)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatText, formatEdges)
			}
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text or edges")

	return cmd
}

func newCompareCmd(opts *rootOpts) *cobra.Command {
	var (
		flags     mazeFlags
		otherSeed int64
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Build two mazes that differ only in seed and report whether they are equal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, order, err := resolve(cmd, opts, &flags)
			if err != nil {
				return err
			}
			a, err := build(cmd.Context(), cfg, order)
			if err != nil {
				return err
			}
			cfg.Seed = &otherSeed
			b, err := build(cmd.Context(), cfg, order)
			if err != nil {
				return err
			}
			verdict := "different"
			if a.Equal(b) {
				verdict = "equal"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return err
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().Int64Var(&otherSeed, "other-seed", 0, "seed of the second maze")

	return cmd
}
