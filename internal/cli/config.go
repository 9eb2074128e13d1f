package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tilemaze/gridgraph"
)

const (
	defaultHeight = 10
	defaultWidth  = 10
)

var errUnknownKeys = errors.New("unknown config keys")

// config is the maze configuration surface: dimensions, seed and neighbor order.
// A nil Seed means "pick one at random".
type config struct {
	Height int    `toml:"height"`
	Width  int    `toml:"width"`
	Seed   *int64 `toml:"seed"`
	Order  string `toml:"order"`
}

func defaultConfig() config {
	return config{Height: defaultHeight, Width: defaultWidth, Order: gridgraph.OrderReference.String()}
}

// loadConfig decodes a TOML file over the defaults. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("read config %s: %w: %s", path, errUnknownKeys, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// mazeFlags holds the flag values shared by generate and compare.
type mazeFlags struct {
	height int
	width  int
	seed   int64
	order  string
}

func (f *mazeFlags) register(fs *pflag.FlagSet) {
	fs.IntVar(&f.height, "height", defaultHeight, "number of rows")
	fs.IntVar(&f.width, "width", defaultWidth, "number of columns")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (random when unset)")
	fs.StringVar(&f.order, "order", gridgraph.OrderReference.String(), "neighbor order: reference or compass")
}

// apply overrides cfg with every flag the user set explicitly.
func (f *mazeFlags) apply(fs *pflag.FlagSet, cfg config) config {
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("order") {
		cfg.Order = f.order
	}
	return cfg
}
