package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridsort/pkg/config"
)

// defaultItems are shown when neither arguments nor the config file name any.
var defaultItems = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}

// gridFlags are the config overrides shared by run and layout.
type gridFlags struct {
	configPath string
	columns    int
	size       float64
	duration   string
	easing     string
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/gridsort/config.toml)")
	cmd.Flags().IntVarP(&f.columns, "columns", "c", 0, "number of columns")
	cmd.Flags().Float64Var(&f.size, "size", 0, "item size in layout units")
	cmd.Flags().StringVar(&f.duration, "duration", "", "settle duration (e.g. 350ms)")
	cmd.Flags().StringVar(&f.easing, "easing", "", "settle easing curve")
}

// load reads the config file and applies flag overrides and item arguments.
func (f *gridFlags) load(args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.Load(f.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f.columns != 0 {
		cfg.Columns = f.columns
	}
	if f.size != 0 {
		cfg.ItemSize = f.size
	}
	if f.duration != "" {
		cfg.Anim.Duration = f.duration
	}
	if f.easing != "" {
		cfg.Anim.Easing = f.easing
	}
	if len(args) > 0 {
		cfg.Items = args
	}
	if len(cfg.Items) == 0 {
		cfg.Items = defaultItems
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
