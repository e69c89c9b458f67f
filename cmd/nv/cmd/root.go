package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tormodhaugland/nv/internal/config"
	"github.com/tormodhaugland/nv/internal/tui"
)

var (
	cfgFile string
	debug   bool
	logFile string

	panes      int
	width      int
	height     int
	sortOrder  string
	showAll    bool
	fullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "nv [dir]",
	Short: "Miller-columns file browser for the terminal",
	Long: `nv shows a row of directory listings: the ancestors of the focused
directory on the left, the focused directory in the middle and a preview
of the selected entry on the right.

It draws inline below the cursor and clears itself on exit. Keys are
configurable; run 'nv keys' to list them.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	logger.Debug("starting", "dir", dir, "panes", cfg.Panes, "size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	if err := tui.Run(cfg, dir, tui.Options{Fullscreen: fullscreen, Logger: logger}); err != nil {
		logger.Error("exit", "error", err)
		return err
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.RunE = runRoot

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/nv/config.json)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (default: $XDG_STATE_HOME/nv/nv.log)")
	rootCmd.PersistentFlags().IntVar(&panes, "panes", 0, "number of visible panes (at least 2)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0, "width of the browser in cells")
	rootCmd.PersistentFlags().IntVar(&height, "height", 0, "height of the browser in rows")
	rootCmd.PersistentFlags().StringVar(&sortOrder, "sort", "", "sort order: name or dirs-first")
	rootCmd.PersistentFlags().BoolVarP(&showAll, "all", "a", false, "show entries matched by hide patterns")

	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "use the alternate screen and the whole terminal")
}

// loadConfig loads the config file and applies command line overrides. The
// overrides are persistent flags, so subcommands see them too.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := rootCmd.PersistentFlags()
	if flags.Changed("panes") {
		cfg.Panes = panes
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("sort") {
		cfg.Sort = sortOrder
	}
	if showAll {
		cfg.ShowHidden = true
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
