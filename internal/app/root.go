package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/bookshelf/internal/config"
	"github.com/blackwell-systems/bookshelf/internal/logging"
	"github.com/blackwell-systems/bookshelf/internal/tui"
	"github.com/blackwell-systems/bookshelf/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()

	flagNoColor       bool
	flagNoInteractive bool
	flagDebug         bool
	flagConfig        string
	flagSeed          string
)

var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "Keep a personal list of books in your terminal",
	Long: `bookshelf is a single-screen terminal app for a personal book list.

Add, view, edit and delete books. The list lives in memory for as long as
the app runs; a YAML seed file can pre-populate it at startup.

Run 'bookshelf' with no arguments to open the shelf.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runShelf()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level (requires log.file)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/bookshelf/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "YAML file of books to load at startup")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)
		return setup()
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(),
		newCompletionCmd(),
	)
}

// setup loads configuration and builds the logger from the parsed flags.
func setup() error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagSeed != "" {
		cfg.Seed.Path = config.ExpandHome(flagSeed)
	}

	logger, err = logging.New(logging.Options{
		File:  cfg.Log.File,
		Level: cfg.Log.Level,
		Debug: flagDebug,
	})
	if err != nil {
		return err
	}
	return nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}
