package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/tably/tably/pkg/config"
	"github.com/tably/tably/pkg/tablog"
	"github.com/tably/tably/pkg/view"
)

const (
	appName    = "tably"
	appVersion = "0.1.0"
)

var (
	tablyFlags *config.Flags
	rootCmd    = &cobra.Command{
		Use:   appName,
		Short: "A sortable table UI for fleet inventories",
		Long:  `tably is a terminal-based table UI with click-to-sort columns, inspired by k9s.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	tablyFlags = config.NewFlags()
	initTablyFlags()
	rootCmd.AddCommand(versionCmd)
}

func initTablyFlags() {
	rootCmd.Flags().Float32VarP(tablyFlags.RefreshRate, "refresh", "r", 2.0, "Refresh rate in seconds")
	rootCmd.Flags().StringVarP(tablyFlags.LogLevel, "logLevel", "l", "info", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(tablyFlags.LogFile, "logFile", "", "Log file path")
	rootCmd.Flags().StringVarP(tablyFlags.Sort, "sort", "s", "", "Column to sort on at startup")
	rootCmd.Flags().BoolVar(tablyFlags.Desc, "desc", false, "Sort the startup column descending")
	rootCmd.Flags().BoolVar(tablyFlags.Mouse, "mouse", true, "Enable mouse support")
	rootCmd.Flags().StringVar(tablyFlags.Indicators, "indicators", "", "Sort indicator style (arrows, plain)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// 1. Initialize locations
	if err := config.InitLocs(); err != nil {
		return fmt.Errorf("failed to initialize locations: %w", err)
	}

	// 2. Initialize log location
	if err := config.InitLogLoc(); err != nil {
		return fmt.Errorf("failed to initialize log location: %w", err)
	}

	// 3. Create and load configuration
	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 4. Apply CLI overrides
	cfg.Tably.Override(tablyFlags)
	cfg.Tably.Validate()

	// 5. Route logs to the log file
	if err := tablog.InitFileLogger(cfg.Tably.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := tablog.UpdateZeroLogLevel(cfg.Tably.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	// 6. Save configuration
	_ = cfg.Save(false)

	// 7. Create and initialize the TUI application
	app := view.NewApp(cfg, appVersion)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// 8. Run the application
	return app.Run()
}
