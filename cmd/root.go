package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/ionut-t/folio/internal/config"
	"github.com/ionut-t/folio/internal/logging"
	"github.com/ionut-t/folio/internal/version"
	"github.com/ionut-t/folio/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "folio [files...]",
	Short: "folio is a terminal viewer for PDF and Markdown documents.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewer(args)
	},
}

func Execute() {
	rootCmd.AddCommand(configCmd(), menuCmd(), versionCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version.Version())); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func viewer(files []string) error {
	logger, closeLog := openLog()
	defer closeLog()

	m := tui.New(tui.Options{Files: files, Logger: logger})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	config.Watch(func() {
		logger.Info("config changed", zap.String("path", config.GetConfigFilePath()))
		p.Send(tui.ConfigChangedMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running UI: %w", err)
	}

	return nil
}

// openLog opens the configured log file. Logging problems never stop the
// viewer; they fall back to a no-op logger.
func openLog() (*zap.Logger, func()) {
	path, err := config.GetLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving log file: %v\n", err)
		return logging.Nop(), func() {}
	}

	logger, closeFn, err := logging.New(path, config.GetLogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return logging.Nop(), func() {}
	}

	return logger, closeFn
}

func initConfig() {
	if _, err := config.InitialiseConfigFile(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
	}
}
