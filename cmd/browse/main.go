// browse is a terminal listing of advocates. It reads the list once from
// the API server and filters it locally as you type.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/client"
	"github.com/unclebandit/advocates-backend/internal/config"
	"github.com/unclebandit/advocates-backend/internal/logger"
	"github.com/unclebandit/advocates-backend/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()
	cfg := config.Load()

	var logFile string
	flags := pflag.NewFlagSet("browse", pflag.ContinueOnError)
	flags.StringVar(&cfg.APIBaseURL, "api-url", cfg.APIBaseURL, "base URL of the advocates API")
	flags.StringVar(&logFile, "log-file", "", "write JSON log records to this file")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	// stdout belongs to the alt screen, so logs only go to a file when asked.
	log := zap.NewNop()
	if logFile != "" {
		fileLog, err := logger.NewFile(cfg.LogLevel, logFile)
		if err != nil {
			return err
		}
		defer fileLog.Sync()
		log = fileLog
	}

	model := tui.NewModel(client.New(cfg.APIBaseURL), log)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
