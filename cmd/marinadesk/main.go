package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harborview/marinadesk/internal/api"
	"github.com/harborview/marinadesk/internal/auth"
	"github.com/harborview/marinadesk/internal/config"
	"github.com/harborview/marinadesk/internal/logging"
	"github.com/harborview/marinadesk/internal/ui"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := auth.NewFileTokenStore(cfg.TokenPath)
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, store, logger)

	p := tea.NewProgram(ui.New(client, logger), tea.WithAltScreen())

	// a 401 anywhere drops the session back to the login screen
	client.OnUnauthorized(func() {
		p.Send(ui.SessionExpiredMsg{})
	})

	logger.Info("starting marinadesk", zap.String("api", cfg.APIBaseURL))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running program: %v\n", err)
		os.Exit(1)
	}
}
