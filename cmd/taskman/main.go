package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/auth"
	"github.com/dsubhasis934/task-management-tui/internal/config"
	"github.com/dsubhasis934/task-management-tui/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	creds, err := auth.DefaultCredentialFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating credential store: %v\n", err)
		os.Exit(1)
	}

	client := api.NewClient(cfg.BaseURL)
	store := auth.NewStore(client, creds)

	debug := os.Getenv("TASKMAN_DEBUG") != ""

	p := tea.NewProgram(
		tui.NewRootModel(store, client, cfg, debug),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
