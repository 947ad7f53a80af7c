package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/store"
	"github.com/vibetimer/vibe/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vibe:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv()

	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		dbPath = p
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	state, err := st.LoadState(context.Background())
	if err != nil {
		// A corrupt document already fell back to defaults inside LoadState;
		// surface the reason once and keep going.
		fmt.Fprintln(os.Stderr, "vibe: state reset:", err)
	}

	m := update.NewModelWithConfig(st, state, update.ExecDesktopNotifier{}, cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
