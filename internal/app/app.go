// Package app wires configuration, services, and renderers into the
// analyzer command.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/config"
	"burrow/internal/prompt"
	"burrow/internal/report"
	"burrow/internal/services"
	"burrow/internal/state"
	"burrow/internal/ui"
	"burrow/internal/whitelist"
)

func Run() int {
	base, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "! config warning: %v (using defaults)\n", err)
	}
	// Seed the config file on first run so it can be edited.
	if _, statErr := os.Stat(config.ConfigPath()); os.IsNotExist(statErr) {
		if saveErr := config.SaveConfig(base); saveErr != nil {
			fmt.Fprintf(os.Stderr, "! config warning: %v\n", saveErr)
		}
	}
	cfg, target := config.ParseFlags(base, os.Args[1:])
	target = expandHome(target)

	if _, statErr := os.Stat(target); statErr != nil {
		fmt.Fprintf(os.Stderr, "! Path does not exist: %s\n", target)
		return 0
	}

	var cache *services.ListingCache
	if cfg.CacheListings {
		cache = services.NewListingCache(config.CacheDir())
	}
	lister := services.NewDirLister(services.NewWalkSizer(), cache)

	protector, err := whitelist.Load(config.WhitelistPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "! whitelist warning: %v\n", err)
	}

	if cfg.TUI {
		session := state.NewSession(target)
		model := ui.NewModel(session, lister, protector, cfg.Theme)
		program := tea.NewProgram(model, tea.WithAltScreen())
		_, runErr := program.Run()
		if runErr == nil {
			return 0
		}
		fmt.Fprintf(os.Stderr, "! Interactive view unavailable: %v\n", runErr)
		if !prompt.Stdin().Confirm("Continue with the flat table view?", cfg.AssumeYes) {
			return 0
		}
	}

	listing := lister.List(context.Background(), services.ListRequest{Path: target})
	report.Render(os.Stdout, listing, cfg.Top)
	return 0
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
