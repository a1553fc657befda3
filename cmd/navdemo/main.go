// Command navdemo is a terminal walkthrough of navmanager: a small route
// table driven through the bubbletea host.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/tui"
)

func routes() []navmanager.RouteEntry {
	return []navmanager.RouteEntry{
		navmanager.NewRouteEntry("/home", func(args any) navmanager.View { return homeScreen(args) }),
		navmanager.NewRouteEntry("/detail", func(args any) navmanager.View { return detailScreen(args) }),
		navmanager.NewRouteEntry("/profile", func(args any) navmanager.View { return profileScreen(args) }),
		navmanager.NewRouteEntry("/login", func(args any) navmanager.View { return loginScreen(args) }),
	}
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := navmanager.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	// "/" is the library default; the demo has no such route.
	if cfg.InitialRoute == "/" {
		cfg.InitialRoute = "/home"
	}

	// The terminal belongs to bubbletea; logs go to the file only.
	opts := cfg.Options()
	opts.DisableConsole = true
	if err := navmanager.Init(opts); err != nil {
		log.Fatalf("init: %v", err)
	}
	defer navmanager.Close()

	manager, err := navmanager.NewManager(cfg.ManagerOptions(routes()))
	if err != nil {
		log.Fatalf("navigation: %v", err)
	}

	model := tui.New(manager)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
