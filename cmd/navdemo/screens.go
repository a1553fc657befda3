package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/router"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/tui"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// link is a menu row that navigates somewhere.
type link struct {
	label string
	cmd   tea.Cmd
}

// menuScreen is a vertical list of links.
type menuScreen struct {
	title  string
	body   string
	links  []link
	cursor int
}

func (s *menuScreen) Update(msg tea.Msg, _ *router.Router) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch km.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.links)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.links) > 0 {
			return s.links[s.cursor].cmd
		}
	}
	return nil
}

func (s *menuScreen) View(int, int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.title))
	b.WriteString("\n\n")
	if s.body != "" {
		b.WriteString(s.body)
		b.WriteString("\n\n")
	}
	for i, l := range s.links {
		if i == s.cursor {
			b.WriteString(selectedStyle.Render("› " + l.label))
		} else {
			b.WriteString(mutedStyle.Render("  " + l.label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// itemArgs is the payload for /detail.
type itemArgs struct {
	ID   int
	Name string
}

func homeScreen(any) *menuScreen {
	return &menuScreen{
		title: "Home",
		links: []link{
			{"Open item 1", tui.ToNamed("/detail", itemArgs{ID: 1, Name: "Portal"})},
			{"Open item 2", tui.ToNamed("/detail", itemArgs{ID: 2, Name: "Half-Life"})},
			{"Profile", tui.ToNamed("/profile", nil)},
			{"Broken link", tui.ToNamed("/missing", nil)},
			{"Log out", tui.OffAll("/login", nil)},
		},
	}
}

func detailScreen(args any) *menuScreen {
	item, ok := args.(itemArgs)
	if !ok {
		return &menuScreen{title: "Detail", body: "No item selected."}
	}
	return &menuScreen{
		title: fmt.Sprintf("Item #%d", item.ID),
		body:  item.Name,
		links: []link{
			{"Swap for profile", tui.OffNamed("/profile", nil)},
			{"Back", tui.Back()},
		},
	}
}

func profileScreen(any) *menuScreen {
	return &menuScreen{
		title: "Profile",
		body:  "Signed in.",
		links: []link{
			{"Back", tui.Back()},
		},
	}
}

func loginScreen(any) *menuScreen {
	return &menuScreen{
		title: "Login",
		body:  "Signed out.",
		links: []link{
			{"Sign in", tui.OffAll("/home", nil)},
		},
	}
}
