// Package tui hosts a navmanager Manager in a bubbletea program.
//
// The Model mounts the manager on Init, listens for router changes and
// resolves the visible view again only after the stack changed. Views that
// implement Screen receive messages; PlaceholderViews and plain strings are
// drawn as-is.
//
// View only draws what Update resolved. Code that mutates the router outside
// Update sends RefreshMsg through the program so the new view is resolved
// and its Init command runs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/router"
)

// Screen is a view that takes part in the bubbletea loop.
type Screen interface {
	Update(msg tea.Msg, nav *router.Router) tea.Cmd
	View(width, height int) string
}

// Initializer is implemented by screens that want a command when they
// become visible.
type Initializer interface {
	Init() tea.Cmd
}

// InputCapturer is implemented by screens with text input. While
// CapturingInput reports true the quit key is passed to the screen.
type InputCapturer interface {
	CapturingInput() bool
}

// Model is a tea.Model that renders the top of a navigation stack.
type Model struct {
	manager *navmanager.Manager
	nav     *router.Router

	width, height int

	top             navmanager.View
	path            []router.Route
	renderedVersion uint64
	stale           bool
	unsubscribe     func()
	quitKey         string
	quitting        bool
}

// New creates a Model for m and subscribes to its router.
func New(m *navmanager.Manager) *Model {
	model := &Model{
		manager: m,
		nav:     m.Router(),
		stale:   true,
		quitKey: "q",
	}
	model.unsubscribe = model.nav.AddListener(func(router.Change) {
		model.stale = true
	})
	return model
}

// SetQuitKey changes the key that quits from the root route. An empty key
// leaves only ctrl+c.
func (m *Model) SetQuitKey(key string) *Model {
	m.quitKey = key
	return m
}

// Close stops listening to the router.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// Init mounts the manager and resolves the root view.
func (m *Model) Init() tea.Cmd {
	m.manager.Mount()
	return m.refresh()
}

// refresh resolves the visible view if the stack changed since the last
// resolution. Returns the new screen's Init command, if any.
func (m *Model) refresh() tea.Cmd {
	if !m.stale && m.renderedVersion == m.nav.Version() {
		return nil
	}
	m.top = m.manager.TopView()
	m.path = m.nav.Path()
	m.renderedVersion = m.nav.Version()
	m.stale = false

	if init, ok := m.top.(Initializer); ok {
		return init.Init()
	}
	return nil
}

// Top returns the view currently shown.
func (m *Model) Top() navmanager.View {
	return m.top
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case NavigateMsg:
		m.apply(msg)
		return m, m.refresh()
	case RefreshMsg:
		return m, m.refresh()
	case tea.KeyMsg:
		switch key := msg.String(); {
		case key == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key == "esc":
			m.nav.Back()
			return m, m.refresh()
		case key != "" && key == m.quitKey && !m.nav.CanBack() && !m.capturingInput():
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if screen, ok := m.top.(Screen); ok {
		cmd = screen.Update(msg, m.nav)
	}
	return m, tea.Batch(cmd, m.refresh())
}

func (m *Model) capturingInput() bool {
	c, ok := m.top.(InputCapturer)
	return ok && c.CapturingInput()
}

func (m *Model) apply(msg NavigateMsg) {
	switch msg.Op {
	case router.OpPush:
		m.nav.ToNamed(msg.Name, msg.Arguments)
	case router.OpPop:
		m.nav.Back()
	case router.OpReplace:
		m.nav.OffNamed(msg.Name, msg.Arguments)
	case router.OpReset:
		m.nav.OffAll(msg.Name, msg.Arguments)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.breadcrumb()
	footer := m.footer()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		bodyStyle.Render(m.render(m.top, bodyHeight)),
		footer,
	)
}

func (m *Model) render(view navmanager.View, height int) string {
	switch v := view.(type) {
	case Screen:
		return v.View(m.width, height)
	case navmanager.PlaceholderView:
		return placeholderTitleStyle.Render(v.Title) + "\n\n" + placeholderStyle.Render(v.Message)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (m *Model) breadcrumb() string {
	parts := make([]string, len(m.path))
	for i, route := range m.path {
		if i == len(m.path)-1 {
			parts[i] = breadcrumbTopStyle.Render(route.Name())
			continue
		}
		parts[i] = route.Name()
	}
	return breadcrumbStyle.Render(strings.Join(parts, breadcrumbSep))
}

func (m *Model) footer() string {
	items := []string{
		keyStyle.Render("ctrl+c") + " " + helpDescStyle.Render("quit"),
	}
	if len(m.path) > 1 {
		items = append([]string{keyStyle.Render("esc") + " " + helpDescStyle.Render("back")}, items...)
	} else if m.quitKey != "" {
		items = append(items, keyStyle.Render(m.quitKey)+" "+helpDescStyle.Render("quit"))
	}
	return footerStyle.Render(strings.Join(items, helpDescStyle.Render(" • ")))
}
