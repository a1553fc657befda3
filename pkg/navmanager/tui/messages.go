package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/router"
)

// NavigateMsg asks the Model to mutate its router. Screens return it through
// the helper commands below so every mutation happens inside Update.
type NavigateMsg struct {
	Op        router.Op
	Name      string
	Arguments any
}

// RefreshMsg asks the Model to resolve the visible view again after the
// router was mutated outside Update.
type RefreshMsg struct{}

// ToNamed returns a command that pushes a route.
func ToNamed(name string, arguments any) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: router.OpPush, Name: name, Arguments: arguments} }
}

// Back returns a command that pops the visible route.
func Back() tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: router.OpPop} }
}

// OffNamed returns a command that replaces the visible route.
func OffNamed(name string, arguments any) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: router.OpReplace, Name: name, Arguments: arguments} }
}

// OffAll returns a command that resets the stack to a new root.
func OffAll(name string, arguments any) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Op: router.OpReset, Name: name, Arguments: arguments} }
}
