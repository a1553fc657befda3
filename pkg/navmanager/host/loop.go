// Package host provides a synchronous run loop that drives a navmanager
// Manager. Each view is a Screen that runs to completion, changes the stack
// through the router, and returns; the loop then resolves whatever is on top.
package host

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
	"github.com/BrandonKowalski/navmanager/pkg/navmanager/router"
)

// ErrExit is returned by a Screen to stop the loop.
// It is a normal way out, so Run returns nil for it.
var ErrExit = errors.New("host: exit requested")

// Screen is a view the loop can run.
// Run blocks until the screen is done and navigates through nav.
type Screen interface {
	Run(nav *router.Router) error
}

// ScreenFunc adapts a plain function to Screen.
type ScreenFunc func(nav *router.Router) error

// Run calls f(nav).
func (f ScreenFunc) Run(nav *router.Router) error {
	return f(nav)
}

// Loop runs screens until one of them asks to exit or fails.
type Loop struct {
	manager  *navmanager.Manager
	fallback func(view navmanager.View) Screen
}

// New creates a Loop for m.
func New(m *navmanager.Manager) *Loop {
	return &Loop{manager: m}
}

// OnUnrenderable sets how views that are not Screens are shown, such as the
// default handler's PlaceholderView. Without it such views stop the loop
// with an error.
func (l *Loop) OnUnrenderable(fn func(view navmanager.View) Screen) *Loop {
	l.fallback = fn
	return l
}

// Run mounts the manager and runs the visible screen until a screen returns
// ErrExit (Run returns nil) or another error (Run returns it wrapped).
//
// The next view is always resolved after the previous screen has returned,
// so it reflects every mutation that screen made.
func (l *Loop) Run() error {
	l.manager.Mount()
	nav := l.manager.Router()

	for {
		top, _ := nav.Top()
		screen, err := l.screenFor(top, l.manager.TopView())
		if err != nil {
			return err
		}

		before := nav.Version()
		err = screen.Run(nav)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("host: screen %s error: %w", top.Name(), err)
		}

		if nav.Version() == before {
			internal.GetInternalLogger().Debug("Screen returned without navigating, running it again",
				"router", nav.ID(), "route", top.Name())
		}
	}
}

func (l *Loop) screenFor(route router.Route, view navmanager.View) (Screen, error) {
	if screen, ok := view.(Screen); ok {
		return screen, nil
	}
	if l.fallback != nil {
		if screen := l.fallback(view); screen != nil {
			return screen, nil
		}
	}
	return nil, fmt.Errorf("host: view %T for route %s is not a Screen", view, route.Name())
}
