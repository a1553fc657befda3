package navmanager

import (
	"fmt"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager/internal"
)

// UnknownRouteHandler produces the view shown for a route name missing from
// the route table. Implementations report the miss before returning.
type UnknownRouteHandler interface {
	HandleUnknownRoute(routeName string) View
}

// UnknownRouteHandlerFunc adapts a plain function to UnknownRouteHandler.
// The function is responsible for its own error reporting.
type UnknownRouteHandlerFunc func(routeName string) View

// HandleUnknownRoute calls f(routeName).
func (f UnknownRouteHandlerFunc) HandleUnknownRoute(routeName string) View {
	return f(routeName)
}

// CustomUnknownRouteHandler reports the miss and returns a fixed view.
type CustomUnknownRouteHandler struct {
	view   View
	logger NavigationErrorLogger
}

// NewCustomUnknownRouteHandler creates a handler that always returns view.
// A nil logger uses NewDefaultNavigationErrorLogger(nil).
func NewCustomUnknownRouteHandler(view View, logger NavigationErrorLogger) *CustomUnknownRouteHandler {
	if logger == nil {
		logger = NewDefaultNavigationErrorLogger(nil)
	}
	return &CustomUnknownRouteHandler{view: view, logger: logger}
}

func (h *CustomUnknownRouteHandler) HandleUnknownRoute(routeName string) View {
	safeLog(h.logger, UnknownRouteError(routeName))
	return h.view
}

// DefaultUnknownRouteHandler reports the miss and returns a PlaceholderView
// with a localized message naming the route.
type DefaultUnknownRouteHandler struct {
	logger NavigationErrorLogger
}

// NewDefaultUnknownRouteHandler creates the default handler.
// A nil logger uses NewDefaultNavigationErrorLogger(nil).
func NewDefaultUnknownRouteHandler(logger NavigationErrorLogger) *DefaultUnknownRouteHandler {
	if logger == nil {
		logger = NewDefaultNavigationErrorLogger(nil)
	}
	return &DefaultUnknownRouteHandler{logger: logger}
}

func (h *DefaultUnknownRouteHandler) HandleUnknownRoute(routeName string) View {
	safeLog(h.logger, UnknownRouteError(routeName))

	return PlaceholderView{
		RouteName: routeName,
		Title:     internal.Localize("UnknownRouteTitle", "Page not found", nil),
		Message: internal.Localize("UnknownRoute",
			fmt.Sprintf("Unknown route encountered: %s", routeName),
			map[string]any{"Name": routeName},
		),
	}
}
