package navmanager

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the category of a NavigationError.
// The set is closed: new failure modes get a new kind, not a new string code.
type ErrorKind int

const (
	// KindUnknownRoute means the requested name is not in the route table.
	KindUnknownRoute ErrorKind = iota
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnknownRoute:
		return "unknown_route"
	default:
		return "unknown"
	}
}

// NavigationError is reported to a NavigationErrorLogger when navigation
// cannot be honoured as asked. It is never returned to the host: the
// resolver turns it into a fallback view.
type NavigationError struct {
	Kind  ErrorKind
	Route string // route name the error is about
}

func (e *NavigationError) Error() string {
	switch e.Kind {
	case KindUnknownRoute:
		return fmt.Sprintf("navigation: unknown route encountered: %s", e.Route)
	default:
		return fmt.Sprintf("navigation: %s: %s", e.Kind, e.Route)
	}
}

// UnknownRouteError creates the error for a name missing from the route table.
func UnknownRouteError(name string) *NavigationError {
	return &NavigationError{Kind: KindUnknownRoute, Route: name}
}

// IsUnknownRoute checks if an error is an unknown route error.
func IsUnknownRoute(err error) bool {
	var navErr *NavigationError
	return errors.As(err, &navErr) && navErr.Kind == KindUnknownRoute
}

// DuplicateRouteError is returned by NewManager when RejectDuplicateRoutes is
// set and the route table registers a name more than once.
type DuplicateRouteError struct {
	Names []string
}

func (e *DuplicateRouteError) Error() string {
	return fmt.Sprintf("navmanager: duplicate route names: %s", strings.Join(e.Names, ", "))
}
