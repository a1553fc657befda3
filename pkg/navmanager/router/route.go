package router

import (
	"fmt"
	"reflect"
)

// Equaler lets an argument payload define its own equality.
// Route.Equal prefers it over == when the payload implements it.
type Equaler interface {
	Equal(other any) bool
}

// Route is a named destination plus an optional argument payload.
// Routes are values: every stack mutation creates new ones and nothing
// mutates them in place.
type Route struct {
	name      string
	arguments any
}

// NewRoute creates a Route. Arguments may be nil.
func NewRoute(name string, arguments any) Route {
	return Route{name: name, arguments: arguments}
}

// Name returns the route name.
func (r Route) Name() string {
	return r.name
}

// Arguments returns the opaque argument payload, or nil.
func (r Route) Arguments() any {
	return r.arguments
}

// Equal reports whether both routes have the same name and equal arguments.
//
// Argument equality is defined by the payload type:
//   - two nil payloads are equal
//   - a payload implementing Equaler decides for itself
//   - payloads of the same comparable type are compared with ==
//   - anything else is not equal
//
// Payloads are never inspected deeply and uncomparable payloads never panic.
func (r Route) Equal(other Route) bool {
	if r.name != other.name {
		return false
	}
	return argumentsEqual(r.arguments, other.arguments)
}

func (r Route) String() string {
	if r.arguments == nil {
		return r.name
	}
	return fmt.Sprintf("%s(%v)", r.name, r.arguments)
}

func argumentsEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	// Value.Comparable checks dynamic values too, so structs holding
	// slices behind interface fields fall through instead of panicking.
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
