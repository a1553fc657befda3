package router

// Stack holds navigation history in order.
// Index 0 is the root and the last entry is the visible route.
type Stack struct {
	entries []Route
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]Route, 0),
	}
}

// Push adds a route to the top of the stack.
func (s *Stack) Push(route Route) {
	s.entries = append(s.entries, route)
}

// Pop removes and returns the top route.
// Returns false if the stack is empty.
func (s *Stack) Pop() (Route, bool) {
	if len(s.entries) == 0 {
		return Route{}, false
	}
	route := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = Route{}
	s.entries = s.entries[:len(s.entries)-1]
	return route, true
}

// Peek returns the top route without removing it.
// Returns false if the stack is empty.
func (s *Stack) Peek() (Route, bool) {
	if len(s.entries) == 0 {
		return Route{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Routes returns a copy of the entries, root first.
func (s *Stack) Routes() []Route {
	out := make([]Route, len(s.entries))
	copy(out, s.entries)
	return out
}
