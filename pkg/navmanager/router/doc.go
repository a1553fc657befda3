// Package router provides the navigation stack behind navmanager.
//
// A Router keeps an ordered stack of Routes, root first, and changes it only
// through four named operations. It knows nothing about views or the route
// table: any name can be pushed, and names that were never registered are
// caught later when the host resolves a view.
//
// # Basic Usage
//
//	r := router.New()
//
//	// Host surface establishes the root once, before the first render
//	r.OffAll("/home", nil)
//
//	r.ToNamed("/detail", DetailArgs{ID: 7}) // [/home /detail]
//	r.OffNamed("/profile", nil)             // [/home /profile]
//	r.Back()                                // [/home]
//	r.Back()                                // [/home], the root is never popped
//	r.OffAll("/login", nil)                 // [/login]
//
// # Observing Changes
//
// Hosts subscribe with AddListener. Listeners run synchronously after the
// stack is updated, so a host that re-renders from a listener always sees
// the new stack:
//
//	unsubscribe := r.AddListener(func(c router.Change) {
//	    top, _ := c.Top()
//	    render(top)
//	})
//	defer unsubscribe()
//
// A listener may navigate, for example to redirect away from a guarded
// route. The redirect is delivered after the current change has reached
// every listener, so the last Change a listener sees always matches the
// stack.
//
// # Arguments
//
// Route arguments are opaque. Route.Equal compares them with == when the
// payload type is comparable, or through an Equal(any) bool method when the
// payload provides one.
//
// # Concurrency
//
// A Router has no internal locking. Keep every call on the goroutine that
// drives the host surface, or serialize access yourself.
package router
