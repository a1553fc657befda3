package navmanager_test

import (
	"fmt"

	"github.com/BrandonKowalski/navmanager/pkg/navmanager"
)

type ProfileArgs struct {
	User string
}

// Example demonstrates a route table, navigation and resolving the stack.
func Example() {
	logger := navmanager.NavigationErrorLoggerFunc(func(err *navmanager.NavigationError) {
		fmt.Println("logged:", err)
	})

	m, err := navmanager.NewManager(navmanager.ManagerOptions{
		InitialRoute: "/home",
		Routes: []navmanager.RouteEntry{
			navmanager.NewRouteEntry("/home", func(any) navmanager.View {
				return "Home View"
			}),
			navmanager.NewRouteEntry("/profile", func(args any) navmanager.View {
				return "Profile of " + args.(ProfileArgs).User
			}),
		},
		UnknownRouteHandler: navmanager.NewCustomUnknownRouteHandler("Not Found View", logger),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// Host surface activation
	m.Mount()

	nav := m.Router()
	nav.ToNamed("/profile", ProfileArgs{User: "minhyeok"})
	fmt.Println(m.TopView())

	nav.ToNamed("/missing", nil)
	fmt.Println(m.TopView())

	nav.Back()
	nav.Back()
	fmt.Println(m.Views())

	// Output:
	// Profile of minhyeok
	// logged: navigation: unknown route encountered: /missing
	// Not Found View
	// [Home View]
}
