package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathNames(r *Router) []string {
	return routeNames(r.Path())
}

func routeNames(path []Route) []string {
	out := make([]string, len(path))
	for i, route := range path {
		out[i] = route.Name()
	}
	return out
}

func TestToNamedAppendsInOrder(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)

	for _, name := range []string{"/a", "/b", "/c", "/b"} {
		r.ToNamed(name, nil)
	}

	assert.Equal(t, []string{"/home", "/a", "/b", "/c", "/b"}, pathNames(r))
	top, ok := r.Top()
	require.True(t, ok)
	assert.Equal(t, "/b", top.Name())
}

func TestToNamedDoesNotValidateNames(t *testing.T) {
	r := New()
	r.ToNamed("", nil)
	r.ToNamed("not a registered route", 42)

	assert.Equal(t, 2, r.Len())
}

func TestBackPopsTop(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)
	r.ToNamed("/detail", nil)
	r.ToNamed("/more", nil)

	assert.True(t, r.Back())
	assert.Equal(t, []string{"/home", "/detail"}, pathNames(r))

	assert.True(t, r.Back())
	assert.Equal(t, []string{"/home"}, pathNames(r))
}

func TestBackKeepsRoot(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)
	version := r.Version()

	assert.False(t, r.CanBack())
	assert.False(t, r.Back())
	assert.Equal(t, []string{"/home"}, pathNames(r))
	assert.Equal(t, version, r.Version(), "no-op back must not bump the version")
}

func TestBackOnEmptyStack(t *testing.T) {
	r := New()

	assert.NotPanics(t, func() { r.Back() })
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, uint64(0), r.Version())
}

func TestOffNamedReplacesTop(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)
	r.ToNamed("/list", "filter")
	r.ToNamed("/detail", nil)
	below := r.Path()[:2]

	r.OffNamed("/profile", map[string]string{"tab": "posts"})

	path := r.Path()
	require.Len(t, path, 3)
	assert.Equal(t, "/profile", path[2].Name())
	assert.Equal(t, map[string]string{"tab": "posts"}, path[2].Arguments())
	for i := range below {
		assert.True(t, below[i].Equal(path[i]), "entry %d changed", i)
	}
}

func TestOffNamedOnEmptyStackPushes(t *testing.T) {
	r := New()
	r.OffNamed("/home", nil)

	assert.Equal(t, []string{"/home"}, pathNames(r))
}

func TestOffAllResetsFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *Router)
	}{
		{"empty", func(r *Router) {}},
		{"root only", func(r *Router) { r.OffAll("/home", nil) }},
		{"deep", func(r *Router) {
			r.OffAll("/home", nil)
			r.ToNamed("/a", nil)
			r.ToNamed("/b", nil)
			r.ToNamed("/c", nil)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			tt.setup(r)

			r.OffAll("/login", "next=/home")

			path := r.Path()
			require.Len(t, path, 1)
			assert.True(t, path[0].Equal(NewRoute("/login", "next=/home")))
		})
	}
}

func TestPathIsACopy(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)

	path := r.Path()
	path[0] = NewRoute("/hacked", nil)

	top, _ := r.Top()
	assert.Equal(t, "/home", top.Name())
}

func TestVersionCountsMutations(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)
	r.ToNamed("/a", nil)
	r.OffNamed("/b", nil)
	r.Back()

	assert.Equal(t, uint64(4), r.Version())
}

func TestListenersSeeNewPathInOrder(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)

	var calls []string
	r.AddListener(func(c Change) {
		// the router already reflects the change
		top, _ := r.Top()
		calls = append(calls, "first:"+c.Op.String()+":"+top.Name())
	})
	r.AddListener(func(c Change) {
		calls = append(calls, "second:"+c.Previous.Name())
	})

	r.ToNamed("/detail", nil)
	r.Back()

	assert.Equal(t, []string{
		"first:push:/detail",
		"second:/home",
		"first:pop:/home",
		"second:/detail",
	}, calls)
}

func TestChangeCarriesPathAndVersion(t *testing.T) {
	r := New()
	var got Change
	r.AddListener(func(c Change) { got = c })

	r.OffAll("/home", nil)
	r.ToNamed("/detail", 7)

	assert.Equal(t, OpPush, got.Op)
	assert.Equal(t, r.Version(), got.Version)
	require.Len(t, got.Path, 2)
	top, ok := got.Top()
	require.True(t, ok)
	assert.Equal(t, 7, top.Arguments())
}

func TestUnsubscribe(t *testing.T) {
	r := New()
	calls := 0
	unsubscribe := r.AddListener(func(Change) { calls++ })

	r.OffAll("/home", nil)
	unsubscribe()
	unsubscribe()
	r.ToNamed("/detail", nil)

	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	r := New()
	var order []string
	var unsubscribeFirst func()
	unsubscribeFirst = r.AddListener(func(Change) {
		order = append(order, "first")
		unsubscribeFirst()
	})
	r.AddListener(func(Change) { order = append(order, "second") })

	r.OffAll("/home", nil)
	r.ToNamed("/detail", nil)

	assert.Equal(t, []string{"first", "second", "second"}, order)
}

func TestUnsubscribeOtherDuringNotification(t *testing.T) {
	r := New()
	secondCalls := 0
	var unsubscribeSecond func()
	r.AddListener(func(Change) { unsubscribeSecond() })
	unsubscribeSecond = r.AddListener(func(Change) { secondCalls++ })

	r.OffAll("/home", nil)
	r.ToNamed("/detail", nil)

	assert.Equal(t, 0, secondCalls)
}

func TestRedirectFromListenerIsDeliveredInOrder(t *testing.T) {
	r := New()
	r.OffAll("/home", nil)

	r.AddListener(func(c Change) {
		if top, _ := c.Top(); top.Name() == "/guarded" {
			r.OffNamed("/login", nil)
		}
	})
	var seen []Change
	r.AddListener(func(c Change) { seen = append(seen, c) })

	r.ToNamed("/guarded", nil)

	require.Len(t, seen, 2)
	assert.Equal(t, []string{"/home", "/guarded"}, routeNames(seen[0].Path))
	assert.Equal(t, []string{"/home", "/login"}, routeNames(seen[1].Path))
	assert.Less(t, seen[0].Version, seen[1].Version)

	last := seen[len(seen)-1]
	assert.Equal(t, r.Version(), last.Version)
	assert.Equal(t, pathNames(r), routeNames(last.Path))
}

func TestListenerAddedDuringNotificationSeesLaterChanges(t *testing.T) {
	r := New()
	var late []Op
	added := false
	r.AddListener(func(c Change) {
		if added {
			return
		}
		added = true
		r.AddListener(func(c Change) { late = append(late, c.Op) })
		r.ToNamed("/detail", nil)
	})

	r.OffAll("/home", nil)

	assert.Equal(t, []Op{OpPush}, late)
}

func TestRoutersAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.OffAll("/home", nil)
	a.ToNamed("/detail", nil)
	b.OffAll("/login", nil)

	assert.Equal(t, []string{"/home", "/detail"}, pathNames(a))
	assert.Equal(t, []string{"/login"}, pathNames(b))
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "push", OpPush.String())
	assert.Equal(t, "pop", OpPop.String())
	assert.Equal(t, "replace", OpReplace.String())
	assert.Equal(t, "reset", OpReset.String())
	assert.Equal(t, "unknown", Op(99).String())
}
