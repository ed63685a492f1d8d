package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/ui"
	"pet-adoption-portal/internal/ui/router"
)

type fakePage struct {
	name    string
	ctx     context.Context
	nav     ui.Navigation
	onMount func(ctx context.Context) error
}

func (p *fakePage) Mount(ctx context.Context, nav ui.Navigation) error {
	p.ctx, p.nav = ctx, nav
	if p.onMount != nil {
		return p.onMount(ctx)
	}
	return nil
}

func newRouter(pages map[string]*[]*fakePage) *router.Router {
	r := router.New(nil)
	for pattern, created := range pages {
		created := created
		name := pattern
		r.Handle(pattern, func() ui.Page {
			p := &fakePage{name: name}
			*created = append(*created, p)
			return p
		})
	}
	return r
}

func TestRouter_NavigateMountsFreshPage(t *testing.T) {
	var home, pets []*fakePage
	r := newRouter(map[string]*[]*fakePage{"/": &home, "/pets": &pets})
	ctx := context.Background()

	require.NoError(t, r.Navigate(ctx, "/", nil))
	require.NoError(t, r.Navigate(ctx, "/pets?type=dog", "state"))
	require.NoError(t, r.Navigate(ctx, "/", nil))

	require.Len(t, home, 2)
	require.Len(t, pets, 1)
	assert.Equal(t, "/pets", pets[0].nav.Path)
	assert.Equal(t, "dog", pets[0].nav.Param("type"))
	assert.Equal(t, "state", pets[0].nav.State)
}

func TestRouter_NavigationCancelsPreviousPage(t *testing.T) {
	var a, b []*fakePage
	r := newRouter(map[string]*[]*fakePage{"/a": &a, "/b": &b})
	ctx := context.Background()

	require.NoError(t, r.Navigate(ctx, "/a", nil))
	require.NoError(t, a[0].ctx.Err())

	require.NoError(t, r.Navigate(ctx, "/b", nil))
	assert.ErrorIs(t, a[0].ctx.Err(), context.Canceled)
	assert.NoError(t, b[0].ctx.Err())

	r.Close()
	assert.ErrorIs(t, b[0].ctx.Err(), context.Canceled)
}

func TestRouter_UnknownPath(t *testing.T) {
	var a []*fakePage
	r := newRouter(map[string]*[]*fakePage{"/a": &a})
	assert.ErrorIs(t, r.Navigate(context.Background(), "/nope", nil), ui.ErrNotFound)
	assert.Empty(t, a)
}

func TestRouter_URLParams(t *testing.T) {
	var pages []*fakePage
	r := newRouter(map[string]*[]*fakePage{"/pets/{id}": &pages})
	require.NoError(t, r.Navigate(context.Background(), "/pets/42", nil))
	assert.Equal(t, "42", pages[0].nav.Param("id"))
}

func TestRouter_Back(t *testing.T) {
	var a, b []*fakePage
	r := newRouter(map[string]*[]*fakePage{"/a": &a, "/b": &b})
	ctx := context.Background()

	assert.ErrorIs(t, r.Back(ctx), router.ErrNoHistory)

	require.NoError(t, r.Navigate(ctx, "/a", "first"))
	require.NoError(t, r.Navigate(ctx, "/b", nil))
	require.NoError(t, r.Back(ctx))

	require.Len(t, a, 2)
	assert.Equal(t, "first", a[1].nav.State)

	_, nav, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, "/a", nav.Path)
}

func TestRouter_RedirectDuringMount(t *testing.T) {
	r := router.New(nil)
	var target []*fakePage
	r.Handle("/target", func() ui.Page {
		p := &fakePage{}
		target = append(target, p)
		return p
	})
	var guarded *fakePage
	r.Handle("/guarded", func() ui.Page {
		guarded = &fakePage{onMount: func(ctx context.Context) error {
			return r.Navigate(ctx, "/target", nil)
		}}
		return guarded
	})

	require.NoError(t, r.Navigate(context.Background(), "/guarded", nil))
	require.Len(t, target, 1)
	assert.ErrorIs(t, guarded.ctx.Err(), context.Canceled)
	// la página destino queda montada aunque el redirect usó el ctx de la anterior
	assert.NoError(t, target[0].ctx.Err())

	_, nav, _ := r.Current()
	assert.Equal(t, "/target", nav.Path)
}

func TestRouter_Routes(t *testing.T) {
	r := router.New(nil)
	r.Handle("/", func() ui.Page { return &fakePage{} })
	r.Handle("/pets", func() ui.Page { return &fakePage{} })
	assert.Equal(t, []string{"/", "/pets"}, r.Routes())
}
