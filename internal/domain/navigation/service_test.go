package navigation

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSession struct{ authed bool }

func (s *stubSession) Authenticated() bool { return s.authed }

type stubCart struct{ empty bool }

func (c *stubCart) Empty() bool { return c.empty }

func newTestNavigator(authed, cartEmpty bool) (*Navigator, *stubSession, *stubCart) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	session := &stubSession{authed: authed}
	cart := &stubCart{empty: cartEmpty}
	return NewNavigator(session, cart, logger), session, cart
}

func TestNavigateTo_Basics(t *testing.T) {
	nav, _, _ := newTestNavigator(false, true)
	assert.Equal(t, PageHome, nav.Current())

	page, err := nav.NavigateTo(PageCart)
	require.NoError(t, err)
	assert.Equal(t, PageCart, page)
	assert.Equal(t, PageCart, nav.Current())
}

func TestNavigateTo_UnknownPage(t *testing.T) {
	nav, _, _ := newTestNavigator(false, true)

	page, err := nav.NavigateTo(Page("garage"))
	require.ErrorIs(t, err, ErrUnknownPage)
	assert.Equal(t, PageHome, page, "failed navigation must not change the active page")
}

func TestNavigateTo_ProfileRedirectsAnonymousToAuth(t *testing.T) {
	nav, session, _ := newTestNavigator(false, true)

	page, err := nav.NavigateTo(PageProfile)
	require.NoError(t, err)
	assert.Equal(t, PageAuth, page)

	session.authed = true
	page, err = nav.NavigateTo(PageProfile)
	require.NoError(t, err)
	assert.Equal(t, PageProfile, page)
}

func TestProceedToCheckout_Gates(t *testing.T) {
	t.Run("anonymous redirects to auth", func(t *testing.T) {
		nav, _, _ := newTestNavigator(false, false)

		page, err := nav.ProceedToCheckout()
		require.ErrorIs(t, err, ErrLoginRequired)
		assert.Equal(t, PageAuth, page)
		assert.Equal(t, PageAuth, nav.Current())
	})

	t.Run("empty cart blocks without navigating", func(t *testing.T) {
		nav, _, _ := newTestNavigator(true, true)

		page, err := nav.ProceedToCheckout()
		require.ErrorIs(t, err, ErrEmptyCart)
		assert.Equal(t, PageHome, page)
	})

	t.Run("authenticated with items proceeds", func(t *testing.T) {
		nav, _, _ := newTestNavigator(true, false)

		page, err := nav.ProceedToCheckout()
		require.NoError(t, err)
		assert.Equal(t, PageCheckout, page)
	})
}

func TestToggleTheme(t *testing.T) {
	nav, _, _ := newTestNavigator(false, true)

	assert.False(t, nav.View().DarkMode)
	assert.True(t, nav.ToggleTheme())
	assert.True(t, nav.View().DarkMode)
	assert.False(t, nav.ToggleTheme())
}
