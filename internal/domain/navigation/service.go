// internal/domain/navigation/service.go
package navigation

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Page identifies one of the storefront screens. Exactly one page is
// active at a time.
type Page string

// Storefront pages
const (
	PageHome         Page = "home"
	PageCart         Page = "cart"
	PageCheckout     Page = "checkout"
	PageAuth         Page = "auth"
	PageProfile      Page = "profile"
	PageConfirmation Page = "confirmation"
)

// Valid reports whether p names a known page
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageCart, PageCheckout, PageAuth, PageProfile, PageConfirmation:
		return true
	}
	return false
}

// ErrUnknownPage is returned when navigating to a page that does not exist
var ErrUnknownPage = errors.New("unknown page")

// ErrLoginRequired is returned by the checkout gate for anonymous sessions
var ErrLoginRequired = errors.New("please login to proceed to checkout")

// ErrEmptyCart is returned by the checkout gate when the cart is empty
var ErrEmptyCart = errors.New("your cart is empty")

// Session exposes the authentication state the gates need
type Session interface {
	Authenticated() bool
}

// Cart exposes the emptiness check the checkout gate needs
type Cart interface {
	Empty() bool
}

// Navigator holds the page-state machine and the theme flag.
// NavigateTo is the only transition primitive; the checkout guard is a
// precondition checked by ProceedToCheckout, not by NavigateTo itself.
type Navigator struct {
	mu       sync.Mutex
	logger   *logrus.Logger
	session  Session
	cart     Cart
	page     Page
	darkMode bool
}

// View is the display-ready projection of the navigation state
type View struct {
	Page     Page `json:"page"`
	DarkMode bool `json:"dark_mode"`
}

// NewNavigator creates a navigator starting on the home page
func NewNavigator(session Session, cart Cart, logger *logrus.Logger) *Navigator {
	return &Navigator{
		logger:  logger,
		session: session,
		cart:    cart,
		page:    PageHome,
	}
}

// NavigateTo activates the given page and returns the page actually
// reached. Entering profile while anonymous redirects to auth.
func (n *Navigator) NavigateTo(page Page) (Page, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !page.Valid() {
		return n.page, ErrUnknownPage
	}

	if page == PageProfile && !n.session.Authenticated() {
		page = PageAuth
	}

	n.page = page
	n.logger.WithField("page", page).Debug("Navigated")
	return n.page, nil
}

// ProceedToCheckout gates entry to the checkout page: it requires an
// authenticated session and a non-empty cart. An anonymous caller is
// redirected to auth; an empty cart blocks without navigating.
func (n *Navigator) ProceedToCheckout() (Page, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.session.Authenticated() {
		n.page = PageAuth
		return n.page, ErrLoginRequired
	}

	if n.cart.Empty() {
		return n.page, ErrEmptyCart
	}

	n.page = PageCheckout
	return n.page, nil
}

// Current returns the active page
func (n *Navigator) Current() Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}

// ToggleTheme flips dark mode and returns the new state
func (n *Navigator) ToggleTheme() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.darkMode = !n.darkMode
	return n.darkMode
}

// View returns the display-ready navigation projection
func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()
	return View{Page: n.page, DarkMode: n.darkMode}
}
