// Package navigation owns the per-client navigation state (active page,
// selected symbol) and the session fields that follow the user across
// pages (authentication, theme, identity).
package navigation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bobmcallan/investiq/internal/common"
	"github.com/bobmcallan/investiq/internal/models"
)

// DefaultSymbol is selected until a listing row is activated.
const DefaultSymbol = "AAPL"

// ErrUnknownPage is returned by Navigate for identifiers outside the page set.
var ErrUnknownPage = errors.New("navigation: unknown page")

// Controller applies page transitions for one client session.
// Every transition is applied under the controller's lock.
type Controller struct {
	mu             sync.Mutex
	page           models.Page
	selectedSymbol string
	authenticated  bool
	theme          models.Theme
	user           models.User
	logger         *common.Logger
}

// NewController returns a controller on the landing page with a light,
// unauthenticated, anonymous session.
func NewController(logger *common.Logger) *Controller {
	return &Controller{
		page:           models.PageLanding,
		selectedSymbol: DefaultSymbol,
		theme:          models.ThemeLight,
		logger:         logger,
	}
}

// GetStarted moves to the login page.
func (c *Controller) GetStarted() models.Snapshot {
	return c.goTo(models.PageLogin)
}

// LearnMore moves to the beginner guide.
func (c *Controller) LearnMore() models.Snapshot {
	return c.goTo(models.PageBeginnerGuide)
}

// LoginSuccess marks the session authenticated, stores the user and moves to the dashboard.
func (c *Controller) LoginSuccess(user models.User) models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = true
	c.user = models.User{Name: strings.TrimSpace(user.Name), Email: strings.TrimSpace(user.Email)}
	c.page = models.PageDashboard
	c.logger.Debug().Str("email", c.user.Email).Msg("Session authenticated")
	return c.snapshotLocked()
}

// Logout returns to the landing page and clears authentication.
// The stored user is kept.
func (c *Controller) Logout() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = false
	c.page = models.PageLanding
	return c.snapshotLocked()
}

// Navigate moves to the named page. Unknown identifiers leave the state
// unchanged and return ErrUnknownPage.
func (c *Controller) Navigate(pageID string) (models.Snapshot, error) {
	p, err := models.ParsePage(pageID)
	if err != nil {
		return c.Snapshot(), fmt.Errorf("%w: %q", ErrUnknownPage, pageID)
	}
	return c.goTo(p), nil
}

// StockClick selects symbol and opens the stock details page.
// A blank symbol keeps the current selection.
func (c *Controller) StockClick(symbol string) models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s := strings.ToUpper(strings.TrimSpace(symbol)); s != "" {
		c.selectedSymbol = s
	}
	c.page = models.PageStockDetails
	return c.snapshotLocked()
}

// BackToDashboard returns to the dashboard.
func (c *Controller) BackToDashboard() models.Snapshot {
	return c.goTo(models.PageDashboard)
}

// BackToLanding returns to the landing page.
func (c *Controller) BackToLanding() models.Snapshot {
	return c.goTo(models.PageLanding)
}

// ToggleTheme flips the stored theme. The page does not change.
func (c *Controller) ToggleTheme() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme = c.theme.Toggled()
	return c.snapshotLocked()
}

// Snapshot returns the current view of the session.
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SnapshotAt returns the current state as it would render on page p,
// without moving the controller.
func (c *Controller) SnapshotAt(p models.Page) models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotOn(p)
}

func (c *Controller) goTo(p models.Page) models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = p
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() models.Snapshot {
	return c.snapshotOn(c.page)
}

func (c *Controller) snapshotOn(p models.Page) models.Snapshot {
	return models.Snapshot{
		Page:           p,
		SelectedSymbol: c.selectedSymbol,
		Authenticated:  c.authenticated,
		Theme:          c.theme,
		EffectiveTheme: EffectiveTheme(p, c.theme),
		User:           c.user,
		ShowHeader:     !p.IsPublic(),
		ShowChat:       !p.IsPublic(),
	}
}

// EffectiveTheme is the theme a page renders with: public pages are always light.
func EffectiveTheme(p models.Page, stored models.Theme) models.Theme {
	if p.IsPublic() {
		return models.ThemeLight
	}
	return stored
}
