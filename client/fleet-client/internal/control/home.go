package control

import (
	"context"
)

// MenuOption is one entry of the home menu.
type MenuOption struct {
	ID     string
	Titulo string
	Icone  string
	Rota   Route
}

// Logouter ends the session.
type Logouter interface {
	Logout(ctx context.Context) error
}

// HomeControl backs the home menu.
type HomeControl struct {
	auth Logouter
	deps Deps
}

// NewHomeControl builds HomeControl.
func NewHomeControl(auth Logouter, deps Deps) *HomeControl {
	return &HomeControl{auth: auth, deps: deps.withDefaults()}
}

// Opcoes lists the menu entries with translated titles.
func (c *HomeControl) Opcoes() []MenuOption {
	t := c.deps.Translator
	return []MenuOption{
		{ID: "1", Titulo: t("home.options.registerMoto"), Icone: "business", Rota: RouteCadastroMoto},
		{ID: "2", Titulo: t("home.options.locateMoto"), Icone: "search", Rota: RouteLocateMoto},
		{ID: "3", Titulo: t("home.options.selectSector"), Icone: "layers", Rota: RouteSectorSelection},
		{ID: "4", Titulo: t("home.options.motoWithoutPlate"), Icone: "barcode", Rota: RouteMotoWithoutPlate},
		{ID: "5", Titulo: t("home.options.toggleTheme"), Icone: "color-palette", Rota: RouteToggleTheme},
		{ID: "6", Titulo: t("home.options.logout"), Icone: "log-out", Rota: RouteLogout},
	}
}

// FazerLogout ends the session, tells the user and sends nav back to the welcome screen.
// On failure the user is alerted and nav is left alone.
func (c *HomeControl) FazerLogout(ctx context.Context, nav Navigator) bool {
	t := c.deps.Translator
	if err := c.auth.Logout(ctx); err != nil {
		c.deps.Alerter.Alert(t("home.logoutAlert.errorTitle"), t("home.logoutAlert.errorMessage"))
		return false
	}
	c.deps.Alerter.Alert(t("home.logoutAlert.title"), t("home.logoutAlert.message"))
	if nav != nil {
		nav.Reset(RouteWelcome)
	}
	return true
}
