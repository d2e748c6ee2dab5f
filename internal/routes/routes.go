// Package routes holds the client page routes and the navigation used when a
// session ends.
package routes

import (
	"net/url"
	"strings"
)

// Fixed page paths.
const (
	LoginPath     = "/auth/login"
	RegisterPath  = "/auth/register"
	DashboardPath = "/dashboard"
)

// Route is one client page.
type Route struct {
	Path   string `json:"path"`
	Title  string `json:"title"`
	Module string `json:"module"`
	Public bool   `json:"public,omitempty"`
	Admin  bool   `json:"admin,omitempty"`
}

var table = []Route{ //nolint:gochecknoglobals // static route table
	{Path: "/", Title: "Home", Module: "home", Public: true},
	{Path: LoginPath, Title: "Inloggen", Module: "auth", Public: true},
	{Path: RegisterPath, Title: "Registreren", Module: "auth", Public: true},
	{Path: "/auth/forgot-password", Title: "Wachtwoord vergeten", Module: "auth", Public: true},
	{Path: DashboardPath, Title: "Dashboard", Module: "dashboard"},
	{Path: "/talents", Title: "Talenten", Module: "talents"},
	{Path: "/talents/new", Title: "Nieuw talent", Module: "talents"},
	{Path: "/scouts", Title: "Scouts", Module: "scouts"},
	{Path: "/transfers", Title: "Transfers", Module: "transfers"},
	{Path: "/transfers/new", Title: "Nieuwe transfer", Module: "transfers"},
	{Path: "/transfers/calculator", Title: "Calculator", Module: "transfers"},
	{Path: "/events", Title: "Evenementen", Module: "events"},
	{Path: "/events/new", Title: "Nieuw evenement", Module: "events"},
	{Path: "/tickets", Title: "Mijn Tickets", Module: "tickets"},
	{Path: "/wallets", Title: "Wallet", Module: "wallets"},
	{Path: "/foundation", Title: "Foundation", Module: "foundation"},
	{Path: "/foundation/donate", Title: "Doneren", Module: "foundation"},
	{Path: "/foundation/projects", Title: "Projecten", Module: "foundation"},
	{Path: "/academies", Title: "Academy", Module: "academies"},
	{Path: "/subscriptions", Title: "Abonnementen", Module: "subscriptions"},
	{Path: "/fandorpen", Title: "FanDorpen", Module: "fandorpen"},
	{Path: "/frmf", Title: "FRMF", Module: "frmf"},
	{Path: "/frmf/referees", Title: "Scheidsrechters", Module: "frmf"},
	{Path: "/frmf/var-decisions", Title: "VAR Beslissingen", Module: "frmf"},
	{Path: "/frmf/players", Title: "Spelers", Module: "frmf"},
	{Path: "/identities", Title: "Identity Shield", Module: "identities"},
	{Path: "/maroc-id", Title: "Maroc ID", Module: "maroc-id"},
	{Path: "/maroc-id/certificates", Title: "Certificaten", Module: "maroc-id"},
	{Path: "/hayat", Title: "Hayat", Module: "hayat"},
	{Path: "/hayat/sessions", Title: "Sessies", Module: "hayat"},
	{Path: "/hayat/crisis", Title: "Crisis", Module: "hayat"},
	{Path: "/antihate", Title: "Anti-Hate", Module: "antihate"},
	{Path: "/antihate/incidents", Title: "Incidenten", Module: "antihate"},
	{Path: "/antihate/legal", Title: "Juridisch", Module: "antihate"},
	{Path: "/nil", Title: "NIL", Module: "nil"},
	{Path: "/nil/signals", Title: "Signalen", Module: "nil"},
	{Path: "/nil/factcards", Title: "Factcards", Module: "nil"},
	{Path: "/consulate", Title: "Consulaat", Module: "consulate"},
	{Path: "/consulate/documents", Title: "Documenten", Module: "consulate"},
	{Path: "/consulate/appointments", Title: "Afspraken", Module: "consulate"},
	{Path: "/admin", Title: "Admin", Module: "admin", Admin: true},
	{Path: "/admin/users", Title: "Gebruikers", Module: "admin", Admin: true},
	{Path: "/admin/sessions", Title: "Sessies", Module: "admin", Admin: true},
	{Path: "/admin/audit", Title: "Audit Log", Module: "admin", Admin: true},
	{Path: "/admin/settings", Title: "Instellingen", Module: "admin", Admin: true},
}

// All returns a copy of the route table.
func All() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Lookup finds the route serving path. An exact match wins; otherwise the
// longest route that is a parent of path, so "/talents/42" resolves to
// "/talents". Query strings and fragments are ignored.
func Lookup(path string) (Route, bool) {
	path = clean(path)
	var (
		best  Route
		found bool
	)
	for _, r := range table {
		if r.Path == path {
			return r, true
		}
		if r.Path == "/" || !strings.HasPrefix(path, r.Path+"/") {
			continue
		}
		if !found || len(r.Path) > len(best.Path) {
			best, found = r, true
		}
	}
	return best, found
}

// RequiresAuth reports whether path needs a signed-in user. Unknown paths do.
func RequiresAuth(path string) bool {
	r, ok := Lookup(path)
	return !ok || !r.Public
}

func clean(path string) string {
	if u, err := url.Parse(path); err == nil {
		path = u.Path
	}
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
