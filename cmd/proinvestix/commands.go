package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/adapters/http/resources"
	"github.com/okian/proinvestix/internal/adapters/qrcode"
	"github.com/okian/proinvestix/internal/app"
	"github.com/okian/proinvestix/internal/config"
	"github.com/okian/proinvestix/internal/desktop"
	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/internal/routes"
	"github.com/okian/proinvestix/pkg/format"
	"github.com/okian/proinvestix/pkg/logger"
)

var (
	errNotSignedIn  = errors.New("not signed in")
	errUpdateFailed = errors.New("update failed")
)

type env struct {
	app *app.App
	cfg *config.Config
	log logger.Logger
}

type command struct {
	summary string
	usage   string
	run     func(ctx context.Context, e *env, args []string) (any, error)
}

var commands = map[string]command{ //nolint:gochecknoglobals // command table
	"login": {
		summary: "sign in and store the tokens",
		usage:   "-email EMAIL -password PASSWORD",
		run:     loginCmd,
	},
	"register": {
		summary: "create an account",
		usage:   "-username NAME -email EMAIL -password PASSWORD [-first NAME -last NAME]",
		run:     registerCmd,
	},
	"logout": {
		summary: "forget the stored tokens",
		run:     logoutCmd,
	},
	"whoami": {
		summary: "show the signed in user",
		run:     whoamiCmd,
	},
	"talents": {
		summary: "list talents",
		usage:   "[-page N -per-page N -position POS -search TEXT]",
		run:     talentsCmd,
	},
	"transfers-calc": {
		summary: "ask the backend for a training compensation breakdown",
		usage:   "-fee AMOUNT -age YEARS",
		run:     transfersCalcCmd,
	},
	"ticket-verify": {
		summary: "verify a ticket hash",
		usage:   "-hash HASH",
		run:     ticketVerifyCmd,
	},
	"ticket-qr": {
		summary: "write the verification QR code of a ticket",
		usage:   "-hash HASH -out FILE [-size PIXELS -base URL]",
		run:     ticketQRCmd,
	},
	"wallet": {
		summary: "show the caller's wallet",
		run:     walletCmd,
	},
	"stats": {
		summary: "show the statistics overview of a resource",
		usage:   "<resource>",
		run:     statsCmd,
	},
	"app-info": {
		summary: "show version and platform",
		run:     appInfoCmd,
	},
	"update-check": {
		summary: "check for a desktop update",
		run:     updateCheckCmd,
	},
	"update": {
		summary: "check for a desktop update, confirm and install it",
		run:     updateCmd,
	},
	"routes": {
		summary: "list the navigation routes",
		run:     routesCmd,
	},
	"format-currency": {
		summary: "format an amount as money",
		usage:   "-amount AMOUNT [-currency CODE -locale LOCALE]",
		run:     formatCurrencyCmd,
	},
}

// statsSources maps a resource name to its statistics endpoint.
func statsSources(api *resources.API) map[string]func(context.Context) (*client.Response, error) {
	return map[string]func(context.Context) (*client.Response, error){
		"dashboard":  api.Dashboard.Stats,
		"talents":    api.Talents.Stats,
		"transfers":  api.Transfers.Stats,
		"events":     api.Events.Stats,
		"wallets":    api.Wallets.Stats,
		"foundation": api.Foundation.Stats,
		"academies":  api.Academies.Stats,
		"fandorpen":  api.Fandorpen.Stats,
		"frmf":       api.FRMF.Stats,
		"identities": api.Identities.Stats,
		"maroc-id":   api.MarocID.Stats,
		"hayat":      api.Hayat.Stats,
		"anti-hate":  api.AntiHate.Stats,
		"nil":        api.NIL.Stats,
		"consulate":  api.Consulate.Stats,
		"admin":      api.Admin.Stats,
	}
}

func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	return nil
}

// raw passes a response body through unchanged. Empty bodies become the
// status code.
func raw(resp *client.Response, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return map[string]int{"status": resp.StatusCode}, nil
	}
	return json.RawMessage(resp.Body), nil
}

func loginCmd(ctx context.Context, e *env, args []string) (any, error) {
	fs := newFlags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if *email == "" || *password == "" {
		return nil, errUsage
	}

	sess := e.app.Session()
	if err := sess.Login(ctx, *email, *password); err != nil {
		return nil, fmt.Errorf("%s: %w", sess.Err(), err)
	}
	return sess.User(), nil
}

func registerCmd(ctx context.Context, e *env, args []string) (any, error) {
	fs := newFlags("register")
	req := model.RegisterRequest{}
	fs.StringVar(&req.Username, "username", "", "username")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first", "", "first name")
	fs.StringVar(&req.LastName, "last", "", "last name")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, errUsage
	}

	sess := e.app.Session()
	if err := sess.Register(ctx, req); err != nil {
		return nil, fmt.Errorf("%s: %w", sess.Err(), err)
	}
	return map[string]string{"registered": req.Email}, nil
}

func logoutCmd(ctx context.Context, e *env, _ []string) (any, error) {
	if err := e.app.Session().Logout(ctx); err != nil {
		return nil, err
	}
	return map[string]bool{"isAuthenticated": false}, nil
}

func whoamiCmd(ctx context.Context, e *env, _ []string) (any, error) {
	sess := e.app.Session()
	if err := sess.Restore(ctx); err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return nil, errNotSignedIn
	}
	if err := sess.FetchUser(ctx); err != nil {
		return nil, err
	}
	out := whoami{User: sess.User()}
	claims, err := e.app.Client().Claims(ctx)
	if err != nil {
		e.log.Debug(ctx, "access token carries no readable claims", logger.Error(err))
		return out, nil
	}
	out.Role = claims.Role
	out.Expired = claims.Expired(time.Now())
	if !claims.ExpiresAt.IsZero() {
		out.ExpiresAt = &claims.ExpiresAt
	}
	return out, nil
}

type whoami struct {
	User      *model.User `json:"user"`
	Role      string      `json:"role,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
	Expired   bool        `json:"expired"`
}

func talentsCmd(ctx context.Context, e *env, args []string) (any, error) {
	fs := newFlags("talents")
	page := fs.Int("page", 0, "page number")
	perPage := fs.Int("per-page", 0, "page size")
	position := fs.String("position", "", "position filter")
	search := fs.String("search", "", "free text search")
	if err := parse(fs, args); err != nil {
		return nil, err
	}

	params := resources.Params{}
	if *page > 0 {
		params.Set("page", strconv.Itoa(*page))
	}
	if *perPage > 0 {
		params.Set("per_page", strconv.Itoa(*perPage))
	}
	if *position != "" {
		params.Set("position", *position)
	}
	if *search != "" {
		params.Set("search", *search)
	}
	return raw(e.app.API().Talents.List(ctx, params))
}

func transfersCalcCmd(ctx context.Context, e *env, args []string) (any, error) {
	fs := newFlags("transfers-calc")
	fee := fs.Float64("fee", 0, "transfer fee")
	age := fs.Int("age", 0, "player age")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if *fee <= 0 || *age <= 0 {
		return nil, errUsage
	}
	return raw(e.app.API().Transfers.Calculate(ctx, model.CompensationRequest{
		TransferFee:   *fee,
		PlayerAge:     *age,
		TrainingClubs: []model.TrainingClub{},
	}))
}

func ticketVerifyCmd(ctx context.Context, e *env, args []string) (any, error) {
	fs := newFlags("ticket-verify")
	hash := fs.String("hash", "", "ticket hash")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if *hash == "" {
		return nil, errUsage
	}
	return raw(e.app.API().Tickets.Verify(ctx, *hash))
}

func ticketQRCmd(_ context.Context, e *env, args []string) (any, error) {
	fs := newFlags("ticket-qr")
	hash := fs.String("hash", "", "ticket hash")
	out := fs.String("out", "", "PNG output path")
	size := fs.Int("size", qrcode.DefaultSize, "edge length in pixels")
	base := fs.String("base", e.cfg.APIBaseURL, "verification base URL")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if *hash == "" || *out == "" {
		return nil, errUsage
	}

	link, err := qrcode.TicketURL(*base, *hash)
	if err != nil {
		return nil, err
	}
	if err := qrcode.WriteTicketPNG(*out, *base, *hash, *size); err != nil {
		return nil, err
	}
	return map[string]string{"file": *out, "url": link}, nil
}

func walletCmd(ctx context.Context, e *env, _ []string) (any, error) {
	return raw(e.app.API().Wallets.Mine(ctx))
}

func statsCmd(ctx context.Context, e *env, args []string) (any, error) {
	if len(args) != 1 {
		return nil, errUsage
	}
	fetch, ok := statsSources(e.app.API())[args[0]]
	if !ok {
		return nil, fmt.Errorf("%w: unknown resource %q", errUsage, args[0])
	}
	return raw(fetch(ctx))
}

func appInfoCmd(ctx context.Context, e *env, _ []string) (any, error) {
	return desktop.AppInfo(ctx, e.app.Shell(), e.log), nil
}

func updateCheckCmd(ctx context.Context, e *env, _ []string) (any, error) {
	return e.app.Shell().CheckUpdate(ctx), nil
}

func updateCmd(ctx context.Context, e *env, _ []string) (any, error) {
	outcome := e.app.CheckForUpdate(ctx)
	if outcome == desktop.OutcomeFailed {
		return nil, errUpdateFailed
	}
	return map[string]desktop.Outcome{"outcome": outcome}, nil
}

func routesCmd(context.Context, *env, []string) (any, error) {
	return routes.All(), nil
}

func formatCurrencyCmd(_ context.Context, e *env, args []string) (any, error) {
	fs := newFlags("format-currency")
	amount := fs.String("amount", "", "amount")
	code := fs.String("currency", e.cfg.Currency, "ISO currency code")
	locale := fs.String("locale", e.cfg.Locale, "BCP 47 locale")
	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if *amount == "" {
		return nil, errUsage
	}
	d, err := decimal.NewFromString(*amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", *amount, err)
	}
	return map[string]string{"formatted": format.Currency(d, *code, *locale)}, nil
}
