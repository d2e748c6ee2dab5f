// Package resources holds one thin module per backend resource. Every
// method issues exactly one call through the shared client and returns the
// raw answer or the failure unchanged; decoding is left to the caller.
package resources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Params are pass-through query parameters (page, per_page, filters).
type Params = url.Values

// API groups every resource module behind one Doer.
type API struct {
	Auth          *Auth
	Dashboard     *Dashboard
	Talents       *Talents
	Scouts        *Scouts
	Transfers     *Transfers
	Events        *Events
	Tickets       *Tickets
	Wallets       *Wallets
	Foundation    *Foundation
	Academies     *Academies
	Subscriptions *Subscriptions
	Fandorpen     *Fandorpen
	FRMF          *FRMF
	Identities    *Identities
	MarocID       *MarocID
	Hayat         *Hayat
	AntiHate      *AntiHate
	NIL           *NIL
	Consulate     *Consulate
	Admin         *Admin
}

// New builds every module on top of doer.
func New(doer client.Doer) *API {
	b := base{doer: doer}
	return &API{
		Auth:          &Auth{b},
		Dashboard:     &Dashboard{b},
		Talents:       &Talents{b},
		Scouts:        &Scouts{b},
		Transfers:     &Transfers{b},
		Events:        &Events{b},
		Tickets:       &Tickets{b},
		Wallets:       &Wallets{b},
		Foundation:    &Foundation{b},
		Academies:     &Academies{b},
		Subscriptions: &Subscriptions{b},
		Fandorpen:     &Fandorpen{b},
		FRMF:          &FRMF{b},
		Identities:    &Identities{b},
		MarocID:       &MarocID{b},
		Hayat:         &Hayat{b},
		AntiHate:      &AntiHate{b},
		NIL:           &NIL{b},
		Consulate:     &Consulate{b},
		Admin:         &Admin{b},
	}
}

type base struct {
	doer client.Doer
}

func (b base) get(ctx context.Context, path string, params Params) (*client.Response, error) {
	return b.doer.Do(ctx, client.Get(path, params))
}

func (b base) post(ctx context.Context, path string, body any) (*client.Response, error) {
	return b.doer.Do(ctx, client.Post(path, body))
}

// postQuery sends a POST whose arguments travel as query parameters.
func (b base) postQuery(ctx context.Context, path string, params Params) (*client.Response, error) {
	return b.doer.Do(ctx, client.Post(path, nil).WithQuery(params))
}

func (b base) put(ctx context.Context, path string, body any) (*client.Response, error) {
	return b.doer.Do(ctx, client.Put(path, body))
}

// putQuery sends a PUT without body whose arguments travel as query parameters.
func (b base) putQuery(ctx context.Context, path string, params Params) (*client.Response, error) {
	return b.doer.Do(ctx, client.Put(path, nil).WithQuery(params))
}

func (b base) delete(ctx context.Context, path string) (*client.Response, error) {
	return b.doer.Do(ctx, client.Delete(path))
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// single returns {key: value} or nil when value is empty.
func single(key, value string) Params {
	if value == "" {
		return nil
	}
	return Params{key: {value}}
}

func itoa(v int) string { return strconv.Itoa(v) }
