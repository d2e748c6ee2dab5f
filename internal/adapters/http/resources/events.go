package resources

import (
	"context"
	"net/url"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Events covers /events.
type Events struct{ base }

func (e *Events) List(ctx context.Context, params Params) (*client.Response, error) {
	return e.get(ctx, "/events", params)
}

func (e *Events) Get(ctx context.Context, id int) (*client.Response, error) {
	return e.get(ctx, pathf("/events/%d", id), nil)
}

func (e *Events) Create(ctx context.Context, body any) (*client.Response, error) {
	return e.post(ctx, "/events", body)
}

func (e *Events) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return e.put(ctx, pathf("/events/%d", id), body)
}

func (e *Events) Delete(ctx context.Context, id int) (*client.Response, error) {
	return e.delete(ctx, pathf("/events/%d", id))
}

func (e *Events) MintTicket(ctx context.Context, eventID int, body any) (*client.Response, error) {
	return e.post(ctx, pathf("/events/%d/tickets/mint", eventID), body)
}

func (e *Events) Stats(ctx context.Context) (*client.Response, error) {
	return e.get(ctx, "/events/stats/overview", nil)
}

// Tickets covers /tickets.
type Tickets struct{ base }

func (t *Tickets) List(ctx context.Context, params Params) (*client.Response, error) {
	return t.get(ctx, "/tickets", params)
}

func (t *Tickets) Get(ctx context.Context, id int) (*client.Response, error) {
	return t.get(ctx, pathf("/tickets/%d", id), nil)
}

func (t *Tickets) Verify(ctx context.Context, hash string) (*client.Response, error) {
	return t.get(ctx, TicketVerifyPath(hash), nil)
}

func (t *Tickets) Transfer(ctx context.Context, ticketID int, body any) (*client.Response, error) {
	return t.post(ctx, pathf("/tickets/%d/transfer", ticketID), body)
}

func (t *Tickets) Mine(ctx context.Context) (*client.Response, error) {
	return t.get(ctx, "/tickets/my/tickets", nil)
}

func (t *Tickets) MyLoyalty(ctx context.Context) (*client.Response, error) {
	return t.get(ctx, "/tickets/loyalty/me", nil)
}

// TicketVerifyPath is the verification path for a ticket hash.
func TicketVerifyPath(hash string) string {
	return pathf("/tickets/%s/verify", url.PathEscape(hash))
}
