package resources

import (
	"context"
	"strconv"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Consulate covers /consulate.
type Consulate struct{ base }

// Consulates lists consulates, filtered by country when given.
func (c *Consulate) Consulates(ctx context.Context, country string) (*client.Response, error) {
	return c.get(ctx, "/consulate/list", single("country", country))
}

func (c *Consulate) Documents(ctx context.Context, params Params) (*client.Response, error) {
	return c.get(ctx, "/consulate/documents", params)
}

func (c *Consulate) Document(ctx context.Context, id int) (*client.Response, error) {
	return c.get(ctx, pathf("/consulate/documents/%d", id), nil)
}

func (c *Consulate) RequestDocument(ctx context.Context, body any) (*client.Response, error) {
	return c.post(ctx, "/consulate/documents", body)
}

func (c *Consulate) TrackDocument(ctx context.Context, id int) (*client.Response, error) {
	return c.get(ctx, pathf("/consulate/documents/%d/track", id), nil)
}

// Appointments lists appointments. A nil upcomingOnly leaves the backend
// default, which is upcoming only.
func (c *Consulate) Appointments(ctx context.Context, upcomingOnly *bool) (*client.Response, error) {
	var params Params
	if upcomingOnly != nil {
		params = single("upcoming_only", strconv.FormatBool(*upcomingOnly))
	}
	return c.get(ctx, "/consulate/appointments", params)
}

func (c *Consulate) Appointment(ctx context.Context, id int) (*client.Response, error) {
	return c.get(ctx, pathf("/consulate/appointments/%d", id), nil)
}

func (c *Consulate) CreateAppointment(ctx context.Context, body any) (*client.Response, error) {
	return c.post(ctx, "/consulate/appointments", body)
}

func (c *Consulate) CancelAppointment(ctx context.Context, id int) (*client.Response, error) {
	return c.delete(ctx, pathf("/consulate/appointments/%d", id))
}

func (c *Consulate) Stats(ctx context.Context) (*client.Response, error) {
	return c.get(ctx, "/consulate/stats", nil)
}
