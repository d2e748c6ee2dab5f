package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Hayat covers /hayat, the athlete wellbeing module.
type Hayat struct{ base }

func (h *Hayat) Sessions(ctx context.Context, params Params) (*client.Response, error) {
	return h.get(ctx, "/hayat/sessions", params)
}

func (h *Hayat) Session(ctx context.Context, id int) (*client.Response, error) {
	return h.get(ctx, pathf("/hayat/sessions/%d", id), nil)
}

func (h *Hayat) CreateSession(ctx context.Context, body any) (*client.Response, error) {
	return h.post(ctx, "/hayat/sessions", body)
}

// UpdateSession sends its fields as query parameters with an empty body.
func (h *Hayat) UpdateSession(ctx context.Context, id int, params Params) (*client.Response, error) {
	return h.putQuery(ctx, pathf("/hayat/sessions/%d", id), params)
}

func (h *Hayat) Wellbeing(ctx context.Context, userID int) (*client.Response, error) {
	return h.get(ctx, pathf("/hayat/wellbeing/%d", userID), nil)
}

// LogWellbeing sends its fields as query parameters with an empty body.
func (h *Hayat) LogWellbeing(ctx context.Context, params Params) (*client.Response, error) {
	return h.postQuery(ctx, "/hayat/wellbeing", params)
}

func (h *Hayat) CrisisAlerts(ctx context.Context, params Params) (*client.Response, error) {
	return h.get(ctx, "/hayat/crisis", params)
}

func (h *Hayat) CreateCrisisAlert(ctx context.Context, body any) (*client.Response, error) {
	return h.post(ctx, "/hayat/crisis", body)
}

func (h *Hayat) Stats(ctx context.Context) (*client.Response, error) {
	return h.get(ctx, "/hayat/stats", nil)
}

// AntiHate covers /antihate.
type AntiHate struct{ base }

func (a *AntiHate) Incidents(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/antihate/incidents", params)
}

func (a *AntiHate) Incident(ctx context.Context, id int) (*client.Response, error) {
	return a.get(ctx, pathf("/antihate/incidents/%d", id), nil)
}

func (a *AntiHate) ReportIncident(ctx context.Context, body any) (*client.Response, error) {
	return a.post(ctx, "/antihate/incidents", body)
}

func (a *AntiHate) UpdateIncident(ctx context.Context, id int, params Params) (*client.Response, error) {
	return a.putQuery(ctx, pathf("/antihate/incidents/%d", id), params)
}

func (a *AntiHate) LegalCases(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/antihate/legal", params)
}

func (a *AntiHate) CreateLegalCase(ctx context.Context, body any) (*client.Response, error) {
	return a.post(ctx, "/antihate/legal", body)
}

func (a *AntiHate) Stats(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/antihate/stats", nil)
}

// NIL covers /nil, the news integrity layer.
type NIL struct{ base }

func (n *NIL) Signals(ctx context.Context, params Params) (*client.Response, error) {
	return n.get(ctx, "/nil/signals", params)
}

func (n *NIL) Signal(ctx context.Context, id int) (*client.Response, error) {
	return n.get(ctx, pathf("/nil/signals/%d", id), nil)
}

func (n *NIL) CreateSignal(ctx context.Context, body any) (*client.Response, error) {
	return n.post(ctx, "/nil/signals", body)
}

func (n *NIL) UpdateSignal(ctx context.Context, id int, params Params) (*client.Response, error) {
	return n.putQuery(ctx, pathf("/nil/signals/%d", id), params)
}

func (n *NIL) FactCards(ctx context.Context, params Params) (*client.Response, error) {
	return n.get(ctx, "/nil/factcards", params)
}

func (n *NIL) FactCard(ctx context.Context, id int) (*client.Response, error) {
	return n.get(ctx, pathf("/nil/factcards/%d", id), nil)
}

func (n *NIL) CreateFactCard(ctx context.Context, body any) (*client.Response, error) {
	return n.post(ctx, "/nil/factcards", body)
}

func (n *NIL) ShareFactCard(ctx context.Context, id int) (*client.Response, error) {
	return n.post(ctx, pathf("/nil/factcards/%d/share", id), nil)
}

func (n *NIL) Search(ctx context.Context, query string) (*client.Response, error) {
	return n.get(ctx, "/nil/search", Params{"query": {query}})
}

func (n *NIL) Stats(ctx context.Context) (*client.Response, error) {
	return n.get(ctx, "/nil/stats", nil)
}
