package resources

import (
	"context"
	"net/url"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Dashboard covers /dashboard.
type Dashboard struct{ base }

func (d *Dashboard) Stats(ctx context.Context) (*client.Response, error) {
	return d.get(ctx, "/dashboard/stats", nil)
}

func (d *Dashboard) KPIs(ctx context.Context) (*client.Response, error) {
	return d.get(ctx, "/dashboard/kpis", nil)
}

func (d *Dashboard) Chart(ctx context.Context, chartType string) (*client.Response, error) {
	return d.get(ctx, pathf("/dashboard/charts/%s", url.PathEscape(chartType)), nil)
}

// Activity lists recent activity; limit <= 0 leaves the backend default.
func (d *Dashboard) Activity(ctx context.Context, limit int) (*client.Response, error) {
	var params Params
	if limit > 0 {
		params = single("limit", itoa(limit))
	}
	return d.get(ctx, "/dashboard/activity", params)
}

func (d *Dashboard) WKCountdown(ctx context.Context) (*client.Response, error) {
	return d.get(ctx, "/dashboard/wk-countdown", nil)
}
