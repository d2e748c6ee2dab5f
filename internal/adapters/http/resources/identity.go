package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Identities covers /identities.
type Identities struct{ base }

func (i *Identities) List(ctx context.Context, params Params) (*client.Response, error) {
	return i.get(ctx, "/identities", params)
}

func (i *Identities) Mine(ctx context.Context) (*client.Response, error) {
	return i.get(ctx, "/identities/me", nil)
}

func (i *Identities) Get(ctx context.Context, id int) (*client.Response, error) {
	return i.get(ctx, pathf("/identities/%d", id), nil)
}

func (i *Identities) Create(ctx context.Context, body any) (*client.Response, error) {
	return i.post(ctx, "/identities", body)
}

func (i *Identities) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return i.put(ctx, pathf("/identities/%d", id), body)
}

func (i *Identities) Verify(ctx context.Context, id int, body any) (*client.Response, error) {
	return i.post(ctx, pathf("/identities/%d/verify", id), body)
}

func (i *Identities) FraudAlerts(ctx context.Context, params Params) (*client.Response, error) {
	return i.get(ctx, "/identities/fraud/alerts", params)
}

func (i *Identities) CreateFraudAlert(ctx context.Context, body any) (*client.Response, error) {
	return i.post(ctx, "/identities/fraud/alerts", body)
}

func (i *Identities) Stats(ctx context.Context) (*client.Response, error) {
	return i.get(ctx, "/identities/stats/overview", nil)
}

// MarocID covers /maroc-id.
type MarocID struct{ base }

func (m *MarocID) List(ctx context.Context, params Params) (*client.Response, error) {
	return m.get(ctx, "/maroc-id", params)
}

func (m *MarocID) Mine(ctx context.Context) (*client.Response, error) {
	return m.get(ctx, "/maroc-id/me", nil)
}

func (m *MarocID) Get(ctx context.Context, id int) (*client.Response, error) {
	return m.get(ctx, pathf("/maroc-id/%d", id), nil)
}

func (m *MarocID) Create(ctx context.Context, body any) (*client.Response, error) {
	return m.post(ctx, "/maroc-id", body)
}

func (m *MarocID) Verify(ctx context.Context, id int, body any) (*client.Response, error) {
	return m.post(ctx, pathf("/maroc-id/%d/verify", id), body)
}

func (m *MarocID) Level(ctx context.Context, id int) (*client.Response, error) {
	return m.get(ctx, pathf("/maroc-id/%d/level", id), nil)
}

// Certificates lists certificates, filtered by holder when marocIDPK > 0.
func (m *MarocID) Certificates(ctx context.Context, marocIDPK int) (*client.Response, error) {
	var params Params
	if marocIDPK > 0 {
		params = single("maroc_id_pk", itoa(marocIDPK))
	}
	return m.get(ctx, "/maroc-id/certificates", params)
}

func (m *MarocID) IssueCertificate(ctx context.Context, body any) (*client.Response, error) {
	return m.post(ctx, "/maroc-id/certificates", body)
}

func (m *MarocID) Sign(ctx context.Context, body any) (*client.Response, error) {
	return m.post(ctx, "/maroc-id/sign", body)
}

func (m *MarocID) Stats(ctx context.Context) (*client.Response, error) {
	return m.get(ctx, "/maroc-id/stats/overview", nil)
}
