package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Foundation covers /foundation.
type Foundation struct{ base }

func (f *Foundation) Stats(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/foundation/stats", nil)
}

func (f *Foundation) Donations(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/foundation/donations", nil)
}

func (f *Foundation) CreateDonation(ctx context.Context, body any) (*client.Response, error) {
	return f.post(ctx, "/foundation/donations", body)
}

func (f *Foundation) MyDonations(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/foundation/my-donations", nil)
}

func (f *Foundation) Contributions(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/foundation/contributions", nil)
}

func (f *Foundation) Projects(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/foundation/projects", nil)
}

// Subscriptions covers /subscriptions.
type Subscriptions struct{ base }

func (s *Subscriptions) Plans(ctx context.Context) (*client.Response, error) {
	return s.get(ctx, "/subscriptions/plans", nil)
}

func (s *Subscriptions) Mine(ctx context.Context) (*client.Response, error) {
	return s.get(ctx, "/subscriptions/me", nil)
}

func (s *Subscriptions) Create(ctx context.Context, body any) (*client.Response, error) {
	return s.post(ctx, "/subscriptions", body)
}

func (s *Subscriptions) Cancel(ctx context.Context, id int) (*client.Response, error) {
	return s.delete(ctx, pathf("/subscriptions/%d", id))
}

func (s *Subscriptions) Gift(ctx context.Context, body any) (*client.Response, error) {
	return s.post(ctx, "/subscriptions/gift", body)
}
