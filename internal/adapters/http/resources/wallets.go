package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Wallets covers /wallets.
type Wallets struct{ base }

func (w *Wallets) Mine(ctx context.Context) (*client.Response, error) {
	return w.get(ctx, "/wallets/me", nil)
}

func (w *Wallets) Get(ctx context.Context, id int) (*client.Response, error) {
	return w.get(ctx, pathf("/wallets/%d", id), nil)
}

func (w *Wallets) Deposit(ctx context.Context, walletID int, body any) (*client.Response, error) {
	return w.post(ctx, pathf("/wallets/%d/deposit", walletID), body)
}

func (w *Wallets) Withdraw(ctx context.Context, walletID int, body any) (*client.Response, error) {
	return w.post(ctx, pathf("/wallets/%d/withdraw", walletID), body)
}

func (w *Wallets) Transfer(ctx context.Context, walletID int, body any) (*client.Response, error) {
	return w.post(ctx, pathf("/wallets/%d/transfer", walletID), body)
}

func (w *Wallets) Transactions(ctx context.Context, walletID int, params Params) (*client.Response, error) {
	return w.get(ctx, pathf("/wallets/%d/transactions", walletID), params)
}

func (w *Wallets) Cards(ctx context.Context, walletID int) (*client.Response, error) {
	return w.get(ctx, pathf("/wallets/%d/cards", walletID), nil)
}

func (w *Wallets) CreateCard(ctx context.Context, walletID int, body any) (*client.Response, error) {
	return w.post(ctx, pathf("/wallets/%d/cards", walletID), body)
}

func (w *Wallets) Stats(ctx context.Context) (*client.Response, error) {
	return w.get(ctx, "/wallets/stats/overview", nil)
}
