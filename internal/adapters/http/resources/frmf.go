package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// FRMF covers /frmf: referees, VAR decisions, players and the referee chain.
type FRMF struct{ base }

func (f *FRMF) Referees(ctx context.Context, params Params) (*client.Response, error) {
	return f.get(ctx, "/frmf/referees", params)
}

func (f *FRMF) Referee(ctx context.Context, id int) (*client.Response, error) {
	return f.get(ctx, pathf("/frmf/referees/%d", id), nil)
}

func (f *FRMF) CreateReferee(ctx context.Context, body any) (*client.Response, error) {
	return f.post(ctx, "/frmf/referees", body)
}

func (f *FRMF) VARDecisions(ctx context.Context, params Params) (*client.Response, error) {
	return f.get(ctx, "/frmf/var-decisions", params)
}

func (f *FRMF) CreateVARDecision(ctx context.Context, body any) (*client.Response, error) {
	return f.post(ctx, "/frmf/var-decisions", body)
}

func (f *FRMF) VerifyVARDecision(ctx context.Context, id int) (*client.Response, error) {
	return f.get(ctx, pathf("/frmf/var-decisions/%d/verify", id), nil)
}

func (f *FRMF) Players(ctx context.Context, params Params) (*client.Response, error) {
	return f.get(ctx, "/frmf/players", params)
}

func (f *FRMF) CreatePlayer(ctx context.Context, body any) (*client.Response, error) {
	return f.post(ctx, "/frmf/players", body)
}

func (f *FRMF) RefereeChain(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/frmf/refereechain", nil)
}

func (f *FRMF) VerifyChain(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/frmf/refereechain/verify", nil)
}

func (f *FRMF) Stats(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/frmf/stats/overview", nil)
}
