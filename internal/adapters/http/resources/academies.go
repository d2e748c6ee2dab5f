package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Academies covers /academies.
type Academies struct{ base }

func (a *Academies) List(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/academies", params)
}

func (a *Academies) Get(ctx context.Context, id int) (*client.Response, error) {
	return a.get(ctx, pathf("/academies/%d", id), nil)
}

func (a *Academies) Create(ctx context.Context, body any) (*client.Response, error) {
	return a.post(ctx, "/academies", body)
}

func (a *Academies) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return a.put(ctx, pathf("/academies/%d", id), body)
}

func (a *Academies) Delete(ctx context.Context, id int) (*client.Response, error) {
	return a.delete(ctx, pathf("/academies/%d", id))
}

func (a *Academies) Teams(ctx context.Context, academyID int) (*client.Response, error) {
	return a.get(ctx, pathf("/academies/%d/teams", academyID), nil)
}

func (a *Academies) CreateTeam(ctx context.Context, academyID int, body any) (*client.Response, error) {
	return a.post(ctx, pathf("/academies/%d/teams", academyID), body)
}

func (a *Academies) Staff(ctx context.Context, academyID int) (*client.Response, error) {
	return a.get(ctx, pathf("/academies/%d/staff", academyID), nil)
}

func (a *Academies) CreateStaff(ctx context.Context, academyID int, body any) (*client.Response, error) {
	return a.post(ctx, pathf("/academies/%d/staff", academyID), body)
}

func (a *Academies) Stats(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/academies/stats/overview", nil)
}

// Fandorpen covers /fandorpen, the supporter villages.
type Fandorpen struct{ base }

func (f *Fandorpen) List(ctx context.Context, params Params) (*client.Response, error) {
	return f.get(ctx, "/fandorpen", params)
}

func (f *Fandorpen) Get(ctx context.Context, id int) (*client.Response, error) {
	return f.get(ctx, pathf("/fandorpen/%d", id), nil)
}

func (f *Fandorpen) Create(ctx context.Context, body any) (*client.Response, error) {
	return f.post(ctx, "/fandorpen", body)
}

func (f *Fandorpen) Volunteers(ctx context.Context, id int) (*client.Response, error) {
	return f.get(ctx, pathf("/fandorpen/%d/volunteers", id), nil)
}

func (f *Fandorpen) RegisterVolunteer(ctx context.Context, id int, body any) (*client.Response, error) {
	return f.post(ctx, pathf("/fandorpen/%d/volunteers", id), body)
}

func (f *Fandorpen) Shifts(ctx context.Context, id int) (*client.Response, error) {
	return f.get(ctx, pathf("/fandorpen/%d/shifts", id), nil)
}

func (f *Fandorpen) CheckinShift(ctx context.Context, fandorpID, shiftID int) (*client.Response, error) {
	return f.post(ctx, pathf("/fandorpen/%d/shifts/%d/checkin", fandorpID, shiftID), nil)
}

func (f *Fandorpen) Stats(ctx context.Context) (*client.Response, error) {
	return f.get(ctx, "/fandorpen/stats/overview", nil)
}
