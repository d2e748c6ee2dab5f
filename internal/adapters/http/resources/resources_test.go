package resources_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/adapters/http/resources"
	"github.com/okian/proinvestix/internal/domain/model"
)

type recorder struct {
	calls []*client.Request
	err   error
}

func (r *recorder) Do(_ context.Context, req *client.Request) (*client.Response, error) {
	r.calls = append(r.calls, req)
	if r.err != nil {
		return nil, r.err
	}
	return &client.Response{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
}

type call struct {
	name    string
	invoke  func(ctx context.Context, api *resources.API) (*client.Response, error)
	method  string
	path    string
	query   string
	hasBody bool
}

func TestEndpoints(t *testing.T) {
	body := map[string]any{"k": "v"}
	page := resources.Params{"page": {"2"}, "per_page": {"20"}}
	yes, no := true, false

	calls := []call{
		{"auth login", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.Auth.Login(ctx, model.LoginRequest{Email: "a@b.c", Password: "x"})
		}, "POST", "/auth/login", "", true},
		{"auth register", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.Auth.Register(ctx, model.RegisterRequest{Username: "u"})
		}, "POST", "/auth/register", "", true},
		{"auth me", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Auth.Me(ctx) }, "GET", "/auth/me", "", false},
		{"auth refresh", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Auth.Refresh(ctx, "r") }, "POST", "/auth/refresh", "", true},
		{"auth change password", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.Auth.ChangePassword(ctx, model.PasswordChange{})
		}, "POST", "/auth/change-password", "", true},
		{"auth logout", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Auth.Logout(ctx) }, "POST", "/auth/logout", "", false},

		{"dashboard stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.Stats(ctx) }, "GET", "/dashboard/stats", "", false},
		{"dashboard kpis", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.KPIs(ctx) }, "GET", "/dashboard/kpis", "", false},
		{"dashboard chart", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.Chart(ctx, "revenue") }, "GET", "/dashboard/charts/revenue", "", false},
		{"dashboard activity", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.Activity(ctx, 5) }, "GET", "/dashboard/activity", "limit=5", false},
		{"dashboard activity default", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.Activity(ctx, 0) }, "GET", "/dashboard/activity", "", false},
		{"dashboard wk", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Dashboard.WKCountdown(ctx) }, "GET", "/dashboard/wk-countdown", "", false},

		{"talents list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.List(ctx, page) }, "GET", "/talents", "page=2&per_page=20", false},
		{"talents get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Get(ctx, 3) }, "GET", "/talents/3", "", false},
		{"talents create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Create(ctx, body) }, "POST", "/talents", "", true},
		{"talents update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Update(ctx, 3, body) }, "PUT", "/talents/3", "", true},
		{"talents delete", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Delete(ctx, 3) }, "DELETE", "/talents/3", "", false},
		{"talents stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Stats(ctx) }, "GET", "/talents/stats/overview", "", false},
		{"talents filters", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Talents.Filters(ctx) }, "GET", "/talents/filters/options", "", false},

		{"scouts list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.List(ctx, nil) }, "GET", "/scouts", "", false},
		{"scouts get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.Get(ctx, 4) }, "GET", "/scouts/4", "", false},
		{"scouts create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.Create(ctx, body) }, "POST", "/scouts", "", true},
		{"scouts update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.Update(ctx, 4, body) }, "PUT", "/scouts/4", "", true},
		{"scouts delete", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.Delete(ctx, 4) }, "DELETE", "/scouts/4", "", false},
		{"scouts reports", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Scouts.Reports(ctx, 4) }, "GET", "/scouts/4/reports", "", false},

		{"transfers list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.List(ctx, page) }, "GET", "/transfers", "page=2&per_page=20", false},
		{"transfers get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.Get(ctx, 9) }, "GET", "/transfers/9", "", false},
		{"transfers create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.Create(ctx, body) }, "POST", "/transfers", "", true},
		{"transfers update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.Update(ctx, 9, body) }, "PUT", "/transfers/9", "", true},
		{"transfers calculate", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.Calculate(ctx, body) }, "POST", "/transfers/calculate", "", true},
		{"transfers stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Transfers.Stats(ctx) }, "GET", "/transfers/stats/overview", "", false},

		{"events list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.List(ctx, nil) }, "GET", "/events", "", false},
		{"events get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.Get(ctx, 1) }, "GET", "/events/1", "", false},
		{"events create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.Create(ctx, body) }, "POST", "/events", "", true},
		{"events update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.Update(ctx, 1, body) }, "PUT", "/events/1", "", true},
		{"events delete", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.Delete(ctx, 1) }, "DELETE", "/events/1", "", false},
		{"events mint", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.MintTicket(ctx, 1, body) }, "POST", "/events/1/tickets/mint", "", true},
		{"events stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Events.Stats(ctx) }, "GET", "/events/stats/overview", "", false},

		{"tickets list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.List(ctx, nil) }, "GET", "/tickets", "", false},
		{"tickets get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.Get(ctx, 2) }, "GET", "/tickets/2", "", false},
		{"tickets verify", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.Verify(ctx, "0xabc") }, "GET", "/tickets/0xabc/verify", "", false},
		{"tickets transfer", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.Transfer(ctx, 2, body) }, "POST", "/tickets/2/transfer", "", true},
		{"tickets mine", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.Mine(ctx) }, "GET", "/tickets/my/tickets", "", false},
		{"tickets loyalty", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Tickets.MyLoyalty(ctx) }, "GET", "/tickets/loyalty/me", "", false},

		{"wallets mine", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Mine(ctx) }, "GET", "/wallets/me", "", false},
		{"wallets get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Get(ctx, 5) }, "GET", "/wallets/5", "", false},
		{"wallets deposit", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Deposit(ctx, 5, body) }, "POST", "/wallets/5/deposit", "", true},
		{"wallets withdraw", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Withdraw(ctx, 5, body) }, "POST", "/wallets/5/withdraw", "", true},
		{"wallets transfer", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Transfer(ctx, 5, body) }, "POST", "/wallets/5/transfer", "", true},
		{"wallets transactions", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Transactions(ctx, 5, page) }, "GET", "/wallets/5/transactions", "page=2&per_page=20", false},
		{"wallets cards", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Cards(ctx, 5) }, "GET", "/wallets/5/cards", "", false},
		{"wallets create card", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.CreateCard(ctx, 5, body) }, "POST", "/wallets/5/cards", "", true},
		{"wallets stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Wallets.Stats(ctx) }, "GET", "/wallets/stats/overview", "", false},

		{"foundation stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.Stats(ctx) }, "GET", "/foundation/stats", "", false},
		{"foundation donations", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.Donations(ctx) }, "GET", "/foundation/donations", "", false},
		{"foundation donate", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.CreateDonation(ctx, body) }, "POST", "/foundation/donations", "", true},
		{"foundation my donations", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.MyDonations(ctx) }, "GET", "/foundation/my-donations", "", false},
		{"foundation contributions", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.Contributions(ctx) }, "GET", "/foundation/contributions", "", false},
		{"foundation projects", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Foundation.Projects(ctx) }, "GET", "/foundation/projects", "", false},

		{"academies list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.List(ctx, nil) }, "GET", "/academies", "", false},
		{"academies get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Get(ctx, 6) }, "GET", "/academies/6", "", false},
		{"academies create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Create(ctx, body) }, "POST", "/academies", "", true},
		{"academies update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Update(ctx, 6, body) }, "PUT", "/academies/6", "", true},
		{"academies delete", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Delete(ctx, 6) }, "DELETE", "/academies/6", "", false},
		{"academies teams", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Teams(ctx, 6) }, "GET", "/academies/6/teams", "", false},
		{"academies create team", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.CreateTeam(ctx, 6, body) }, "POST", "/academies/6/teams", "", true},
		{"academies staff", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Staff(ctx, 6) }, "GET", "/academies/6/staff", "", false},
		{"academies create staff", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.CreateStaff(ctx, 6, body) }, "POST", "/academies/6/staff", "", true},
		{"academies stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Academies.Stats(ctx) }, "GET", "/academies/stats/overview", "", false},

		{"subscriptions plans", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Subscriptions.Plans(ctx) }, "GET", "/subscriptions/plans", "", false},
		{"subscriptions mine", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Subscriptions.Mine(ctx) }, "GET", "/subscriptions/me", "", false},
		{"subscriptions create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Subscriptions.Create(ctx, body) }, "POST", "/subscriptions", "", true},
		{"subscriptions cancel", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Subscriptions.Cancel(ctx, 8) }, "DELETE", "/subscriptions/8", "", false},
		{"subscriptions gift", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Subscriptions.Gift(ctx, body) }, "POST", "/subscriptions/gift", "", true},

		{"fandorpen list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.List(ctx, nil) }, "GET", "/fandorpen", "", false},
		{"fandorpen get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.Get(ctx, 7) }, "GET", "/fandorpen/7", "", false},
		{"fandorpen create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.Create(ctx, body) }, "POST", "/fandorpen", "", true},
		{"fandorpen volunteers", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.Volunteers(ctx, 7) }, "GET", "/fandorpen/7/volunteers", "", false},
		{"fandorpen register volunteer", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.RegisterVolunteer(ctx, 7, body) }, "POST", "/fandorpen/7/volunteers", "", true},
		{"fandorpen shifts", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.Shifts(ctx, 7) }, "GET", "/fandorpen/7/shifts", "", false},
		{"fandorpen checkin", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.CheckinShift(ctx, 7, 11) }, "POST", "/fandorpen/7/shifts/11/checkin", "", false},
		{"fandorpen stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Fandorpen.Stats(ctx) }, "GET", "/fandorpen/stats/overview", "", false},

		{"frmf referees", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.Referees(ctx, nil) }, "GET", "/frmf/referees", "", false},
		{"frmf referee", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.Referee(ctx, 2) }, "GET", "/frmf/referees/2", "", false},
		{"frmf create referee", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.CreateReferee(ctx, body) }, "POST", "/frmf/referees", "", true},
		{"frmf var decisions", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.VARDecisions(ctx, nil) }, "GET", "/frmf/var-decisions", "", false},
		{"frmf create var", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.CreateVARDecision(ctx, body) }, "POST", "/frmf/var-decisions", "", true},
		{"frmf verify var", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.VerifyVARDecision(ctx, 2) }, "GET", "/frmf/var-decisions/2/verify", "", false},
		{"frmf players", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.Players(ctx, nil) }, "GET", "/frmf/players", "", false},
		{"frmf create player", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.CreatePlayer(ctx, body) }, "POST", "/frmf/players", "", true},
		{"frmf chain", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.RefereeChain(ctx) }, "GET", "/frmf/refereechain", "", false},
		{"frmf verify chain", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.VerifyChain(ctx) }, "GET", "/frmf/refereechain/verify", "", false},
		{"frmf stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.FRMF.Stats(ctx) }, "GET", "/frmf/stats/overview", "", false},

		{"identities list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.List(ctx, nil) }, "GET", "/identities", "", false},
		{"identities mine", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Mine(ctx) }, "GET", "/identities/me", "", false},
		{"identities get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Get(ctx, 1) }, "GET", "/identities/1", "", false},
		{"identities create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Create(ctx, body) }, "POST", "/identities", "", true},
		{"identities update", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Update(ctx, 1, body) }, "PUT", "/identities/1", "", true},
		{"identities verify", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Verify(ctx, 1, body) }, "POST", "/identities/1/verify", "", true},
		{"identities fraud alerts", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.FraudAlerts(ctx, nil) }, "GET", "/identities/fraud/alerts", "", false},
		{"identities create fraud alert", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.CreateFraudAlert(ctx, body) }, "POST", "/identities/fraud/alerts", "", true},
		{"identities stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Identities.Stats(ctx) }, "GET", "/identities/stats/overview", "", false},

		{"maroc-id list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.List(ctx, nil) }, "GET", "/maroc-id", "", false},
		{"maroc-id mine", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Mine(ctx) }, "GET", "/maroc-id/me", "", false},
		{"maroc-id get", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Get(ctx, 3) }, "GET", "/maroc-id/3", "", false},
		{"maroc-id create", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Create(ctx, body) }, "POST", "/maroc-id", "", true},
		{"maroc-id verify", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Verify(ctx, 3, body) }, "POST", "/maroc-id/3/verify", "", true},
		{"maroc-id level", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Level(ctx, 3) }, "GET", "/maroc-id/3/level", "", false},
		{"maroc-id certificates", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Certificates(ctx, 3) }, "GET", "/maroc-id/certificates", "maroc_id_pk=3", false},
		{"maroc-id all certificates", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Certificates(ctx, 0) }, "GET", "/maroc-id/certificates", "", false},
		{"maroc-id issue", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.IssueCertificate(ctx, body) }, "POST", "/maroc-id/certificates", "", true},
		{"maroc-id sign", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Sign(ctx, body) }, "POST", "/maroc-id/sign", "", true},
		{"maroc-id stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.MarocID.Stats(ctx) }, "GET", "/maroc-id/stats/overview", "", false},

		{"hayat sessions", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.Sessions(ctx, nil) }, "GET", "/hayat/sessions", "", false},
		{"hayat session", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.Session(ctx, 4) }, "GET", "/hayat/sessions/4", "", false},
		{"hayat create session", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.CreateSession(ctx, body) }, "POST", "/hayat/sessions", "", true},
		{"hayat update session", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.Hayat.UpdateSession(ctx, 4, resources.Params{"status": {"COMPLETED"}})
		}, "PUT", "/hayat/sessions/4", "status=COMPLETED", false},
		{"hayat wellbeing", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.Wellbeing(ctx, 9) }, "GET", "/hayat/wellbeing/9", "", false},
		{"hayat log wellbeing", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.Hayat.LogWellbeing(ctx, resources.Params{"mood": {"7"}})
		}, "POST", "/hayat/wellbeing", "mood=7", false},
		{"hayat crisis", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.CrisisAlerts(ctx, nil) }, "GET", "/hayat/crisis", "", false},
		{"hayat create crisis", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.CreateCrisisAlert(ctx, body) }, "POST", "/hayat/crisis", "", true},
		{"hayat stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Hayat.Stats(ctx) }, "GET", "/hayat/stats", "", false},

		{"antihate incidents", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.Incidents(ctx, nil) }, "GET", "/antihate/incidents", "", false},
		{"antihate incident", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.Incident(ctx, 2) }, "GET", "/antihate/incidents/2", "", false},
		{"antihate report", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.ReportIncident(ctx, body) }, "POST", "/antihate/incidents", "", true},
		{"antihate update", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.AntiHate.UpdateIncident(ctx, 2, resources.Params{"status": {"RESOLVED"}})
		}, "PUT", "/antihate/incidents/2", "status=RESOLVED", false},
		{"antihate legal", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.LegalCases(ctx, nil) }, "GET", "/antihate/legal", "", false},
		{"antihate create legal", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.CreateLegalCase(ctx, body) }, "POST", "/antihate/legal", "", true},
		{"antihate stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.AntiHate.Stats(ctx) }, "GET", "/antihate/stats", "", false},

		{"nil signals", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.Signals(ctx, nil) }, "GET", "/nil/signals", "", false},
		{"nil signal", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.Signal(ctx, 5) }, "GET", "/nil/signals/5", "", false},
		{"nil create signal", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.CreateSignal(ctx, body) }, "POST", "/nil/signals", "", true},
		{"nil update signal", func(ctx context.Context, a *resources.API) (*client.Response, error) {
			return a.NIL.UpdateSignal(ctx, 5, resources.Params{"verdict": {"FALSE"}})
		}, "PUT", "/nil/signals/5", "verdict=FALSE", false},
		{"nil factcards", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.FactCards(ctx, nil) }, "GET", "/nil/factcards", "", false},
		{"nil factcard", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.FactCard(ctx, 5) }, "GET", "/nil/factcards/5", "", false},
		{"nil create factcard", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.CreateFactCard(ctx, body) }, "POST", "/nil/factcards", "", true},
		{"nil share factcard", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.ShareFactCard(ctx, 5) }, "POST", "/nil/factcards/5/share", "", false},
		{"nil search", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.Search(ctx, "transfer rumour") }, "GET", "/nil/search", "query=transfer+rumour", false},
		{"nil stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.NIL.Stats(ctx) }, "GET", "/nil/stats", "", false},

		{"consulate list", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Consulates(ctx, "NL") }, "GET", "/consulate/list", "country=NL", false},
		{"consulate list all", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Consulates(ctx, "") }, "GET", "/consulate/list", "", false},
		{"consulate documents", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Documents(ctx, nil) }, "GET", "/consulate/documents", "", false},
		{"consulate document", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Document(ctx, 6) }, "GET", "/consulate/documents/6", "", false},
		{"consulate request document", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.RequestDocument(ctx, body) }, "POST", "/consulate/documents", "", true},
		{"consulate track", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.TrackDocument(ctx, 6) }, "GET", "/consulate/documents/6/track", "", false},
		{"consulate appointments upcoming", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Appointments(ctx, &yes) }, "GET", "/consulate/appointments", "upcoming_only=true", false},
		{"consulate appointments all", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Appointments(ctx, &no) }, "GET", "/consulate/appointments", "upcoming_only=false", false},
		{"consulate appointments default", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Appointments(ctx, nil) }, "GET", "/consulate/appointments", "", false},
		{"consulate appointment", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Appointment(ctx, 6) }, "GET", "/consulate/appointments/6", "", false},
		{"consulate book", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.CreateAppointment(ctx, body) }, "POST", "/consulate/appointments", "", true},
		{"consulate cancel", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.CancelAppointment(ctx, 6) }, "DELETE", "/consulate/appointments/6", "", false},
		{"consulate stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Consulate.Stats(ctx) }, "GET", "/consulate/stats", "", false},

		{"admin users", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.Users(ctx, page) }, "GET", "/admin/users", "page=2&per_page=20", false},
		{"admin user", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.User(ctx, 1) }, "GET", "/admin/users/1", "", false},
		{"admin create user", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.CreateUser(ctx, body) }, "POST", "/admin/users", "", true},
		{"admin update user", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.UpdateUser(ctx, 1, body) }, "PUT", "/admin/users/1", "", true},
		{"admin delete user", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.DeleteUser(ctx, 1) }, "DELETE", "/admin/users/1", "", false},
		{"admin sessions", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.Sessions(ctx, nil) }, "GET", "/admin/sessions", "", false},
		{"admin terminate", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.TerminateSession(ctx, 1) }, "DELETE", "/admin/sessions/1", "", false},
		{"admin audit", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.AuditLogs(ctx, nil) }, "GET", "/admin/audit", "", false},
		{"admin health", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.Health(ctx) }, "GET", "/admin/health", "", false},
		{"admin settings", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.Settings(ctx) }, "GET", "/admin/settings", "", false},
		{"admin stats", func(ctx context.Context, a *resources.API) (*client.Response, error) { return a.Admin.Stats(ctx) }, "GET", "/admin/stats", "", false},
	}

	for _, tt := range calls {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			resp, err := tt.invoke(context.Background(), resources.New(rec))
			require.NoError(t, err)
			require.NotNil(t, resp)
			require.Len(t, rec.calls, 1, "exactly one call per method")

			req := rec.calls[0]
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.Path)
			assert.Equal(t, tt.query, req.Query.Encode())
			assert.Equal(t, tt.hasBody, req.Body != nil)
		})
	}
}

func TestFailurePassesThrough(t *testing.T) {
	want := &client.APIError{Method: "GET", Path: "/talents/1", StatusCode: http.StatusNotFound}
	rec := &recorder{err: want}

	resp, err := resources.New(rec).Talents.Get(context.Background(), 1)
	assert.Nil(t, resp)
	assert.Same(t, want, err)
}

func TestTicketVerifyPath(t *testing.T) {
	assert.Equal(t, "/tickets/a%2Fb/verify", resources.TicketVerifyPath("a/b"))
}
