package stub

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/okian/proinvestix/internal/domain/model"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func cannedTalents() []model.Talent {
	created := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	score := func(v float64) *float64 { return &v }
	return []model.Talent{
		{ID: 1, TalentID: "TAL-2025-0001", FirstName: "Youssef", LastName: "Amrani", DateOfBirth: "2007-04-12",
			Nationality: "Marokko", Position: "ST", CurrentClub: "Ajax O19", IsDiaspora: true, DiasporaCountry: "Nederland",
			ScoutRating: score(8.1), PotentialRating: score(9.0), Status: "Active", CreatedAt: created},
		{ID: 2, TalentID: "TAL-2025-0002", FirstName: "Ilias", LastName: "Bennani", DateOfBirth: "2006-11-02",
			Nationality: "Marokko", Position: "CM", CurrentClub: "Wydad AC", ScoutRating: score(7.6),
			PotentialRating: score(8.4), Status: "Active", CreatedAt: created},
		{ID: 3, TalentID: "TAL-2025-0003", FirstName: "Sami", LastName: "El Idrissi", DateOfBirth: "2008-01-23",
			Nationality: "Marokko", Position: "GK", CurrentClub: "RSC Anderlecht U17", IsDiaspora: true,
			DiasporaCountry: "België", ScoutRating: score(7.2), Status: "Scouted", CreatedAt: created},
		{ID: 4, TalentID: "TAL-2025-0004", FirstName: "Nora", LastName: "Haddad", DateOfBirth: "2007-07-30",
			Nationality: "Marokko", Position: "LW", CurrentClub: "FUS Rabat", ScoutRating: score(8.4),
			PotentialRating: score(8.9), Status: "Active", CreatedAt: created},
		{ID: 5, TalentID: "TAL-2025-0005", FirstName: "Adam", LastName: "Ziani", DateOfBirth: "2006-05-18",
			Nationality: "Marokko", Position: "ST", CurrentClub: "Olympique Lyon U19", IsDiaspora: true,
			DiasporaCountry: "Frankrijk", Status: "Scouted", CreatedAt: created},
	}
}

func (s *Server) handleTalents(w http.ResponseWriter, r *http.Request) {
	position := strings.TrimSpace(r.URL.Query().Get("position"))
	var matched []model.Talent
	for _, t := range s.talents {
		if position == "" || strings.EqualFold(t.Position, position) {
			matched = append(matched, t)
		}
	}

	page := intParam(r, "page", 1, 0)
	perPage := intParam(r, "per_page", defaultPerPage, maxPerPage)
	start := min((page-1)*perPage, len(matched))
	end := min(start+perPage, len(matched))
	data := matched[start:end]
	if data == nil {
		data = []model.Talent{}
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    data,
		Meta: &pageMeta{
			Total:      len(matched),
			Page:       page,
			PerPage:    perPage,
			TotalPages: (len(matched) + perPage - 1) / perPage,
		},
	})
}

func (s *Server) handleTalent(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeValidation(w, "id", fmt.Errorf("invalid talent id %q", raw))
		return
	}
	for _, t := range s.talents {
		if t.ID == id {
			writeJSON(w, http.StatusOK, t)
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("Talent with ID '%d' not found", id))
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: model.DashboardStats{
		TotalTalents:   len(s.talents),
		TotalTransfers: 12,
		TotalEvents:    3,
		TotalUsers:     s.users.count(),
		TransferVolume: decimal.RequireFromString("12500000.00"),
		TicketsSold:    1840,
	}})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleRefreshCount(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]int64{"count": s.RefreshCount()})
}
