package stub

import (
	"errors"
	"net/http"

	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/pkg/logger"
)

func (s *Server) tokenResponse(u model.User) (model.TokenResponse, error) {
	access, err := s.tokens.sign(&u, TokenAccess)
	if err != nil {
		return model.TokenResponse{}, err
	}
	refresh, err := s.tokens.sign(&u, TokenRefresh)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		ExpiresIn:    int(s.tokens.accessTTL.Seconds()),
		User:         &u,
	}, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, detailInvalidJSON)
		return
	}
	u, err := s.users.authenticate(req.Email, req.Password)
	switch {
	case errors.Is(err, ErrUserDisabled):
		writeError(w, http.StatusForbidden, detailUserDisabled)
		return
	case err != nil:
		s.logger.Info(r.Context(), "login rejected", logger.String("email", req.Email))
		writeError(w, http.StatusUnauthorized, detailInvalidCredentials)
		return
	}
	resp, err := s.tokenResponse(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, detailInvalidJSON)
		return
	}
	u, err := s.users.add(req, model.RoleUser)
	switch {
	case errors.Is(err, ErrAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, ErrWeakPassword):
		writeValidation(w, "password", err)
		return
	case errors.Is(err, ErrMissingField):
		writeValidation(w, "body", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "")
		return
	}
	resp, err := s.tokenResponse(u)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.refreshes.Add(1)

	var req model.RefreshRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, detailInvalidJSON)
		return
	}
	id, err := s.tokens.verify(req.RefreshToken, TokenRefresh)
	if err != nil {
		writeError(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}
	u, ok := s.users.get(id)
	if !ok {
		writeError(w, http.StatusUnauthorized, detailInvalidToken)
		return
	}

	access, err := s.tokens.sign(&u, TokenAccess)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "")
		return
	}
	resp := model.RefreshResponse{
		AccessToken: access,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.accessTTL.Seconds()),
	}
	if s.rotate {
		if resp.RefreshToken, err = s.tokens.sign(&u, TokenRefresh); err != nil {
			writeError(w, http.StatusInternalServerError, "")
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, caller(r.Context()))
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Successfully logged out", Success: true})
}
