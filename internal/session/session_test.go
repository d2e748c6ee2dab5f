package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/internal/session"
	"github.com/okian/proinvestix/internal/storage"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeAuth struct {
	loginBody string
	loginErr  error
	meBody    string
	meErr     error
	regErr    error

	lastLogin model.LoginRequest
	meCalls   int
}

func ok(body string) *client.Response {
	return &client.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func (f *fakeAuth) Login(_ context.Context, req model.LoginRequest) (*client.Response, error) {
	f.lastLogin = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return ok(f.loginBody), nil
}

func (f *fakeAuth) Register(context.Context, model.RegisterRequest) (*client.Response, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	return ok(`{"access_token":"a","refresh_token":"r"}`), nil
}

func (f *fakeAuth) Me(context.Context) (*client.Response, error) {
	f.meCalls++
	if f.meErr != nil {
		return nil, f.meErr
	}
	return ok(f.meBody), nil
}

func goodAuth() *fakeAuth {
	return &fakeAuth{
		loginBody: `{"access_token":"acc","refresh_token":"ref","token_type":"bearer","expires_in":1800}`,
		meBody:    `{"id":3,"username":"nadia","email":"nadia@example.com","role":"Scout","is_active":true}`,
	}
}

func unauthorized(detail string) error {
	return &client.APIError{Method: "POST", Path: "/auth/login", StatusCode: http.StatusUnauthorized, Detail: detail}
}

func TestLogin(t *testing.T) {
	Convey("Given a signed-out session", t, func() {
		ctx := context.Background()
		store := storage.NewMemory()

		Convey("When logging in with valid credentials", func() {
			auth := goodAuth()
			s := session.New(auth, store)
			err := s.Login(ctx, "nadia@example.com", "secret")

			Convey("Then the session is authenticated with a cached user", func() {
				So(err, ShouldBeNil)
				So(s.IsAuthenticated(), ShouldBeTrue)
				So(s.IsLoading(), ShouldBeFalse)
				So(s.Err(), ShouldBeEmpty)
				So(s.User(), ShouldNotBeNil)
				So(s.User().Username, ShouldEqual, "nadia")
				So(s.User().Role, ShouldEqual, model.RoleScout)
				So(auth.lastLogin.Email, ShouldEqual, "nadia@example.com")
			})

			Convey("Then both tokens and only the flag are persisted", func() {
				So(storage.GetString(ctx, store, storage.KeyAccessToken), ShouldEqual, "acc")
				So(storage.GetString(ctx, store, storage.KeyRefreshToken), ShouldEqual, "ref")
				So(storage.GetString(ctx, store, storage.KeyAuthState), ShouldEqual, `{"isAuthenticated":true}`)
			})
		})

		Convey("When the backend rejects the credentials with a detail", func() {
			auth := goodAuth()
			auth.loginErr = unauthorized("Invalid email or password")
			s := session.New(auth, store)
			err := s.Login(ctx, "nadia@example.com", "wrong")

			Convey("Then the error is returned and the message recorded", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, client.ErrUnauthorized), ShouldBeTrue)
				So(s.Err(), ShouldEqual, "Invalid email or password")
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.IsLoading(), ShouldBeFalse)
				So(s.User(), ShouldBeNil)
			})
		})

		Convey("When the failure carries no detail", func() {
			auth := goodAuth()
			auth.loginErr = errors.New("connection refused")
			s := session.New(auth, store)
			_ = s.Login(ctx, "nadia@example.com", "secret")

			Convey("Then the default message is used", func() {
				So(s.Err(), ShouldEqual, session.MsgLoginFailed)
			})

			Convey("Then ClearError resets it", func() {
				s.ClearError()
				So(s.Err(), ShouldBeEmpty)
			})
		})

		Convey("When the user record cannot be fetched", func() {
			auth := goodAuth()
			auth.meErr = errors.New("boom")
			s := session.New(auth, store)
			err := s.Login(ctx, "nadia@example.com", "secret")

			Convey("Then login fails without authenticating", func() {
				So(err, ShouldNotBeNil)
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.Err(), ShouldEqual, session.MsgLoginFailed)
			})
		})

		Convey("When the answer has no tokens", func() {
			auth := goodAuth()
			auth.loginBody = `{"token_type":"bearer"}`
			s := session.New(auth, store)
			err := s.Login(ctx, "nadia@example.com", "secret")

			Convey("Then login fails", func() {
				So(errors.Is(err, session.ErrMissingTokens), ShouldBeTrue)
				So(auth.meCalls, ShouldEqual, 0)
			})
		})
	})

	Convey("Given an authenticated session", t, func() {
		ctx := context.Background()
		store := storage.NewMemory()
		auth := goodAuth()
		s := session.New(auth, store)
		So(s.Login(ctx, "nadia@example.com", "secret"), ShouldBeNil)

		Convey("When a second login fails", func() {
			auth.loginErr = unauthorized("")
			_ = s.Login(ctx, "nadia@example.com", "wrong")

			Convey("Then the authenticated flag is untouched", func() {
				So(s.IsAuthenticated(), ShouldBeTrue)
				So(s.Err(), ShouldEqual, session.MsgLoginFailed)
			})
		})

		Convey("When logging out", func() {
			So(s.Logout(ctx), ShouldBeNil)

			Convey("Then both tokens are gone and the session is signed out", func() {
				_, hasAccess, _ := store.Get(ctx, storage.KeyAccessToken)
				_, hasRefresh, _ := store.Get(ctx, storage.KeyRefreshToken)
				So(hasAccess, ShouldBeFalse)
				So(hasRefresh, ShouldBeFalse)
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.User(), ShouldBeNil)
				So(storage.GetString(ctx, store, storage.KeyAuthState), ShouldEqual, `{"isAuthenticated":false}`)
			})
		})

		Convey("When the client reports the session expired", func() {
			s.Expire(ctx)

			Convey("Then the cached state is dropped", func() {
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.User(), ShouldBeNil)
			})
		})

		Convey("When fetching the user fails", func() {
			auth.meErr = errors.New("boom")
			err := s.FetchUser(ctx)

			Convey("Then the session is signed out locally", func() {
				So(err, ShouldNotBeNil)
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.User(), ShouldBeNil)
			})
		})
	})
}

func TestRegister(t *testing.T) {
	Convey("Given a session", t, func() {
		ctx := context.Background()
		store := storage.NewMemory()
		auth := goodAuth()
		s := session.New(auth, store)
		req := model.RegisterRequest{Username: "karim", Email: "karim@example.com", Password: "longenough"}

		Convey("When registration succeeds", func() {
			So(s.Register(ctx, req), ShouldBeNil)

			Convey("Then the new account is not signed in", func() {
				So(s.IsAuthenticated(), ShouldBeFalse)
				So(s.IsLoading(), ShouldBeFalse)
				_, hasAccess, _ := store.Get(ctx, storage.KeyAccessToken)
				So(hasAccess, ShouldBeFalse)
			})
		})

		Convey("When registration fails", func() {
			auth.regErr = &client.APIError{StatusCode: http.StatusConflict, Detail: "User with email already exists"}
			err := s.Register(ctx, req)

			Convey("Then the backend detail is recorded", func() {
				So(errors.Is(err, client.ErrConflict), ShouldBeTrue)
				So(s.Err(), ShouldEqual, "User with email already exists")
			})
		})

		Convey("When registration fails without detail", func() {
			auth.regErr = errors.New("timeout")
			_ = s.Register(ctx, req)

			Convey("Then the default message is recorded", func() {
				So(s.Err(), ShouldEqual, session.MsgRegisterFailed)
			})
		})
	})
}

func TestRestore(t *testing.T) {
	Convey("Given persisted session records", t, func() {
		ctx := context.Background()
		store := storage.NewMemory()

		Convey("When the flag is true", func() {
			_ = store.Set(ctx, storage.KeyAuthState, `{"isAuthenticated":true}`)
			s := session.New(goodAuth(), store)
			So(s.Restore(ctx), ShouldBeNil)

			Convey("Then the session is authenticated without a user", func() {
				So(s.IsAuthenticated(), ShouldBeTrue)
				So(s.User(), ShouldBeNil)
				So(s.State().IsAuthenticated, ShouldBeTrue)
			})
		})

		Convey("When the record is unreadable", func() {
			_ = store.Set(ctx, storage.KeyAuthState, `{{`)
			s := session.New(goodAuth(), store)

			Convey("Then the session stays signed out", func() {
				So(s.Restore(ctx), ShouldBeNil)
				So(s.IsAuthenticated(), ShouldBeFalse)
			})
		})
	})
}
