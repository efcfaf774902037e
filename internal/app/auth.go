package app

import (
	"context"

	"github.com/visheshsahu1513/Smart-Learning/internal/dispatch"
	"github.com/visheshsahu1513/Smart-Learning/internal/domain"
	"github.com/visheshsahu1513/Smart-Learning/internal/errdefs"
	"github.com/visheshsahu1513/Smart-Learning/internal/validate"
)

// Bootstrap restores a persisted token and, when one is found, fetches
// the profile it belongs to. The returned channel settles once the
// restore (including any profile fetch) has finished.
func (a *App) Bootstrap(ctx context.Context) <-chan error {
	blob, ok := a.tokens.Load(ctx)
	if !ok || blob.Token == "" {
		return settled(nil)
	}
	if done := a.installToken(ctx, blob.Token, false); done != nil {
		return done
	}
	return settled(nil)
}

// Login verifies credentials with the identity provider and installs
// the minted token. The profile fetch it triggers runs as its own
// command; the returned channel settles when the login itself does.
func (a *App) Login(ctx context.Context, creds domain.Credentials) <-chan error {
	if err := validate.Struct(creds); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "auth/loginUser", "auth",
		func(ctx context.Context) (string, error) {
			return a.identity.SignIn(ctx, creds.Email, creds.Password)
		},
		dispatch.Hooks[string]{
			Pending: a.session.Begin,
			Fulfilled: func(token string) {
				a.session.Settle()
				a.installToken(context.WithoutCancel(ctx), token, true)
			},
			Rejected: func(e *errdefs.Error) { a.session.Fail(e.Message) },
			Canceled: a.session.Idle,
		})
}

// Signup creates the identity-provider account and registers it with
// the course service. It does not log the new user in.
func (a *App) Signup(ctx context.Context, creds domain.Credentials) <-chan error {
	if err := validate.Struct(creds); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "auth/signupUser", "auth",
		func(ctx context.Context) (domain.User, error) {
			uid, _, err := a.identity.SignUp(ctx, creds.Email, creds.Password)
			if err != nil {
				return domain.User{}, err
			}
			return a.courses.Signup(ctx, creds.Email, uid)
		},
		dispatch.Hooks[domain.User]{
			Pending:   a.session.Begin,
			Fulfilled: func(domain.User) { a.session.Settle() },
			Rejected:  func(e *errdefs.Error) { a.session.Fail(e.Message) },
			Canceled:  a.session.Idle,
		})
}

// ResetPassword asks the identity provider to send a reset email.
func (a *App) ResetPassword(ctx context.Context, email string) <-chan error {
	in := struct {
		Email string `json:"email" validate:"required,email"`
	}{email}
	if err := validate.Struct(in); err != nil {
		return settled(err)
	}
	return dispatch.Run(ctx, a.d, "auth/resetPassword", "auth",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.identity.SendPasswordReset(ctx, email)
		},
		dispatch.Hooks[struct{}]{})
}

// Logout clears the session and the persisted token. No network call.
func (a *App) Logout(ctx context.Context) {
	a.session.Reset()
	a.tokens.Clear(ctx)
}

// installToken puts a token into the session and, when the value
// changed, triggers the one profile fetch that token change is the
// sole trigger for. It returns the profile fetch's channel, or nil
// when no fetch was started.
func (a *App) installToken(ctx context.Context, token string, persist bool) <-chan error {
	changed := a.session.SetToken(token)
	if persist {
		a.saveToken(ctx, token)
	}
	if !changed || token == "" {
		return nil
	}
	return a.fetchProfile(ctx)
}

// fetchProfile loads the user behind the current token. An
// authorization failure means the token is expired or invalid and is
// treated as an implicit logout; any other failure keeps the session
// so a transient outage does not log the user out.
func (a *App) fetchProfile(ctx context.Context) <-chan error {
	return dispatch.Run(ctx, a.d, "auth/fetchUserProfile", "auth/profile",
		func(ctx context.Context) (domain.Profile, error) {
			token, err := a.token()
			if err != nil {
				return domain.Profile{}, err
			}
			return a.courses.Me(ctx, token)
		},
		dispatch.Hooks[domain.Profile]{
			Pending:   a.session.Begin,
			Fulfilled: a.session.ApplyProfile,
			Rejected: func(e *errdefs.Error) {
				if e.Kind == errdefs.KindAuthorization {
					a.session.Reset()
					a.tokens.Clear(context.WithoutCancel(ctx))
					return
				}
				a.session.Fail(e.Message)
			},
			Canceled: a.session.Idle,
		})
}

// Instructors lists every user, for the assign-instructor picker. The
// result backs a transient view and is not mirrored in any store.
func (a *App) Instructors(ctx context.Context) ([]domain.User, error) {
	token, err := a.token()
	if err != nil {
		return nil, err
	}
	return a.courses.ListUsers(ctx, token)
}
