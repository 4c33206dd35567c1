package usecase

import (
	"context"
	"errors"
	"strings"

	"insight-srv/internal/model"
	"insight-srv/internal/session"
	"insight-srv/internal/session/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/locale"
)

var anonymousNames = map[string]string{
	locale.PT: "Utilizador",
	locale.EN: "User",
}

// Get resolves who the caller is according to the backend. A token the
// backend no longer accepts yields an unauthenticated output, not an error.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input session.GetInput) (session.SessionOutput, error) {
	if input.Token == "" {
		return session.SessionOutput{}, session.ErrTokenRequired
	}

	snap, err := uc.cache.GetSnapshot(ctx, sc.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "session.usecase.Get: Cache unavailable: %v", err)
		}
		snap = uc.fetch(ctx, sc, input.Token)
	}

	if snap == nil {
		return session.SessionOutput{DisplayName: anonymousNames[locale.ParseLang(input.Lang)]}, nil
	}
	return buildOutput(*snap, input.Lang), nil
}

func (uc *implUseCase) fetch(ctx context.Context, sc model.Scope, token string) *session.Snapshot {
	s, err := uc.backend.FetchSession(ctx, token)
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.fetch: FetchSession failed: %v", err)
		return nil
	}
	if s == nil {
		return nil
	}

	profile, err := uc.backend.FetchProfile(ctx, token)
	if err != nil {
		uc.l.Warnf(ctx, "session.usecase.fetch: FetchProfile failed: %v", err)
	}

	snap := session.Snapshot{Session: s.Usuario, Profile: profile}
	if err := uc.cache.SaveSnapshot(ctx, sc.UserID, snap); err != nil {
		uc.l.Warnf(ctx, "session.usecase.fetch: Failed to cache session: %v", err)
	}
	return &snap
}

// Logout forgets the cached view of the caller.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if err := uc.cache.DeleteSnapshot(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Logout: Failed to drop cached session: %v", err)
		return err
	}
	return nil
}

func buildOutput(snap session.Snapshot, lang string) session.SessionOutput {
	user := snap.Session
	var profile backend.User
	if snap.Profile != nil {
		profile = *snap.Profile
		user = mergeUser(snap.Session, profile)
	}

	return session.SessionOutput{
		User:          &user,
		Authenticated: true,
		DisplayName:   firstNonBlank(profile.Nome, profile.Email, snap.Session.Nome, snap.Session.Email, anonymousNames[locale.ParseLang(lang)]),
		DisplayEmail:  firstNonBlank(profile.Email, snap.Session.Email),
	}
}

// mergeUser overlays the profile on the session user. The id always comes
// from the session.
func mergeUser(s, p backend.User) backend.User {
	out := s
	out.Nome = firstNonBlank(p.Nome, s.Nome)
	out.Email = firstNonBlank(p.Email, s.Email)
	out.Phone = firstNonBlank(p.Phone, s.Phone)
	out.EmailAtivado = s.EmailAtivado || p.EmailAtivado
	out.ExpiresAt = firstNonBlank(p.ExpiresAt, s.ExpiresAt)
	return out
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
