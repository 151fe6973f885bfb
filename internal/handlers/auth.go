package handlers

import (
	"context"
	"log"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"chatjpt/internal/config"
	"chatjpt/internal/middleware"
	"chatjpt/internal/models"
)

const sessionOAuthState = "oauth_state"

// AuthHandler signs chat users in with an OIDC provider. Nothing about the
// user is persisted; the identity is kept in the session only.
type AuthHandler struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
	oauth2   oauth2.Config
}

// NewAuthHandler discovers the provider at cfg.OIDCIssuer.
func NewAuthHandler(ctx context.Context, cfg *config.Config) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, cfg.OIDCIssuer)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		provider: provider,
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.OIDCClientID}),
		oauth2: oauth2.Config{
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			RedirectURL:  cfg.OIDCRedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

// Login redirects to the provider.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	state := uuid.NewString()
	sess.Set(sessionOAuthState, state)
	return c.Redirect().To(h.oauth2.AuthCodeURL(state))
}

// Callback completes the code exchange and stores the user in the session.
func (h *AuthHandler) Callback(c fiber.Ctx) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session not available")
	}

	want, _ := sess.Get(sessionOAuthState).(string)
	sess.Delete(sessionOAuthState)
	if want == "" || want != c.Query("state") {
		return fiber.NewError(fiber.StatusBadRequest, "invalid state")
	}

	token, err := h.oauth2.Exchange(c.Context(), c.Query("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to exchange code")
	}

	user, err := h.identify(c.Context(), token)
	if err != nil {
		return err
	}

	sess.Set(middleware.SessionUserSub, user.Sub)
	sess.Set(middleware.SessionUserEmail, user.Email)
	sess.Set(middleware.SessionUserName, user.Name)

	target := "/"
	if saved, ok := sess.Get(middleware.SessionRedirect).(string); ok && saved != "" {
		target = saved
		sess.Delete(middleware.SessionRedirect)
	}
	return c.Redirect().To(target)
}

// identify verifies the ID token and fills any claims it lacks from the
// userinfo endpoint.
func (h *AuthHandler) identify(ctx context.Context, token *oauth2.Token) (models.User, error) {
	var user models.User

	raw, ok := token.Extra("id_token").(string)
	if !ok {
		return user, fiber.NewError(fiber.StatusBadRequest, "missing id_token")
	}
	idToken, err := h.verifier.Verify(ctx, raw)
	if err != nil {
		return user, fiber.NewError(fiber.StatusBadRequest, "invalid id_token")
	}
	if err := idToken.Claims(&user); err != nil {
		return user, err
	}

	if user.Email == "" || user.Name == "" {
		info, err := h.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
		if err != nil {
			log.Printf("Warning: Failed to fetch userinfo: %v", err)
		} else {
			var extra models.User
			if err := info.Claims(&extra); err == nil {
				if user.Email == "" {
					user.Email = extra.Email
				}
				if user.Name == "" {
					user.Name = extra.Name
				}
			}
		}
	}

	if user.Sub == "" {
		return user, fiber.NewError(fiber.StatusBadRequest, "missing subject claim")
	}
	return user, nil
}

// Logout ends the session.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Destroy()
	}
	return c.Redirect().To("/login")
}
