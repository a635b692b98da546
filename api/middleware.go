package api

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// TokenVerifier validates an inbound bearer token and returns the subject
// email it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type firebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a TokenVerifier backed by the Firebase Admin SDK.
// serviceKey is the base64-encoded service account JSON from the environment.
func NewFirebaseVerifier(ctx context.Context, serviceKey string) (TokenVerifier, error) {
	creds, err := base64.StdEncoding.DecodeString(serviceKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode service key: %w", err)
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (f *firebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	t, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	email, _ := t.Claims["email"].(string)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}

// Auth wraps the routes that require a verified subject identity
type Auth struct {
	Verifier TokenVerifier
}

type subjectContextKey struct{}

// Guard rejects requests without a valid bearer token and attaches the
// verified subject email to the request context for the wrapped handler
func (a Auth) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"unauthorized access"}`))
			return
		}
		subject, err := a.Verifier.Verify(r.Context(), parts[1])
		if err != nil {
			zap.S().Errorw("invalid token",
				"url", r.URL,
				"error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid token"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
	})
}

// WithSubject stores the verified subject email in the context
func WithSubject(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, subjectContextKey{}, email)
}

// SubjectFromContext returns the verified subject email placed by Guard,
// or the empty string when the request never passed through it
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey{}).(string)
	return subject
}
