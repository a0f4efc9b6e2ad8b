package auth

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// User is the identity extracted from a verified ID token.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Name returns the label shown next to a user's content: the display name
// when the provider supplied one, otherwise the email.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// TokenVerifier checks a bearer ID token and yields the user behind it.
// The production implementation wraps the Firebase Auth client; tests
// substitute an in-memory fake.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*User, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier adapts a Firebase Auth client to TokenVerifier.
func NewFirebaseVerifier(client *auth.Client) TokenVerifier {
	return &firebaseVerifier{client: client}
}

func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*User, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	u := &User{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		u.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		u.Email = email
	}
	return u, nil
}
