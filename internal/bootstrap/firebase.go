package bootstrap

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/kirathelegend150/devviet-backend/config"
)

// Firebase bundles the two external collaborators the system delegates to:
// the identity provider and the document store.
type Firebase struct {
	Auth  *auth.Client
	Store *firestore.Client
}

// InitFirebase initializes the Firebase Admin SDK and returns Auth and
// Firestore clients.
func InitFirebase(ctx context.Context, cfg *config.FirebaseConfig) (*Firebase, error) {
	if cfg.CredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	conf := &firebase.Config{ProjectID: cfg.ProjectID}
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}

	store, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}

	return &Firebase{Auth: authClient, Store: store}, nil
}

func (f *Firebase) Close() {
	if f != nil && f.Store != nil {
		_ = f.Store.Close()
	}
}
