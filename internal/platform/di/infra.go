// internal/platform/di/infra.go
package di

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"storefront/internal/adapters/out/googleauth"
	appcfg "storefront/internal/infra/config"
)

// Infra is the shared runtime infrastructure for DI.
// It owns the external clients and the env-resolved settings; it must not
// depend on routers, handlers, or usecases.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore    *firestore.Client
	FirebaseApp  *firebase.App
	FirebaseAuth *firebaseauth.Client
	PasswordAuth *googleauth.PasswordAuth
}

// NewInfra initializes the shared infra.
// Firestore is strict when a project is configured; Firebase Auth and the
// password verifier are best-effort (warn + continue). With no project
// configured everything stays nil and the caller falls back to in-memory
// adapters.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()

	inf := &Infra{
		Config:    cfg,
		ProjectID: strings.TrimSpace(cfg.FirestoreProjectID),
	}

	if inf.ProjectID == "" {
		log.Printf("[di.infra] no GCP project configured; remote adapters disabled")
		return inf, nil
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di.infra] using credentials file for GCP clients")
	} else {
		log.Printf("[di.infra] using Application Default Credentials")
	}

	// 1) Firestore (strict)
	{
		fsClient, err := firestore.NewClient(ctx, inf.ProjectID, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("di.infra: firestore.NewClient failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsClient
		log.Printf("[di.infra] Firestore connected project=%s", inf.ProjectID)
	}

	// 2) Firebase App/Auth (best-effort)
	{
		fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: inf.ProjectID}, clientOpts...)
		if err != nil {
			log.Printf("[di.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[di.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[di.infra] Firebase Auth initialized")
			}
		}
	}

	// 3) Password verifier (best-effort; needs the web API key)
	if key := strings.TrimSpace(cfg.FirebaseWebAPIKey); key != "" {
		pa, err := googleauth.NewPasswordAuth(ctx, key)
		if err != nil {
			log.Printf("[di.infra] WARN: password auth init failed: %v (sign-in disabled)", err)
		} else {
			inf.PasswordAuth = pa
			log.Printf("[di.infra] password auth initialized")
		}
	} else {
		log.Printf("[di.infra] FIREBASE_WEB_API_KEY is empty (sign-in disabled)")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	return nil
}
