// internal/infra/config/config.go
package config

import "os"

// Config holds the environment configuration for the whole service.
type Config struct {
	Port                     string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	GCPCreds                 string
	FirebaseWebAPIKey        string
	CartMirrorDir            string
}

// Load reads the environment and returns a Config.
func Load() *Config {
	cfg := &Config{
		Port:                     getenvDefault("PORT", "8080"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", os.Getenv("GOOGLE_CLOUD_PROJECT")),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirebaseWebAPIKey:        os.Getenv("FIREBASE_WEB_API_KEY"),
		CartMirrorDir:            getenvDefault("CART_MIRROR_DIR", "./data/carts"),
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
