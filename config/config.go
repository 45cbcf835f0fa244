// Package config reads process-wide configuration from the environment once
// at startup. Missing Appwrite credentials are a valid state: the affected
// feature degrades instead of failing the process.
package config

import (
	"os"
	"strconv"
)

const (
	defaultDatabaseID   = "mealshare_db"
	defaultCollectionID = "food_listings"

	// DefaultListingLimit caps every listing read path. One value on
	// purpose: the web page and the JSON API must not drift apart.
	DefaultListingLimit = 12
)

// Config holds every environment-provided value the server uses.
type Config struct {
	Port string

	// Server-side Appwrite credentials. All three gate the database
	// gateway; the API key must never reach a client.
	Endpoint  string
	ProjectID string
	APIKey    string

	DatabaseID   string
	CollectionID string
	ListingLimit int

	// Public (client-safe) Appwrite values gating the session client.
	PublicEndpoint  string
	PublicProjectID string

	// SessionSigningKey signs the session cookie. Empty means an
	// ephemeral key is generated at startup.
	SessionSigningKey string
}

// Load reads the configuration from environment variables, applying
// defaults for the query target, limit, and port.
func Load() Config {
	return Config{
		Port:              getenv("PORT", "8080"),
		Endpoint:          os.Getenv("APPWRITE_ENDPOINT"),
		ProjectID:         os.Getenv("APPWRITE_PROJECT_ID"),
		APIKey:            os.Getenv("APPWRITE_API_KEY"),
		DatabaseID:        getenv("APPWRITE_DATABASE_ID", defaultDatabaseID),
		CollectionID:      getenv("APPWRITE_COLLECTION_FOOD_LISTINGS", defaultCollectionID),
		ListingLimit:      getenvInt("LISTING_LIMIT", DefaultListingLimit),
		PublicEndpoint:    os.Getenv("PUBLIC_APPWRITE_ENDPOINT"),
		PublicProjectID:   os.Getenv("PUBLIC_APPWRITE_PROJECT_ID"),
		SessionSigningKey: os.Getenv("SESSION_SIGNING_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
