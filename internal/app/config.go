package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Constants
const (
	DefaultPort      = 8080
	SavedAddressFile = "weymouth_address"
	TmpSuffix        = ".tmp"
	FilePermissions  = 0644

	// Rate limiting for the public API
	RequestsPerMinute = 60
	BurstSize         = 10

	// Error messages
	ErrInvalidDate    = "Invalid date"
	ErrInvalidFormat  = "Invalid format"
	ErrMissingAddress = "Missing address"
	ErrInternalServer = "Internal server error"
	ErrFailedToSave   = "Failed to save address"
	ErrNoSavedAddress = "No saved address"
	ErrRateLimited    = "Too many requests"
	ErrAdminDisabled  = "Admin mode disabled"

	// Mode strings
	ModeServe = "serve"
	ModeAdmin = "admin"

	// ICS constants
	ICSProductID = "-//Weymouth//Trash Pickup//EN"
	ICSTimezone  = "America/New_York"
	ICSUIDDomain = "pickup.weymouthma.gov"
)

// Embedded files (set by main)
var IndexHTML []byte

// LoadEnv loads a .env file when present. A missing file is not an
// error; real environment variables always win.
func LoadEnv() {
	_ = godotenv.Load()
}

// EnvOr returns the named environment variable or a fallback.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvIntOr returns the named environment variable as an int, or a
// fallback when unset or unparseable.
func EnvIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
