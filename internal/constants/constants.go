// Package constants centralizes shared configuration values.
package constants

import "time"

// API endpoint layout.
const (
	// DefaultAPIEndpoint is the public Cloudflare API base URL.
	DefaultAPIEndpoint = "https://api.cloudflare.com"

	// APIBasePath is the versioned path prefix prepended to every endpoint path.
	APIBasePath = "/client/v4/"

	// VerifyTokenPath is the endpoint used for credential verification.
	VerifyTokenPath = "user/tokens/verify"
)

// Dispatch behavior.
const (
	// DefaultDispatchAttempts is the total transport attempts per dispatch,
	// including the first. Attempts are immediate, with no backoff.
	DefaultDispatchAttempts = 10

	// DefaultCacheTTL is the default freshness window for cached responses.
	DefaultCacheTTL = 300 * time.Second

	// DefaultHTTPTimeout bounds each individual transport attempt.
	DefaultHTTPTimeout = 30 * time.Second
)

// Pagination.
const (
	// DefaultPageSize is the per_page value used when walking list endpoints.
	DefaultPageSize = 50
)

// DDNS defaults.
const (
	// DefaultRecordTTL is the TTL set on managed DNS records. The value 1
	// means "automatic" on the Cloudflare side.
	DefaultRecordTTL = 1

	// DefaultIPv4DetectorURL returns the caller's public IPv4 address as
	// plain text.
	DefaultIPv4DetectorURL = "https://api.ipify.org"

	// DefaultIPv6DetectorURL returns the caller's public IPv6 address as
	// plain text.
	DefaultIPv6DetectorURL = "https://api6.ipify.org"

	// DetectorTimeout bounds a single IP detection call.
	DetectorTimeout = 10 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
