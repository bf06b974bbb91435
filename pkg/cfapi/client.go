package cfapi

import (
	"context"
	"encoding/json"
	"time"
)

// Client is the public surface of the dispatch core and its resource clients.
type Client interface {
	// Zones returns the zones resource client.
	Zones() ZonesClient

	// DNSRecords returns the DNS records resource client.
	DNSRecords() DNSRecordsClient

	// Dispatch performs one logical request/response cycle through cache,
	// retry, and envelope unwrapping, returning the raw result payload.
	Dispatch(ctx context.Context, req *Request) (json.RawMessage, error)

	// Verify dispatches a verification call with the candidate token and
	// reports validity. Dispatch failures are deliberately downgraded to
	// false; this is the only place core errors are discarded.
	Verify(ctx context.Context, token string) bool
}

// ZonesClient provides access to zone resources.
type ZonesClient interface {
	List(ctx context.Context) ([]Zone, error)
	Get(ctx context.Context, zoneID string) (*Zone, error)
	FindByName(ctx context.Context, name string) (*Zone, error)
}

// DNSRecordsClient provides access to DNS record resources.
type DNSRecordsClient interface {
	List(ctx context.Context, zoneID string) ([]DNSRecord, error)
	Get(ctx context.Context, zoneID, recordID string) (*DNSRecord, error)
	Create(ctx context.Context, zoneID string, request *DNSRecordRequest) (*DNSRecord, error)
	Update(ctx context.Context, zoneID, recordID string, request *DNSRecordRequest) (*DNSRecord, error)
	Delete(ctx context.Context, zoneID, recordID string) error
}

// Request describes one dispatch. Method and Path are required; everything
// else has a usable zero value.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is the API route relative to the versioned base URL. It doubles
	// as the cache key, independent of method and body.
	Path string

	// Headers are merged over the dispatch defaults, last-write-wins.
	Headers map[string]string

	// Body, if non-nil, is JSON-serialized into the request body.
	Body interface{}

	// Token overrides the client's default credential for this call.
	Token string

	// TTL bounds cache freshness for this call; zero means the client
	// default (300 seconds).
	TTL time.Duration

	// NoCache disables the cache for this call entirely: no lookup, no
	// store. Any prior entry for the path is left untouched.
	NoCache bool
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cfapi.Client.
//
// # Credential lifecycle
//
// APIToken is the single default credential, resolved once at startup and
// shared by every dispatch that does not supply an explicit token. Unless
// SkipVerification is set, cfclient.New verifies the token against the API
// before returning; a token that fails verification yields
// ErrCredentialInvalid, and the decision to terminate the process belongs to
// the caller (typically the CLI startup sequence).
//
// # Retries and timeouts
//
// Connection-level failures are retried immediately with no backoff, up to
// RetryAttempts total attempts per call. HTTP error statuses are never
// retried. The retry budget bounds attempts, not wall-clock time; callers
// needing timeouts should impose them through the context.
type Config struct {
	// APIEndpoint is the API base URL. Defaults to the public Cloudflare
	// endpoint; the versioned path ("/client/v4/") is appended internally.
	APIEndpoint string

	// APIToken authenticates every request as "Authorization: Bearer <token>".
	APIToken string

	// RetryAttempts is the total number of transport attempts per dispatch,
	// including the first. If 0, the default of 10 is used.
	RetryAttempts int

	// CacheTTL is the default freshness window for cached responses. If 0,
	// 300 seconds is used.
	CacheTTL time.Duration

	// Cache selects the response cache backend. If nil, an in-memory cache
	// is used.
	Cache *CacheConfig

	// HTTPTimeout bounds each individual transport attempt. If 0, a default
	// is applied.
	HTTPTimeout time.Duration

	// Logger is an optional structured logger used by the dispatch core.
	Logger Logger

	// Debug enables verbose request/response logging when a Logger is set.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// SkipVerification skips the startup token verification call. Intended
	// for tests; production startup should fail fast on a bad token.
	SkipVerification bool
}
