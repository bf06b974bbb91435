package cfclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/esaiascronelius/cloudflare-ddns/internal/client"
	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/internal/transport"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// New creates a new Cloudflare API client and, unless disabled, verifies the
// configured token before returning. Verification is the startup credential
// gate: a token the API rejects yields cfapi.ErrCredentialInvalid, and no
// client is returned.
func New(ctx context.Context, config *cfapi.Config) (cfapi.Client, error) {
	if config == nil {
		return nil, cfapi.ErrConfigRequired
	}

	if config.APIToken == "" {
		return nil, cfapi.ErrAPITokenRequired
	}

	apiEndpoint := normalizeEndpoint(config.APIEndpoint)

	cache, err := cfapi.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}

	transportClient := transport.NewClient(apiEndpoint, config.APIToken, transportOptions(config)...)
	dispatcher := client.New(transportClient, cache, config.Logger, config.CacheTTL)

	if !config.SkipVerification {
		if !dispatcher.Verify(ctx, config.APIToken) {
			return nil, cfapi.ErrCredentialInvalid
		}
	}

	return dispatcher, nil
}

// NewWithToken creates a client for the public API with just a token.
func NewWithToken(ctx context.Context, token string) (cfapi.Client, error) {
	return New(ctx, &cfapi.Config{
		APIToken: token,
	})
}

// normalizeEndpoint trims a trailing slash and defaults to the public API.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// transportOptions builds transport options from config.
func transportOptions(config *cfapi.Config) []transport.Option {
	var opts []transport.Option

	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	if config.RetryAttempts > 0 {
		opts = append(opts, transport.WithAttempts(config.RetryAttempts))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(config.HTTPTimeout))
	}

	return opts
}
