// Package client implements the request dispatcher: the single entry point
// through which every API call flows. A dispatch resolves cache hits,
// otherwise delegates to the retrying transport, validates HTTP-level
// success, unwraps the response envelope, and updates the cache on the way
// back.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/internal/transport"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// Client implements the cfapi.Client interface.
type Client struct {
	transport  *transport.Client
	cache      cfapi.Cache
	logger     cfapi.Logger
	defaultTTL time.Duration

	// now is the dispatch clock, replaceable in tests for deterministic
	// TTL behavior.
	now func() time.Time

	zones      cfapi.ZonesClient
	dnsRecords cfapi.DNSRecordsClient
}

// New creates a dispatcher over the given transport and cache. A nil cache
// disables caching entirely.
func New(transportClient *transport.Client, cache cfapi.Cache, logger cfapi.Logger, defaultTTL time.Duration) *Client {
	if defaultTTL <= 0 {
		defaultTTL = constants.DefaultCacheTTL
	}

	if cache == nil {
		cache = cfapi.NewNoOpCache()
	}

	client := &Client{
		transport:  transportClient,
		cache:      cache,
		logger:     logger,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}

	client.zones = NewZonesClient(client)
	client.dnsRecords = NewDNSRecordsClient(client)

	return client
}

// Zones implements cfapi.Client.Zones.
func (c *Client) Zones() cfapi.ZonesClient {
	return c.zones
}

// DNSRecords implements cfapi.Client.DNSRecords.
func (c *Client) DNSRecords() cfapi.DNSRecordsClient {
	return c.dnsRecords
}

// Dispatch implements cfapi.Client.Dispatch.
//
// The cache is consulted by endpoint path regardless of method; a fresh entry
// short-circuits the call with no network work at all. In practice only read
// methods flow through cached paths; mutating resource-client calls always
// set NoCache.
func (c *Client) Dispatch(ctx context.Context, req *cfapi.Request) (json.RawMessage, error) {
	ttl := req.TTL
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	if !req.NoCache {
		entry, err := c.cache.Get(ctx, req.Path)
		if err == nil && !entry.Expired(c.now(), ttl) {
			if c.logger != nil {
				c.logger.Debug("cache hit", map[string]interface{}{"path": req.Path})
			}

			return entry.Result, nil
		}
	}

	resp, err := c.transport.Do(ctx, &transport.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: req.Headers,
		Body:    req.Body,
		Token:   req.Token,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, cfapi.NewRequestError(req.Path, resp.StatusCode, resp.Body)
	}

	var env cfapi.Envelope

	err = json.Unmarshal(resp.Body, &env)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	if !req.NoCache {
		storeErr := c.cache.Set(ctx, req.Path, &cfapi.CacheEntry{
			Result:   env.Result,
			StoredAt: c.now(),
		})
		if storeErr != nil && c.logger != nil {
			c.logger.Warn("failed to store cache entry", map[string]interface{}{
				"path":  req.Path,
				"error": storeErr.Error(),
			})
		}
	}

	return env.Result, nil
}

// Verify implements cfapi.Client.Verify. The verification dispatch never
// touches the cache, since its result must not be reused across tokens.
func (c *Client) Verify(ctx context.Context, token string) bool {
	_, err := c.Dispatch(ctx, &cfapi.Request{
		Method:  http.MethodGet,
		Path:    constants.VerifyTokenPath,
		Token:   token,
		NoCache: true,
	})
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("token verification failed", map[string]interface{}{"error": err.Error()})
		}

		return false
	}

	return true
}
