// Package cfapi provides types, interfaces, and helpers for working with the
// Cloudflare v4 zone and DNS management API.
//
// # Overview
//
// The cfapi package defines the domain types (Zone, DNSRecord), the response
// envelope shared by every API endpoint, the error taxonomy of the dispatch
// core, and the response cache backends. A concrete implementation of the
// Client interface is provided by the cfclient package, which wires
// configuration, transport, retry, caching, and startup token verification.
// Most consumers should import cfclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/esaiascronelius/cloudflare-ddns/pkg/cfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cfclient.NewWithToken(ctx, "my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  zones, err := cli.Zones().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = zones
//	}
//
// # Dispatch and caching
//
// Every outbound call flows through a single dispatch path: a per-endpoint
// response cache is consulted first, otherwise the transport performs the
// request with immediate retries on connection-level failures, the HTTP
// status is validated, and the envelope's result payload is unwrapped and
// cached. See the Request type for per-call control over headers, token, TTL,
// and cache bypass.
//
// The cache is keyed by endpoint path only, shared process-wide, and not
// partitioned by token. Reusing one client across callers holding different
// credentials would leak cached results between them; construct one client
// per credential instead.
package cfapi
