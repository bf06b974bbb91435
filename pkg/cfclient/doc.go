// Package cfclient provides the main entry point for creating Cloudflare API
// clients.
//
// New wires configuration, transport, retry, caching, and startup token
// verification into a cfapi.Client. Unless disabled, the configured token is
// verified against the API before the client is returned; an invalid token
// yields cfapi.ErrCredentialInvalid so the caller can decide whether to
// terminate.
package cfclient
