package cfapi

import (
	"encoding/json"
	"time"
)

// Envelope is the outer JSON wrapper the API puts around every payload. Only
// Result is consumed by the dispatch core; success and errors are inferred
// from the HTTP status instead of the envelope's own flags.
type Envelope struct {
	Success    bool            `json:"success"               yaml:"success"`
	Errors     []APIError      `json:"errors"                yaml:"errors"`
	Messages   []Message       `json:"messages"              yaml:"messages"`
	Result     json.RawMessage `json:"result"                yaml:"result"`
	ResultInfo *ResultInfo     `json:"result_info,omitempty" yaml:"result_info,omitempty"`
}

// Message represents an informational message in API responses.
type Message struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// ResultInfo represents pagination information.
type ResultInfo struct {
	Page       int `json:"page"        yaml:"page"`
	PerPage    int `json:"per_page"    yaml:"per_page"`
	Count      int `json:"count"       yaml:"count"`
	TotalCount int `json:"total_count" yaml:"total_count"`
}

// Zone represents a Cloudflare zone.
type Zone struct {
	ID          string    `json:"id"                     yaml:"id"`
	Name        string    `json:"name"                   yaml:"name"`
	Status      string    `json:"status"                 yaml:"status"`
	Paused      bool      `json:"paused"                 yaml:"paused"`
	NameServers []string  `json:"name_servers,omitempty" yaml:"name_servers,omitempty"`
	Account     Account   `json:"account"                yaml:"account"`
	CreatedOn   time.Time `json:"created_on"             yaml:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"            yaml:"modified_on"`
}

// Account represents the account owning a zone.
type Account struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// DNSRecord represents a DNS record within a zone.
type DNSRecord struct {
	ID         string    `json:"id"                 yaml:"id"`
	ZoneID     string    `json:"zone_id"            yaml:"zone_id"`
	ZoneName   string    `json:"zone_name"          yaml:"zone_name"`
	Type       string    `json:"type"               yaml:"type"`
	Name       string    `json:"name"               yaml:"name"`
	Content    string    `json:"content"            yaml:"content"`
	Proxiable  bool      `json:"proxiable"          yaml:"proxiable"`
	Proxied    bool      `json:"proxied"            yaml:"proxied"`
	TTL        int       `json:"ttl"                yaml:"ttl"`
	Priority   *int      `json:"priority,omitempty" yaml:"priority,omitempty"`
	Comment    string    `json:"comment,omitempty"  yaml:"comment,omitempty"`
	Tags       []string  `json:"tags,omitempty"     yaml:"tags,omitempty"`
	CreatedOn  time.Time `json:"created_on"         yaml:"created_on"`
	ModifiedOn time.Time `json:"modified_on"        yaml:"modified_on"`
}

// DNSRecordRequest represents a request to create or update a DNS record.
type DNSRecordRequest struct {
	Type    string `json:"type"              yaml:"type"`
	Name    string `json:"name"              yaml:"name"`
	Content string `json:"content"           yaml:"content"`
	TTL     int    `json:"ttl"               yaml:"ttl"`
	Proxied *bool  `json:"proxied,omitempty" yaml:"proxied,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// TokenStatus represents the result of verifying an API token.
type TokenStatus struct {
	ID        string     `json:"id"                   yaml:"id"`
	Status    string     `json:"status"               yaml:"status"`
	ExpiresOn *time.Time `json:"expires_on,omitempty" yaml:"expires_on,omitempty"`
	NotBefore *time.Time `json:"not_before,omitempty" yaml:"not_before,omitempty"`
}
