// Package ddns keeps DNS address records pointed at this host's current
// public IP. For each managed domain it finds the enclosing zone by walking
// the domain's suffixes, then creates or rewrites the matching A/AAAA record
// through the API client.
package ddns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// Static errors for err113 compliance.
var (
	ErrDetectionFailed = errors.New("public IP detection failed")
	ErrNoDomains       = errors.New("no domains configured")
)

// Action describes what Sync did for one domain.
type Action string

const (
	// ActionCreated means no matching record existed and one was created.
	ActionCreated Action = "created"

	// ActionUpdated means the record existed with a different address.
	ActionUpdated Action = "updated"

	// ActionUnchanged means the record already pointed at the current address.
	ActionUnchanged Action = "unchanged"
)

// Result reports the outcome of syncing one domain.
type Result struct {
	Domain string
	Action Action
	Record *cfapi.DNSRecord
}

// Config configures the updater.
type Config struct {
	// Domains are the fully qualified names whose address records are managed.
	Domains []string

	// Proxied sets the proxy flag on created and updated records.
	Proxied bool

	// RecordTTL is the TTL set on managed records; 0 means automatic.
	RecordTTL int

	// Comment is attached to managed records so they can be told apart from
	// hand-made ones.
	Comment string
}

// Updater synchronizes address records for a set of domains.
type Updater struct {
	client   cfapi.Client
	detector Detector
	logger   cfapi.Logger
	config   Config
}

// New creates an updater.
func New(client cfapi.Client, detector Detector, logger cfapi.Logger, config Config) *Updater {
	if config.RecordTTL <= 0 {
		config.RecordTTL = constants.DefaultRecordTTL
	}

	return &Updater{
		client:   client,
		detector: detector,
		logger:   logger,
		config:   config,
	}
}

// Sync detects the current public address and reconciles every configured
// domain against it. Domains are reconciled concurrently; zone lookups for
// domains sharing a zone converge on the same cached responses.
func (u *Updater) Sync(ctx context.Context) ([]Result, error) {
	if len(u.config.Domains) == 0 {
		return nil, ErrNoDomains
	}

	addr, err := u.detector.Detect(ctx)
	if err != nil {
		return nil, err
	}

	recordType := "A"
	if addr.Is6() {
		recordType = "AAAA"
	}

	results := make([]Result, len(u.config.Domains))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, domain := range u.config.Domains {
		i, domain := i, domain
		group.Go(func() error {
			result, err := u.syncDomain(groupCtx, domain, recordType, addr)
			if err != nil {
				return fmt.Errorf("syncing %s: %w", domain, err)
			}

			results[i] = *result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// syncDomain reconciles a single domain against the detected address.
func (u *Updater) syncDomain(ctx context.Context, domain, recordType string, addr netip.Addr) (*Result, error) {
	zone, err := u.zoneOf(ctx, domain)
	if err != nil {
		return nil, err
	}

	records, err := u.client.DNSRecords().List(ctx, zone.ID)
	if err != nil {
		return nil, err
	}

	existing := findRecord(records, recordType, domain)
	if existing == nil {
		record, err := u.client.DNSRecords().Create(ctx, zone.ID, u.recordRequest(recordType, domain, addr))
		if err != nil {
			return nil, err
		}

		u.logResult(domain, ActionCreated, addr)

		return &Result{Domain: domain, Action: ActionCreated, Record: record}, nil
	}

	if existing.Content == addr.String() {
		return &Result{Domain: domain, Action: ActionUnchanged, Record: existing}, nil
	}

	record, err := u.client.DNSRecords().Update(ctx, zone.ID, existing.ID, u.recordRequest(recordType, domain, addr))
	if err != nil {
		return nil, err
	}

	u.logResult(domain, ActionUpdated, addr)

	return &Result{Domain: domain, Action: ActionUpdated, Record: record}, nil
}

// zoneOf finds the registered zone enclosing domain by trying each suffix in
// turn: "a.b.example.com" is looked up as itself, then "b.example.com", then
// "example.com", and so on.
func (u *Updater) zoneOf(ctx context.Context, domain string) (*cfapi.Zone, error) {
	for suffix := domain; suffix != ""; suffix = parentOf(suffix) {
		zone, err := u.client.Zones().FindByName(ctx, suffix)
		if err == nil {
			return zone, nil
		}

		if !errors.Is(err, cfapi.ErrZoneNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: no zone encloses %s", cfapi.ErrZoneNotFound, domain)
}

// parentOf strips one label, returning "" past the last dot.
func parentOf(name string) string {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return ""
	}

	return name[i+1:]
}

func (u *Updater) recordRequest(recordType, domain string, addr netip.Addr) *cfapi.DNSRecordRequest {
	proxied := u.config.Proxied

	return &cfapi.DNSRecordRequest{
		Type:    recordType,
		Name:    domain,
		Content: addr.String(),
		TTL:     u.config.RecordTTL,
		Proxied: &proxied,
		Comment: u.config.Comment,
	}
}

func (u *Updater) logResult(domain string, action Action, addr netip.Addr) {
	if u.logger == nil {
		return
	}

	u.logger.Info("record synchronized", map[string]interface{}{
		"domain":  domain,
		"action":  string(action),
		"address": addr.String(),
	})
}

func findRecord(records []cfapi.DNSRecord, recordType, name string) *cfapi.DNSRecord {
	for i := range records {
		if records[i].Type == recordType && records[i].Name == name {
			return &records[i]
		}
	}

	return nil
}
