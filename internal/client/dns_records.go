package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// DNSRecordsClient implements cfapi.DNSRecordsClient. Mutating operations
// always dispatch with caching disabled so a stale cached read can never mask
// the effect of a write to the same path.
type DNSRecordsClient struct {
	dispatcher *Client
}

// NewDNSRecordsClient creates a new DNS records client.
func NewDNSRecordsClient(dispatcher *Client) *DNSRecordsClient {
	return &DNSRecordsClient{
		dispatcher: dispatcher,
	}
}

// List implements cfapi.DNSRecordsClient.List.
func (c *DNSRecordsClient) List(ctx context.Context, zoneID string) ([]cfapi.DNSRecord, error) {
	var records []cfapi.DNSRecord

	for page := 1; ; page++ {
		path := "zones/" + zoneID + "/dns_records?page=" + strconv.Itoa(page) +
			"&per_page=" + strconv.Itoa(constants.DefaultPageSize)

		result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
			Method: "GET",
			Path:   path,
		})
		if err != nil {
			return nil, fmt.Errorf("listing DNS records: %w", err)
		}

		var pageRecords []cfapi.DNSRecord

		err = json.Unmarshal(result, &pageRecords)
		if err != nil {
			return nil, fmt.Errorf("parsing DNS records list: %w", err)
		}

		records = append(records, pageRecords...)

		if len(pageRecords) < constants.DefaultPageSize {
			return records, nil
		}
	}
}

// Get implements cfapi.DNSRecordsClient.Get.
func (c *DNSRecordsClient) Get(ctx context.Context, zoneID, recordID string) (*cfapi.DNSRecord, error) {
	result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method: "GET",
		Path:   "zones/" + zoneID + "/dns_records/" + recordID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting DNS record: %w", err)
	}

	return parseRecord(result)
}

// Create implements cfapi.DNSRecordsClient.Create.
func (c *DNSRecordsClient) Create(ctx context.Context, zoneID string, request *cfapi.DNSRecordRequest) (*cfapi.DNSRecord, error) {
	result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method:  "POST",
		Path:    "zones/" + zoneID + "/dns_records",
		Body:    request,
		NoCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating DNS record: %w", err)
	}

	return parseRecord(result)
}

// Update implements cfapi.DNSRecordsClient.Update.
func (c *DNSRecordsClient) Update(ctx context.Context, zoneID, recordID string, request *cfapi.DNSRecordRequest) (*cfapi.DNSRecord, error) {
	result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method:  "PUT",
		Path:    "zones/" + zoneID + "/dns_records/" + recordID,
		Body:    request,
		NoCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("updating DNS record: %w", err)
	}

	return parseRecord(result)
}

// Delete implements cfapi.DNSRecordsClient.Delete.
func (c *DNSRecordsClient) Delete(ctx context.Context, zoneID, recordID string) error {
	_, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method:  "DELETE",
		Path:    "zones/" + zoneID + "/dns_records/" + recordID,
		NoCache: true,
	})
	if err != nil {
		return fmt.Errorf("deleting DNS record: %w", err)
	}

	return nil
}

func parseRecord(result json.RawMessage) (*cfapi.DNSRecord, error) {
	var record cfapi.DNSRecord

	err := json.Unmarshal(result, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing DNS record: %w", err)
	}

	return &record, nil
}
