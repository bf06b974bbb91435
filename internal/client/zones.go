package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
	"github.com/esaiascronelius/cloudflare-ddns/pkg/cfapi"
)

// ZonesClient implements cfapi.ZonesClient.
type ZonesClient struct {
	dispatcher *Client
}

// NewZonesClient creates a new zones client.
func NewZonesClient(dispatcher *Client) *ZonesClient {
	return &ZonesClient{
		dispatcher: dispatcher,
	}
}

// List implements cfapi.ZonesClient.List. Pages are fetched until a short
// page is returned; each page is cached under its own path.
func (c *ZonesClient) List(ctx context.Context) ([]cfapi.Zone, error) {
	var zones []cfapi.Zone

	for page := 1; ; page++ {
		path := "zones?page=" + strconv.Itoa(page) + "&per_page=" + strconv.Itoa(constants.DefaultPageSize)

		result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
			Method: "GET",
			Path:   path,
		})
		if err != nil {
			return nil, fmt.Errorf("listing zones: %w", err)
		}

		var pageZones []cfapi.Zone

		err = json.Unmarshal(result, &pageZones)
		if err != nil {
			return nil, fmt.Errorf("parsing zones list: %w", err)
		}

		zones = append(zones, pageZones...)

		if len(pageZones) < constants.DefaultPageSize {
			return zones, nil
		}
	}
}

// Get implements cfapi.ZonesClient.Get.
func (c *ZonesClient) Get(ctx context.Context, zoneID string) (*cfapi.Zone, error) {
	result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method: "GET",
		Path:   "zones/" + zoneID,
	})
	if err != nil {
		return nil, fmt.Errorf("getting zone: %w", err)
	}

	var zone cfapi.Zone

	err = json.Unmarshal(result, &zone)
	if err != nil {
		return nil, fmt.Errorf("parsing zone: %w", err)
	}

	return &zone, nil
}

// FindByName implements cfapi.ZonesClient.FindByName. Returns
// cfapi.ErrZoneNotFound when no zone matches the exact name.
func (c *ZonesClient) FindByName(ctx context.Context, name string) (*cfapi.Zone, error) {
	result, err := c.dispatcher.Dispatch(ctx, &cfapi.Request{
		Method: "GET",
		Path:   "zones?name=" + url.QueryEscape(name),
	})
	if err != nil {
		return nil, fmt.Errorf("finding zone: %w", err)
	}

	var zones []cfapi.Zone

	err = json.Unmarshal(result, &zones)
	if err != nil {
		return nil, fmt.Errorf("parsing zones list: %w", err)
	}

	if len(zones) == 0 {
		return nil, fmt.Errorf("%w: %s", cfapi.ErrZoneNotFound, name)
	}

	return &zones[0], nil
}
