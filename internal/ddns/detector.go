package ddns

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"

	"github.com/esaiascronelius/cloudflare-ddns/internal/constants"
)

// Detector resolves the current public address of this host.
type Detector interface {
	Detect(ctx context.Context) (netip.Addr, error)
}

// HTTPDetector queries a plain-text "what is my IP" endpoint.
type HTTPDetector struct {
	url        string
	httpClient *http.Client
}

// NewHTTPDetector creates a detector for the given endpoint. An empty URL
// uses the default IPv4 endpoint.
func NewHTTPDetector(url string) *HTTPDetector {
	if url == "" {
		url = constants.DefaultIPv4DetectorURL
	}

	return &HTTPDetector{
		url: url,
		httpClient: &http.Client{
			Timeout: constants.DetectorTimeout,
		},
	}
}

// Detect implements Detector.Detect.
func (d *HTTPDetector) Detect(ctx context.Context) (netip.Addr, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.url, nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("creating detection request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("detecting public IP: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return netip.Addr{}, fmt.Errorf("%w: status %d from %s", ErrDetectionFailed, resp.StatusCode, d.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("reading detection response: %w", err)
	}

	addr, err := netip.ParseAddr(strings.TrimSpace(string(body)))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("parsing detected address: %w", err)
	}

	return addr, nil
}
