// Package identity resolves the machine's network egress identity: the
// public IP as seen from outside, and coarse IP-based geolocation.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultIPEndpoint echoes the caller's public address as JSON.
	DefaultIPEndpoint = "https://api.ipify.org?format=json"
	// DefaultGeoEndpoint resolves an IP to coarse geolocation; the IP is
	// appended as a path segment.
	DefaultGeoEndpoint = "http://ip-api.com/json"
)

// Geo is the coarse location attributed to a public IP.
type Geo struct {
	City    string
	Region  string
	Country string
	Lat     float64
	Lon     float64
	ISP     string
}

// Report is the (possibly partial) result of an identity query. Geo is
// nil whenever the geolocation stage did not run or failed.
type Report struct {
	PublicIP string
	Geo      *Geo
}

// Options configure a Client. Zero values pick the defaults.
type Options struct {
	IPEndpoint  string
	GeoEndpoint string
	HTTPClient  *http.Client
	Logger      *zap.Logger
}

// Client performs the two-stage identity lookup. Both stages are single
// attempts with no retry; only the transport timeout bounds them.
type Client struct {
	ipEndpoint  string
	geoEndpoint string
	http        *http.Client
	log         *zap.Logger
}

// New builds an identity client.
func New(opts Options) *Client {
	c := &Client{
		ipEndpoint:  opts.IPEndpoint,
		geoEndpoint: opts.GeoEndpoint,
		http:        opts.HTTPClient,
		log:         opts.Logger,
	}
	if c.ipEndpoint == "" {
		c.ipEndpoint = DefaultIPEndpoint
	}
	if c.geoEndpoint == "" {
		c.geoEndpoint = DefaultGeoEndpoint
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Query resolves the public IP, then feeds it to the geolocation lookup.
// The second stage needs the first stage's output as input, so an IP
// resolution failure returns immediately with an empty report. A
// geolocation failure still returns the resolved IP. The returned error
// describes whichever stage failed.
func (c *Client) Query(ctx context.Context) (Report, error) {
	ip, err := c.publicIP(ctx)
	if err != nil {
		c.log.Warn("public ip lookup failed", zap.Error(err))
		return Report{}, fmt.Errorf("resolve public ip: %w", err)
	}

	geo, err := c.locate(ctx, ip)
	if err != nil {
		c.log.Warn("geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return Report{PublicIP: ip}, fmt.Errorf("locate %s: %w", ip, err)
	}

	return Report{PublicIP: ip, Geo: geo}, nil
}

func (c *Client) publicIP(ctx context.Context) (string, error) {
	var body struct {
		IP string `json:"ip"`
	}
	if err := c.getJSON(ctx, c.ipEndpoint, &body); err != nil {
		return "", err
	}
	ip := strings.TrimSpace(body.IP)
	if ip == "" {
		return "", fmt.Errorf("echo endpoint returned no address")
	}
	return ip, nil
}

func (c *Client) locate(ctx context.Context, ip string) (*Geo, error) {
	var body struct {
		Status     string  `json:"status"`
		Message    string  `json:"message"`
		City       string  `json:"city"`
		RegionName string  `json:"regionName"`
		Country    string  `json:"country"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
		ISP        string  `json:"isp"`
	}

	endpoint := strings.TrimRight(c.geoEndpoint, "/") + "/" + url.PathEscape(ip)
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("lookup rejected: %s", firstNonEmpty(body.Message, "unknown reason"))
	}
	return &Geo{
		City:    body.City,
		Region:  body.RegionName,
		Country: body.Country,
		Lat:     body.Lat,
		Lon:     body.Lon,
		ISP:     body.ISP,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
