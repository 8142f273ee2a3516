package rental

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StationDirectory defines the read operations the rental API exposes.
// This interface is implemented by *Client and can be used for testing.
type StationDirectory interface {
	ListStations(ctx context.Context) ([]Station, error)
	GetStation(ctx context.Context, stationID string) (*Station, error)
	SearchStations(ctx context.Context, name string) ([]Station, error)
	GetBooking(ctx context.Context, stationID, bookingID string) (*Booking, error)
}

// Ensure Client implements StationDirectory at compile time.
var _ StationDirectory = (*Client)(nil)

// Client talks to the rental station HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the hosted mock API the dashboard targets when no
	// override is configured.
	DefaultBaseURL = "https://605c94c36d85de00170da8b4.mockapi.io"

	defaultUserAgent = "stationcal/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value targets
// DefaultBaseURL; a bare host:port gets an http scheme prepended.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListStations retrieves every station with its bookings.
func (c *Client) ListStations(ctx context.Context) ([]Station, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Station
	if err := c.do(ctx, &url.URL{Path: "/stations"}, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetStation retrieves a single station by id. A missing station surfaces
// as an *HTTPError with status 404.
func (c *Client) GetStation(ctx context.Context, stationID string) (*Station, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Station
	rel := &url.URL{Path: "/stations/" + stationID}
	if err := c.do(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SearchStations retrieves stations whose name matches the query. The match
// semantics are server-defined; an empty result is not an error.
func (c *Client) SearchStations(ctx context.Context, name string) ([]Station, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("name", strings.TrimSpace(name))
	rel := &url.URL{Path: "/stations", RawQuery: values.Encode()}
	var payload []Station
	if err := c.do(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetBooking retrieves a booking scoped to its station.
func (c *Client) GetBooking(ctx context.Context, stationID, bookingID string) (*Booking, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Booking
	rel := &url.URL{Path: "/stations/" + stationID + "/bookings/" + bookingID}
	if err := c.do(ctx, rel, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// do issues a single GET and hands the response to normalize. The client
// adds no interpretation of its own: callers receive exactly what the
// normalizer produced.
func (c *Client) do(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return normalize(resp, dest)
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
