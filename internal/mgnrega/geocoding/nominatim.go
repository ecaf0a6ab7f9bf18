package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// userAgent identifies this service per the Nominatim usage policy.
const userAgent = "OurVoiceOurRights/1.0 (contact@ourvoiceourrights.in)"

// Client wraps Nominatim reverse geocoding. The public instance caps
// anonymous clients at one request per second; the limiter enforces that
// here instead of trusting callers.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Nominatim client. An empty baseURL selects the public
// instance.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Address is the subset of the Nominatim address object this service reads.
// District-like information lands in different fields depending on how
// rural the coordinates are.
type Address struct {
	County        string `json:"county"`
	Town          string `json:"town"`
	City          string `json:"city"`
	StateDistrict string `json:"state_district"`
	Village       string `json:"village"`
	Hamlet        string `json:"hamlet"`
}

// DistrictCandidate picks the most district-like field from the address.
// County and town carry the district for most of Uttar Pradesh; smaller
// places surface as village or hamlet. Empty means no candidate.
func (a *Address) DistrictCandidate() string {
	for _, v := range []string{a.County, a.Town, a.City, a.StateDistrict, a.Village, a.Hamlet} {
		if v != "" {
			return v
		}
	}
	return ""
}

type reverseResponse struct {
	Address Address `json:"address"`
}

// ReverseGeocode resolves lat/lon to address details. Failures propagate to
// the caller; there is no retry.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon string) (*Address, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	fullURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim status %d", resp.StatusCode)
	}

	var rev reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&rev); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}

	return &rev.Address, nil
}
