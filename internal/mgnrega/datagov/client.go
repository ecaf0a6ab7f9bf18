package datagov

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/mgnrega/source"
)

const (
	// DefaultBaseURL is the data.gov.in resource API endpoint.
	DefaultBaseURL = "https://api.data.gov.in/resource"

	// FetchLimit caps a single request. MGNREGA district datasets carry at
	// most a few thousand rows per state, so one page is enough.
	FetchLimit = 5000
)

// Client is an HTTP client for the data.gov.in resource API.
type Client struct {
	resourceID string
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a data.gov.in client for one resource.
func NewClient(resourceID, apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		resourceID: resourceID,
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiResponse is the envelope data.gov.in wraps around resource rows.
// Records stay untyped because field names vary between dataset revisions;
// the transform layer sorts that out.
type apiResponse struct {
	Records []map[string]any `json:"records"`
}

// FetchRecords fetches the raw resource rows filtered to one state.
func (c *Client) FetchRecords(ctx context.Context, state string) ([]map[string]any, error) {
	filters, err := json.Marshal(map[string]string{"state": state})
	if err != nil {
		return nil, fmt.Errorf("encode filters: %w", err)
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("format", "json")
	params.Set("limit", fmt.Sprintf("%d", FetchLimit))
	params.Set("filters", string(filters))

	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, c.resourceID, params.Encode())

	start := time.Now()
	source.LogRequest("datagov", http.MethodGet, c.baseURL+"/"+c.resourceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		source.LogError("datagov", "fetch", err)
		return nil, fmt.Errorf("datagov request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("datagov status %d", resp.StatusCode)
		source.LogError("datagov", "fetch", err)
		return nil, err
	}

	var page apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		source.LogError("datagov", "decode", err)
		return nil, fmt.Errorf("decode datagov response: %w", err)
	}

	if page.Records == nil {
		err := fmt.Errorf("unexpected datagov response: no records field")
		source.LogError("datagov", "decode", err)
		return nil, err
	}

	source.LogResponse("datagov", resp.StatusCode, time.Since(start), len(page.Records))
	return page.Records, nil
}
