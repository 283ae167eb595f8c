package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// WikiSource reads the OSRS wiki real-time prices "latest" endpoint.
// See https://prices.runescape.wiki/api/v1/osrs/latest
type WikiSource struct {
	URL       string
	UserAgent string
	Client    *http.Client
}

// NewWikiSource creates a wiki prices client. The wiki requires a descriptive User-Agent.
func NewWikiSource(url, userAgent string) *WikiSource {
	return &WikiSource{
		URL:       url,
		UserAgent: userAgent,
		Client: &http.Client{
			Timeout: DefaultHTTPTimeout,
		},
	}
}

type latestResponse struct {
	Data map[string]latestEntry `json:"data"`
}

type latestEntry struct {
	High *int `json:"high"`
	Low  *int `json:"low"`
}

// price is the midpoint of the last instant-buy and instant-sell prices,
// or whichever one exists
func (e latestEntry) price() (int, bool) {
	switch {
	case e.High != nil && e.Low != nil:
		return (*e.High + *e.Low) / 2, true
	case e.High != nil:
		return *e.High, true
	case e.Low != nil:
		return *e.Low, true
	default:
		return 0, false
	}
}

func (s *WikiSource) FetchPrices(ctx context.Context, items []domain.ItemID) (domain.PriceTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPriceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrPriceUnavailable, resp.StatusCode, string(body))
	}

	var latest latestResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes)).Decode(&latest); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrPriceUnavailable, err)
	}

	out := make(domain.PriceTable, len(items))
	for _, id := range items {
		entry, ok := latest.Data[strconv.Itoa(int(id))]
		if !ok {
			continue
		}
		if p, ok := entry.price(); ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *WikiSource) Name() string {
	return SourceNameWiki
}
