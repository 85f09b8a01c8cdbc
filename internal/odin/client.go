package odin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/astrabot/odin-insight/internal/model"
)

// Client is the interface for fetching account activity from the platform API.
// It exists so services can be tested against a mock without network calls.
type Client interface {
	FetchAllActivities(ctx context.Context, accountID string) ([]model.Activity, error)
}

// ActivityClient fetches paginated trade activity from the platform API.
// Pages are requested sequentially, newest first, up to a hard record cap.
type ActivityClient struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
	cap        int
}

// NewActivityClient creates an ActivityClient for the given API base URL.
// pageSize is the fixed per-page limit and cap is the maximum number of
// records fetched across all pages.
func NewActivityClient(baseURL string, pageSize, cap int) *ActivityClient {
	return &ActivityClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		pageSize:   pageSize,
		cap:        cap,
	}
}

// FetchAllActivities retrieves the account's activity history, newest first,
// across however many pages are needed up to the record cap.
//
// Paging stops early when a page returns fewer records than the page size
// (end of data) or when the cumulative cap is reached. Failed pages are never
// retried: any network or decode failure fails the whole operation, which
// callers treat as "no data" rather than a partial-failure signal. The
// returned sequence, once truncated to the cap, is a prefix of the true
// newest-first history; no consistency snapshot is taken across pages.
func (c *ActivityClient) FetchAllActivities(ctx context.Context, accountID string) ([]model.Activity, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	var activities []model.Activity

	for page := 1; len(activities) < c.cap; page++ {
		resp, err := c.fetchPage(ctx, accountID, page)
		if err != nil {
			return nil, err
		}

		activities = append(activities, resp.Data...)

		if len(resp.Data) < c.pageSize {
			break
		}
	}

	if len(activities) > c.cap {
		activities = activities[:c.cap]
	}

	return activities, nil
}

// fetchPage requests a single page of the activity feed.
func (c *ActivityClient) fetchPage(ctx context.Context, accountID string, page int) (ActivityResponse, error) {
	endpoint := fmt.Sprintf(
		"%s/user/%s/activity?page=%d&limit=%d&sort=%s",
		c.baseURL,
		url.PathEscape(accountID),
		page,
		c.pageSize,
		url.QueryEscape("time:desc"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ActivityResponse{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ActivityResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ActivityResponse{}, fmt.Errorf("activity request failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ActivityResponse{}, err
	}

	var response ActivityResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return ActivityResponse{}, fmt.Errorf("failed to decode activity page %d: %w", page, err)
	}

	return response, nil
}
