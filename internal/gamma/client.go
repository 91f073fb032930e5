package gamma

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bazarkua/polydebate/internal/logger"
)

// DefaultBaseURL is the public Gamma API endpoint.
const DefaultBaseURL = "https://gamma-api.polymarket.com"

// DefaultTimeout bounds every request; there is no retry policy.
const DefaultTimeout = 10 * time.Second

// EventsParams are the query parameters for the events listing. Results are
// always ordered by id descending; tag filtering is the only server-side
// filter the API offers.
type EventsParams struct {
	Limit  int
	Offset int
	Closed bool
	TagID  string
}

// Client is a thin GET wrapper over the Gamma API. It holds one reusable
// http.Client and performs no caching of its own.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, l logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

// Events fetches a page of events from GET /events.
func (c *Client) Events(ctx context.Context, p EventsParams) ([]Event, error) {
	u, err := url.Parse(c.baseURL + "/events")
	if err != nil {
		return nil, &UpstreamError{Op: "list events", Err: err}
	}
	q := u.Query()
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	q.Set("closed", strconv.FormatBool(p.Closed))
	q.Set("order", "id")
	q.Set("ascending", "false")
	if p.TagID != "" {
		q.Set("tag_id", p.TagID)
	}
	u.RawQuery = q.Encode()

	var events []Event
	if err := c.getJSON(ctx, "list events", u.String(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Event fetches a single event from GET /events/{id}. A 404 maps to
// NotFoundError carrying the requested id.
func (c *Client) Event(ctx context.Context, id string) (*Event, error) {
	var event Event
	err := c.getJSON(ctx, "get event", c.baseURL+"/events/"+url.PathEscape(id), &event)
	if err != nil {
		var ue *UpstreamError
		if errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{MarketID: id}
		}
		return nil, err
	}
	return &event, nil
}

// Tags fetches the full tag list from GET /tags.
func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := c.getJSON(ctx, "list tags", c.baseURL+"/tags", &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) getJSON(ctx context.Context, op, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("gamma request", logger.Fields{
		"op":          op,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &UpstreamError{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	return nil
}
