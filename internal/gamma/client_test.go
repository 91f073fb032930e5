package gamma

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nil), srv
}

func TestClientEventsBuildsQuery(t *testing.T) {
	var gotQuery map[string]string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","title":"A"},{"id":"2","title":"B"}]`))
	})

	events, err := c.Events(context.Background(), EventsParams{
		Limit:  100,
		Offset: 20,
		Closed: false,
		TagID:  "7",
	})
	require.NoError(t, err)
	assert.Len(t, events, 2)

	assert.Equal(t, "100", gotQuery["limit"])
	assert.Equal(t, "20", gotQuery["offset"])
	assert.Equal(t, "false", gotQuery["closed"])
	assert.Equal(t, "id", gotQuery["order"])
	assert.Equal(t, "false", gotQuery["ascending"])
	assert.Equal(t, "7", gotQuery["tag_id"])
}

func TestClientEventsOmitsEmptyTagID(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("tag_id"))
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.Events(context.Background(), EventsParams{Limit: 10})
	assert.NoError(t, err)
}

func TestClientEventsUpstreamFailure(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Events(context.Background(), EventsParams{Limit: 10})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusInternalServerError, ue.StatusCode)
}

func TestClientEventNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Event(context.Background(), "12345")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "12345", nf.MarketID)
	assert.Contains(t, nf.Error(), "12345")
}

func TestClientEventOtherStatusIsUpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Event(context.Background(), "12345")
	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf))
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusBadGateway, ue.StatusCode)
}

func TestClientEventSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"42","title":"Detail","markets":[{"id":"m1"}]}`))
	})

	ev, err := c.Event(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", ev.ID)
	assert.Len(t, ev.Markets, 1)
}

func TestClientTags(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"1","label":"Crypto","slug":"crypto","eventCount":10}]`))
	})

	tags, err := c.Tags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Crypto", tags[0].Label)
	assert.Equal(t, 10, tags[0].EventCount)
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL, time.Second, nil)

	_, err := c.Tags(context.Background())
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Zero(t, ue.StatusCode)
	assert.Error(t, ue.Unwrap())
}

func TestClientContextCancellation(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Events(ctx, EventsParams{Limit: 1})
	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
}
