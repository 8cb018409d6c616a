package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportStampsHeaders(t *testing.T) {
	var gotUA, gotID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotID = r.Header.Get(HeaderRequestID)
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second, "moviemood/test")
	req, err := NewGetRequest(context.Background(), srv.URL)
	require.NoError(t, err)
	sentID := req.Header.Get(HeaderRequestID)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "moviemood/test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, sentID, gotID)
	_, err = uuid.Parse(gotID)
	assert.NoError(t, err)
}

func TestTransportAddsMissingRequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(HeaderRequestID)
	}))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := NewDefaultHTTPClient().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, gotID)
	assert.Empty(t, req.Header.Get(HeaderRequestID), "caller request must not be mutated")
}

func TestTimeoutIsApplied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewHTTPClient(20*time.Millisecond, "")
	_, err := client.Get(srv.URL)
	assert.Error(t, err)
}

func TestNilRequest(t *testing.T) {
	_, err := (&Transport{}).RoundTrip(nil)
	assert.Error(t, err)
}
