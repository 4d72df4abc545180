package api_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.BookeroConfig {
	return config.BookeroConfig{
		BaseURL:   baseURL,
		BookeroID: "SnLKupjwDaPO",
		Lang:      "pl",
		People:    1,
		UserAgent: "slot-notifier-test",
	}
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *url.Values) {
	t.Helper()
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestServiceURL_Query(t *testing.T) {
	c := NewClient(testConfig("https://plugin.bookero.pl/plugin-api/v2/getMonth"))

	raw, err := c.ServiceURL(55039)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/plugin-api/v2/getMonth", u.Path)

	q := u.Query()
	assert.Equal(t, "55039", q.Get("service"))
	assert.Equal(t, "SnLKupjwDaPO", q.Get("bookero_id"))
	assert.Equal(t, "pl", q.Get("lang"))
	assert.Equal(t, "0", q.Get("periodicity_id"))
	assert.Equal(t, "1", q.Get("people"))
	assert.Equal(t, "0", q.Get("plus_months"))
	assert.Equal(t, `{"data":{"parameters":{}}}`, q.Get("plugin_comment"))
	assert.True(t, q.Has("phone"))
	assert.True(t, q.Has("email"))
}

func TestFirstFreeTerm(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr bool
	}{
		{name: "date", status: http.StatusOK, body: `{"first_free_term":"2024-05-10","days":[]}`, want: "2024-05-10"},
		{name: "null", status: http.StatusOK, body: `{"first_free_term":null}`},
		{name: "false", status: http.StatusOK, body: `{"first_free_term":false}`},
		{name: "absent", status: http.StatusOK, body: `{"result":1}`},
		{name: "empty string", status: http.StatusOK, body: `{"first_free_term":""}`},
		{name: "unexpected type", status: http.StatusOK, body: `{"first_free_term":{"a":1}}`, wantErr: true},
		{name: "null body", status: http.StatusOK, body: `null`, wantErr: true},
		{name: "array body", status: http.StatusOK, body: `[]`, wantErr: true},
		{name: "empty body", status: http.StatusOK, body: ``, wantErr: true},
		{name: "malformed json", status: http.StatusOK, body: `{"first_free_term":`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, query := newServer(t, tt.status, tt.body)
			c := NewClient(testConfig(srv.URL))

			got, err := c.FirstFreeTerm(context.Background(), 37752)
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "37752", query.Get("service"))
		})
	}
}

func TestFirstFreeTerm_TransportError(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{}`)
	srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.FirstFreeTerm(context.Background(), 1)
	require.Error(t, err)
}

func TestFirstFreeTerm_InvalidBaseURL(t *testing.T) {
	c := NewClient(testConfig("://bad"))
	_, err := c.FirstFreeTerm(context.Background(), 1)
	require.Error(t, err)
}
