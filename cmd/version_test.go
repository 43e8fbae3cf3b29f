package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withReleaseServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	old := releasesURL
	releasesURL = server.URL
	t.Cleanup(func() { releasesURL = old })
}

func TestLatestRelease(t *testing.T) {
	withReleaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		w.Write([]byte(`{"tag_name": "v1.4.0"}`))
	})

	tag, err := latestRelease(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", tag)
}

func TestLatestRelease_HTTPError(t *testing.T) {
	withReleaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := latestRelease(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestLatestRelease_BadTag(t *testing.T) {
	withReleaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name": "nightly"}`))
	})

	_, err := latestRelease(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid version")
}

func TestLatestRelease_BadJSON(t *testing.T) {
	withReleaseServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{`))
	})

	_, err := latestRelease(context.Background())
	require.Error(t, err)
}
