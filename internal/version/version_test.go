package version

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/ananya/practiq/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name":%q}`, tag)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheckUpdateAvailable(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), "v1.2.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckNormalizesBareVersions(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), "1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckDevBuildNeverUpdates(t *testing.T) {
	server := releaseServer(t, "v9.9.9")
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), "(devel)")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
	assert.Equal(t, "v9.9.9", result.LatestVersion)
}

func TestCheckInvalidCurrentVersion(t *testing.T) {
	server := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), "not-a-version")
	assert.Error(t, err)
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), "v1.0.0")
	assert.Error(t, err)
}
