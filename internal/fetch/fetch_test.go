// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/prereq-graph/internal/httputil"
	"github.com/pdiddy/prereq-graph/pkg/types"
)

const page = `<a name="cse142"><p><b>CSE 142</b><br>Intro.<br><i>x</i></p></a>`

func init() {
	httputil.RetryBaseDelay = time.Millisecond
}

func TestDownload(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(page))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "catalog", "cse.html")
	cfg := types.FetchConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "prereq-graph/test"},
		URL:        ts.URL,
	}

	var log bytes.Buffer
	n, err := Download(context.Background(), ts.Client(), cfg, dest, &log)
	require.NoError(t, err)

	assert.Equal(t, int64(len(page)), n)
	assert.Equal(t, "prereq-graph/test", gotUA)
	assert.Contains(t, log.String(), "saved "+dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, page, string(data))
}

func TestDownload_RetriesThrottle(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(page))
	}))
	defer ts.Close()

	dest := filepath.Join(t.TempDir(), "cse.html")
	_, err := Download(context.Background(), ts.Client(), types.FetchConfig{URL: ts.URL}, dest, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDownload_HTTPErrorLeavesNoFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "cse.html")
	_, err := Download(context.Background(), ts.Client(), types.FetchConfig{URL: ts.URL}, dest, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
