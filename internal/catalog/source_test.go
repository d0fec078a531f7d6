package catalog_test

import (
	"companydir/internal/catalog"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureRecords = []catalog.Record{
	{
		Name:        "Café Nour",
		Description: "Torréfaction artisanale et salon de thé",
		City:        "Alger Centre",
		Wilaya:      "Alger",
		Category:    "Food",
		Type:        "SARL",
		Website:     "https://cafenour.example",
	},
	{
		Name:        "Atelier Béjaïa",
		Description: "Poterie et céramique",
		City:        "Béjaïa",
		Wilaya:      "Béjaïa",
		Category:    "Craft",
		Type:        "EURL",
	},
	{
		Name:        "Zeta Logistics",
		Description: "Transport de marchandises",
		City:        "Oran",
		Wilaya:      "Oran",
		Category:    "Logistics",
		Type:        "2024",
	},
}

func TestFileSource_Load(t *testing.T) {
	t.Run("reads json", func(t *testing.T) {
		got, err := catalog.FileSource{Path: filepath.Join("testdata", "companies.json")}.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fixtureRecords, got)
	})

	t.Run("reads yaml", func(t *testing.T) {
		got, err := catalog.FileSource{Path: filepath.Join("testdata", "companies.yaml")}.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fixtureRecords, got)
	})

	t.Run("missing file wraps ErrLoad", func(t *testing.T) {
		_, err := catalog.FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.Load(context.Background())

		assert.ErrorIs(t, err, catalog.ErrLoad)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file wraps ErrLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

		_, err := catalog.FileSource{Path: path}.Load(context.Background())

		assert.ErrorIs(t, err, catalog.ErrLoad)
		assert.Contains(t, err.Error(), path)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := catalog.FileSource{Path: filepath.Join("testdata", "companies.json")}.Load(ctx)

		assert.ErrorIs(t, err, catalog.ErrLoad)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPSource_Load(t *testing.T) {
	t.Run("fetches json without cache", func(t *testing.T) {
		var cacheControl string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cacheControl = r.Header.Get("Cache-Control")
			w.Header().Set("Content-Type", "application/json")
			http.ServeFile(w, r, filepath.Join("testdata", "companies.json"))
		}))
		t.Cleanup(srv.Close)

		got, err := catalog.HTTPSource{URL: srv.URL}.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fixtureRecords, got)
		assert.Equal(t, "no-store", cacheControl)
	})

	t.Run("reads yaml when the server says so", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join("testdata", "companies.yaml"))
		require.NoError(t, err)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(data)
		}))
		t.Cleanup(srv.Close)

		got, err := catalog.HTTPSource{URL: srv.URL, Client: srv.Client()}.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, fixtureRecords, got)
	})

	t.Run("non-2xx status wraps ErrLoad", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(srv.Close)

		_, err := catalog.HTTPSource{URL: srv.URL}.Load(context.Background())

		assert.ErrorIs(t, err, catalog.ErrLoad)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("malformed body wraps ErrLoad", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		}))
		t.Cleanup(srv.Close)

		_, err := catalog.HTTPSource{URL: srv.URL}.Load(context.Background())

		assert.ErrorIs(t, err, catalog.ErrLoad)
	})

	t.Run("unreachable server wraps ErrLoad", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := catalog.HTTPSource{URL: url}.Load(context.Background())

		assert.ErrorIs(t, err, catalog.ErrLoad)
	})
}

func TestOpenSource(t *testing.T) {
	tests := []struct {
		location string
		want     catalog.Source
	}{
		{"https://example.com/companies.json", catalog.HTTPSource{URL: "https://example.com/companies.json"}},
		{"http://localhost:8080/data", catalog.HTTPSource{URL: "http://localhost:8080/data"}},
		{"sqlite:/var/lib/companies", catalog.SQLiteSource{Path: "/var/lib/companies"}},
		{"/data/companies.db", catalog.SQLiteSource{Path: "/data/companies.db"}},
		{"companies.SQLITE", catalog.SQLiteSource{Path: "companies.SQLITE"}},
		{"/data/companies.json", catalog.FileSource{Path: "/data/companies.json"}},
		{"companies.yaml", catalog.FileSource{Path: "companies.yaml"}},
	}

	for _, tc := range tests {
		t.Run(tc.location, func(t *testing.T) {
			assert.Equal(t, tc.want, catalog.OpenSource(tc.location))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("builds catalog from source", func(t *testing.T) {
		cat, err := catalog.Load(context.Background(), catalog.FileSource{Path: filepath.Join("testdata", "companies.json")})

		require.NoError(t, err)
		assert.Equal(t, 3, cat.Len())
		assert.Equal(t, []string{"Craft", "Food", "Logistics"}, cat.Categories())
		assert.Equal(t, []string{"Alger", "Béjaïa", "Oran"}, cat.Wilayas())
	})

	t.Run("propagates source errors", func(t *testing.T) {
		cat, err := catalog.Load(context.Background(), catalog.FileSource{Path: filepath.Join(t.TempDir(), "none.json")})

		assert.ErrorIs(t, err, catalog.ErrLoad)
		assert.Nil(t, cat)
	})
}
