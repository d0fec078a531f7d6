package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source yields the records a Catalog is built from.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

// maxBodySize caps how much of an HTTP response is read.
const maxBodySize = 32 << 20

// OpenSource picks a Source for location: http(s) URLs are fetched,
// "sqlite:" locations and .db/.sqlite/.sqlite3 files are read as SQLite
// databases, anything else is a JSON or YAML file.
func OpenSource(location string) Source {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return HTTPSource{URL: location}
	case strings.HasPrefix(location, "sqlite:"):
		return SQLiteSource{Path: strings.TrimPrefix(location, "sqlite:")}
	}

	switch strings.ToLower(filepath.Ext(location)) {
	case ".db", ".sqlite", ".sqlite3":
		return SQLiteSource{Path: location}
	}
	return FileSource{Path: location}
}

// Load reads all records from src and builds a Catalog from them.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(records), nil
}

// FileSource reads a list of records from a .json, .yaml or .yml file.
// Files with another extension are read as JSON.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrLoad, s.Path, err)
	}

	var records []Record
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		records, err = DecodeYAML(data)
	default:
		records, err = DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", ErrLoad, s.Path, err)
	}
	return records, nil
}

// DecodeJSON reads a JSON array of records.
func DecodeJSON(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DecodeYAML reads a YAML sequence of records. An empty document is an
// empty list.
func DecodeYAML(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// HTTPSource fetches the records from a URL, bypassing caches. YAML is
// expected when the response says so, JSON otherwise.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Load(ctx context.Context) ([]Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	req.Header.Set("Cache-Control", "no-store")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrLoad, s.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrLoad, s.URL, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body of %s: %w", ErrLoad, s.URL, err)
	}

	var records []Record
	if strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		records, err = DecodeYAML(body)
	} else {
		records, err = DecodeJSON(body)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrLoad, s.URL, err)
	}
	return records, nil
}
