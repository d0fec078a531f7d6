package catalog

import (
	"fmt"
	"strings"
)

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByWilaya   SortKey = "wilaya"
	SortByCity     SortKey = "city"
	SortByType     SortKey = "type"
)

// SortKeys lists the keys in the order they are offered to users.
var SortKeys = []SortKey{SortByName, SortByCategory, SortByWilaya, SortByCity, SortByType}

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByCategory, SortByWilaya, SortByCity, SortByType:
		return true
	}
	return false
}

type SortDir string

const (
	Ascending  SortDir = "asc"
	Descending SortDir = "desc"
)

func (d SortDir) Valid() bool {
	return d == Ascending || d == Descending
}

type Sort struct {
	Key SortKey
	Dir SortDir
}

var DefaultSort = Sort{Key: SortByName, Dir: Ascending}

// String renders the sort as "<key>-<dir>", the form ParseSort reads.
func (s Sort) String() string {
	return string(s.Key) + "-" + string(s.Dir)
}

// resolved swaps unknown keys for name and unknown directions for asc.
func (s Sort) resolved() Sort {
	if !s.Key.Valid() {
		s.Key = SortByName
	}
	if !s.Dir.Valid() {
		s.Dir = Ascending
	}
	return s
}

// ParseSort reads "<key>-<dir>", e.g. "city-desc". A bare key sorts
// ascending and the empty string is DefaultSort.
func ParseSort(s string) (Sort, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultSort, nil
	}

	key, dir, found := strings.Cut(s, "-")
	sort := Sort{Key: SortKey(key), Dir: Ascending}
	if found {
		sort.Dir = SortDir(dir)
	}

	if !sort.Key.Valid() || !sort.Dir.Valid() {
		return Sort{}, fmt.Errorf("%w: %q (want <name|category|wilaya|city|type>-<asc|desc>)", ErrInvalidSort, s)
	}
	return sort, nil
}

// SortOptions returns every key/direction pair, ascending first.
func SortOptions() []Sort {
	opts := make([]Sort, 0, len(SortKeys)*2)
	for _, k := range SortKeys {
		opts = append(opts, Sort{Key: k, Dir: Ascending}, Sort{Key: k, Dir: Descending})
	}
	return opts
}

// Query is what the user asked for: free text, the two exact-match
// selectors (empty means any) and a sort order.
type Query struct {
	Text     string
	Category string
	Wilaya   string
	Sort     Sort
}

func DefaultQuery() Query {
	return Query{Sort: DefaultSort}
}
