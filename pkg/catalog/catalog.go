package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Entry pairs a country or region code with its display label.
type Entry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// TranslateFunc maps a canonical English label to its localized form. The
// code is passed along so translators can key on either value.
type TranslateFunc func(code, defaultLabel string) string

// TranslateFuncE is the fallible variant of TranslateFunc used by BuildE.
type TranslateFuncE func(code, defaultLabel string) (string, error)

// Identity is the TranslateFunc used when no localization layer is present.
func Identity(_ string, defaultLabel string) string {
	return defaultLabel
}

// Catalog is an ordered, label-sorted list of entries with unique codes. The
// zero value is an empty catalog. Catalogs are immutable once built and safe
// for concurrent reads.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// DefaultEntries returns a copy of the embedded table in code order with the
// canonical English labels.
func DefaultEntries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

// Build constructs the catalog from the embedded table, applying translate to
// every label and sorting by the translated label. A nil translate behaves as
// Identity. Every call produces a fresh catalog; results are never cached so
// each locale gets its own ordering.
func Build(translate TranslateFunc) Catalog {
	if translate == nil {
		translate = Identity
	}
	entries := make([]Entry, len(table))
	for i, entry := range table {
		entries[i] = Entry{Code: entry.Code, Label: translate(entry.Code, entry.Label)}
	}
	return newSorted(entries)
}

// BuildE is Build for translators that can fail. The first translation error
// aborts the build; labels are never silently replaced by their defaults.
func BuildE(translate TranslateFuncE) (Catalog, error) {
	if translate == nil {
		return Build(nil), nil
	}
	entries := make([]Entry, len(table))
	for i, entry := range table {
		label, err := translate(entry.Code, entry.Label)
		if err != nil {
			return Catalog{}, fmt.Errorf("catalog: translate %s: %w", entry.Code, err)
		}
		entries[i] = Entry{Code: entry.Code, Label: label}
	}
	return newSorted(entries), nil
}

// FromEntries builds a catalog from an arbitrary entry list. Empty codes are
// skipped and duplicate codes keep their first occurrence before sorting.
func FromEntries(entries []Entry) Catalog {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Code == "" {
			continue
		}
		if _, ok := seen[entry.Code]; ok {
			continue
		}
		seen[entry.Code] = struct{}{}
		out = append(out, entry)
	}
	return newSorted(out)
}

func newSorted(entries []Entry) Catalog {
	sort.SliceStable(entries, func(i, j int) bool {
		return CompareFold(entries[i].Label, entries[j].Label) < 0
	})
	index := make(map[string]int, len(entries))
	for i, entry := range entries {
		index[entry.Code] = i
	}
	return Catalog{entries: entries, index: index}
}

// Len reports the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at position i in sorted order. It panics when i is out
// of range, like slice indexing.
func (c Catalog) At(i int) Entry {
	return c.entries[i]
}

// Entries returns a copy of the sorted entries.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Codes returns the codes in sorted (label) order.
func (c Catalog) Codes() []string {
	out := make([]string, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.Code
	}
	return out
}

// Lookup finds an entry by exact, case-sensitive code.
func (c Catalog) Lookup(code string) (Entry, bool) {
	idx, ok := c.index[code]
	if !ok {
		return Entry{}, false
	}
	return c.entries[idx], true
}

// Contains reports whether code is part of the catalog.
func (c Catalog) Contains(code string) bool {
	_, ok := c.index[code]
	return ok
}

// Label returns the label for code, or code itself when it is unknown.
func (c Catalog) Label(code string) string {
	if entry, ok := c.Lookup(code); ok {
		return entry.Label
	}
	return code
}

// Search returns entries whose label or code contains query, ignoring case.
// Label prefixes and exact code hits rank first; otherwise catalog order is
// kept. An empty query matches everything. limit <= 0 means no limit.
func (c Catalog) Search(query string, limit int) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		if limit > 0 && limit < len(c.entries) {
			return append([]Entry{}, c.entries[:limit]...)
		}
		return c.Entries()
	}

	q := strings.ToLower(query)
	matches := make([]matchedEntry, 0, 16)
	for _, entry := range c.entries {
		label := strings.ToLower(entry.Label)
		code := strings.ToLower(entry.Code)
		if !strings.Contains(label, q) && !strings.Contains(code, q) {
			continue
		}
		matches = append(matches, matchedEntry{
			entry:    entry,
			isPrefix: strings.HasPrefix(label, q) || code == q,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Entry, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.entry)
	}
	return out
}

type matchedEntry struct {
	entry    Entry
	isPrefix bool
}

// ColumnLength reports how many bytes a stored value can take. Single values
// are a bare code; multi values are a JSON array of every code, counting the
// quotes and separator per code plus the brackets.
func (c Catalog) ColumnLength(multi bool) int {
	if !multi {
		longest := 0
		for _, entry := range c.entries {
			if len(entry.Code) > longest {
				longest = len(entry.Code)
			}
		}
		return longest
	}
	length := 0
	for _, entry := range c.entries {
		length += len(entry.Code) + 3
	}
	// +2 for the brackets, -1 for the trailing comma.
	return length + 1
}

// CompareFold compares two strings byte by byte after folding ASCII letters
// to lower case, like C strcasecmp. It ignores locale on purpose so the
// ordering is identical on every host.
func CompareFold(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lowerASCII(a[i]), lowerASCII(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
