package favorites

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grociko/grociko-backend/internal/catalog"
)

// Entry is one liked product. AddedAt is set at insertion and never updated,
// even if the product is toggled off and back on later.
type Entry struct {
	catalog.Product
	AddedAt time.Time `json:"added_at"`
}

// State is one immutable favorites snapshot; entries keep add order.
type State struct {
	Favorites      []Entry `json:"favorites"`
	TotalFavorites int     `json:"total_favorites"`
}

// Summary is the aggregate view the favorites screen renders.
type Summary struct {
	Total      int      `json:"total"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Recent     []Entry  `json:"recent"`
	IsEmpty    bool     `json:"is_empty"`
}

// DefaultRecentLimit bounds Recent when the caller does not ask for one.
const DefaultRecentLimit = 5

const summaryRecentLimit = 3

// Engine owns the deduplicated favorites collection. Same discipline as the
// cart engine: mutations swap the snapshot under the write lock, readers get
// copies.
type Engine struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewEngine returns an empty favorites collection.
func NewEngine() *Engine {
	return &Engine{
		entries: []Entry{},
		now:     time.Now,
	}
}

// Toggle removes the product when present, adds it when absent.
func (e *Engine) Toggle(product catalog.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.indexOf(product.ID) >= 0 {
		e.entries = removeEntry(e.entries, product.ID)
		return
	}
	e.entries = appendEntry(e.entries, product, e.now().UTC())
}

// Add appends the product with the current timestamp; adding a product that
// is already a favorite is a no-op.
func (e *Engine) Add(product catalog.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.indexOf(product.ID) >= 0 {
		return
	}
	e.entries = appendEntry(e.entries, product, e.now().UTC())
}

// Remove drops the favorite if present.
func (e *Engine) Remove(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = removeEntry(e.entries, productID)
}

// Clear resets the collection.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = []Entry{}
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entries := make([]Entry, len(e.entries))
	copy(entries, e.entries)
	return State{
		Favorites:      entries,
		TotalFavorites: len(entries),
	}
}

// IsFavorite reports whether the product is currently liked.
func (e *Engine) IsFavorite(productID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indexOf(productID) >= 0
}

// ByID returns the favorite entry for the product, or nil when absent.
func (e *Engine) ByID(productID string) *Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if idx := e.indexOf(productID); idx >= 0 {
		entry := e.entries[idx]
		return &entry
	}
	return nil
}

// ByCategory returns favorites whose category matches, case-insensitively.
func (e *Engine) ByCategory(category string) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	target := strings.ToLower(strings.TrimSpace(category))
	matches := make([]Entry, 0)
	for _, entry := range e.entries {
		if strings.ToLower(entry.Category) == target {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Recent returns up to limit favorites ordered by AddedAt descending. The
// underlying add order is left untouched.
func (e *Engine) Recent(limit int) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return recentLocked(e.entries, limit)
}

// Search matches the query against name, category and brand, ignoring case.
// A blank query returns the whole collection in add order.
func (e *Engine) Search(query string) []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		entries := make([]Entry, len(e.entries))
		copy(entries, e.entries)
		return entries
	}

	matches := make([]Entry, 0)
	for _, entry := range e.entries {
		if strings.Contains(strings.ToLower(entry.Name), term) ||
			strings.Contains(strings.ToLower(entry.Category), term) ||
			strings.Contains(strings.ToLower(entry.Brand), term) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Summary aggregates the collection: unique non-empty categories and brands
// in first-seen order plus the three most recent additions.
func (e *Engine) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Summary{
		Total:      len(e.entries),
		Categories: uniqueValues(e.entries, func(entry Entry) string { return entry.Category }),
		Brands:     uniqueValues(e.entries, func(entry Entry) string { return entry.Brand }),
		Recent:     recentLocked(e.entries, summaryRecentLimit),
		IsEmpty:    len(e.entries) == 0,
	}
}

func (e *Engine) indexOf(productID string) int {
	for i, entry := range e.entries {
		if entry.ID == productID {
			return i
		}
	}
	return -1
}

func appendEntry(entries []Entry, product catalog.Product, addedAt time.Time) []Entry {
	next := make([]Entry, len(entries), len(entries)+1)
	copy(next, entries)
	return append(next, Entry{Product: product, AddedAt: addedAt})
}

func removeEntry(entries []Entry, productID string) []Entry {
	next := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID == productID {
			continue
		}
		next = append(next, entry)
	}
	return next
}

func recentLocked(entries []Entry, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AddedAt.After(sorted[j].AddedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func uniqueValues(entries []Entry, field func(Entry) string) []string {
	seen := map[string]bool{}
	values := make([]string, 0)
	for _, entry := range entries {
		value := field(entry)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values
}
