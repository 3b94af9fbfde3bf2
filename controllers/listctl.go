package controllers

import (
	"maps"
	"sync"
	"time"
)

// Page is one fetched page of a resource list.
type Page[T any] struct {
	Items      []T
	Total      int64
	TotalPages int
}

// FetchFunc loads one page with the active filters applied.
type FetchFunc[T any] func(page, pageSize int, filters map[string]string) (Page[T], error)

// FetchAllFunc loads the full set in one call, bypassing pagination. Used by
// the pending tabs.
type FetchAllFunc[T any] func(filters map[string]string) ([]T, error)

// ListOptions configure a List controller.
type ListOptions struct {
	PageSize      int
	DebounceDelay time.Duration
	MinSearchLen  int
	Notifier      Notifier
}

// List is the paginated list controller shared by every resource screen:
// pagination and filter state, debounced search, reload on every state change,
// and notification-based error reporting. One instance per screen,
// parameterized by the resource's fetch function.
type List[T any] struct {
	mu sync.Mutex

	fetch         FetchFunc[T]
	fetchAll      FetchAllFunc[T]
	notifier      Notifier
	pageSize      int
	debounceDelay time.Duration
	minSearchLen  int

	page       int
	filters    map[string]string
	items      []T
	total      int64
	totalPages int
	loading    bool
	allMode    bool

	// seq tags each fetch; responses that are no longer the most recent
	// in-flight request for this list are discarded instead of overwriting
	// fresher state.
	seq         uint64
	searchTimer *time.Timer
}

// NewList builds a controller for a paginated resource.
func NewList[T any](fetch FetchFunc[T], opts ListOptions) *List[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = 50
	}
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = 300 * time.Millisecond
	}
	if opts.MinSearchLen <= 0 {
		opts.MinSearchLen = 3
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{}
	}
	return &List[T]{
		fetch:         fetch,
		notifier:      opts.Notifier,
		pageSize:      opts.PageSize,
		debounceDelay: opts.DebounceDelay,
		minSearchLen:  opts.MinSearchLen,
		page:          1,
		filters:       make(map[string]string),
	}
}

// SetFetchAll registers the unpaginated fetch used while in all mode.
func (l *List[T]) SetFetchAll(fetchAll FetchAllFunc[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetchAll = fetchAll
}

// Reload fetches the current page with the active filters. The fetch result
// only lands if no newer fetch has started in the meantime. Errors surface
// through the notifier; the previous items stay on screen and loading always
// ends false.
func (l *List[T]) Reload() {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	page := l.page
	pageSize := l.pageSize
	allMode := l.allMode && l.fetchAll != nil
	filters := maps.Clone(l.filters)
	l.loading = true
	l.mu.Unlock()

	var result Page[T]
	var err error
	if allMode {
		var items []T
		items, err = l.fetchAll(filters)
		result = Page[T]{Items: items, Total: int64(len(items)), TotalPages: 1}
	} else {
		result, err = l.fetch(page, pageSize, filters)
	}

	l.mu.Lock()
	if seq != l.seq {
		// A newer fetch is in flight or already landed; this response is stale.
		l.mu.Unlock()
		return
	}
	l.loading = false
	if err != nil {
		l.mu.Unlock()
		l.notifier.Error("Failed to load list: " + err.Error())
		return
	}
	l.items = result.Items
	l.total = result.Total
	l.totalPages = result.TotalPages
	l.mu.Unlock()
}

// SetPage moves to a 1-indexed page and reloads.
func (l *List[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.mu.Lock()
	l.page = page
	l.mu.Unlock()
	l.Reload()
}

// SetFilter sets or clears (empty value) a filter, resets to the first page
// and reloads.
func (l *List[T]) SetFilter(key, value string) {
	l.mu.Lock()
	if value == "" {
		delete(l.filters, key)
	} else {
		l.filters[key] = value
	}
	l.page = 1
	l.mu.Unlock()
	l.Reload()
}

// SetAllMode toggles between the paginated view and the unpaginated pending
// view, then reloads.
func (l *List[T]) SetAllMode(all bool) {
	l.mu.Lock()
	l.allMode = all
	l.page = 1
	l.mu.Unlock()
	l.Reload()
}

// Search applies a debounced search filter. Input below the minimum length
// never issues a request: any pending debounce is cancelled and the results
// are cleared immediately.
func (l *List[T]) Search(term string) {
	l.mu.Lock()
	if l.searchTimer != nil {
		l.searchTimer.Stop()
		l.searchTimer = nil
	}

	if len(term) < l.minSearchLen {
		delete(l.filters, "search")
		l.page = 1
		l.items = nil
		l.total = 0
		l.totalPages = 0
		l.mu.Unlock()
		return
	}

	l.filters["search"] = term
	l.page = 1
	l.searchTimer = time.AfterFunc(l.debounceDelay, l.Reload)
	l.mu.Unlock()
}

// Items returns the currently rendered rows.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// Loading reports whether a fetch is in flight.
func (l *List[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Pagination returns the current page, total rows and total pages.
func (l *List[T]) Pagination() (page int, total int64, totalPages int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page, l.total, l.totalPages
}

// Filter returns the active value for a filter key.
func (l *List[T]) Filter(key string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filters[key]
}
