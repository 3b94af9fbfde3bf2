package controllers

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	successes []string
	errors   []string
}

func (n *recordingNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *recordingNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *recordingNotifier) lastError() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errors) == 0 {
		return ""
	}
	return n.errors[len(n.errors)-1]
}

func (n *recordingNotifier) lastSuccess() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.successes) == 0 {
		return ""
	}
	return n.successes[len(n.successes)-1]
}

func TestListReloadFetchesCurrentPage(t *testing.T) {
	var gotPage, gotPageSize int
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		gotPage, gotPageSize = page, pageSize
		return Page[string]{Items: []string{"a", "b"}, Total: 2, TotalPages: 1}, nil
	}, ListOptions{PageSize: 25})

	list.Reload()

	assert.Equal(t, 1, gotPage)
	assert.Equal(t, 25, gotPageSize)
	assert.Equal(t, []string{"a", "b"}, list.Items())
	assert.False(t, list.Loading())

	page, total, totalPages := list.Pagination()
	assert.Equal(t, 1, page)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, 1, totalPages)
}

func TestListEveryStateChangeFetchesExactlyOnce(t *testing.T) {
	var calls int32
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		return Page[string]{TotalPages: 3}, nil
	}, ListOptions{})

	list.SetPage(2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	list.SetFilter("status", "pending")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	list.SetFilter("status", "")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestListFilterResetsToFirstPage(t *testing.T) {
	var gotPage int
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		gotPage = page
		return Page[string]{}, nil
	}, ListOptions{})

	list.SetPage(4)
	assert.Equal(t, 4, gotPage)

	list.SetFilter("status", "won")
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, "won", list.Filter("status"))
}

func TestListPageClampedToOne(t *testing.T) {
	var gotPage int
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		gotPage = page
		return Page[string]{}, nil
	}, ListOptions{})

	list.SetPage(0)
	assert.Equal(t, 1, gotPage)
	list.SetPage(-3)
	assert.Equal(t, 1, gotPage)
}

func TestListErrorKeepsPreviousItems(t *testing.T) {
	notifier := &recordingNotifier{}
	fail := false
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		if fail {
			return Page[string]{}, errors.New("boom")
		}
		return Page[string]{Items: []string{"kept"}, Total: 1, TotalPages: 1}, nil
	}, ListOptions{Notifier: notifier})

	list.Reload()
	require.Equal(t, []string{"kept"}, list.Items())

	fail = true
	list.Reload()

	assert.Equal(t, []string{"kept"}, list.Items())
	assert.False(t, list.Loading())
	assert.Contains(t, notifier.lastError(), "boom")
}

func TestListSearchDebouncesToSingleRequest(t *testing.T) {
	var calls int32
	var gotSearch string
	var mu sync.Mutex
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		mu.Lock()
		gotSearch = filters["search"]
		mu.Unlock()
		return Page[string]{Items: []string{"match"}}, nil
	}, ListOptions{DebounceDelay: 30 * time.Millisecond})

	// Rapid keystrokes: only the final term may produce a request.
	list.Search("082")
	list.Search("0821")
	list.Search("08212")

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	mu.Lock()
	assert.Equal(t, "08212", gotSearch)
	mu.Unlock()
}

func TestListShortSearchClearsWithoutRequest(t *testing.T) {
	var calls int32
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		return Page[string]{Items: []string{"row"}, Total: 1, TotalPages: 1}, nil
	}, ListOptions{DebounceDelay: 10 * time.Millisecond})

	list.Reload()
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.NotEmpty(t, list.Items())

	list.Search("08")

	// Cleared immediately, and no request ever fires for the short term.
	assert.Empty(t, list.Items())
	assert.Equal(t, "", list.Filter("search"))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestListShortSearchCancelsPendingDebounce(t *testing.T) {
	var calls int32
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		atomic.AddInt32(&calls, 1)
		return Page[string]{}, nil
	}, ListOptions{DebounceDelay: 30 * time.Millisecond})

	list.Search("0821")
	list.Search("08")

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestListStaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int32
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			<-release
			return Page[string]{Items: []string{"stale"}, Total: 99, TotalPages: 9}, nil
		}
		return Page[string]{Items: []string{"fresh"}, Total: 1, TotalPages: 1}, nil
	}, ListOptions{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		list.Reload()
	}()
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1
	}, time.Second, time.Millisecond)

	// Second fetch starts while the first is still in flight and lands first.
	list.Reload()
	require.Equal(t, []string{"fresh"}, list.Items())

	close(release)
	wg.Wait()

	// The slow first response must not overwrite the fresher one.
	assert.Equal(t, []string{"fresh"}, list.Items())
	_, total, _ := list.Pagination()
	assert.Equal(t, int64(1), total)
}

func TestListAllModeUsesFetchAll(t *testing.T) {
	var pagedCalls, allCalls int32
	list := NewList(func(page, pageSize int, filters map[string]string) (Page[string], error) {
		atomic.AddInt32(&pagedCalls, 1)
		return Page[string]{}, nil
	}, ListOptions{})
	list.SetFetchAll(func(filters map[string]string) ([]string, error) {
		atomic.AddInt32(&allCalls, 1)
		return []string{"p1", "p2", "p3"}, nil
	})

	list.SetAllMode(true)

	assert.Equal(t, int32(0), atomic.LoadInt32(&pagedCalls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&allCalls))
	assert.Equal(t, []string{"p1", "p2", "p3"}, list.Items())

	// The pending view renders as one page regardless of size.
	page, total, totalPages := list.Pagination()
	assert.Equal(t, 1, page)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, 1, totalPages)

	list.SetAllMode(false)
	assert.Equal(t, int32(1), atomic.LoadInt32(&pagedCalls))
}
