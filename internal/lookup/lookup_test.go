package lookup

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmbookAdmin/internal/docstore"
	"dmbookAdmin/internal/models"
)

const fixture = `{
	"App": {
		"Estate": {
			"Coffee":     {"E9": {"IDUser": "U2", "IsAccepted": "2", "NameEn": "Bean"}},
			"Hottel":     {"E1": {"IDUser": "U1", "IsAccepted": "1", "NameEn": "Hotel X"},
			               "E9": {"IDUser": "U1", "IsAccepted": "2", "NameEn": "Dup"}},
			"Restaurant": {"E3": {"IDUser": "U3", "IsAccepted": 2, "NameEn": "Grill"},
			               "E4": "broken",
			               "E5": {"IDUser": "U1", "IsAccepted": "2", "NameEn": "Mezze"}}
		},
		"User": {
			"U1": {"Email": "a@b.com"},
			"U2": {"Email": "c@d.com"}
		}
	}
}`

// spyStore counts reads and can fail or stall reads under chosen paths.
type spyStore struct {
	docstore.Store
	reads    atomic.Int32
	inflight atomic.Int32
	peak     atomic.Int32
	delay    time.Duration
	failOn   string
	mu       sync.Mutex
	paths    []string
}

func (s *spyStore) Read(ctx context.Context, path string) (docstore.Snapshot, error) {
	s.reads.Add(1)
	s.mu.Lock()
	s.paths = append(s.paths, path)
	s.mu.Unlock()

	n := s.inflight.Add(1)
	defer s.inflight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.failOn != "" && strings.HasSuffix(path, s.failOn) {
		return docstore.Snapshot{}, errors.New("connection reset")
	}
	return s.Store.Read(ctx, path)
}

func newSpy(t *testing.T) *spyStore {
	t.Helper()
	m := docstore.NewMemory()
	require.NoError(t, m.Load(strings.NewReader(fixture)))
	return &spyStore{Store: m}
}

var categories = []string{"Coffee", "Hottel", "Restaurant"}

func TestResolveFindsSingleCategory(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		r := NewResolver(newSpy(t), parallel)

		m, err := r.Resolve(context.Background(), "App/Estate", categories, "E1")
		require.NoError(t, err)
		assert.Equal(t, "Hottel", m.Category)
		assert.Equal(t, "Hotel X", models.RecordOf(m.Snapshot).Text("", "NameEn"))
	}
}

func TestResolveDuplicateIDEarliestCategoryWins(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		r := NewResolver(newSpy(t), parallel)

		m, err := r.Resolve(context.Background(), "App/Estate", categories, "E9")
		require.NoError(t, err)
		assert.Equal(t, "Coffee", m.Category)

		m, err = r.Resolve(context.Background(), "App/Estate", []string{"Hottel", "Coffee"}, "E9")
		require.NoError(t, err)
		assert.Equal(t, "Hottel", m.Category)
		assert.Equal(t, "Dup", models.RecordOf(m.Snapshot).Text("", "NameEn"))
	}
}

func TestResolveSequentialStopsAtFirstMatch(t *testing.T) {
	spy := newSpy(t)
	r := NewResolver(spy, false)

	_, err := r.Resolve(context.Background(), "App/Estate", categories, "E9")
	require.NoError(t, err)
	assert.Equal(t, int32(1), spy.reads.Load())
}

func TestResolveNotFound(t *testing.T) {
	spy := newSpy(t)
	r := NewResolver(spy, false)

	_, err := r.Resolve(context.Background(), "App/Estate", categories, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(3), spy.reads.Load())

	_, err = r.Resolve(context.Background(), "App/Estate", categories, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Resolve(context.Background(), "App/Estate", categories, "a/b")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(3), spy.reads.Load(), "unusable ids must not reach the store")
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		spy := newSpy(t)
		spy.failOn = "Coffee/E1"
		r := NewResolver(spy, parallel)

		_, err := r.Resolve(context.Background(), "App/Estate", categories, "E1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	}
}

func TestEnrichMissingRelatedIsNotAnError(t *testing.T) {
	e := NewEnricher(newSpy(t))

	rel, err := e.Enrich(context.Background(), models.Record{"IDUser": "U404"}, "IDUser", "App/User")
	require.NoError(t, err)
	assert.False(t, rel.Found)
	assert.Equal(t, "No Email", rel.Record.Text("No Email", "Email"))

	rel, err = e.Enrich(context.Background(), models.Record{}, "IDUser", "App/User")
	require.NoError(t, err)
	assert.False(t, rel.Found)
	assert.NotNil(t, rel.Record)

	rel, err = e.Enrich(context.Background(), models.Record{"IDUser": "U1"}, "IDUser", "App/User")
	require.NoError(t, err)
	assert.True(t, rel.Found)
	assert.Equal(t, "a@b.com", rel.Record.Text("", "Email"))
}

func TestFlattenTwoLevelsKeepsOrderAndSkipsNonObjects(t *testing.T) {
	snap, err := newSpy(t).Read(context.Background(), "App/Estate")
	require.NoError(t, err)

	var got []string
	for _, it := range Flatten(snap, 2) {
		got = append(got, it.Parent+"/"+it.Key())
	}
	assert.Equal(t, []string{"Coffee/E9", "Hottel/E1", "Hottel/E9", "Restaurant/E3", "Restaurant/E5"}, got)
}

func TestCollectFiltersWithExactStrings(t *testing.T) {
	a := NewAggregator(newSpy(t), 0, FailFast, nil)

	items, found, err := a.Collect(context.Background(), "App/Estate", 2, func(it Item) bool {
		return it.Record.Is("IsAccepted", "2")
	})
	require.NoError(t, err)
	require.True(t, found)

	var keys []string
	for _, it := range items {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []string{"E9", "E9", "E5"}, keys, "numeric 2 must not match")

	items, found, err = a.Collect(context.Background(), "App/Nothing", 1, nil)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)
}

func TestMapPreservesOrderUnderConcurrency(t *testing.T) {
	spy := newSpy(t)
	spy.delay = 5 * time.Millisecond
	a := NewAggregator(spy, 2, FailFast, nil)
	e := NewEnricher(spy)

	items, _, err := a.Collect(context.Background(), "App/Estate", 2, nil)
	require.NoError(t, err)
	reads := spy.reads.Load()

	emails, err := Map(context.Background(), a, items, func(ctx context.Context, it Item) (string, error) {
		rel, err := e.Enrich(ctx, it.Record, "IDUser", "App/User")
		if err != nil {
			return "", err
		}
		return it.Key() + ":" + rel.Record.Text("No Email", "Email"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"E9:c@d.com", "E1:a@b.com", "E9:a@b.com", "E3:No Email", "E5:a@b.com"}, emails)
	assert.Equal(t, reads+int32(len(items)), spy.reads.Load(), "one enrichment read per record")
	assert.LessOrEqual(t, spy.peak.Load(), int32(2))
}

func TestMapFailFast(t *testing.T) {
	spy := newSpy(t)
	a := NewAggregator(spy, 4, FailFast, nil)
	e := NewEnricher(spy)
	items, _, err := a.Collect(context.Background(), "App/Estate", 2, nil)
	require.NoError(t, err)
	spy.failOn = "User/U2"

	_, err = Map(context.Background(), a, items, func(ctx context.Context, it Item) (string, error) {
		rel, err := e.Enrich(ctx, it.Record, "IDUser", "App/User")
		return rel.Record.Text("", "Email"), err
	})
	assert.EqualError(t, err, "connection reset")
}

func TestMapSkipFailed(t *testing.T) {
	spy := newSpy(t)
	a := NewAggregator(spy, 4, SkipFailed, nil)
	e := NewEnricher(spy)
	items, _, err := a.Collect(context.Background(), "App/Estate", 2, nil)
	require.NoError(t, err)
	spy.failOn = "User/U2"

	keys, err := Map(context.Background(), a, items, func(ctx context.Context, it Item) (string, error) {
		_, err := e.Enrich(ctx, it.Record, "IDUser", "App/User")
		return it.Parent + "/" + it.Key(), err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hottel/E1", "Hottel/E9", "Restaurant/E3", "Restaurant/E5"}, keys)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "fail_fast", FailFast.String())
	assert.Equal(t, "skip_failed", SkipFailed.String())
}
