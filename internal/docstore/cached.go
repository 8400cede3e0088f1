package docstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	cachePrefix = "docstore:"
	// generationKey counts writes. It lives outside cachePrefix so no
	// invalidation pattern can match it.
	generationKey = "docstore-generation"
)

var errStaleFill = errors.New("docstore: write raced cache fill")

// Cached puts a Redis read-through cache in front of another Store. Writes
// go to the wrapped store first, bump the write generation and then drop
// every cached read that could contain the written location: the path
// itself, its ancestors and its descendants. A miss only fills the cache when
// no write happened while the wrapped store was being read. Cache failures
// are logged and never fail a request.
type Cached struct {
	next Store
	rdb  *redis.Client
	ttl  time.Duration
	log  *zerolog.Logger
}

func NewCached(next Store, rdb *redis.Client, ttl time.Duration, logger *zerolog.Logger) *Cached {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Cached{next: next, rdb: rdb, ttl: ttl, log: logger}
}

// Uncached returns the wrapped store.
func (c *Cached) Uncached() Store { return c.next }

func (c *Cached) Read(ctx context.Context, path string) (Snapshot, error) {
	key := cacheKey(path)
	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		n, decErr := DecodeJSON(data)
		if decErr == nil {
			return NewSnapshot(Base(path), n), nil
		}
		c.log.Warn().Err(decErr).Str("key", key).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
	}

	gen, genErr := readGeneration(ctx, c.rdb)
	snap, err := c.next.Read(ctx, path)
	if err != nil {
		return Snapshot{}, err
	}
	if genErr != nil {
		c.log.Warn().Err(genErr).Str("key", key).Msg("cache generation read failed")
		return snap, nil
	}
	c.fill(ctx, key, snap, gen)
	return snap, nil
}

// fill stores snap under key unless the write generation moved past gen.
func (c *Cached) fill(ctx context.Context, key string, snap Snapshot, gen int64) {
	encoded, err := snap.MarshalJSON()
	if err != nil {
		return
	}
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	switch {
	case err == nil, errors.Is(err, errStaleFill), errors.Is(err, redis.TxFailedErr):
	default:
		c.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (c *Cached) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	if err := c.next.Update(ctx, path, fields); err != nil {
		return err
	}
	c.invalidate(ctx, path)
	return nil
}

func (c *Cached) Delete(ctx context.Context, path string) error {
	if err := c.next.Delete(ctx, path); err != nil {
		return err
	}
	c.invalidate(ctx, path)
	return nil
}

func (c *Cached) GenerateKey(ctx context.Context) (string, error) {
	return c.next.GenerateKey(ctx)
}

func (c *Cached) invalidate(ctx context.Context, path string) {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cache generation bump failed")
	}
	keys := affectedKeys(path)
	iter := c.rdb.Scan(ctx, 0, descendantPattern(path), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cache scan failed")
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("cache invalidation failed")
	}
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, cmd getter) (int64, error) {
	n, err := cmd.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func cacheKey(path string) string {
	return cachePrefix + Join(path)
}

// affectedKeys lists the cache keys of path and every ancestor up to the root.
func affectedKeys(path string) []string {
	segs := Split(path)
	keys := make([]string, 0, len(segs)+1)
	for i := len(segs); i >= 0; i-- {
		keys = append(keys, cacheKey(strings.Join(segs[:i], "/")))
	}
	return keys
}

func descendantPattern(path string) string {
	p := Join(path)
	if p == "" {
		return cachePrefix + "*"
	}
	return globEscape(cacheKey(p)) + "/*"
}

func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
