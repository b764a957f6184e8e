package storage

import (
	"context"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

// Cached is a read-through freecache layer in front of another provider.
// Writes go to the inner provider first and only then refresh the cache.
type Cached struct {
	cache *freecache.Cache
	inner Provider
}

func NewCached(inner Provider, sizeMB int) *Cached {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &Cached{
		// freecache enforces a minimum of 512KB
		cache: freecache.NewCache(sizeMB * megabyte),
		inner: inner,
	}
}

func (c *Cached) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	if value, err := c.cache.Get([]byte(key)); err == nil {
		log.Tracef("storage cache hit for [%s]", key)
		return value, true, nil
	}

	value, found, err := c.inner.Load(ctx, key)
	if err != nil || !found {
		return value, found, err
	}

	if err := c.cache.Set([]byte(key), value, 0); err != nil {
		// e.g. value larger than 1/1024 of the cache, just skip caching
		log.Debugf("storage cache set [%s]: %s", key, err)
	}

	return value, true, nil
}

func (c *Cached) Save(ctx context.Context, key string, value []byte) error {
	if err := c.inner.Save(ctx, key, value); err != nil {
		c.cache.Del([]byte(key))
		return err
	}

	if err := c.cache.Set([]byte(key), value, 0); err != nil {
		log.Debugf("storage cache set [%s]: %s", key, err)
		c.cache.Del([]byte(key))
	}
	return nil
}

// HitRate returns the cache hit ratio so far.
func (c *Cached) HitRate() float64 {
	return c.cache.HitRate()
}
