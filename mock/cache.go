package mock

import (
	fbref "github.com/raghavtripped/fbref-dashboard"
)

var _ fbref.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of fbref.PageCache.
type PageCache struct {
	GetFn func(url string) (string, bool)
	PutFn func(url string, html string) error
}

func (c *PageCache) Get(url string) (string, bool) {
	return c.GetFn(url)
}

func (c *PageCache) Put(url string, html string) error {
	return c.PutFn(url, html)
}
