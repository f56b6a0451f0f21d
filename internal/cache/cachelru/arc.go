package cachelru

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/mohamedahmed66972007/Spy-Mastermind-MO/internal/cache"
)

// LRU adapts hashicorp's ARC cache to the cache.Cache interface.
type LRU struct {
	arc *lru.ARCCache
}

var _ cache.Cache = (*LRU)(nil)

func NewLRU(size int) (*LRU, error) {
	arc, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("new arc cache: %w", err)
	}

	return &LRU{arc: arc}, nil
}

func (c *LRU) Get(key interface{}) (interface{}, bool) {
	return c.arc.Get(key)
}

func (c *LRU) Add(key, value interface{}) {
	c.arc.Add(key, value)
}

func (c *LRU) Keys() []interface{} {
	return c.arc.Keys()
}

func (c *LRU) Delete(key interface{}) {
	c.arc.Remove(key)
}
