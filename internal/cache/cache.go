package cache

// Cache is the read-through cache the bolt-backed stores sit behind.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Keys() []interface{}
	Delete(key interface{})
}
