package driven

// CacheInvalidator clears host caches derived from option values.
// It is called at the start of every save.
type CacheInvalidator interface {
	InvalidateCache()
}

// CacheInvalidatorFunc adapts a function to CacheInvalidator.
type CacheInvalidatorFunc func()

// InvalidateCache calls f.
func (f CacheInvalidatorFunc) InvalidateCache() {
	f()
}
