package buffer

// SetAllocLimit caps single allocations at n elements and returns a
// function restoring the previous limit.
func SetAllocLimit(n int) (restore func()) {
	old := allocLimit
	allocLimit = n
	return func() { allocLimit = old }
}
