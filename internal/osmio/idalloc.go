package osmio

// idAllocator produces the monotonically decreasing negative id stream
// §6 requires for generated nodes and ways, starting at -2 (§9:
// encapsulated in its own type rather than a bare mutable package-level
// counter).
type idAllocator struct {
	next int64
}

func newIDAllocator() *idAllocator {
	return &idAllocator{next: -2}
}

func (a *idAllocator) allocate() int64 {
	id := a.next
	a.next--
	return id
}
