package memory

// freeRange tracks one reusable stretch of the heap arena. start is the
// offset of the range's header, total counts header and payload bytes.
// The list is kept sorted by start and never holds two adjacent ranges,
// they are merged on insertion.
type freeRange struct {
	start int
	total int
	next  *freeRange
}

// insertFree links r into the address-ordered list headed by head and
// merges it with physically adjacent neighbours. It returns the new
// head and the range r ended up in after merging.
func insertFree(head, r *freeRange) (*freeRange, *freeRange) {
	var prev *freeRange
	cur := head
	for cur != nil && cur.start < r.start {
		prev, cur = cur, cur.next
	}
	r.next = cur
	if prev == nil {
		head = r
	} else {
		prev.next = r
	}

	if cur != nil && r.start+r.total == cur.start {
		r.total += cur.total
		r.next = cur.next
	}
	if prev != nil && prev.start+prev.total == r.start {
		prev.total += r.total
		prev.next = r.next
		r = prev
	}
	return head, r
}

// findFit returns the first range in address order able to hold need
// bytes, or nil.
func findFit(head *freeRange, need int) *freeRange {
	for r := head; r != nil; r = r.next {
		if r.total >= need {
			return r
		}
	}
	return nil
}

// removeFree unlinks r from the list and returns the new head.
func removeFree(head, r *freeRange) *freeRange {
	if head == r {
		return r.next
	}
	for cur := head; cur != nil; cur = cur.next {
		if cur.next == r {
			cur.next = r.next
			break
		}
	}
	return head
}

// takeFree carves a buffer of the requested payload size out of a free
// range. When the remainder is too small to stand behind its own header
// it is granted to the buffer instead of being split off, so the
// recorded payload may exceed the requested size.
func (m *Model) takeFree(r *freeRange, size int) (off, payload int) {
	need := size + bufferHeaderSize
	off = r.start
	m.freeHead = removeFree(m.freeHead, r)

	remainder := r.total - need
	if remainder > bufferHeaderSize {
		rest := &freeRange{start: off + need, total: remainder}
		m.writeHeader(rest.start, bufferHeader{
			start: int32(rest.start + bufferHeaderSize),
			size:  int32(remainder - bufferHeaderSize),
			free:  true,
		})
		m.freeHead, _ = insertFree(m.freeHead, rest)
		return off, size
	}
	return off, r.total - bufferHeaderSize
}
