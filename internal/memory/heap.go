package memory

import "encoding/binary"

const (
	// bufferHeaderSize is the size of the record written inline ahead
	// of every heap range: 8 name bytes (7 usable plus terminator), 4
	// bytes payload start, 4 bytes payload size and a free marker.
	bufferHeaderSize = 8 + 4 + 4 + 1

	headerFlagFree = 1
)

// bufferHeader is the decoded form of the record preceding every heap
// range, free ranges included. start and size describe the payload.
type bufferHeader struct {
	name  string
	start int32
	size  int32
	free  bool
}

func (m *Model) readHeader(off int) bufferHeader {
	raw := m.heap[off : off+bufferHeaderSize]
	name := raw[:MaxNameLen]
	end := 0
	for end < len(name) && name[end] != 0 {
		end++
	}
	return bufferHeader{
		name:  string(name[:end]),
		start: int32(binary.LittleEndian.Uint32(raw[8:12])),
		size:  int32(binary.LittleEndian.Uint32(raw[12:16])),
		free:  raw[16] == headerFlagFree,
	}
}

func (m *Model) writeHeader(off int, h bufferHeader) {
	raw := m.heap[off : off+bufferHeaderSize]
	for i := range raw {
		raw[i] = 0
	}
	copy(raw[:MaxNameLen-1], h.name)
	binary.LittleEndian.PutUint32(raw[8:12], uint32(h.start))
	binary.LittleEndian.PutUint32(raw[12:16], uint32(h.size))
	if h.free {
		raw[16] = headerFlagFree
	}
}

// walkHeap visits every range header from the bottom of the arena up to
// the bump cursor. fn returning false stops the walk.
func (m *Model) walkHeap(fn func(off int, h bufferHeader) bool) {
	for off := 0; off < m.heapUsed; {
		h := m.readHeader(off)
		if !fn(off, h) {
			return
		}
		off += bufferHeaderSize + int(h.size)
	}
}

// CreateHeapBuffer allocates a named buffer of the requested payload
// size and stores a reference to it in a pointer slot of the
// highest-indexed live frame that still has one free. Freed ranges are
// reused first-fit; otherwise the buffer is bump-allocated at the
// cursor. The buffer never moves afterwards.
func (m *Model) CreateHeapBuffer(name string, size int) error {
	if size <= 0 {
		return ErrInvalidSize
	}

	need := size + bufferHeaderSize

	// Placement is decided before anything mutates so that a failed
	// pointer-slot search leaves the heap untouched.
	reuse := findFit(m.freeHead, need)
	if reuse == nil && m.heapUsed+need > m.limits.MaxHeapSize {
		return ErrHeapOverflow
	}

	frameIdx, ptrIdx, err := m.pointerSlot()
	if err != nil {
		return err
	}

	var off, payload int
	if reuse != nil {
		off, payload = m.takeFree(reuse, size)
	} else {
		off, payload = m.heapUsed, size
		m.heapUsed += need
	}
	m.writeHeader(off, bufferHeader{
		name:  truncateName(name, MaxNameLen-1),
		start: int32(off + bufferHeaderSize),
		size:  int32(payload),
	})
	m.frames[frameIdx].pointers[ptrIdx] = HeapRef(off + bufferHeaderSize)
	return nil
}

// DeleteHeapBuffer releases the named buffer's range onto the free
// list, coalescing with adjacent free ranges, and clears the pointer
// slot referencing it. The bump cursor never retreats; the range
// becomes reusable through CreateHeapBuffer instead.
func (m *Model) DeleteHeapBuffer(name string) error {
	name = truncateName(name, MaxNameLen-1)

	foundOff := -1
	var found bufferHeader
	m.walkHeap(func(off int, h bufferHeader) bool {
		if !h.free && h.name == name {
			foundOff, found = off, h
			return false
		}
		return true
	})
	if foundOff == -1 {
		return ErrBufferNotFound
	}

	// drop the owning pointer before the range becomes reusable
	ref := HeapRef(found.start)
	for i := range m.frames {
		for j, p := range m.frames[i].pointers {
			if p == ref {
				m.frames[i].pointers[j] = 0
			}
		}
	}

	var merged *freeRange
	m.freeHead, merged = insertFree(m.freeHead, &freeRange{
		start: foundOff,
		total: bufferHeaderSize + int(found.size),
	})
	// one header covers the whole merged range; the walk strides over
	// any stale headers inside it
	m.writeHeader(merged.start, bufferHeader{
		start: int32(merged.start + bufferHeaderSize),
		size:  int32(merged.total - bufferHeaderSize),
		free:  true,
	})
	return nil
}

// pointerSlot picks the frame that will own a new buffer: the
// highest-indexed live frame that still has a free pointer slot.
func (m *Model) pointerSlot() (frameIdx, ptrIdx int, err error) {
	anyLive := false
	for i := m.limits.MaxFrames - 1; i >= 0; i-- {
		if !m.frameStatus[i].used {
			continue
		}
		anyLive = true
		for j, p := range m.frames[i].pointers {
			if p == 0 {
				return i, j, nil
			}
		}
	}
	if !anyLive {
		return -1, -1, ErrNoActiveFrame
	}
	return -1, -1, ErrNoPointerSlot
}
