// Package memory implements a teaching model of a process's runtime
// memory: a fixed-size address space split into a stack of function
// frames growing down from the top and a bump-allocated heap growing up
// from the bottom.
//
// A Model is a plain state machine with no goroutines of its own. It is
// not safe for concurrent use; an embedding application that shares one
// Model across goroutines must serialize access itself.
package memory

// Model is the process-wide aggregate: the frame table, the per-frame
// variable storage, the heap arena with its free list, and the usage
// counters. The zero value is not usable, use NewModel.
type Model struct {
	limits Limits

	frameStatus []frameStatus
	frames      []frame

	stackUsed int

	heap     []byte
	heapUsed int
	freeHead *freeRange
}

// NewModel returns an empty Model with all options applied.
func NewModel(opts ...Option) *Model {
	m := &Model{
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Reset()
	return m
}

// Reset discards all frames and heap buffers and returns the Model to
// its initial empty state.
func (m *Model) Reset() {
	m.frameStatus = make([]frameStatus, m.limits.MaxFrames)
	m.frames = make([]frame, m.limits.MaxFrames)
	for i := range m.frames {
		m.frames[i] = newFrame(m.limits)
	}
	m.stackUsed = 0
	m.heap = make([]byte, m.limits.MaxHeapSize)
	m.heapUsed = 0
	m.freeHead = nil
}

// StackUsed returns the bytes currently charged against the stack
// budget (frame metadata plus scalar payloads).
func (m *Model) StackUsed() int {
	return m.stackUsed
}

// HeapUsed returns the position of the heap bump cursor. Ranges behind
// the cursor may be free for reuse, the cursor itself never retreats.
func (m *Model) HeapUsed() int {
	return m.heapUsed
}

// CreateFrame pushes a new frame for the named function. The frame
// occupies the lowest free slot of the frame table and is charged
// FrameMetadataSize bytes against the stack budget. Its frame address
// is laid out as if the stack grew down from the top of the address
// space.
func (m *Model) CreateFrame(name string, funcAddress int) error {
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	if m.stackUsed+m.limits.FrameMetadataSize > m.limits.MaxStackSize {
		return ErrStackOverflow
	}
	for i := range m.frameStatus {
		if m.frameStatus[i].used && m.frameStatus[i].name == name {
			return ErrDuplicateName
		}
	}

	for i := range m.frameStatus {
		if m.frameStatus[i].used {
			continue
		}
		m.frameStatus[i] = frameStatus{
			used:         true,
			number:       i + 1,
			name:         name,
			funcAddress:  funcAddress,
			frameAddress: m.limits.TotalMemory - m.stackUsed - m.limits.FrameMetadataSize,
		}
		m.frames[i] = newFrame(m.limits)
		m.stackUsed += m.limits.FrameMetadataSize
		return nil
	}
	return ErrNoFreeFrames
}

// DestroyFrame pops the most recently created live frame, i.e. the used
// slot with the highest index. The frame's scalar payload and its
// metadata charge are both refunded, so destroying every frame brings
// StackUsed back to exactly zero.
func (m *Model) DestroyFrame() error {
	if m.stackUsed == 0 {
		return ErrEmptyStack
	}
	for i := m.limits.MaxFrames - 1; i >= 0; i-- {
		if !m.frameStatus[i].used {
			continue
		}
		m.stackUsed -= m.frames[i].size + m.limits.FrameMetadataSize
		m.frameStatus[i] = frameStatus{}
		m.frames[i] = newFrame(m.limits)
		return nil
	}
	return ErrEmptyStack
}

// currentFrame returns the index of the highest used slot, or -1 when
// no frame is live. Variable creation always targets this frame.
func (m *Model) currentFrame() int {
	for i := m.limits.MaxFrames - 1; i >= 0; i-- {
		if m.frameStatus[i].used {
			return i
		}
	}
	return -1
}
