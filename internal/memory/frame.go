package memory

// Kind tags the kind of a variable stored in a frame.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindDouble
	KindChar
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindChar:
		return "char"
	case KindPointer:
		return "pointer"
	default:
		return "invalid"
	}
}

// HeapRef is an opaque reference to a heap buffer: the byte offset of
// the buffer's payload inside the heap arena. The zero value marks a
// free pointer slot; real payloads always sit behind a header, so their
// offsets are never zero.
type HeapRef int

// frameStatus describes one slot of the frame table.
type frameStatus struct {
	used         bool
	number       int
	name         string
	funcAddress  int
	frameAddress int
}

type intSlot struct {
	name        string
	value       int32
	initialized bool
}

type doubleSlot struct {
	name        string
	value       float64
	initialized bool
}

type charSlot struct {
	name        string
	value       byte
	initialized bool
}

// frame is the variable storage of one frame slot. size counts the
// scalar payload bytes charged to this frame; the per-frame metadata
// charge is tracked on the Model, not here.
type frame struct {
	size     int
	ints     []intSlot
	doubles  []doubleSlot
	chars    []charSlot
	pointers []HeapRef
}

func newFrame(limits Limits) frame {
	return frame{
		ints:     make([]intSlot, limits.MaxInts),
		doubles:  make([]doubleSlot, limits.MaxDoubles),
		chars:    make([]charSlot, limits.MaxChars),
		pointers: make([]HeapRef, limits.MaxPointers),
	}
}

// truncateName copies a name into a fixed-width field of max bytes,
// cutting off the rest. Frame creation rejects long names instead, see
// Model.CreateFrame.
func truncateName(name string, max int) string {
	if len(name) > max {
		return name[:max]
	}
	return name
}
