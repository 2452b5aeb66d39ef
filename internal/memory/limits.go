package memory

// MaxNameLen is the width of every name field in the simulated memory.
// Frame names longer than this are rejected, variable and buffer names
// are truncated into the field.
const MaxNameLen = 8

// Default layout of the simulated address space: a 500-byte process
// image with a 200-byte stack growing down from the top and a 300-byte
// heap growing up from the bottom. A frame costs 21 bytes of metadata
// the moment it is created, before it holds any variable.
const (
	DefaultTotalMemory       = 500
	DefaultMaxStackSize      = 200
	DefaultMaxHeapSize       = 300
	DefaultMaxFrames         = 5
	DefaultMaxFrameSize      = 80
	DefaultFrameMetadataSize = 21

	DefaultMaxInts     = 20
	DefaultMaxDoubles  = 10
	DefaultMaxChars    = 80
	DefaultMaxPointers = 20
)

// Byte widths charged for the scalar kinds.
const (
	intWidth    = 4
	doubleWidth = 8
	charWidth   = 1
)

// Limits holds the capacity and layout parameters of a Model. Zero
// values are not usable; obtain a Limits from DefaultLimits and adjust
// the fields you need.
type Limits struct {
	// TotalMemory is the size of the simulated address space. Frame
	// addresses are computed as if the stack grew down from this
	// boundary.
	TotalMemory int
	// MaxStackSize is the stack budget in bytes, covering frame
	// metadata and scalar payloads.
	MaxStackSize int
	// MaxHeapSize is the heap arena size in bytes, covering buffer
	// headers and payloads.
	MaxHeapSize int
	// MaxFrames is the number of slots in the frame table.
	MaxFrames int
	// MaxFrameSize caps the scalar payload bytes of a single frame.
	MaxFrameSize int
	// FrameMetadataSize is charged against the stack budget for every
	// frame, independent of its contents.
	FrameMetadataSize int

	// Per-frame capacities of the typed variable collections.
	MaxInts     int
	MaxDoubles  int
	MaxChars    int
	MaxPointers int
}

// DefaultLimits returns the reference layout.
func DefaultLimits() Limits {
	return Limits{
		TotalMemory:       DefaultTotalMemory,
		MaxStackSize:      DefaultMaxStackSize,
		MaxHeapSize:       DefaultMaxHeapSize,
		MaxFrames:         DefaultMaxFrames,
		MaxFrameSize:      DefaultMaxFrameSize,
		FrameMetadataSize: DefaultFrameMetadataSize,
		MaxInts:           DefaultMaxInts,
		MaxDoubles:        DefaultMaxDoubles,
		MaxChars:          DefaultMaxChars,
		MaxPointers:       DefaultMaxPointers,
	}
}
