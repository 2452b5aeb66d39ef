package memory

import "errors"

// Every operation on a Model either fully succeeds or fails with one of
// these errors and no state change.
var (
	ErrNameTooLong          = errors.New("name too long, names can be of at most 8 characters")
	ErrStackOverflow        = errors.New("stack overflow, not enough memory available for a new frame")
	ErrDuplicateName        = errors.New("a frame with this function name already exists")
	ErrNoFreeFrames         = errors.New("cannot create another frame, maximum number of frames reached")
	ErrEmptyStack           = errors.New("stack is empty, no frame to destroy")
	ErrNoActiveFrame        = errors.New("no frames exist")
	ErrFrameFull            = errors.New("frame is full, cannot create more data on it")
	ErrKindCapacityExceeded = errors.New("no free slot of this kind left in the frame")
	ErrHeapOverflow         = errors.New("heap is full, cannot create more data")
	ErrNoPointerSlot        = errors.New("no pointer slot available in any frame")
	ErrBufferNotFound       = errors.New("no heap buffer with this name")
	ErrInvalidSize          = errors.New("buffer size must be positive")
)
