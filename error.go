package memsim

import "github.com/tsatke/memsim/internal/memory"

// The operation errors, re-exported so embedders can match them with
// errors.Is without reaching into internal packages.
var (
	ErrNameTooLong          = memory.ErrNameTooLong
	ErrStackOverflow        = memory.ErrStackOverflow
	ErrDuplicateName        = memory.ErrDuplicateName
	ErrNoFreeFrames         = memory.ErrNoFreeFrames
	ErrEmptyStack           = memory.ErrEmptyStack
	ErrNoActiveFrame        = memory.ErrNoActiveFrame
	ErrFrameFull            = memory.ErrFrameFull
	ErrKindCapacityExceeded = memory.ErrKindCapacityExceeded
	ErrHeapOverflow         = memory.ErrHeapOverflow
	ErrNoPointerSlot        = memory.ErrNoPointerSlot
	ErrBufferNotFound       = memory.ErrBufferNotFound
	ErrInvalidSize          = memory.ErrInvalidSize
)
