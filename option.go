package memsim

import (
	"io"

	"github.com/spf13/afero"
	"github.com/tsatke/memsim/internal/memory"
)

// Option configures a Simulator during New.
type Option func(*Simulator)

// WithOutput sets the writer that snapshots and prompts are written to.
func WithOutput(out io.Writer) Option {
	return func(s *Simulator) {
		s.out = out
	}
}

// WithErrOutput sets the writer that command errors are reported to.
func WithErrOutput(errOut io.Writer) Option {
	return func(s *Simulator) {
		s.errOut = errOut
	}
}

// WithFs sets the filesystem that ExecFile reads scripts from.
func WithFs(fs afero.Fs) Option {
	return func(s *Simulator) {
		s.fs = fs
	}
}

// WithLimits replaces the default layout of the simulated address
// space.
func WithLimits(limits Limits) Option {
	return func(s *Simulator) {
		s.modelOpts = append(s.modelOpts, memory.WithLimits(memory.Limits{
			TotalMemory:       limits.TotalMemory,
			MaxStackSize:      limits.MaxStackSize,
			MaxHeapSize:       limits.MaxHeapSize,
			MaxFrames:         limits.MaxFrames,
			MaxFrameSize:      limits.MaxFrameSize,
			FrameMetadataSize: limits.FrameMetadataSize,
			MaxInts:           limits.MaxInts,
			MaxDoubles:        limits.MaxDoubles,
			MaxChars:          limits.MaxChars,
			MaxPointers:       limits.MaxPointers,
		}))
	}
}

// Limits holds the capacity and layout parameters of the simulated
// address space. See DefaultLimits for the reference values.
type Limits struct {
	TotalMemory       int
	MaxStackSize      int
	MaxHeapSize       int
	MaxFrames         int
	MaxFrameSize      int
	FrameMetadataSize int
	MaxInts           int
	MaxDoubles        int
	MaxChars          int
	MaxPointers       int
}

// DefaultLimits returns the reference layout: a 500-byte address space
// with a 200-byte stack, a 300-byte heap, 5 frame slots, 80 payload
// bytes per frame and 21 bytes of metadata per frame.
func DefaultLimits() Limits {
	l := memory.DefaultLimits()
	return Limits{
		TotalMemory:       l.TotalMemory,
		MaxStackSize:      l.MaxStackSize,
		MaxHeapSize:       l.MaxHeapSize,
		MaxFrames:         l.MaxFrames,
		MaxFrameSize:      l.MaxFrameSize,
		FrameMetadataSize: l.FrameMetadataSize,
		MaxInts:           l.MaxInts,
		MaxDoubles:        l.MaxDoubles,
		MaxChars:          l.MaxChars,
		MaxPointers:       l.MaxPointers,
	}
}
