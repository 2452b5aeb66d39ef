package memsim

import "github.com/tsatke/memsim/internal/memory"

// State is a read-only copy of the simulated memory, taken at one point
// in time. Mutating it has no effect on the Simulator.
type State struct {
	// StackUsed is the number of bytes charged against the stack
	// budget, frame metadata included.
	StackUsed int
	// HeapUsed is the position of the heap bump cursor.
	HeapUsed int
	// Frames lists the live frames, most recently created first.
	Frames []Frame
	// Buffers lists the heap log in address order, freed ranges
	// included.
	Buffers []Buffer
}

// Frame describes one live stack frame.
type Frame struct {
	Number       int
	Name         string
	FuncAddress  int
	FrameAddress int
	Size         int
	Variables    []Variable
}

// Variable describes one initialized variable of a frame. Kind is one
// of "int", "double", "char" and "pointer"; Value is rendered the way
// the snapshot table shows it.
type Variable struct {
	Name  string
	Kind  string
	Value string
}

// Buffer describes one range of the heap log. Start is the payload
// offset inside the heap arena.
type Buffer struct {
	Name  string
	Start int
	Size  int
	Free  bool
}

// State captures the current simulated memory.
func (s *Simulator) State() State {
	return stateFromInternal(s.model)
}

func stateFromInternal(m *memory.Model) State {
	st := State{
		StackUsed: m.StackUsed(),
		HeapUsed:  m.HeapUsed(),
	}
	for _, f := range m.Frames() {
		frame := Frame{
			Number:       f.Number,
			Name:         f.Name,
			FuncAddress:  f.FuncAddress,
			FrameAddress: f.FrameAddress,
			Size:         f.Size,
		}
		for _, v := range f.Variables {
			frame.Variables = append(frame.Variables, Variable{
				Name:  v.Name,
				Kind:  v.Kind.String(),
				Value: v.Value,
			})
		}
		st.Frames = append(st.Frames, frame)
	}
	for _, b := range m.Buffers() {
		st.Buffers = append(st.Buffers, Buffer{
			Name:  b.Name,
			Start: int(b.Start),
			Size:  b.Size,
			Free:  b.Free,
		})
	}
	return st
}
