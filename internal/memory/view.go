package memory

import "fmt"

// VariableView is a read-only copy of one initialized variable slot.
// Scalar values are pre-rendered the way the snapshot table shows them.
type VariableView struct {
	Name  string
	Kind  Kind
	Value string
}

// FrameView is a read-only copy of one live frame.
type FrameView struct {
	Number       int
	Name         string
	FuncAddress  int
	FrameAddress int
	Size         int
	Variables    []VariableView
}

// BufferView is a read-only copy of one range of the heap log. Free
// ranges carry an empty name.
type BufferView struct {
	Name  string
	Start HeapRef
	Size  int
	Free  bool
}

// Frames returns the live frames ordered most recently created first.
// Mutating the result has no effect on the Model.
func (m *Model) Frames() []FrameView {
	var views []FrameView
	for i := m.limits.MaxFrames - 1; i >= 0; i-- {
		st := m.frameStatus[i]
		if !st.used {
			continue
		}
		f := m.frames[i]
		view := FrameView{
			Number:       st.number,
			Name:         st.name,
			FuncAddress:  st.funcAddress,
			FrameAddress: st.frameAddress,
			Size:         f.size,
		}
		for _, s := range f.ints {
			if s.initialized {
				view.Variables = append(view.Variables, VariableView{s.name, KindInt, fmt.Sprintf("%d", s.value)})
			}
		}
		for _, s := range f.doubles {
			if s.initialized {
				view.Variables = append(view.Variables, VariableView{s.name, KindDouble, fmt.Sprintf("%f", s.value)})
			}
		}
		for _, s := range f.chars {
			if s.initialized {
				view.Variables = append(view.Variables, VariableView{s.name, KindChar, string(s.value)})
			}
		}
		for _, p := range f.pointers {
			if p != 0 {
				view.Variables = append(view.Variables, VariableView{"pointer", KindPointer, fmt.Sprintf("0x%X", int(p))})
			}
		}
		views = append(views, view)
	}
	return views
}

// Buffers returns every range of the heap log in address order, freed
// ranges included.
func (m *Model) Buffers() []BufferView {
	var views []BufferView
	m.walkHeap(func(off int, h bufferHeader) bool {
		views = append(views, BufferView{
			Name:  h.name,
			Start: HeapRef(h.start),
			Size:  int(h.size),
			Free:  h.free,
		})
		return true
	})
	return views
}
