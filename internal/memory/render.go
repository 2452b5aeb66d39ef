package memory

import (
	"fmt"
	"io"
)

const (
	stackDivider = "|-------|---------------|------------------|---------------|------------|\n"
	frameDivider = "|---------------|----------|-----------------|\n"
	heapDivider  = "|---------------|-----------------|--------|\n"
)

// RenderSnapshot writes a table of the live frames, their variables and
// the heap log to w. It never mutates the Model and is safe to call at
// any time; with no frames and an empty heap only the section headers
// are written.
func (m *Model) RenderSnapshot(w io.Writer) error {
	p := &printer{w: w}

	p.printf("                               STACK\n")
	p.printf(stackDivider)
	p.printf("| Frame | Function Name | Function Address | Frame Address | Frame Size |\n")
	p.printf(stackDivider)
	frames := m.Frames()
	for _, f := range frames {
		p.printf("| %-5d | %-13s | 0x%-14X | %-13d | %-10d |\n",
			f.Number, f.Name, f.FuncAddress, f.FrameAddress, f.Size)
	}
	p.printf(stackDivider)

	for _, f := range frames {
		p.printf("\n\nFrame %d Contents:\n", f.Number)
		p.printf(frameDivider)
		p.printf("| Variable Name |   Type   |      Value      |\n")
		p.printf(frameDivider)
		for _, v := range f.Variables {
			p.printf("| %-13s | %-8s | %-15s |\n", v.Name, v.Kind, v.Value)
		}
		p.printf(frameDivider)
	}

	p.printf("\nHEAP\n")
	p.printf("Heap Size: %d\n", m.heapUsed)
	p.printf(heapDivider)
	p.printf("|  Buffer Name  |  Start Address  |  Size  |\n")
	p.printf(heapDivider)
	for _, b := range m.Buffers() {
		name := b.Name
		if b.Free {
			name = "<free>"
		}
		p.printf("| %-13s | 0x%-13X | %-6d |\n", name, int(b.Start), b.Size)
	}
	p.printf(heapDivider)

	return p.err
}

// printer remembers the first write error so the table code can stay
// free of error plumbing.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
