// Package memsim simulates a process's runtime memory for teaching
// purposes: a fixed-size address space with a call stack of function
// frames growing down from the top and a bump-allocated heap growing up
// from the bottom.
//
// A Simulator is driven either programmatically through its operation
// methods or textually through Exec and the one-command-per-line
// language understood by the bundled dispatcher.
package memsim

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/memsim/internal/command"
	"github.com/tsatke/memsim/internal/memory"
)

// Simulator owns one memory model together with the writers used for
// snapshot output and error reports. It is not safe for concurrent use
// without external synchronization.
type Simulator struct {
	model *memory.Model

	fs     afero.Fs
	out    io.Writer
	errOut io.Writer

	modelOpts []memory.Option
}

// New creates an empty Simulator, already applying all given options.
// By default output goes to os.Stdout, error reports to os.Stderr, and
// script files are read from the OS filesystem.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.model = memory.NewModel(s.modelOpts...)
	return s
}

// Reset discards all frames and heap buffers.
func (s *Simulator) Reset() {
	s.model.Reset()
}

// CreateFrame pushes a frame for the named function.
func (s *Simulator) CreateFrame(name string, funcAddress int) error {
	return s.model.CreateFrame(name, funcAddress)
}

// DestroyFrame pops the most recently created frame.
func (s *Simulator) DestroyFrame() error {
	return s.model.DestroyFrame()
}

// CreateInt stores a named integer in the current frame.
func (s *Simulator) CreateInt(name string, value int32) error {
	return s.model.CreateInt(name, value)
}

// CreateDouble stores a named double in the current frame.
func (s *Simulator) CreateDouble(name string, value float64) error {
	return s.model.CreateDouble(name, value)
}

// CreateChar stores a named character in the current frame.
func (s *Simulator) CreateChar(name string, value byte) error {
	return s.model.CreateChar(name, value)
}

// CreateHeapBuffer allocates a named heap buffer of the given payload
// size, owned by a pointer slot of the most recently created frame with
// one free.
func (s *Simulator) CreateHeapBuffer(name string, size int) error {
	return s.model.CreateHeapBuffer(name, size)
}

// DeleteHeapBuffer releases the named heap buffer for reuse and clears
// the pointer slot referencing it.
func (s *Simulator) DeleteHeapBuffer(name string) error {
	return s.model.DeleteHeapBuffer(name)
}

// RenderSnapshot writes the stack and heap tables to w without mutating
// any state.
func (s *Simulator) RenderSnapshot(w io.Writer) error {
	return s.model.RenderSnapshot(w)
}

// Snapshot returns the stack and heap tables as a string.
func (s *Simulator) Snapshot() string {
	var buf bytes.Buffer
	// rendering into a bytes.Buffer cannot fail
	_ = s.model.RenderSnapshot(&buf)
	return buf.String()
}

// Exec reads commands from r, one per line, and applies them until Q or
// EOF. Operation failures are reported to the error writer and do not
// stop execution.
func (s *Simulator) Exec(r io.Reader) error {
	return command.NewDispatcher(s.model, s.out, s.errOut).Run(r)
}

// ExecString executes the given newline-separated commands.
func (s *Simulator) ExecString(commands string) error {
	return s.Exec(strings.NewReader(commands))
}

// ExecFile executes the commands in the named file, read through the
// Simulator's filesystem.
func (s *Simulator) ExecFile(path string) error {
	f, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return s.Exec(f)
}

// Interactive runs a prompted session reading commands from r until Q
// or EOF.
func (s *Simulator) Interactive(r io.Reader) error {
	fmt.Fprintln(s.out, "Type Q or q to quit")
	return command.NewDispatcher(s.model, s.out, s.errOut, command.WithPrompt()).Run(r)
}
