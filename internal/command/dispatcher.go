// Package command implements the text front end of the simulator: a
// line-oriented reader that tokenizes one command per line, validates
// the argument types and calls exactly one Model operation.
package command

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tsatke/memsim/internal/memory"
)

// Dispatcher reads commands from an input source and applies them to a
// Model. Operation and parse failures are reported to the error writer
// and never stop the session; only Q (or exhausted input) does.
type Dispatcher struct {
	model  *memory.Model
	out    io.Writer
	errOut io.Writer
	prompt bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithPrompt makes the dispatcher print a "$ " prompt before reading
// each line, for interactive sessions.
func WithPrompt() Option {
	return func(d *Dispatcher) {
		d.prompt = true
	}
}

// NewDispatcher returns a Dispatcher operating on model, writing
// snapshots to out and error reports to errOut.
func NewDispatcher(model *memory.Model, out, errOut io.Writer, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		model:  model,
		out:    out,
		errOut: errOut,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run consumes input line by line until Q, EOF or a read error. Blank
// lines and lines starting with '#' are skipped.
func (d *Dispatcher) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	for {
		if d.prompt {
			fmt.Fprint(d.out, "$ ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if quit := d.dispatch(line); quit {
			return nil
		}
	}
	return scanner.Err()
}

func (d *Dispatcher) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	log.Debug("dispatching command", "cmd", cmd, "args", args)

	switch cmd {
	case "Q", "q":
		return true
	case "CF":
		name, ok := d.nameArg(cmd, args, 2, 0)
		if !ok {
			return false
		}
		addr, ok := d.intArg(cmd, args[1])
		if !ok {
			return false
		}
		d.report(d.model.CreateFrame(name, addr))
	case "DF":
		if d.wantArgs(cmd, args, 0) {
			d.report(d.model.DestroyFrame())
		}
	case "CI":
		name, ok := d.nameArg(cmd, args, 2, 0)
		if !ok {
			return false
		}
		value, ok := d.intArg(cmd, args[1])
		if !ok {
			return false
		}
		d.report(d.model.CreateInt(name, int32(value)))
	case "CD":
		name, ok := d.nameArg(cmd, args, 2, 0)
		if !ok {
			return false
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			d.reportf("%s: %q is not a number", cmd, args[1])
			return false
		}
		d.report(d.model.CreateDouble(name, value))
	case "CC":
		name, ok := d.nameArg(cmd, args, 2, 0)
		if !ok {
			return false
		}
		if len(args[1]) != 1 {
			d.reportf("%s: %q is not a single character", cmd, args[1])
			return false
		}
		d.report(d.model.CreateChar(name, args[1][0]))
	case "CH":
		name, ok := d.nameArg(cmd, args, 2, 0)
		if !ok {
			return false
		}
		size, ok := d.intArg(cmd, args[1])
		if !ok {
			return false
		}
		if size <= 0 {
			d.reportf("%s: size must be a positive integer, got %d", cmd, size)
			return false
		}
		d.report(d.model.CreateHeapBuffer(name, size))
	case "DH":
		name, ok := d.nameArg(cmd, args, 1, 0)
		if !ok {
			return false
		}
		d.report(d.model.DeleteHeapBuffer(name))
	case "SM":
		if d.wantArgs(cmd, args, 0) {
			d.report(d.model.RenderSnapshot(d.out))
		}
	case "help", "HELP":
		d.printHelp()
	default:
		d.reportf("unknown command %q, type help for a list of commands", cmd)
	}
	return false
}

// nameArg checks the argument count and returns the name argument at
// index idx.
func (d *Dispatcher) nameArg(cmd string, args []string, want, idx int) (string, bool) {
	if !d.wantArgs(cmd, args, want) {
		return "", false
	}
	return args[idx], true
}

func (d *Dispatcher) intArg(cmd, arg string) (int, bool) {
	// base 0 so that function addresses can be given as 0x hex
	v, err := strconv.ParseInt(arg, 0, 32)
	if err != nil {
		d.reportf("%s: %q is not an integer", cmd, arg)
		return 0, false
	}
	return int(v), true
}

func (d *Dispatcher) wantArgs(cmd string, args []string, want int) bool {
	if len(args) != want {
		d.reportf("%s takes %d argument(s), got %d", cmd, want, len(args))
		return false
	}
	return true
}

func (d *Dispatcher) report(err error) {
	if err != nil {
		d.reportf("%v", err)
	}
}

func (d *Dispatcher) reportf(format string, args ...interface{}) {
	fmt.Fprintf(d.errOut, "Error: "+format+"\n", args...)
}

func (d *Dispatcher) printHelp() {
	fmt.Fprint(d.out, `Commands:
  CF <name> <address>  create a frame for function <name>
  DF                   destroy the most recently created frame
  CI <name> <value>    create an integer in the current frame
  CD <name> <value>    create a double in the current frame
  CC <name> <char>     create a character in the current frame
  CH <name> <size>     allocate a heap buffer of <size> bytes
  DH <name>            delete the named heap buffer
  SM                   show the stack and heap
  Q                    quit
`)
}
