// Package console is the pretty-printing collaborator for dynamic values.
// A Console is constructed explicitly with its output writers rather than
// living as a module-level singleton, so hosts and tests control where
// output lands.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ts2go/runtime-go/pkg/runtime"
)

// Console writes formatted dynamic values to an out and err stream.
type Console struct {
	out        io.Writer
	errOut     io.Writer
	counters   map[string]int
	timers     map[string]time.Time
	groupLevel int
	now        func() time.Time
}

// New creates a console writing normal output to out and error output to
// errOut.
func New(out, errOut io.Writer) *Console {
	return &Console{
		out:      out,
		errOut:   errOut,
		counters: make(map[string]int),
		timers:   make(map[string]time.Time),
		now:      time.Now,
	}
}

func (c *Console) writeLine(w io.Writer, values []runtime.Value) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, runtime.Inspect(v))
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", c.groupLevel), strings.Join(parts, " "))
}

// Log prints the values to the output stream, space-separated.
func (c *Console) Log(values ...runtime.Value) {
	c.writeLine(c.out, values)
}

// Error prints the values to the error stream.
func (c *Console) Error(values ...runtime.Value) {
	c.writeLine(c.errOut, values)
}

// Warn prints the values to the error stream.
func (c *Console) Warn(values ...runtime.Value) {
	c.writeLine(c.errOut, values)
}

// Count increments and prints the named counter.
func (c *Console) Count(label string) {
	c.counters[label]++
	fmt.Fprintf(c.out, "%s: %d\n", label, c.counters[label])
}

// CountReset resets the named counter to zero.
func (c *Console) CountReset(label string) {
	c.counters[label] = 0
}

// Time starts the named timer.
func (c *Console) Time(label string) {
	c.timers[label] = c.now()
}

// TimeLog prints the named timer's elapsed time without stopping it.
func (c *Console) TimeLog(label string) {
	if start, ok := c.timers[label]; ok {
		fmt.Fprintf(c.out, "%s: %dms\n", label, c.now().Sub(start).Milliseconds())
	}
}

// TimeEnd prints the named timer's elapsed time and removes it.
func (c *Console) TimeEnd(label string) {
	if start, ok := c.timers[label]; ok {
		fmt.Fprintf(c.out, "%s: %dms\n", label, c.now().Sub(start).Milliseconds())
		delete(c.timers, label)
	}
}

// Group opens an indentation group, optionally labelled.
func (c *Console) Group(label string) {
	if label != "" {
		fmt.Fprintf(c.out, "%s%s\n", strings.Repeat("  ", c.groupLevel), label)
	}
	c.groupLevel++
}

// GroupCollapsed behaves like Group; collapsing is a browser affordance.
func (c *Console) GroupCollapsed(label string) {
	c.Group(label)
}

// GroupEnd closes the innermost indentation group.
func (c *Console) GroupEnd() {
	if c.groupLevel > 0 {
		c.groupLevel--
	}
}
