// Package echo implements the value-echoing core of echox.
package echo

import (
	"fmt"
	"io"
)

// DefaultValue is printed when --x is not supplied on the command line.
const DefaultValue = 1

// probeValue is what Probe returns. Pipelines compare binary output against
// this number, so it must never change.
const probeValue = 100

// Probe returns the fixed probe constant emitted by `echox probe`.
func Probe() int {
	return probeValue
}

// Fprint writes v followed by a newline to w.
func Fprint(w io.Writer, v int) error {
	_, err := fmt.Fprintf(w, "%d\n", v)
	return err
}
