package echo

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestProbe_Fixed checks the contract external pipelines depend on: the
// probe value is exactly 100, always.
func TestProbe_Fixed(t *testing.T) {
	if got := Probe(); got != 100 {
		t.Fatalf("Probe() = %d, want 100", got)
	}
}

func TestFprint_Formats(t *testing.T) {
	values := []int{0, 1, 2, -7, Probe()}
	want := []string{"0\n", "1\n", "2\n", "-7\n", "100\n"}
	got := make([]string, 0, len(values))
	for _, v := range values {
		var buf bytes.Buffer
		if err := Fprint(&buf, v); err != nil {
			t.Fatalf("Fprint(%d): %v", v, err)
		}
		got = append(got, buf.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

// failWriter simulates a Write() failure
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, fmt.Errorf("mock write fail") }

func TestFprint_WriterError(t *testing.T) {
	if err := Fprint(failWriter{}, DefaultValue); err == nil {
		t.Fatalf("expected error from failing writer")
	}
}
