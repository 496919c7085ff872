package perf

import (
	"fmt"
	"time"
)

// Block is a saved measurement. Start and End are clock readings.
type Block struct {
	Start   time.Duration
	End     time.Duration
	Elapsed time.Duration
}

func newBlock(start, end time.Duration) Block {
	return Block{Start: start, End: end, Elapsed: end - start}
}

// String returns the labelled fields of the block without its name.
func (b Block) String() string {
	return fmt.Sprintf("start time: %s | end time: %s | elapsed: %v",
		FormatReading(b.Start), FormatReading(b.End), b.Elapsed)
}

// Line formats the block the way LogTime hands it to the sink.
func (b Block) Line(name string) string {
	return fmt.Sprintf("%s timer | %s", name, b.String())
}

// FormatReading renders a clock reading as seconds with microsecond precision.
func FormatReading(d time.Duration) string {
	return fmt.Sprintf("%.6fs", d.Seconds())
}
