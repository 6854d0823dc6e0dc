package scaler

import "math"

// Span is the half-open interval [Start, End) over one source axis.
type Span struct {
	Start int
	End   int
}

// Len returns the number of source samples covered by s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether s covers no samples.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Partition splits an axis into targetLen contiguous spans, advancing a
// fractional cursor by ratio for each one. The cursor is never reset, so
// rounding carries forward instead of drifting per cell. Spans are empty when
// a step does not cross an integer boundary. Float accumulation can land just
// below an integer; use PartitionAxis when the ratio comes from integer sizes.
func Partition(targetLen int, ratio float32) []Span {
	if targetLen <= 0 {
		return nil
	}

	spans := make([]Span, targetLen)
	var cursor float32
	for i := range spans {
		start := int(math.Floor(float64(cursor)))
		cursor += ratio
		spans[i] = Span{Start: start, End: int(math.Floor(float64(cursor)))}
	}
	return spans
}

// PartitionAxis is Partition with ratio sourceLen/targetLen, computed exactly.
// The cursor is kept as the numerator over targetLen, so span ends are
// floor(k*sourceLen/targetLen) and the last span ends at sourceLen.
func PartitionAxis(sourceLen, targetLen int) []Span {
	if targetLen <= 0 {
		return nil
	}

	spans := make([]Span, targetLen)
	num := 0
	for i := range spans {
		start := num / targetLen
		num += sourceLen
		spans[i] = Span{Start: start, End: num / targetLen}
	}
	return spans
}
