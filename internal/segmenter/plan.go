package segmenter

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Segment is one time range of the input, Index is 1-based
type Segment struct {
	Index  int
	Start  float64
	Length float64
}

// End returns the exclusive end offset in seconds
func (s Segment) End() float64 {
	return s.Start + s.Length
}

// Plan partitions [0, duration) into ranges of at most maxLength seconds.
// There is always at least one segment; the last one carries the remainder.
func Plan(duration, maxLength float64) []Segment {
	if maxLength <= 0 || duration < 0 {
		return nil
	}

	count := int(math.Floor(duration / maxLength))
	if math.Mod(duration, maxLength) > 0 || duration == 0 {
		count++
	}

	segments := make([]Segment, 0, count)
	for i := 0; i < count; i++ {
		start := float64(i) * maxLength
		segments = append(segments, Segment{
			Index:  i + 1,
			Start:  start,
			Length: math.Min(maxLength, duration-start),
		})
	}
	return segments
}

// SegmentName is the deterministic file name of segment index for stem
func SegmentName(stem string, index int) string {
	return fmt.Sprintf("%s_segment_%03d.mp3", stem, index)
}

// Stem returns the file name of path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
