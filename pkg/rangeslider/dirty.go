package rangeslider

import "strings"

// Dirty is a set of control parts that need repainting.
type Dirty uint8

const (
	// DirtyTrack marks the track, including the highlighted range.
	DirtyTrack Dirty = 1 << iota
	// DirtyLowerThumb marks the lower thumb.
	DirtyLowerThumb
	// DirtyUpperThumb marks the upper thumb.
	DirtyUpperThumb

	// DirtyNone is the empty set.
	DirtyNone Dirty = 0
	// DirtyAll marks every part.
	DirtyAll = DirtyTrack | DirtyLowerThumb | DirtyUpperThumb
)

// Has reports whether every part in other is also in d.
func (d Dirty) Has(other Dirty) bool {
	return d&other == other
}

func (d Dirty) String() string {
	if d == DirtyNone {
		return "none"
	}
	var parts []string
	if d.Has(DirtyTrack) {
		parts = append(parts, "track")
	}
	if d.Has(DirtyLowerThumb) {
		parts = append(parts, "lower")
	}
	if d.Has(DirtyUpperThumb) {
		parts = append(parts, "upper")
	}
	return strings.Join(parts, "|")
}
