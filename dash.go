package ggsnap

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	// The stroke begins at this point in the pattern cycle.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as absolute values.
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}

	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// NormalizedOffset returns the offset normalized to be within one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	return wrapPhase(d.Offset, d.PatternLength())
}

// Segments returns the visible [start, end) intervals of a dashed line of
// the given length, measured from the start of the line.
// A solid (non-dashed) pattern yields a single interval covering the line.
func (d *Dash) Segments(length float64) [][2]float64 {
	if length <= 0 {
		return nil
	}
	if !d.IsDashed() {
		return [][2]float64{{0, length}}
	}

	arr := d.effectiveArray()
	pos := d.NormalizedOffset()
	i := 0
	for pos >= arr[i] && pos > 0 {
		pos -= arr[i]
		i = (i + 1) % len(arr)
	}

	var segs [][2]float64
	remaining := arr[i] - pos
	for t := 0.0; t < length; {
		seg := math.Min(remaining, length-t)
		if i%2 == 0 && seg > 0 {
			if n := len(segs); n > 0 && segs[n-1][1] == t {
				segs[n-1][1] = t + seg
			} else {
				segs = append(segs, [2]float64{t, t + seg})
			}
		}
		t += seg
		i = (i + 1) % len(arr)
		remaining = arr[i]
	}
	return segs
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// DashPhase returns the offset into a [dashLength, skipLength] pattern that
// makes a dashed stroke along a line of lineLength symmetric about the line's
// midpoint.
//
// Two candidates are considered: the phase that centers a dash on the
// midpoint and the one that centers a gap. Each is reduced modulo the pattern
// period and snapped to the nearest multiple of 1/scale. A candidate whose
// cut at the ends falls inside a dash wins over one that falls inside a gap;
// between two dash cuts the one leaving the longer dash visible wins, and
// between two gap cuts the one leaving the shorter gap visible wins.
func DashPhase(lineLength, dashLength, skipLength, scale float64) float64 {
	period := dashLength + skipLength
	if lineLength <= 0 || dashLength <= 0 || period <= 0 {
		return 0
	}
	if scale <= 0 {
		scale = 1
	}

	half := lineLength / 2
	dashCentered := snapPhase(dashLength/2-half, period, scale)
	gapCentered := snapPhase(dashLength+skipLength/2-half, period, scale)

	dashCut := dashCentered < dashLength
	gapCut := gapCentered < dashLength
	switch {
	case dashCut && !gapCut:
		return dashCentered
	case gapCut && !dashCut:
		return gapCentered
	case dashCut && gapCut:
		if dashLength-gapCentered > dashLength-dashCentered {
			return gapCentered
		}
		return dashCentered
	default:
		if period-gapCentered < period-dashCentered {
			return gapCentered
		}
		return dashCentered
	}
}

// snapPhase wraps v into [0, period) and rounds it to the device pixel grid.
func snapPhase(v, period, scale float64) float64 {
	v = wrapPhase(v, period)
	v = math.Round(v*scale) / scale
	return wrapPhase(v, period)
}

func wrapPhase(v, period float64) float64 {
	if period <= 0 {
		return 0
	}
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}
