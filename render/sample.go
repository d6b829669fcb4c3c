package render

import "github.com/Timmatt-Lee/xcur2png/xcursor"

// Sample thins frames down to at most target entries by even-stride
// selection: index floor(k*n/target) for k in [0,target). The first
// frame is always kept and selected indices stay in ascending order,
// so overall animation pacing is preserved rather than truncated to a
// prefix. Delays travel with the selected frames unchanged; dropped
// frames' delays are not redistributed.
//
// When len(frames) <= target (or target is not positive) the input
// slice is returned as is. When sampling does happen the stride n/target
// exceeds one, so the selected indices are strictly increasing and no
// frame repeats.
func Sample(frames []*xcursor.Frame, target int) []*xcursor.Frame {
	n := len(frames)
	if target <= 0 || n <= target {
		return frames
	}

	out := make([]*xcursor.Frame, 0, target)
	for k := 0; k < target; k++ {
		idx := k * n / target
		if idx > n-1 {
			idx = n - 1
		}
		out = append(out, frames[idx])
	}
	return out
}
