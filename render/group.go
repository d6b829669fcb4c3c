package render

import (
	"fmt"

	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

// Size is the pixel size of a cursor frame, used as the grouping key.
// Hotspot and delay play no part in group membership.
type Size struct {
	W, H int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// GroupBySize buckets frames by their (width, height) pair. Frames keep
// their decode order within a group. The returned slice lists the sizes
// in first-encounter order, so callers iterate deterministically.
func GroupBySize(frames []*xcursor.Frame) (map[Size][]*xcursor.Frame, []Size) {
	groups := make(map[Size][]*xcursor.Frame)
	var order []Size
	for _, fr := range frames {
		k := Size{W: fr.Width, H: fr.Height}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], fr)
	}
	return groups, order
}
