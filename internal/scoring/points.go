package scoring

import "math"

// PointsForOdds converts American odds recorded at pick time into the point
// value of a correct pick. Underdog picks (positive odds) pay
// ceil(odds/100 + 1); favorite picks (negative odds) pay ceil(100/|odds| + 1).
// Rounding is always ceiling so round-number odds pay the same on both sides.
// Missing or zero odds fall back to FallbackPoints.
func PointsForOdds(odds *int) int {
	if odds == nil || *odds == 0 {
		return FallbackPoints
	}
	o := float64(*odds)
	if o > 0 {
		return int(math.Ceil(o/100 + 1))
	}
	return int(math.Ceil(100/math.Abs(o) + 1))
}
