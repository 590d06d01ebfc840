package model

// IntervalsOverlap checks whether two intervals share a positive amount of minutes on the same day.
// Intervals are half-open, so one ending exactly when the other starts does not overlap it
func IntervalsOverlap(a, b TimeInterval) bool {
	return a.Day == b.Day && !(a.End() <= b.Start() || b.End() <= a.Start())
}

// SectionsCollide checks whether any interval of a overlaps any interval of b
func SectionsCollide(a, b []TimeInterval) bool {
	for _, intervalA := range a {
		for _, intervalB := range b {
			if IntervalsOverlap(intervalA, intervalB) {
				return true
			}
		}
	}
	return false
}

// CollidesWithDontFills checks whether any interval overlaps a blocked window
func CollidesWithDontFills(times []TimeInterval, dontFills []DontFill) bool {
	for _, dontFill := range dontFills {
		if SectionsCollide(times, dontFill.Times) {
			return true
		}
	}
	return false
}
