package graphics

// Keyframe curves: an ordered sequence of values evaluated at a
// normalized particle age. Sequences split [0, 1] into len-1 equal
// intervals:
//
//	i = 0       1       2      3          n-1
//	    |-------|-------|------|--- ... ---|
//	t = 0    1/(n-1)        3/(n-1)        1

// lerpFloats evaluates a float curve at t.
func lerpFloats(vals []float64, t float64) float64 {
	if len(vals) == 1 {
		return vals[0]
	}
	i, f := curveSpan(len(vals), t)
	return vals[i]*(1-f) + vals[i+1]*f
}

// lerpColors evaluates a color curve at t, component-wise.
func lerpColors(vals []Color, t float64) Color {
	if len(vals) == 1 {
		return vals[0]
	}
	i, f := curveSpan(len(vals), t)
	return vals[i].Lerp(vals[i+1], f)
}

// stepIndex picks the nearest-floor index of an n-entry sequence at t,
// clamped to [0, n-1]. Used for quad sequences, which switch discretely.
func stepIndex(n int, t float64) int {
	s := t * float64(n)
	i := 0
	if s > 0 {
		i = int(s)
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// curveSpan maps t to an interval index i in [0, n-2] and the
// fractional position f within it.
func curveSpan(n int, t float64) (int, float64) {
	s := t * float64(n-1)
	i := 0
	if s > 0 {
		i = int(s)
	}
	if i > n-2 {
		i = n - 2
	}
	return i, s - float64(i)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
