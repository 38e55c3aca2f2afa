package spatialmath

// ResamplePolyline walks the polyline and returns points spaced spacing apart along its arc length, starting with
// the first point. The tail shorter than spacing is dropped. A non-positive spacing returns a copy of the input.
func ResamplePolyline[T Float](points []Vector[T], spacing T) []Vector[T] {
	if len(points) == 0 {
		return nil
	}
	if !(spacing > 0) {
		return append([]Vector[T](nil), points...)
	}
	out := []Vector[T]{points[0]}
	seg := 0
	var ratio T // position within the current segment, in [0, 1)
	remaining := spacing
	for seg < len(points)-1 {
		segLen := points[seg+1].Distance(points[seg])
		left := segLen * (1 - ratio)
		if left > remaining {
			ratio += remaining / segLen
			out = append(out, points[seg].Mul(1-ratio).Add(points[seg+1].Mul(ratio)))
			remaining = spacing
			continue
		}
		remaining -= left
		ratio = 0
		seg++
	}
	return out
}

// ParallelTransportPolyline returns a binormal for every vertex of a closed polyline. The first is perpendicular
// to the first segment; each following one is the previous carried over by the minimum rotation between
// consecutive segments, with the last vertex wrapping around to the first. Fewer than 2 points yield nil.
func ParallelTransportPolyline[T Float](points []Vector[T]) []Vector[T] {
	n := len(points)
	if n < 2 {
		return nil
	}
	binormals := make([]Vector[T], n)
	binormals[0], _ = FrameFromZVector(points[1].Sub(points[0]))
	for i := 1; i < n; i++ {
		v01 := points[i].Sub(points[i-1])
		v12 := points[(i+1)%n].Sub(points[i])
		binormals[i] = MinimumRotationMatrix(v01, v12).MulVec(binormals[i-1])
	}
	return binormals
}
