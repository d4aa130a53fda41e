// Package route synthesizes the intermediate waypoints of an orthogonal
// (Manhattan) edge route between two already-resolved perimeter points,
// given the direction each end exits/enters on.
package route

import (
	"drawioengine/core"
)

// stub is the fixed offset, in raw (hundredths-of-unit) coordinates, used
// for the mandatory first stub out of the source and any detour around an
// obstructing shape.
const stub = 20.0

// maxSteps bounds the direction-transition loop; each case below either
// shortens the remaining distance on some axis or flips a direction, and at
// most four flips are ever useful before the path is forced straight.
// waypoints is seeded with the initial stub point before this loop runs, so
// the total waypoint count is bounded by maxSteps+1; kept at 5 so that bound
// matches the spec's router-termination property (sequence length <= 6).
const maxSteps = 5

// Route returns the ordered intermediate waypoints between source and
// target (exclusive of both), routing from startDir and into endDir while
// keeping clear of sourceBox and targetBox. A degenerate route whose source
// equals its target yields no waypoints.
func Route(source core.Point, startDir core.Direction, target core.Point, endDir core.Direction, sourceBox, targetBox core.Rect) []core.Point {
	if source == target {
		return nil
	}

	p, pDir := step(source, startDir, stub), startDir
	q, qDir := target, endDir

	waypoints := []core.Point{p}
	start := true
	hugSource := true

	for i := 0; i < maxSteps; i++ {
		if complete(p, pDir, q, qDir) {
			break
		}

		var next core.Point
		switch {
		case axisAligned(p, q, pDir):
			// The cross axis already matches q's: finish the approach along
			// pDir in one step instead of re-bending onto an axis p is
			// already on.
			next = finishAxis(p, q, pDir)
		case pDir.Perpendicular(qDir) && pointingAtEachOther(p, pDir, q, qDir):
			next = routePerpendicularPointing(p, pDir, q, sourceBox, targetBox, start)
			hugSource = false
		case pDir == qDir.Opposite() && crossAligned(p, q, pDir) && pointingAtEachOther(p, pDir, q, qDir):
			next = routeOppositePointing(p, pDir, q)
			hugSource = false
		case pDir.Perpendicular(qDir):
			next = detour(p, pDir, sourceBox, targetBox, start, hugSource)
		case pDir == qDir.Opposite():
			next = step(p, pDir, stub)
			pDir = chooseDirectionTowards(next, q, pDir)
		default: // same direction
			next, qDir = sameDirectionStep(p, pDir, q, qDir, targetBox)
			if next == p {
				// p already inside the target box on this axis; retry with a
				// flipped qDir without emitting a duplicate waypoint.
				continue
			}
		}

		p = next
		if p == q {
			// The final approach lands exactly on target; target itself is
			// recorded separately, not as a waypoint.
			break
		}
		waypoints = append(waypoints, p)
		start = false
	}

	return waypoints
}

func step(p core.Point, d core.Direction, n float64) core.Point {
	switch d {
	case core.North:
		return core.Point{X: p.X, Y: p.Y - n}
	case core.East:
		return core.Point{X: p.X + n, Y: p.Y}
	case core.South:
		return core.Point{X: p.X, Y: p.Y + n}
	default: // West
		return core.Point{X: p.X - n, Y: p.Y}
	}
}

// complete reports whether p, heading pDir, already reaches q head-on: the
// two directions are opposite, and p's coordinate along pDir's axis has
// already passed q's, with the perpendicular coordinate matching.
func complete(p core.Point, pDir core.Direction, q core.Point, qDir core.Direction) bool {
	if p == q {
		return true
	}
	if pDir != qDir.Opposite() {
		return false
	}
	if pDir.Horizontal() {
		return p.Y == q.Y && reached(p.X, q.X, pDir)
	}
	return p.X == q.X && reached(p.Y, q.Y, pDir)
}

// axisAligned reports whether p already shares q's coordinate on the axis
// perpendicular to pDir, meaning the remaining approach is a straight run
// along pDir with no further bend required.
func axisAligned(p, q core.Point, pDir core.Direction) bool {
	if pDir.Horizontal() {
		return p.Y == q.Y && p != q
	}
	return p.X == q.X && p != q
}

// finishAxis advances p to q's coordinate along pDir, completing the
// straight run axisAligned detected.
func finishAxis(p, q core.Point, pDir core.Direction) core.Point {
	if pDir.Horizontal() {
		return core.Point{X: q.X, Y: p.Y}
	}
	return core.Point{X: p.X, Y: q.Y}
}

// crossAligned reports whether p and q already share the coordinate on the
// axis perpendicular to pDir, without requiring p != q.
func crossAligned(p, q core.Point, pDir core.Direction) bool {
	if pDir.Horizontal() {
		return p.Y == q.Y
	}
	return p.X == q.X
}

func reached(pv, qv float64, d core.Direction) bool {
	switch d {
	case core.East:
		return pv >= qv
	case core.West:
		return pv <= qv
	case core.South:
		return pv >= qv
	default: // North
		return pv <= qv
	}
}

// pointingAtEachOther reports whether advancing from p along pDir moves
// towards q's half-plane, and likewise for q along qDir towards p.
func pointingAtEachOther(p core.Point, pDir core.Direction, q core.Point, qDir core.Direction) bool {
	return facingTowards(p, pDir, q) && facingTowards(q, qDir, p)
}

func facingTowards(from core.Point, dir core.Direction, to core.Point) bool {
	switch dir {
	case core.East:
		return to.X >= from.X
	case core.West:
		return to.X <= from.X
	case core.South:
		return to.Y >= from.Y
	default: // North
		return to.Y <= from.Y
	}
}

// routePerpendicularPointing bends p onto q's axis, detouring around
// whichever shape obstructs the direct bend point.
func routePerpendicularPointing(p core.Point, pDir core.Direction, q core.Point, sourceBox, targetBox core.Rect, start bool) core.Point {
	var bend core.Point
	if pDir.Horizontal() {
		bend = core.Point{X: p.X, Y: q.Y}
	} else {
		bend = core.Point{X: q.X, Y: p.Y}
	}

	box := targetBox
	if start {
		box = sourceBox
	}
	if !clearOfBox(bend, box) {
		return detourAround(p, pDir, box)
	}
	return bend
}

// routeOppositePointing advances to the midpoint between p and q along
// pDir's axis when there is room, otherwise stubs out by a fixed amount.
func routeOppositePointing(p core.Point, pDir core.Direction, q core.Point) core.Point {
	if pDir.Horizontal() {
		gap := q.X - p.X
		if pDir == core.West {
			gap = -gap
		}
		if gap >= 2*stub {
			return core.Point{X: (p.X + q.X) / 2, Y: p.Y}
		}
		return step(p, pDir, stub)
	}
	gap := q.Y - p.Y
	if pDir == core.North {
		gap = -gap
	}
	if gap >= 2*stub {
		return core.Point{X: p.X, Y: (p.Y + q.Y) / 2}
	}
	return step(p, pDir, stub)
}

// detour bends around the shape p is currently hugging: the source shape
// while still in the starting stub or until a pointing case has routed away
// from it (hugSource), the target shape afterwards.
func detour(p core.Point, pDir core.Direction, sourceBox, targetBox core.Rect, start, hugSource bool) core.Point {
	box := targetBox
	if start || hugSource {
		box = sourceBox
	}
	return detourAround(p, pDir, box)
}

// detourAround advances p past box's far edge along pDir by one stub.
func detourAround(p core.Point, pDir core.Direction, box core.Rect) core.Point {
	switch pDir {
	case core.East:
		return core.Point{X: box.X + box.Width + stub, Y: p.Y}
	case core.West:
		return core.Point{X: box.X - stub, Y: p.Y}
	case core.South:
		return core.Point{X: p.X, Y: box.Y + box.Height + stub}
	default: // North
		return core.Point{X: p.X, Y: box.Y - stub}
	}
}

func clearOfBox(p core.Point, box core.Rect) bool {
	return p.X < box.X || p.X > box.X+box.Width || p.Y < box.Y || p.Y > box.Y+box.Height
}

// chooseDirectionTowards turns perpendicular to prev, towards q's side on
// the new axis: South/North by the sign of q.Y-p.Y after a horizontal
// heading, East/West by the sign of q.X-p.X after a vertical one.
func chooseDirectionTowards(p, q core.Point, prev core.Direction) core.Direction {
	dx, dy := q.X-p.X, q.Y-p.Y
	if prev.Horizontal() {
		if dy >= 0 {
			return core.South
		}
		return core.North
	}
	if dx >= 0 {
		return core.East
	}
	return core.West
}

// sameDirectionStep handles the case where p and q head in the same
// direction. If p is already inside the target box it returns p unchanged
// with qDir flipped, so the caller retries without emitting a waypoint.
// Otherwise it advances one stub along pDir, or, if that stub would land
// inside the target box, steps to the box's far side plus a stub. It does
// not route to the midpoint between p and q.
func sameDirectionStep(p core.Point, pDir core.Direction, q core.Point, qDir core.Direction, targetBox core.Rect) (core.Point, core.Direction) {
	if !clearOfBox(p, targetBox) {
		return p, qDir.Opposite()
	}

	mid := step(p, pDir, stub)
	if pDir.Horizontal() {
		mid.Y = p.Y
	} else {
		mid.X = p.X
	}
	if !clearOfBox(mid, targetBox) {
		return detourAround(p, pDir, targetBox), qDir
	}
	return mid, qDir
}
