// Package boolean implements the sweep-line kernel that computes Boolean set operations
// (intersection, union, difference, xor) on planar polygons with holes.
//
// The kernel follows the Martínez–Rueda–Feito algorithm: build a priority queue of segment
// endpoint events ordered left-to-right, sweep it while maintaining an ordered status structure of
// the segments currently crossing the sweep line, split segments at computed intersections, compute
// in/out membership flags as each left event is inserted, then walk the events that survive into the
// result to reconnect them into closed, correctly nested contours.
//
// Every event lives in a flat arena for the duration of one call to [Run] and is referenced by the
// other structures (queue, status tree, sorted output) purely through its [eventIndex]; there are no
// reference cycles and nothing survives past the call.
package boolean
