// Package polyclip computes the four Boolean set operations — intersection, union, difference,
// and symmetric difference (xor) — on planar polygons with holes, using the Martínez–Rueda–Feito
// sweep-line algorithm with an adaptive orientation predicate.
//
// # Coordinate system
//
// This library assumes a right-handed Cartesian coordinate system: the x-axis increases to the
// right, the y-axis increases upward. Orientation (clockwise/counterclockwise) is defined relative
// to this convention.
//
// # Packages
//
//   - [github.com/cartforge/polyclip/point]: the Point primitive and the exact orientation predicate.
//   - [github.com/cartforge/polyclip/polygon]: Ring, Polygon and MultiPolygon, the public input/output
//     shapes, plus ring well-formedness checks.
//   - [github.com/cartforge/polyclip/boolean]: the sweep-line kernel itself — event queue, status
//     structure, subdivision driver, field computation, intersection handling and contour assembly.
//
// # Acknowledgments
//
// The kernel implements the algorithm described by Martínez, Rueda and Feito in "A simple algorithm
// for Boolean operations on polygons" (Computers & Geometry, 2009), following the structure of the
// reference implementation at https://github.com/21re/rust-geo-booleanop.
package polyclip
