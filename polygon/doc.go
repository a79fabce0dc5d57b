// Package polygon provides the user-facing polygon and multi-polygon types: validity checks,
// winding-direction normalization, and the pairwise self-intersection test a caller should run
// before handing a [MultiPolygon] to the boolean kernel.
//
// These types are plain data; they carry no algorithmic state of their own. The root package
// converts them to and from the boolean package's internal event-driven representation.
package polygon
