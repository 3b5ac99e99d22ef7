// Package response turns sparse driver calibration tables into dense response
// curves.
//
// A [Model] holds an immutable table of control points and evaluates it by
// piecewise-linear interpolation. Queries outside the calibrated range continue
// the slope of the nearest boundary segment instead of clamping. [CutoffFrequency]
// gives the corner frequency of a first-order RC low-pass, and [Linspace],
// [Logspace] and [NewGrid] build the query grids the curves are rendered on.
//
// Everything in this package is pure: models can be shared between goroutines
// without locking.
package response
