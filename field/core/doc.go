// Package core provides the numeric building blocks shared by every map
// type: the Scalar and Float constraints, compile-time numeric traits,
// allocation sizing, and construction options.
package core
