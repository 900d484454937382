// Package ir describes the three-address intermediate representation that the
// dataflow core analyzes: variables and their primitive types, the closed
// family of pure and side-effectful expressions, and the closed family of
// statements that make up a method body.
//
// Building this IR from source is outside the scope of this module; the
// types here exist so that the dataflow core and its tests have something
// concrete to analyze.
package ir
