// Package lcurve generates space-filling and fractal curves from
// Lindenmayer systems.
//
// Producing a curve happens in three independent stages:
//
//  1. Expansion. An [LSystem] holds a sequence of symbols. [LSystem.Iterate]
//     replaces every symbol by its production rule, all at once, yielding
//     the next generation.
//  2. Reification. [LSystem.Reify] interprets the symbols as turtle
//     commands and yields one [Point] per segment drawn. [LSystem.Path]
//     additionally includes the pen's final position.
//  3. Condensing. [Condense] drops vertices that lie on a straight line
//     between their neighbours, which considerably reduces the number of
//     points of curves such as [Peano].
//
// # Alphabets
//
// Each curve family has its own alphabet type, so that production rules
// cannot mix symbols of different curves. The package includes [Dragon],
// [TerDragon], [Koch], [Peano], [Gosper] and [Sierpinski]. Alphabets that
// are only known at run time, for example those read from configuration
// files, can be described with a [Table].
//
// [Family] erases the alphabet type and bundles it with an axiom and turn
// step, and [Lookup] finds the built-in families by name.
//
// # Turtle conventions
//
// The turtle starts at the origin heading along the positive x axis. Angles
// are in radians and increase anti-clockwise, so curves are described in a
// y-up coordinate system. Renderers that draw into y-down images have to flip
// the y axis (see [FitInto]).
//
// In all built-in alphabets '+' turns left and '-' turns right, except for
// [Sierpinski], which uses the opposite convention.
//
// # Iterators
//
// As with the rest of the package's geometry, sequences that do not need
// random access are represented as iterators. Reify is lazy: a consumer can
// stop early, drawing only part of a curve, without interpreting the rest of
// the sequence. [CondenseSeq] consumes its input before yielding, but only
// keeps the condensed points.
//
// Sequence length grows exponentially with the number of generations. Use
// [PredictLen] to find the length of a generation before expanding it.
package lcurve
