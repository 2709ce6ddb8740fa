// Package tui provides immediate-mode drawing primitives over a cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell
// buffer. All drawing operations are relative to region bounds with automatic
// clipping. No widget state is retained; the application owns the render loop
// and rebuilds the buffer every frame.
package tui
