// Package viz provides the terminal progress view for grid evaluation.
//
// The view is a Bubble Tea model fed by the evaluator:
//
//   - [ProgressModel]: progress bar, throughput and a styled summary on completion
//   - [RunWithProgress]: evaluates a grid while the model is on screen
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Q, Ctrl+C - cancel the evaluation
package viz
