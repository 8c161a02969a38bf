// Package escape implements the escape-time test for the Mandelbrot set.
//
// For a point c in the complex plane the orbit z0 = 0, z(n+1) = z(n)^2 + c is
// followed for at most a fixed budget of iterations:
//
//   - [Evaluate]: validated entry point, returns the escape iteration or [Bounded]
//   - [Iterate]: the unchecked inner loop used once inputs are known to be valid
//   - [Orbit]: the visited orbit values, stopping at escape
//   - [Smooth]: continuous escape count for escaped points
//
// # Counting
//
// Iteration n is the step that produces z(n+1). A point escapes at n when
// |z(n+1)| > 2, tested as re^2+im^2 > 4. Every c with |c| > 2 escapes at 0,
// c = 1 escapes at 2, and c = 0 or c = -1 never escape.
//
// # Example
//
//	r, err := escape.Evaluate(complex(-0.75, 0.1), 100)
//	if err != nil {
//	    return err
//	}
//	if r.Bounded() {
//	    // likely a member of the set
//	}
package escape
