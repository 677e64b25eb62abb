// Package matrix is the dense linear-algebra engine behind the least-squares
// solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with direct (At/Set) and by-reference
//     (Ref) element access and an explicit Destroy.
//   - NewDense (zeroed) and NewRaw (unspecified contents) constructors backed
//     by a size-class buffer pool.
//   - Transpose and Mul kernels with a *Dense fast path and a generic Matrix
//     fallback.
//   - Scope, which owns the intermediates of one computation and releases
//     them in LIFO order, with an optional element budget.
//   - Validators and AllClose for shape checks and tolerant comparison.
//
// Element accessors trust the caller's indices. Build with -tags matrixdebug
// to turn every access into a bounds assertion.
package matrix
