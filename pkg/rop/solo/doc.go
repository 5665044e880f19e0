// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions are the building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Validate/AndValidate: apply a check producing a typed failure
// - AndThen: move from Result[In, E] to Result[Out, E], short-circuiting failures
// - Map/MapError: transform one side and leave the other untouched
// - Try: call a function (Out, error) and convert the error
// - Recover: turn selected failures back into successes
// - Tee/DoubleTee: side-effect helpers
// - Match: reduce to a concrete value via success/failure handlers
// - Errors: expose a failure for accumulation
package solo
