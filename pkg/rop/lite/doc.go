// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is designed for simple fan-out/fan-in
// flows. A canceled context stops every lane; unfinished items are dropped.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with a fixed number of lines
// - AndThen/Map/Tee: lift solo operations into engines
// - Finally: reduce Result[In, E] to Out on completion
package lite
