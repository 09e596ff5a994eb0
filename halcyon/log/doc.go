// Package log is the diagnostics sink for the helpers' Context variants.
//
// A helper that swallows a failure reports it as one debug event carrying an
// Operation, a Cause and the wrapped error. Any backend satisfying Logger can
// receive those events; GoLogger writes them through the standard logger and the
// zap package adapts go.uber.org/zap.
package log
