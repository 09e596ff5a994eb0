// Package zap adapts go.uber.org/zap to the halcyon/log Logger interface.
//
// Attach the adapter with halcyon.ContextWithLogger to receive the debug reports of
// the Context helper variants on a structured JSON logger.
package zap
