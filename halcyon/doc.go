// Package halcyon provides the shared primitives of the null-tolerant helper packages.
//
// The helpers themselves live in subpackages (collections, numbers, text, urls and
// pointers). Every helper reports failure the same way: the comma-ok result is false.
// Three causes collapse into that single signal, named here by ErrAbsent, ErrInvalid
// and ErrRefused, and callers cannot tell them apart from the return value.
//
// The Context variants of the helpers keep that contract and additionally report the
// swallowed cause at debug level through the logger attached to the context:
//
//	ctx = halcyon.ContextWithLogger(ctx, logger)
//	port, ok := numbers.ToContext[int32](ctx, os.Getenv("PORT"))
package halcyon
