// Package urls parses and formats URLs and URI references without returning errors.
//
// ParseURL accepts absolute URLs only (a scheme plus a host, an opaque part or a
// fragment, or a file URL). ParseURI accepts any RFC 3986 URI reference, relative
// references and the empty reference included. Both return false on any syntax
// failure, and both produce *url.URL values.
package urls
