// Package text provides nil-tolerant string helpers: textual forms, locale
// components and UUID parsing. No helper returns an error; false is the only
// failure signal.
package text
