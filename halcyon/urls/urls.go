package urls

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/therobotinitiative/Halcyon/halcyon"
)

// disallowedURIChars are characters RFC 3986 excludes from every URI component.
const disallowedURIChars = " \t\r\n\"<>\\^`{|}"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	return validate
}

// ParseURL parses text as an absolute URL.
// It returns false when text is empty, contains characters no URI may contain, or
// is not a syntactically valid absolute URL.
//
// Example:
//
//	endpoint, ok := urls.ParseURL(cfg.Endpoint)
//	if !ok {
//	    endpoint = defaultEndpoint
//	}
func ParseURL(text string) (*url.URL, bool) {
	u, err := parseURL(text)

	return u, err == nil
}

// ParseURLContext behaves like ParseURL and reports a swallowed failure at debug
// level through the logger carried by ctx.
func ParseURLContext(ctx context.Context, text string) (*url.URL, bool) {
	u, err := parseURL(text)
	halcyon.LogSwallowed(ctx, "urls.ParseURL", err)

	return u, err == nil
}

// ParseURI parses text as a URI reference.
// It returns false when text contains characters no URI may contain or is otherwise
// malformed.
func ParseURI(text string) (*url.URL, bool) {
	u, err := parseURI(text)

	return u, err == nil
}

// ParseURIContext behaves like ParseURI and reports a swallowed failure at debug
// level through the logger carried by ctx.
func ParseURIContext(ctx context.Context, text string) (*url.URL, bool) {
	u, err := parseURI(text)
	halcyon.LogSwallowed(ctx, "urls.ParseURI", err)

	return u, err == nil
}

// URLToString returns the canonical form of u, or false when u is nil.
func URLToString(u *url.URL) (string, bool) {
	if u == nil {
		return "", false
	}

	return u.String(), true
}

// URIToString returns the canonical form of u, or false when u is nil.
//
// URLs and URI references share *url.URL, so this is URLToString under the name
// that reads better next to ParseURI.
func URIToString(u *url.URL) (string, bool) {
	return URLToString(u)
}

func parseURL(text string) (*url.URL, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty URL", halcyon.ErrAbsent)
	}

	if err := checkURIChars(text); err != nil {
		return nil, err
	}

	if err := getValidator().Var(text, "url"); err != nil {
		return nil, fmt.Errorf("%w: not an absolute URL: %w", halcyon.ErrInvalid, err)
	}

	u, err := url.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halcyon.ErrInvalid, err)
	}

	return u, nil
}

func parseURI(text string) (*url.URL, error) {
	if err := checkURIChars(text); err != nil {
		return nil, err
	}

	u, err := url.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", halcyon.ErrInvalid, err)
	}

	return u, nil
}

// checkURIChars rejects text that url.Parse would accept only by escaping on output,
// which breaks the parse/print round trip.
func checkURIChars(text string) error {
	if i := strings.IndexAny(text, disallowedURIChars); i >= 0 {
		return fmt.Errorf("%w: illegal character %q at index %d", halcyon.ErrInvalid, text[i], i)
	}

	return nil
}
