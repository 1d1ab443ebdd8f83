package main

import "strings"

const defaultContentType = "application/octet-stream"

type contentTypeRule struct {
	suffix   string
	mimeType string
}

// Order matters: first hit, first served.
// Matching is case sensitive, so "INDEX.HTML" falls through to the default.
var contentTypeRules = []contentTypeRule{
	{".html", "text/html"},
	{".svg", "image/svg+xml"},
	{".png", "image/png"},
}

// contentTypeFor infers the Content-Type header for an object key from its suffix.
func contentTypeFor(key string) string {
	for _, rule := range contentTypeRules {
		if strings.HasSuffix(key, rule.suffix) {
			return rule.mimeType
		}
	}
	return defaultContentType
}
