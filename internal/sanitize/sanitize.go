// Package sanitize strips markup from user-supplied free text before it is
// stored. Question and answer text comes straight from request bodies and is
// served back verbatim, so every write path must pass through Text.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.StrictPolicy()

// Text removes all HTML elements and attributes from s.
func Text(s string) string {
	return policy.Sanitize(s)
}
