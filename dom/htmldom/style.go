// CLAUDE:SUMMARY Parses overflow declarations out of inline style attributes.
package htmldom

import (
	"regexp"
	"strings"
)

var (
	overflowXPat    = regexp.MustCompile(`(?i)overflow-x\s*:\s*([a-z]+)`)
	overflowYPat    = regexp.MustCompile(`(?i)overflow-y\s*:\s*([a-z]+)`)
	overflowBothPat = regexp.MustCompile(`(?i)overflow\s*:\s*([a-z]+)`)
)

// overflowFromStyle extracts overflow-x/overflow-y from an inline style
// string. The axis-specific property wins over the shorthand; absent
// declarations come back as "visible", the CSS initial value.
func overflowFromStyle(style string) (x, y string) {
	x, y = "visible", "visible"
	if style == "" {
		return x, y
	}
	if m := overflowBothPat.FindStringSubmatch(style); m != nil {
		x, y = strings.ToLower(m[1]), strings.ToLower(m[1])
	}
	if m := overflowXPat.FindStringSubmatch(style); m != nil {
		x = strings.ToLower(m[1])
	}
	if m := overflowYPat.FindStringSubmatch(style); m != nil {
		y = strings.ToLower(m[1])
	}
	return x, y
}
