// CLAUDE:SUMMARY Structural path codec: tag + 1-based same-tag sibling ordinal per step, both directions.
// Package treepath addresses a descendant element relative to a root by
// structure alone: each step down records the tag name and the element's
// 1-based ordinal among same-tag siblings, rendered as "tag[n]" segments
// joined by "/". The address survives attribute changes across a re-render;
// it assumes per-tag sibling order and counts are stable between Compute
// and Resolve.
package treepath

import (
	"strconv"
	"strings"

	"github.com/hazyhaar/domswap/dom"
)

// Compute returns the structural path of el relative to root. ok is false
// when root is not a proper ancestor of el.
func Compute(el, root dom.Element) (path string, ok bool) {
	if el == nil || root == nil || el.Equal(root) {
		return "", false
	}
	var segs []string
	for cur := el; !cur.Equal(root); cur = cur.Parent() {
		parent := cur.Parent()
		if parent == nil {
			return "", false
		}
		ord := 0
		for _, sib := range parent.Children() {
			if sib.Tag() == cur.Tag() {
				ord++
			}
			if sib.Equal(cur) {
				break
			}
		}
		segs = append(segs, cur.Tag()+"["+strconv.Itoa(ord)+"]")
	}
	// Collected leaf-first; reverse to root-first.
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, "/"), true
}

// Resolve walks a structural path down from root. ok is false when the
// path is malformed or any segment's ordinal is out of range.
func Resolve(path string, root dom.Element) (el dom.Element, ok bool) {
	if path == "" || root == nil {
		return nil, false
	}
	cur := root
	for _, seg := range strings.Split(path, "/") {
		tag, ord, good := parseSegment(seg)
		if !good {
			return nil, false
		}
		var next dom.Element
		n := 0
		for _, c := range cur.Children() {
			if c.Tag() != tag {
				continue
			}
			n++
			if n == ord {
				next = c
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// parseSegment splits "tag[n]" into its parts.
func parseSegment(seg string) (tag string, ord int, ok bool) {
	open := strings.IndexByte(seg, '[')
	if open <= 0 || !strings.HasSuffix(seg, "]") {
		return "", 0, false
	}
	tag = seg[:open]
	n, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil || n < 1 {
		return "", 0, false
	}
	return tag, n, true
}
