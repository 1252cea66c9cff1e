// CLAUDE:SUMMARY Extracts the persist key from a wrapper's serialized-props attribute; malformed payloads degrade to "no key".
// Package identity parses the caller-declared identity key out of a wrapper
// element's serialized properties. The props attribute holds a JSON object
// whose entries are (type-tag, payload) pairs; the key property must be
// [0, "<key>"] — tag 0 denotes a plain string. Anything else means the
// wrapper is simply not tracked; nothing here returns an error.
package identity

import (
	"encoding/json"

	"github.com/hazyhaar/domswap/dom"
)

// Key extracts the identity key from el's attr under prop. ok is false
// for a missing attribute, malformed JSON, an absent property, wrong
// arity, a non-zero type tag, or a non-string payload.
func Key(el dom.Element, attr, prop string) (key string, ok bool) {
	raw, present := el.Attr(attr)
	if !present {
		return "", false
	}

	var props map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &props); err != nil {
		return "", false
	}
	val, present := props[prop]
	if !present {
		return "", false
	}

	var pair []json.RawMessage
	if err := json.Unmarshal(val, &pair); err != nil || len(pair) != 2 {
		return "", false
	}

	var tag float64
	if err := json.Unmarshal(pair[0], &tag); err != nil || tag != 0 {
		return "", false
	}
	if err := json.Unmarshal(pair[1], &key); err != nil {
		return "", false
	}
	return key, true
}
