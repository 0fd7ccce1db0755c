// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import "unicode/utf16"

// HashString is a deterministic, non-cryptographic 32-bit rolling hash
// (h = h*31 + c over UTF-16 code units, wrapping at int32) returned as its
// absolute value. The same string always yields the same number, which
// keeps document IDs identical to those computed by the browser client.
// Distinct strings usually, but not always, hash differently.
func HashString(s string) int64 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}
