// Package genident provides case-insensitive identifier comparison and
// normalization, used wherever the generator-expression language specifies
// case-insensitive matching (config names, MAP_IMPORTED_CONFIG_* entries,
// and the compiler/platform-id policy-gated fallback comparison).
//
// Node identifiers themselves (AND, TARGET_PROPERTY, ...) are looked up
// case-sensitively against the registry and do not go through this package.
package genident

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// collator is shared across calls; collate.Collator is safe for concurrent
// use once constructed.
var collator = collate.New(language.Und, collate.IgnoreCase, collate.IgnoreWidth)

// Normalize returns a form of s suitable for use as a case-insensitive map
// key: NFC-normalized and case-folded.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Equal reports whether a and b are equal under Unicode case folding and
// normalization. Preferred over Normalize(a) == Normalize(b) for one-off
// comparisons since it avoids allocating both normalized forms eagerly when
// the collator can short-circuit.
func Equal(a, b string) bool {
	return collator.CompareString(a, b) == 0
}

// Contains reports whether name appears (case-insensitively) in list.
func Contains(list []string, name string) bool {
	return Index(list, name) >= 0
}

// Index returns the index of the first case-insensitive match of name in
// list, or -1 if not found.
func Index(list []string, name string) int {
	for i, v := range list {
		if Equal(v, name) {
			return i
		}
	}
	return -1
}
