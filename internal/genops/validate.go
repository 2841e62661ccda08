package genops

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	identLikeRe    = regexp.MustCompile(`^[A-Za-z0-9_]*$`)
	propertyNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	targetNameRe   = regexp.MustCompile(`^[A-Za-z0-9_.:+-]+$`)
	versionParamRe = regexp.MustCompile(`^[0-9.]*$`)
)

// parseInteger parses the integer literal forms EQUAL accepts: an optional
// leading sign, then a decimal, `0x`/`0X` hex, leading-zero octal, or
// `0b`/`0B` binary literal. strconv's base-0 prefix detection covers all
// four, with overflow and trailing junk both surfacing as errors. Base 0
// also admits Go's `0o` octal prefix and `_` digit separators, which this
// grammar does not; reject those before delegating.
func parseInteger(s string) (int64, bool) {
	rest := s
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	if len(rest) > 1 && rest[0] == '0' && (rest[1] == 'o' || rest[1] == 'O') {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// compareVersions implements the version-comparison rule:
// lexicographic comparison of dot-separated non-negative integer
// components, with missing trailing components read as 0. ok is false if
// any present component is not a valid non-negative integer.
func compareVersions(a, b string) (cmp int, ok bool) {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int64
		if i < len(as) {
			v, err := strconv.ParseInt(as[i], 10, 64)
			if err != nil || v < 0 {
				return 0, false
			}
			av = v
		}
		if i < len(bs) {
			v, err := strconv.ParseInt(bs[i], 10, 64)
			if err != nil || v < 0 {
				return 0, false
			}
			bv = v
		}
		if av != bv {
			if av < bv {
				return -1, true
			}
			return 1, true
		}
	}
	return 0, true
}

// boolOffEquivalents are the case-insensitive strings the BOOL operator
// treats as false, beyond the empty string itself.
var boolOffEquivalents = []string{"0", "off", "no", "false", "n", "ignore", "notfound"}

func isBoolOff(s string) bool {
	if s == "" {
		return true
	}
	lower := strings.ToLower(s)
	for _, off := range boolOffEquivalents {
		if lower == off {
			return true
		}
	}
	return strings.HasSuffix(lower, "-notfound")
}
