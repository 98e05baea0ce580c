package treediff

import (
	"strconv"
	"strings"
)

// RootPath addresses the whole document: RFC 6901 names the root with the
// empty string
const RootPath = ""

// EscapeToken escapes a single JSON Pointer reference token per RFC 6901,
// replacing "~" with "~0" and then "/" with "~1". the order matters:
// escaping "/" first would corrupt the "~0" produced for "~"
func EscapeToken(raw string) string {
	raw = strings.Replace(raw, "~", "~0", -1)
	return strings.Replace(raw, "/", "~1", -1)
}

// UnescapeToken reverses EscapeToken, replacing "~1" with "/" and then "~0"
// with "~". again order matters, and it's the mirror of the escape order
func UnescapeToken(tok string) string {
	tok = strings.Replace(tok, "~1", "/", -1)
	return strings.Replace(tok, "~0", "~", -1)
}

// AppendKey extends a pointer with an object key, escaping the key
func AppendKey(parent, key string) string {
	return parent + "/" + EscapeToken(key)
}

// AppendIndex extends a pointer with an array index. indices need no
// escaping, they serialize as base-10 with no sign or leading zeros
func AppendIndex(parent string, i int) string {
	return parent + "/" + strconv.Itoa(i)
}
