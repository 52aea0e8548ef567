package util

import (
	"strconv"
	"strings"
)

// JoinKey combines key fragments into one composite map key.
// Fragments are length-prefixed so that ("ab","c") and ("a","bc")
// produce different keys.
func JoinKey(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
		b.WriteByte('|')
	}
	return b.String()
}
