package utils

import "time"

const referenceLayout = "20060102150405"

// Reference builds a human-readable submission reference: a short prefix
// followed by the current timestamp to second precision, e.g.
// ENQ20240115103000. Two submissions landing in the same second share a
// reference; references are correlation aids, not unique keys.
func Reference(prefix string) string {
	return prefix + time.Now().Format(referenceLayout)
}
