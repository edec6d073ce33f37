package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the storage type of a dataset column.
type Kind int

const (
	// KindNumeric columns hold floating point values; missing is the system-missing marker.
	KindNumeric Kind = iota // numeric
	// KindText columns hold strings of a fixed declared width.
	KindText // text
)

// ParseKind resolves a case-insensitive kind name. "string" is accepted as an
// alias for text.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "numeric", "number":
		return KindNumeric, nil
	case "text", "string":
		return KindText, nil
	default:
		return KindNumeric, fmt.Errorf("unknown column kind %q (expected numeric or text)", name)
	}
}
