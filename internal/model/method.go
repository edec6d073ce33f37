package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Method -linecomment -output=method_string.go

// Method selects how a column's substituted values are derived.
type Method int

const (
	// MethodSequential numbers distinct values 0, 1, 2, ... in order of first appearance.
	MethodSequential Method = iota // sequential
	// MethodRandom draws a uniform integer in [0, bound] for each distinct value.
	MethodRandom // random
	// MethodTransform applies value*scale + offset to numeric values.
	MethodTransform // transform
)

// Methods lists every method in declaration order.
var Methods = []Method{MethodSequential, MethodRandom, MethodTransform}

// ParseMethod resolves a case-insensitive method name.
func ParseMethod(name string) (Method, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, method := range Methods {
		if method.String() == normalized {
			return method, nil
		}
	}

	return MethodSequential, fmt.Errorf("unknown method %q (expected sequential, random or transform)", name)
}
