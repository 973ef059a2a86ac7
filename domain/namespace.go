package domain

import (
	"mosaic-lab/errors"
	"regexp"
	"strings"
)

const (
	MaxNamespaceLevels     = 3
	MaxRootNamespaceLen    = 16
	MaxSubNamespacePartLen = 64
)

var namespacePartPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// NamespaceID is a dot separated hierarchical name such as "alice.vouchers".
// Comparison is case-sensitive and parts are restricted to lower case.
type NamespaceID string

func NewNamespaceID(name string) (NamespaceID, error) {
	if name == "" {
		return "", errors.NewPrimitiveConstraintError("namespaceId", "must not be empty")
	}
	parts := strings.Split(name, ".")
	if len(parts) > MaxNamespaceLevels {
		return "", errors.NewPrimitiveConstraintError("namespaceId", "%q has more than %d levels", name, MaxNamespaceLevels)
	}
	for i, part := range parts {
		limit := MaxSubNamespacePartLen
		if i == 0 {
			limit = MaxRootNamespaceLen
		}
		if len(part) > limit {
			return "", errors.NewPrimitiveConstraintError("namespaceId", "part %q exceeds %d characters", part, limit)
		}
		if !namespacePartPattern.MatchString(part) {
			return "", errors.NewPrimitiveConstraintError("namespaceId", "part %q contains invalid characters", part)
		}
	}
	return NamespaceID(name), nil
}

func (n NamespaceID) String() string {
	return string(n)
}

func (n NamespaceID) IsZero() bool {
	return n == ""
}

// Root returns the top level namespace.
func (n NamespaceID) Root() NamespaceID {
	root, _, _ := strings.Cut(string(n), ".")
	return NamespaceID(root)
}

// Parent returns the enclosing namespace, or false for a root namespace.
func (n NamespaceID) Parent() (NamespaceID, bool) {
	i := strings.LastIndexByte(string(n), '.')
	if i < 0 {
		return "", false
	}
	return n[:i], true
}

func (n NamespaceID) Level() int {
	if n == "" {
		return 0
	}
	return strings.Count(string(n), ".") + 1
}
