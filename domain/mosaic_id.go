package domain

import (
	"fmt"
	"mosaic-lab/errors"
	"mosaic-lab/serialization"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	MaxMosaicNameLen = 32

	mosaicIDSeparator = " * "
)

var mosaicNamePattern = regexp.MustCompile(`^(?i)[a-z0-9][a-z0-9 '_-]*$`)

// MosaicID identifies a mosaic inside a namespace.
//
// The name is compared case-insensitively: "Alice's vouchers" and
// "ALICE'S vouchers" are the same mosaic. The original casing is kept for display.
type MosaicID struct {
	namespaceID NamespaceID
	name        string
}

// MosaicKey is the comparable identity of a MosaicID, suitable as a map key.
type MosaicKey struct {
	NamespaceID NamespaceID
	Name        string
}

func NewMosaicID(namespaceID NamespaceID, name string) (MosaicID, error) {
	if namespaceID.IsZero() {
		return MosaicID{}, errors.NewValidationError("namespaceId")
	}
	if name == "" {
		return MosaicID{}, errors.NewValidationError("name")
	}
	if len(name) > MaxMosaicNameLen {
		return MosaicID{}, errors.NewPrimitiveConstraintError("mosaicName", "%q exceeds %d characters", name, MaxMosaicNameLen)
	}
	if !mosaicNamePattern.MatchString(name) {
		return MosaicID{}, errors.NewPrimitiveConstraintError("mosaicName", "%q contains invalid characters", name)
	}
	return MosaicID{namespaceID: namespaceID, name: name}, nil
}

// ParseMosaicID reads the "<namespace> * <name>" display form.
func ParseMosaicID(s string) (MosaicID, error) {
	ns, name, ok := strings.Cut(s, mosaicIDSeparator)
	if !ok {
		return MosaicID{}, errors.NewPrimitiveConstraintError("mosaicId", "%q is not of the form <namespace> * <name>", s)
	}
	namespaceID, err := NewNamespaceID(ns)
	if err != nil {
		return MosaicID{}, err
	}
	return NewMosaicID(namespaceID, name)
}

func (m MosaicID) NamespaceID() NamespaceID {
	return m.namespaceID
}

func (m MosaicID) Name() string {
	return m.name
}

func (m MosaicID) IsZero() bool {
	return m.namespaceID.IsZero() && m.name == ""
}

func (m MosaicID) Key() MosaicKey {
	return MosaicKey{NamespaceID: m.namespaceID, Name: strings.ToLower(m.name)}
}

func (m MosaicID) Equal(other MosaicID) bool {
	return m.Key() == other.Key()
}

func (m MosaicID) Hash() uint64 {
	key := m.Key()
	return xxhash.Sum64String(key.NamespaceID.String() + mosaicIDSeparator + key.Name)
}

func (m MosaicID) String() string {
	return fmt.Sprintf("%s%s%s", m.namespaceID, mosaicIDSeparator, m.name)
}

func (m MosaicID) Serialize(s *serialization.Serializer) {
	s.WriteString("namespaceId", m.namespaceID.String())
	s.WriteString("name", m.name)
}

func ReadMosaicID(d *serialization.Deserializer) (MosaicID, error) {
	ns, err := d.ReadString("namespaceId")
	if err != nil {
		return MosaicID{}, err
	}
	namespaceID, err := NewNamespaceID(ns)
	if err != nil {
		return MosaicID{}, err
	}
	name, err := d.ReadString("name")
	if err != nil {
		return MosaicID{}, err
	}
	return NewMosaicID(namespaceID, name)
}
