// Package serialization provides the keyed reader/writer pair entities use to
// convert themselves to and from their structured JSON representation.
//
// The Serializer keeps fields in write order. The Deserializer is order
// independent, ignores unknown keys and distinguishes required reads, which fail
// with a MissingRequiredPropertyError, from optional reads, which fall back to a
// caller supplied default.
package serialization

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mosaic-lab/account"
)

// Serializable is implemented by every entity that can write itself.
type Serializable interface {
	Serialize(s *Serializer)
}

// Pair is one entry of an ordered string mapping.
type Pair struct {
	Key   string
	Value string
}

type field struct {
	key   string
	value json.RawMessage
}

type Serializer struct {
	fields []field
	err    error
}

func NewSerializer() *Serializer {
	return &Serializer{}
}

func (s *Serializer) WriteString(key, value string) {
	s.writeValue(key, value)
}

func (s *Serializer) WriteInt(key string, value int) {
	s.writeValue(key, value)
}

func (s *Serializer) WriteUint64(key string, value uint64) {
	s.writeValue(key, value)
}

func (s *Serializer) WriteBool(key string, value bool) {
	s.writeValue(key, value)
}

// WriteAccount writes the hex encoded public key of the account.
func (s *Serializer) WriteAccount(key string, value account.Account) {
	s.WriteString(key, value.PublicKey().String())
}

func (s *Serializer) WriteObject(key string, value Serializable) {
	child := NewSerializer()
	value.Serialize(child)
	raw, err := child.MarshalJSON()
	if err != nil {
		s.fail(fmt.Errorf("object %q: %w", key, err))
		return
	}
	s.set(key, raw)
}

// WriteStringMap writes pairs as a JSON object, preserving their order.
func (s *Serializer) WriteStringMap(key string, pairs []Pair) {
	child := NewSerializer()
	for _, p := range pairs {
		child.WriteString(p.Key, p.Value)
	}
	raw, err := child.MarshalJSON()
	if err != nil {
		s.fail(fmt.Errorf("map %q: %w", key, err))
		return
	}
	s.set(key, raw)
}

// Keys returns the written keys in write order.
func (s *Serializer) Keys() []string {
	keys := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		keys = append(keys, f.key)
	}
	return keys
}

func (s *Serializer) MarshalJSON() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Serializer) writeValue(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.fail(fmt.Errorf("value %q: %w", key, err))
		return
	}
	s.set(key, raw)
}

// set replaces an existing key in place so a rewrite keeps the original position.
func (s *Serializer) set(key string, raw json.RawMessage) {
	for i := range s.fields {
		if s.fields[i].key == key {
			s.fields[i].value = raw
			return
		}
	}
	s.fields = append(s.fields, field{key: key, value: raw})
}

func (s *Serializer) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// SerializeToJSON renders a Serializable as a JSON object.
func SerializeToJSON(value Serializable) ([]byte, error) {
	s := NewSerializer()
	value.Serialize(s)
	return s.MarshalJSON()
}
