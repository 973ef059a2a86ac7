package serialization

import (
	"fmt"
	"math"
	"mosaic-lab/account"
	"mosaic-lab/errors"
	"strconv"

	"github.com/tidwall/gjson"
)

// DeserializationContext carries what a reader needs beyond the raw document.
type DeserializationContext struct {
	Accounts account.Lookup
}

func NewDeserializationContext(lookup account.Lookup) DeserializationContext {
	if lookup == nil {
		lookup = account.DirectLookup{}
	}
	return DeserializationContext{Accounts: lookup}
}

// Deserializer reads keyed values out of a JSON object. A key holding JSON null
// is treated as absent.
type Deserializer struct {
	object gjson.Result
	ctx    DeserializationContext
}

func NewDeserializer(data []byte, ctx DeserializationContext) (*Deserializer, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.ErrMalformedDocument
	}
	object := gjson.ParseBytes(data)
	if !object.IsObject() {
		return nil, errors.ErrMalformedDocument
	}
	return newDeserializer(object, ctx), nil
}

func newDeserializer(object gjson.Result, ctx DeserializationContext) *Deserializer {
	if ctx.Accounts == nil {
		ctx.Accounts = account.DirectLookup{}
	}
	return &Deserializer{object: object, ctx: ctx}
}

func (d *Deserializer) Context() DeserializationContext {
	return d.ctx
}

// Has reports whether key is present with a non-null value.
func (d *Deserializer) Has(key string) bool {
	_, ok := d.lookup(key)
	return ok
}

func (d *Deserializer) ReadString(key string) (string, error) {
	value, err := d.required(key)
	if err != nil {
		return "", err
	}
	if value.Type != gjson.String {
		return "", errors.NewMalformedPropertyError(key, fmt.Errorf("expected string, got %s", value.Type))
	}
	return value.Str, nil
}

func (d *Deserializer) ReadOptionalString(key, fallback string) (string, error) {
	if !d.Has(key) {
		return fallback, nil
	}
	return d.ReadString(key)
}

// ReadInt64 accepts a JSON number or a string holding a base 10 integer.
func (d *Deserializer) ReadInt64(key string) (int64, error) {
	raw, err := d.integerLiteral(key)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.NewMalformedPropertyError(key, err)
	}
	return parsed, nil
}

// ReadUint64 is ReadInt64 for the full unsigned range. Negative values are malformed.
func (d *Deserializer) ReadUint64(key string) (uint64, error) {
	raw, err := d.integerLiteral(key)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.NewMalformedPropertyError(key, err)
	}
	return parsed, nil
}

func (d *Deserializer) ReadInt(key string) (int, error) {
	v, err := d.ReadInt64(key)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt || v > math.MaxInt {
		return 0, errors.NewMalformedPropertyError(key, fmt.Errorf("%d overflows int", v))
	}
	return int(v), nil
}

func (d *Deserializer) integerLiteral(key string) (string, error) {
	value, err := d.required(key)
	if err != nil {
		return "", err
	}
	switch value.Type {
	case gjson.Number:
		return value.Raw, nil
	case gjson.String:
		return value.Str, nil
	}
	return "", errors.NewMalformedPropertyError(key, fmt.Errorf("expected integer, got %s", value.Type))
}

// ReadAccount decodes a hex public key and resolves it through the context lookup.
func (d *Deserializer) ReadAccount(key string) (account.Account, error) {
	encoded, err := d.ReadString(key)
	if err != nil {
		return account.Account{}, err
	}
	publicKey, err := account.ParsePublicKey(encoded)
	if err != nil {
		return account.Account{}, errors.NewMalformedPropertyError(key, err)
	}
	return d.ctx.Accounts.FindByPublicKey(publicKey)
}

func (d *Deserializer) ReadObject(key string) (*Deserializer, error) {
	value, err := d.required(key)
	if err != nil {
		return nil, err
	}
	if !value.IsObject() {
		return nil, errors.NewMalformedPropertyError(key, fmt.Errorf("expected object, got %s", value.Type))
	}
	return newDeserializer(value, d.ctx), nil
}

// ReadStringMap reads an object of scalar values. Numbers and booleans are
// returned in their literal form.
func (d *Deserializer) ReadStringMap(key string) (map[string]string, error) {
	value, err := d.required(key)
	if err != nil {
		return nil, err
	}
	if !value.IsObject() {
		return nil, errors.NewMalformedPropertyError(key, fmt.Errorf("expected object, got %s", value.Type))
	}
	out := make(map[string]string)
	var inner error
	value.ForEach(func(k, v gjson.Result) bool {
		switch v.Type {
		case gjson.String, gjson.Number, gjson.True, gjson.False:
			out[k.String()] = v.String()
			return true
		default:
			inner = errors.NewMalformedPropertyError(key, fmt.Errorf("entry %q is not a scalar", k.String()))
			return false
		}
	})
	if inner != nil {
		return nil, inner
	}
	return out, nil
}

func (d *Deserializer) required(key string) (gjson.Result, error) {
	value, ok := d.lookup(key)
	if !ok {
		return gjson.Result{}, errors.NewMissingRequiredPropertyError(key)
	}
	return value, nil
}

// lookup matches the key literally instead of through gjson path syntax, so keys
// containing dots or wildcards are not interpreted.
func (d *Deserializer) lookup(key string) (gjson.Result, bool) {
	var found gjson.Result
	ok := false
	d.object.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found, ok = v, v.Type != gjson.Null
			return false
		}
		return true
	})
	return found, ok
}

// ReadObjectWith reads a required nested object with read.
func ReadObjectWith[T any](d *Deserializer, key string, read func(*Deserializer) (T, error)) (T, error) {
	var zero T
	child, err := d.ReadObject(key)
	if err != nil {
		return zero, err
	}
	return read(child)
}

// ReadOptionalObjectWith reads a nested object with read, or returns fallback when key is absent.
func ReadOptionalObjectWith[T any](d *Deserializer, key string, read func(*Deserializer) (T, error), fallback T) (T, error) {
	if !d.Has(key) {
		return fallback, nil
	}
	return ReadObjectWith(d, key, read)
}

// Deserialize parses data and hands the root object to read.
func Deserialize[T any](data []byte, ctx DeserializationContext, read func(*Deserializer) (T, error)) (T, error) {
	var zero T
	d, err := NewDeserializer(data, ctx)
	if err != nil {
		return zero, err
	}
	return read(d)
}
