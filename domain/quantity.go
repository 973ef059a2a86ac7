package domain

import (
	"mosaic-lab/errors"
	"mosaic-lab/serialization"
	"strconv"
)

// Quantity is a non-negative amount of a mosaic in its smallest unit.
type Quantity uint64

const QuantityZero Quantity = 0

func NewQuantity(value int64) (Quantity, error) {
	if value < 0 {
		return 0, errors.NewPrimitiveConstraintError("quantity", "must be non-negative, got %d", value)
	}
	return Quantity(value), nil
}

// readQuantity accepts the whole uint64 range and reports negative values as a
// quantity constraint violation.
func readQuantity(d *serialization.Deserializer, key string) (Quantity, error) {
	value, err := d.ReadUint64(key)
	if err == nil {
		return Quantity(value), nil
	}
	if signed, signedErr := d.ReadInt64(key); signedErr == nil {
		return NewQuantity(signed)
	}
	return 0, err
}

func (q Quantity) Uint64() uint64 {
	return uint64(q)
}

func (q Quantity) IsZero() bool {
	return q == QuantityZero
}

func (q Quantity) String() string {
	return strconv.FormatUint(uint64(q), 10)
}
