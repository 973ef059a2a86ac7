package domain

import (
	"mosaic-lab/errors"
	"mosaic-lab/serialization"
	"strconv"

	"github.com/samber/lo"
)

type PropertyName string

const (
	PropertyDivisibility  PropertyName = "divisibility"
	PropertyInitialSupply PropertyName = "initialSupply"
	PropertySupplyMutable PropertyName = "supplyMutable"
	PropertyTransferable  PropertyName = "transferable"
)

const (
	MaxDivisibility  = 6
	MaxInitialSupply = 9_000_000_000

	DefaultDivisibility  = 0
	DefaultInitialSupply = 1_000
)

// RecognizedProperties lists the supported property names in canonical order.
var RecognizedProperties = []PropertyName{
	PropertyDivisibility,
	PropertyInitialSupply,
	PropertySupplyMutable,
	PropertyTransferable,
}

// Property is one (name, value) entry of the collection view.
type Property struct {
	Name  PropertyName
	Value string
}

// MosaicProperties exposes a typed accessor per recognized property.
type MosaicProperties interface {
	Divisibility() int
	InitialSupply() uint64
	IsSupplyMutable() bool
	IsTransferable() bool

	// AsCollection returns every property in canonical order. Callers comparing
	// two property sets must treat it as unordered, see EquivalentProperties.
	AsCollection() []Property
}

// DefaultMosaicProperties is the standard MosaicProperties built from a raw
// name to value mapping.
type DefaultMosaicProperties struct {
	divisibility  int
	initialSupply uint64
	supplyMutable bool
	transferable  bool
}

// EmptyMosaicProperties returns the properties of a mosaic with nothing configured.
func EmptyMosaicProperties() DefaultMosaicProperties {
	return DefaultMosaicProperties{
		divisibility:  DefaultDivisibility,
		initialSupply: DefaultInitialSupply,
		supplyMutable: false,
		transferable:  true,
	}
}

// NewDefaultMosaicProperties parses values over the defaults. Names outside
// RecognizedProperties are dropped.
func NewDefaultMosaicProperties(values map[string]string) (DefaultMosaicProperties, error) {
	props := EmptyMosaicProperties()

	if raw, ok := values[string(PropertyDivisibility)]; ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > MaxDivisibility {
			return DefaultMosaicProperties{}, errors.NewPrimitiveConstraintError(string(PropertyDivisibility), "%q must be an integer in [0, %d]", raw, MaxDivisibility)
		}
		props.divisibility = v
	}
	if raw, ok := values[string(PropertyInitialSupply)]; ok {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || v > MaxInitialSupply {
			return DefaultMosaicProperties{}, errors.NewPrimitiveConstraintError(string(PropertyInitialSupply), "%q must be an integer in [0, %d]", raw, uint64(MaxInitialSupply))
		}
		props.initialSupply = v
	}
	if raw, ok := values[string(PropertySupplyMutable)]; ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return DefaultMosaicProperties{}, errors.NewPrimitiveConstraintError(string(PropertySupplyMutable), "%q is not a boolean", raw)
		}
		props.supplyMutable = v
	}
	if raw, ok := values[string(PropertyTransferable)]; ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return DefaultMosaicProperties{}, errors.NewPrimitiveConstraintError(string(PropertyTransferable), "%q is not a boolean", raw)
		}
		props.transferable = v
	}
	return props, nil
}

func (p DefaultMosaicProperties) Divisibility() int {
	return p.divisibility
}

func (p DefaultMosaicProperties) InitialSupply() uint64 {
	return p.initialSupply
}

func (p DefaultMosaicProperties) IsSupplyMutable() bool {
	return p.supplyMutable
}

func (p DefaultMosaicProperties) IsTransferable() bool {
	return p.transferable
}

func (p DefaultMosaicProperties) AsCollection() []Property {
	return lo.Map(RecognizedProperties, func(name PropertyName, _ int) Property {
		return Property{Name: name, Value: p.value(name)}
	})
}

func (p DefaultMosaicProperties) value(name PropertyName) string {
	switch name {
	case PropertyDivisibility:
		return strconv.Itoa(p.divisibility)
	case PropertyInitialSupply:
		return strconv.FormatUint(p.initialSupply, 10)
	case PropertySupplyMutable:
		return strconv.FormatBool(p.supplyMutable)
	case PropertyTransferable:
		return strconv.FormatBool(p.transferable)
	}
	return ""
}

// EquivalentProperties reports whether both collection views hold the same
// entries, regardless of order.
func EquivalentProperties(a, b MosaicProperties) bool {
	left, right := a.AsCollection(), b.AsCollection()
	return len(left) == len(right) && lo.Every(left, right) && lo.Every(right, left)
}

func writeProperties(s *serialization.Serializer, key string, props MosaicProperties) {
	s.WriteStringMap(key, lo.Map(props.AsCollection(), func(p Property, _ int) serialization.Pair {
		return serialization.Pair{Key: string(p.Name), Value: p.Value}
	}))
}

func readProperties(d *serialization.Deserializer, key string) (MosaicProperties, error) {
	values, err := d.ReadStringMap(key)
	if err != nil {
		return nil, err
	}
	return NewDefaultMosaicProperties(values)
}
