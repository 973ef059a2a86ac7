package serialization

import (
	"math"
	"mosaic-lab/account"
	"mosaic-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type point struct {
	label string
	x, y  int
}

func (p point) Serialize(s *Serializer) {
	s.WriteString("label", p.label)
	s.WriteInt("x", p.x)
	s.WriteInt("y", p.y)
}

func readPoint(d *Deserializer) (point, error) {
	label, err := d.ReadString("label")
	if err != nil {
		return point{}, err
	}
	x, err := d.ReadInt("x")
	if err != nil {
		return point{}, err
	}
	y, err := d.ReadInt("y")
	if err != nil {
		return point{}, err
	}
	return point{label: label, x: x, y: y}, nil
}

func TestSerializer_KeepsWriteOrder(t *testing.T) {
	req := require.New(t)
	s := NewSerializer()
	s.WriteString("zeta", "last letter")
	s.WriteUint64("alpha", 7)
	s.WriteBool("mid", true)
	s.WriteObject("nested", point{label: "p", x: 1, y: 2})
	s.WriteStringMap("map", []Pair{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}})

	data, err := s.MarshalJSON()

	req.NoError(err)
	req.Equal([]string{"zeta", "alpha", "mid", "nested", "map"}, s.Keys())
	req.Equal(`{"zeta":"last letter","alpha":7,"mid":true,"nested":{"label":"p","x":1,"y":2},"map":{"b":"2","a":"1"}}`, string(data))
}

func TestSerializer_RewriteKeepsPosition(t *testing.T) {
	req := require.New(t)
	s := NewSerializer()
	s.WriteString("a", "1")
	s.WriteString("b", "2")
	s.WriteString("a", "3")

	data, err := s.MarshalJSON()

	req.NoError(err)
	req.Equal(`{"a":"3","b":"2"}`, string(data))
}

func TestDeserializer_RoundTrip(t *testing.T) {
	req := require.New(t)
	original := point{label: "origin", x: -4, y: 9}
	data, err := SerializeToJSON(original)
	req.NoError(err)

	decoded, err := Deserialize(data, NewDeserializationContext(nil), readPoint)

	req.NoError(err)
	req.Equal(original, decoded)
}

func TestDeserializer_MissingRequiredKey(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"label":"p","x":1}`), NewDeserializationContext(nil))
	req.NoError(err)

	_, err = readPoint(d)

	var missing *errors.MissingRequiredPropertyError
	req.ErrorAs(err, &missing)
	req.Equal("y", missing.Key)
}

func TestDeserializer_NullIsAbsent(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"label":null}`), NewDeserializationContext(nil))
	req.NoError(err)

	req.False(d.Has("label"))
	_, err = d.ReadString("label")
	req.ErrorIs(err, errors.ErrMissingRequiredProperty)

	value, err := d.ReadOptionalString("label", "fallback")
	req.NoError(err)
	req.Equal("fallback", value)
}

func TestDeserializer_IgnoresUnknownKeysAndOrder(t *testing.T) {
	req := require.New(t)
	data := []byte(`{"extra":[1,2],"y":2,"x":"1","label":"p"}`)

	decoded, err := Deserialize(data, NewDeserializationContext(nil), readPoint)

	req.NoError(err)
	req.Equal(point{label: "p", x: 1, y: 2}, decoded)
}

func TestDeserializer_KeysAreLiteral(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"a":{"b":"nested"},"a.b":"flat"}`), NewDeserializationContext(nil))
	req.NoError(err)

	value, err := d.ReadString("a.b")

	req.NoError(err)
	req.Equal("flat", value)
}

func TestDeserializer_MalformedValues(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"s":1,"n":"abc","o":"x","m":{"k":[1]},"acc":"nothex"}`), NewDeserializationContext(nil))
	req.NoError(err)

	_, err = d.ReadString("s")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadInt64("n")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadObject("o")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadStringMap("m")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadAccount("acc")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	req.ErrorIs(err, errors.ErrPrimitiveConstraint)
}

func TestDeserializer_RejectsNonObjectDocuments(t *testing.T) {
	for _, doc := range []string{`[]`, `"text"`, `{broken`, ``} {
		t.Run(doc, func(t *testing.T) {
			_, err := NewDeserializer([]byte(doc), NewDeserializationContext(nil))
			require.ErrorIs(t, err, errors.ErrMalformedDocument)
		})
	}
}

func TestDeserializer_ReadStringMapLiterals(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"props":{"divisibility":3,"transferable":true,"name":"x"}}`), NewDeserializationContext(nil))
	req.NoError(err)

	values, err := d.ReadStringMap("props")

	req.NoError(err)
	req.Equal(map[string]string{"divisibility": "3", "transferable": "true", "name": "x"}, values)
}

type fixedLookup struct {
	acc account.Account
}

func (f fixedLookup) FindByPublicKey(account.PublicKey) (account.Account, error) {
	return f.acc, nil
}

func TestDeserializer_ReadAccountUsesContextLookup(t *testing.T) {
	req := require.New(t)
	written, err := account.GenerateRandom()
	req.NoError(err)
	resolved, err := account.GenerateRandom()
	req.NoError(err)

	s := NewSerializer()
	s.WriteAccount("creator", written)
	data, err := s.MarshalJSON()
	req.NoError(err)

	direct, err := NewDeserializer(data, NewDeserializationContext(nil))
	req.NoError(err)
	got, err := direct.ReadAccount("creator")
	req.NoError(err)
	req.True(written.Equal(got))

	custom, err := NewDeserializer(data, NewDeserializationContext(fixedLookup{acc: resolved}))
	req.NoError(err)
	got, err = custom.ReadAccount("creator")
	req.NoError(err)
	req.True(resolved.Equal(got))
}

func TestReadOptionalObjectWith_FallsBack(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{}`), NewDeserializationContext(nil))
	req.NoError(err)
	fallback := point{label: "default"}

	got, err := ReadOptionalObjectWith(d, "point", readPoint, fallback)

	req.NoError(err)
	req.Equal(fallback, got)
}

func TestDeserializer_ReadUint64(t *testing.T) {
	req := require.New(t)
	d, err := NewDeserializer([]byte(`{"max":18446744073709551615,"text":"9223372036854775808","neg":-1,"over":18446744073709551616}`), NewDeserializationContext(nil))
	req.NoError(err)

	largest, err := d.ReadUint64("max")
	req.NoError(err)
	req.Equal(uint64(math.MaxUint64), largest)

	text, err := d.ReadUint64("text")
	req.NoError(err)
	req.Equal(uint64(1<<63), text)

	_, err = d.ReadUint64("neg")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadUint64("over")
	req.ErrorIs(err, errors.ErrMalformedProperty)
	_, err = d.ReadUint64("absent")
	req.ErrorIs(err, errors.ErrMissingRequiredProperty)
}

func TestDeserializer_ReadIntRejectsValuesOutsideInt64(t *testing.T) {
	d, err := NewDeserializer([]byte(`{"big":9223372036854775808}`), NewDeserializationContext(nil))
	require.NoError(t, err)

	_, err = d.ReadInt("big")

	require.ErrorIs(t, err, errors.ErrMalformedProperty)
}
