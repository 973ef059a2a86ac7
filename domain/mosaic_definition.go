package domain

import (
	"mosaic-lab/account"
	"mosaic-lab/errors"
	"mosaic-lab/serialization"
)

// MosaicDefinition describes a mosaic: who created it, its id, description,
// properties and transfer fee policy.
//
// Equality is identity based. Equal and Hash look at the id only, so two
// definitions with the same id and a different creator, description, properties
// or fee policy are the same definition. This is intended and must not be turned
// into a structural comparison.
type MosaicDefinition struct {
	creator         account.Account
	id              MosaicID
	descriptor      MosaicDescriptor
	properties      MosaicProperties
	transferFeeInfo MosaicTransferFeeInfo
}

// MosaicDefinitionParams are the constructor inputs. Every field but
// TransferFeeInfo is required.
//
// A nil TransferFeeInfo means DefaultTransferFeeInfo. Leaving the field out and
// setting it to nil are the same thing here, so there is no way to pass an
// explicit "no fee info" that gets rejected; pass a value to charge a fee.
type MosaicDefinitionParams struct {
	Creator         *account.Account       `json:"creator" validate:"required"`
	ID              *MosaicID              `json:"id" validate:"required"`
	Descriptor      *MosaicDescriptor      `json:"description" validate:"required"`
	Properties      MosaicProperties       `json:"properties"`
	TransferFeeInfo *MosaicTransferFeeInfo `json:"transferFeeInfo"`
}

func NewMosaicDefinition(params MosaicDefinitionParams) (MosaicDefinition, error) {
	if err := validateParams(params); err != nil {
		return MosaicDefinition{}, err
	}
	if params.Creator.IsZero() {
		return MosaicDefinition{}, errors.NewValidationError("creator")
	}
	if params.ID.IsZero() {
		return MosaicDefinition{}, errors.NewValidationError("id")
	}
	if params.Properties == nil {
		return MosaicDefinition{}, errors.NewValidationError("properties")
	}
	feeInfo := DefaultTransferFeeInfo()
	if params.TransferFeeInfo != nil {
		feeInfo = *params.TransferFeeInfo
	}
	return MosaicDefinition{
		creator:         *params.Creator,
		id:              *params.ID,
		descriptor:      *params.Descriptor,
		properties:      params.Properties,
		transferFeeInfo: feeInfo,
	}, nil
}

func (d MosaicDefinition) Creator() account.Account {
	return d.creator
}

func (d MosaicDefinition) ID() MosaicID {
	return d.id
}

func (d MosaicDefinition) Descriptor() MosaicDescriptor {
	return d.descriptor
}

func (d MosaicDefinition) Properties() MosaicProperties {
	return d.properties
}

func (d MosaicDefinition) TransferFeeInfo() MosaicTransferFeeInfo {
	return d.transferFeeInfo
}

func (d MosaicDefinition) IsTransferFeeAvailable() bool {
	return d.transferFeeInfo.IsAvailable()
}

func (d MosaicDefinition) Equal(other MosaicDefinition) bool {
	return d.id.Equal(other.id)
}

func (d MosaicDefinition) Hash() uint64 {
	return d.id.Hash()
}

func (d MosaicDefinition) String() string {
	return d.id.String()
}

// Serialize writes creator, id, description, properties and transferFeeInfo in
// that order. The fee info is written even when it is the default.
func (d MosaicDefinition) Serialize(s *serialization.Serializer) {
	s.WriteAccount("creator", d.creator)
	s.WriteObject("id", d.id)
	s.WriteString("description", d.descriptor.String())
	writeProperties(s, "properties", d.properties)
	s.WriteObject("transferFeeInfo", d.transferFeeInfo)
}

// ReadMosaicDefinition is the inverse of Serialize. A missing transferFeeInfo
// yields DefaultTransferFeeInfo; any other missing key is an error.
func ReadMosaicDefinition(d *serialization.Deserializer) (MosaicDefinition, error) {
	creator, err := d.ReadAccount("creator")
	if err != nil {
		return MosaicDefinition{}, err
	}
	id, err := serialization.ReadObjectWith(d, "id", ReadMosaicID)
	if err != nil {
		return MosaicDefinition{}, err
	}
	description, err := d.ReadString("description")
	if err != nil {
		return MosaicDefinition{}, err
	}
	properties, err := readProperties(d, "properties")
	if err != nil {
		return MosaicDefinition{}, err
	}
	feeInfo, err := serialization.ReadOptionalObjectWith(d, "transferFeeInfo", ReadMosaicTransferFeeInfo, DefaultTransferFeeInfo())
	if err != nil {
		return MosaicDefinition{}, err
	}
	descriptor := NewMosaicDescriptor(description)
	return NewMosaicDefinition(MosaicDefinitionParams{
		Creator:         &creator,
		ID:              &id,
		Descriptor:      &descriptor,
		Properties:      properties,
		TransferFeeInfo: &feeInfo,
	})
}

// UnmarshalMosaicDefinition parses the JSON form produced by MarshalMosaicDefinition.
func UnmarshalMosaicDefinition(data []byte, ctx serialization.DeserializationContext) (MosaicDefinition, error) {
	return serialization.Deserialize(data, ctx, ReadMosaicDefinition)
}

func MarshalMosaicDefinition(d MosaicDefinition) ([]byte, error) {
	return serialization.SerializeToJSON(d)
}
