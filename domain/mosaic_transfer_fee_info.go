package domain

import (
	"mosaic-lab/account"
	"mosaic-lab/serialization"
)

// TransferFeeType tells how the fee of a MosaicTransferFeeInfo is applied.
type TransferFeeType int

const (
	FeeTypeAbsolute   TransferFeeType = 1
	FeeTypePercentile TransferFeeType = 2
)

func (t TransferFeeType) String() string {
	switch t {
	case FeeTypeAbsolute:
		return "Absolute"
	case FeeTypePercentile:
		return "Percentile"
	}
	return "Unknown"
}

// MosaicTransferFeeInfo is the fee policy charged when a mosaic is transferred.
type MosaicTransferFeeInfo struct {
	feeType   TransferFeeType
	recipient account.Account
	mosaicID  MosaicID
	fee       Quantity
}

type transferFeeParams struct {
	FeeType   TransferFeeType `json:"feeType" validate:"oneof=1 2"`
	Recipient account.Account `json:"recipient" validate:"required"`
	MosaicID  MosaicID        `json:"mosaicId" validate:"required"`
}

func NewMosaicTransferFeeInfo(feeType TransferFeeType, recipient account.Account, mosaicID MosaicID, fee Quantity) (MosaicTransferFeeInfo, error) {
	err := validateParams(transferFeeParams{FeeType: feeType, Recipient: recipient, MosaicID: mosaicID})
	if err != nil {
		return MosaicTransferFeeInfo{}, err
	}
	return MosaicTransferFeeInfo{feeType: feeType, recipient: recipient, mosaicID: mosaicID, fee: fee}, nil
}

// DefaultTransferFeeInfo is the "no fee" policy every definition gets when none is supplied.
func DefaultTransferFeeInfo() MosaicTransferFeeInfo {
	return MosaicTransferFeeInfo{
		feeType:   FeeTypeAbsolute,
		recipient: MosaicDefinitionCreator,
		mosaicID:  MosaicIDXem,
		fee:       QuantityZero,
	}
}

func (f MosaicTransferFeeInfo) FeeType() TransferFeeType {
	return f.feeType
}

func (f MosaicTransferFeeInfo) Recipient() account.Account {
	return f.recipient
}

func (f MosaicTransferFeeInfo) MosaicID() MosaicID {
	return f.mosaicID
}

func (f MosaicTransferFeeInfo) Fee() Quantity {
	return f.fee
}

func (f MosaicTransferFeeInfo) IsAvailable() bool {
	return !f.fee.IsZero()
}

func (f MosaicTransferFeeInfo) Equal(other MosaicTransferFeeInfo) bool {
	return f.feeType == other.feeType &&
		f.recipient.Equal(other.recipient) &&
		f.mosaicID.Equal(other.mosaicID) &&
		f.fee == other.fee
}

func (f MosaicTransferFeeInfo) Serialize(s *serialization.Serializer) {
	s.WriteInt("feeType", int(f.feeType))
	s.WriteAccount("recipient", f.recipient)
	s.WriteObject("mosaicId", f.mosaicID)
	s.WriteUint64("fee", f.fee.Uint64())
}

func ReadMosaicTransferFeeInfo(d *serialization.Deserializer) (MosaicTransferFeeInfo, error) {
	code, err := d.ReadInt64("feeType")
	if err != nil {
		return MosaicTransferFeeInfo{}, err
	}
	recipient, err := d.ReadAccount("recipient")
	if err != nil {
		return MosaicTransferFeeInfo{}, err
	}
	mosaicID, err := serialization.ReadObjectWith(d, "mosaicId", ReadMosaicID)
	if err != nil {
		return MosaicTransferFeeInfo{}, err
	}
	fee, err := readQuantity(d, "fee")
	if err != nil {
		return MosaicTransferFeeInfo{}, err
	}
	return NewMosaicTransferFeeInfo(feeTypeFromCode(code), recipient, mosaicID, fee)
}

// feeTypeFromCode maps unknown codes to the zero value, which construction rejects.
func feeTypeFromCode(code int64) TransferFeeType {
	switch code {
	case int64(FeeTypeAbsolute), int64(FeeTypePercentile):
		return TransferFeeType(code)
	}
	return 0
}
