package domain

import (
	"mosaic-lab/account"
	"mosaic-lab/serialization"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func randomAccount(t *testing.T) account.Account {
	t.Helper()
	acc, err := account.GenerateRandom()
	require.NoError(t, err)
	return acc
}

func mosaicID(t *testing.T, namespace, name string) MosaicID {
	t.Helper()
	ns, err := NewNamespaceID(namespace)
	require.NoError(t, err)
	id, err := NewMosaicID(ns, name)
	require.NoError(t, err)
	return id
}

func customProperties(t *testing.T) DefaultMosaicProperties {
	t.Helper()
	props, err := NewDefaultMosaicProperties(map[string]string{
		"divisibility":  "3",
		"initialSupply": "123",
		"supplyMutable": "true",
		"transferable":  "false",
	})
	require.NoError(t, err)
	return props
}

func transferFeeInfo(t *testing.T, fee Quantity) MosaicTransferFeeInfo {
	t.Helper()
	info, err := NewMosaicTransferFeeInfo(FeeTypeAbsolute, randomAccount(t), mosaicID(t, "coins", "gold"), fee)
	require.NoError(t, err)
	return info
}

func newDefinition(t *testing.T, creator account.Account, id MosaicID, description string, props MosaicProperties, feeInfo *MosaicTransferFeeInfo) MosaicDefinition {
	t.Helper()
	definition, err := NewMosaicDefinition(MosaicDefinitionParams{
		Creator:         lo.ToPtr(creator),
		ID:              lo.ToPtr(id),
		Descriptor:      lo.ToPtr(NewMosaicDescriptor(description)),
		Properties:      props,
		TransferFeeInfo: feeInfo,
	})
	require.NoError(t, err)
	return definition
}

func testContext() serialization.DeserializationContext {
	return serialization.NewDeserializationContext(account.DirectLookup{})
}
