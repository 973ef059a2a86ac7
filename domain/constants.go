package domain

import "mosaic-lab/account"

const (
	NamespaceNem NamespaceID = "nem"

	mosaicDefinitionCreatorKey = "53e140b5947f104cabc2d6fe8baedbc30ef9a0609c717d9613de593ec2a266d3"
)

var (
	// MosaicIDXem is the native currency mosaic, used as the default fee mosaic.
	MosaicIDXem = mustMosaicID(NamespaceNem, "xem")

	// MosaicDefinitionCreator is the well-known account owning the built-in definitions.
	MosaicDefinitionCreator = account.NewAccount(mustPublicKey(mosaicDefinitionCreatorKey))
)

func mustMosaicID(namespaceID NamespaceID, name string) MosaicID {
	id, err := NewMosaicID(namespaceID, name)
	if err != nil {
		panic(err)
	}
	return id
}

func mustPublicKey(encoded string) account.PublicKey {
	key, err := account.ParsePublicKey(encoded)
	if err != nil {
		panic(err)
	}
	return key
}
