// Package account holds the Account collaborator used by mosaic definitions:
// an identity keyed by an ed25519 public key with a derived base32 address.
package account

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"mosaic-lab/errors"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	PublicKeySize = ed25519.PublicKeySize

	MainNetVersion byte = 0x68

	addressChecksumSize = 4
)

// PublicKey is the raw 32-byte key. It is an array so Account stays comparable.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes the 64 character hex encoding used on the wire.
func ParsePublicKey(s string) (PublicKey, error) {
	var key PublicKey
	raw, err := hex.DecodeString(s)
	if err != nil {
		return key, errors.NewPrimitiveConstraintError("publicKey", "invalid hex: %v", err)
	}
	if len(raw) != PublicKeySize {
		return key, errors.NewPrimitiveConstraintError("publicKey", "expected %d bytes, got %d", PublicKeySize, len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

// Address is the base32 form of version || ripemd160(keccak256(publicKey)) || checksum.
type Address string

func (a Address) String() string {
	return string(a)
}

type Account struct {
	publicKey PublicKey
}

func NewAccount(key PublicKey) Account {
	return Account{publicKey: key}
}

// GenerateRandom creates an account around a fresh ed25519 key. The private half is discarded.
func GenerateRandom() (Account, error) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Account{}, fmt.Errorf("key generation failed: %w", err)
	}
	var key PublicKey
	copy(key[:], pub)
	return NewAccount(key), nil
}

func (a Account) PublicKey() PublicKey {
	return a.publicKey
}

func (a Account) IsZero() bool {
	return a.publicKey == PublicKey{}
}

func (a Account) Equal(other Account) bool {
	return a.publicKey == other.publicKey
}

func (a Account) Address() Address {
	return AddressFromPublicKey(MainNetVersion, a.publicKey)
}

func (a Account) String() string {
	return a.Address().String()
}

func AddressFromPublicKey(version byte, key PublicKey) Address {
	keyHash := sha3.NewLegacyKeccak256()
	keyHash.Write(key[:])

	ripe := ripemd160.New()
	ripe.Write(keyHash.Sum(nil))

	versioned := append([]byte{version}, ripe.Sum(nil)...)

	checksumHash := sha3.NewLegacyKeccak256()
	checksumHash.Write(versioned)
	checksum := checksumHash.Sum(nil)[:addressChecksumSize]

	return Address(base32.StdEncoding.EncodeToString(append(versioned, checksum...)))
}
