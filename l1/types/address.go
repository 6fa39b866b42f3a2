package types

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
	"github.com/holiman/uint256"
)

// L1Address is a 160-bit Ethereum account or contract address.
type L1Address U256

var errL1AddressTooLarge = errors.New("l1 address exceeds 20 bytes")

// Bytes returns the canonical 20-byte big-endian representation.
func (a *L1Address) Bytes() [20]byte {
	full := (*U256)(a).Bytes32()
	var b [20]byte
	copy(b[:], full[12:])
	return b
}

// String returns hex representation with "0x" prefix.
func (a *L1Address) String() string {
	return (*U256)(a).String()
}

// Marshal returns the canonical 20-byte big-endian representation as a slice.
func (a *L1Address) Marshal() []byte {
	b := a.Bytes()
	return b[:]
}

// SetBytesCanonical accepts up to 20 bytes big-endian.
func (a *L1Address) SetBytesCanonical(data []byte) error {
	if len(data) > 20 {
		return errL1AddressTooLarge
	}
	(*uint256.Int)(a).SetBytes(data)
	return nil
}

// Equal reports whether a and other are the same address.
func (a *L1Address) Equal(other *L1Address) bool {
	return (*U256)(a).Equal((*U256)(other))
}

// IsZero reports whether a is the zero address.
func (a *L1Address) IsZero() bool {
	return (*uint256.Int)(a).IsZero()
}

// MarshalJSON encodes as a hex string with "0x" prefix.
func (a *L1Address) MarshalJSON() ([]byte, error) {
	return (*U256)(a).MarshalJSON()
}

// UnmarshalJSON decodes from hex string or decimal string. Values wider than
// 160 bits are rejected, keeping the decoded value consistent with the
// canonical 20-byte wire form.
func (a *L1Address) UnmarshalJSON(data []byte) error {
	var u U256
	if err := u.UnmarshalJSON(data); err != nil {
		return err
	}
	if (*uint256.Int)(&u).BitLen() > 160 {
		return errL1AddressTooLarge
	}
	*a = L1Address(u)
	return nil
}

// MarshalCBOR marshals the canonical 20-byte form to CBOR.
func (a *L1Address) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.Marshal())
}

// UnmarshalCBOR unmarshals a CBOR-encoded byte slice into a.
func (a *L1Address) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	return a.SetBytesCanonical(b)
}
