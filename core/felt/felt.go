package felt

import (
	"errors"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	"github.com/fxamacker/cbor/v2"
)

// Felt is an element of the Stark field. The value is always strictly less
// than the field modulus, which the underlying fp.Element guarantees on every
// setter.
type Felt fp.Element

const (
	Limbs = fp.Limbs // number of 64 bit words needed to represent a Element
	Bits  = fp.Bits  // number of bits needed to represent a Element
	Bytes = fp.Bytes // number of bytes needed to represent a Element
)

// zero felt constant
var Zero = Felt{}

var bigIntPool = sync.Pool{
	New: func() any {
		return new(big.Int)
	},
}

// Impl returns the underlying field element type
func (z *Felt) Impl() *fp.Element {
	return (*fp.Element)(z)
}

// UnmarshalJSON accepts numbers and strings as input.
// See Element.SetString for valid prefixes (0x, 0b, ...).
// If there is an error, we try to explicitly unmarshal from hex before
// returning an error. This implementation is taken from [gnark-crypto].
//
// [gnark-crypto]: https://github.com/ConsenSys/gnark-crypto/blob/9fd0a7de2044f088a29cfac373da73d868230148/ecc/stark-curve/fp/element.go#L1028-L1056
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > fp.Bits*3 {
		return errors.New("value too large (max = Element.Bits * 3)")
	}

	// we accept numbers and strings, remove leading and trailing quotes if any
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}

	// get temporary big int from the pool
	vv := bigIntPool.Get().(*big.Int)

	if _, ok := vv.SetString(s, 0); !ok {
		if _, ok := vv.SetString(s, 16); !ok {
			return errors.New("can't parse into a big.Int: " + s)
		}
	}

	(*fp.Element)(z).SetBigInt(vv)

	// release object into pool
	bigIntPool.Put(vv)
	return nil
}

// MarshalJSON encodes the felt as a quoted hex string with 0x prefix.
func (z *Felt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

// MarshalCBOR encodes the felt as its canonical 32-byte big-endian blob.
func (z *Felt) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(z.Marshal())
}

// UnmarshalCBOR decodes a CBOR byte string into the felt.
func (z *Felt) UnmarshalCBOR(data []byte) error {
	var b []byte
	if err := cbor.Unmarshal(data, &b); err != nil {
		return err
	}
	return z.SetBytesCanonical(b)
}

// SetBytes forwards the call to underlying field element implementation
func (z *Felt) SetBytes(e []byte) *Felt {
	(*fp.Element)(z).SetBytes(e)
	return z
}

// SetBytesCanonical sets z from a big-endian slice of at most Bytes bytes.
// Unlike SetBytes it rejects values that are not already reduced modulo the
// field, so decoding an encoded felt always restores the same value.
func (z *Felt) SetBytesCanonical(data []byte) error {
	if len(data) > Bytes {
		return errors.New("felt: input does not fit in 32 bytes")
	}
	var be [Bytes]byte
	copy(be[Bytes-len(data):], data)
	elem, err := fp.BigEndian.Element(&be)
	if err != nil {
		return err
	}
	*z = Felt(elem)
	return nil
}

// SetString forwards the call to underlying field element implementation
func (z *Felt) SetString(number string) (*Felt, error) {
	_, err := (*fp.Element)(z).SetString(number)
	return z, err
}

// SetUint64 forwards the call to underlying field element implementation
func (z *Felt) SetUint64(v uint64) *Felt {
	(*fp.Element)(z).SetUint64(v)
	return z
}

// SetRandom forwards the call to underlying field element implementation
func (z *Felt) SetRandom() (*Felt, error) {
	_, err := (*fp.Element)(z).SetRandom()
	return z, err
}

// String returns the hex representation with a 0x prefix.
func (z *Felt) String() string {
	return "0x" + (*fp.Element)(z).Text(16)
}

// Text forwards the call to underlying field element implementation
func (z *Felt) Text(base int) string {
	return (*fp.Element)(z).Text(base)
}

// Equal forwards the call to underlying field element implementation
func (z *Felt) Equal(x *Felt) bool {
	return (*fp.Element)(z).Equal((*fp.Element)(x))
}

// Marshal returns the canonical 32-byte big-endian encoding.
func (z *Felt) Marshal() []byte {
	return (*fp.Element)(z).Marshal()
}

// Unmarshal sets z from a big-endian slice, reducing modulo the field.
func (z *Felt) Unmarshal(e []byte) {
	z.SetBytes(e)
}

// Bytes forwards the call to underlying field element implementation
func (z *Felt) Bytes() [Bytes]byte {
	return (*fp.Element)(z).Bytes()
}

// IsOne forwards the call to underlying field element implementation
func (z *Felt) IsOne() bool {
	return (*fp.Element)(z).IsOne()
}

// IsZero forwards the call to underlying field element implementation
func (z *Felt) IsZero() bool {
	return (*fp.Element)(z).IsZero()
}

// Cmp forwards the call to underlying field element implementation
func (z *Felt) Cmp(x *Felt) int {
	return (*fp.Element)(z).Cmp((*fp.Element)(x))
}
