package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// ContractAddress is the address of a StarkNet contract.
type ContractAddress felt.Felt

func (a *ContractAddress) AsFelt() *felt.Felt {
	return (*felt.Felt)(a)
}

func (a *ContractAddress) String() string {
	return (*felt.Felt)(a).String()
}

func (a *ContractAddress) Equal(other *ContractAddress) bool {
	return (*felt.Felt)(a).Equal((*felt.Felt)(other))
}

func (a *ContractAddress) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(a).Bytes()
}

func (a *ContractAddress) Marshal() []byte {
	return (*felt.Felt)(a).Marshal()
}

func (a *ContractAddress) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(a).SetBytesCanonical(data)
}

func (a *ContractAddress) IsZero() bool {
	return (*felt.Felt)(a).IsZero()
}

func (a *ContractAddress) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(a).MarshalJSON()
}

func (a *ContractAddress) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(a).UnmarshalJSON(data)
}

func (a *ContractAddress) MarshalCBOR() ([]byte, error) {
	return (*felt.Felt)(a).MarshalCBOR()
}

func (a *ContractAddress) UnmarshalCBOR(data []byte) error {
	return (*felt.Felt)(a).UnmarshalCBOR(data)
}

// ContractAddressSalt is the salt used when deriving a contract address.
type ContractAddressSalt felt.Felt

func (s *ContractAddressSalt) AsFelt() *felt.Felt {
	return (*felt.Felt)(s)
}

func (s *ContractAddressSalt) String() string {
	return (*felt.Felt)(s).String()
}

func (s *ContractAddressSalt) Equal(other *ContractAddressSalt) bool {
	return (*felt.Felt)(s).Equal((*felt.Felt)(other))
}

// ClassHash is the hash over a contract's deployment properties, i.e. its
// code and ABI. Not to be confused with ContractStateHash.
type ClassHash felt.Felt

func (h *ClassHash) AsFelt() *felt.Felt {
	return (*felt.Felt)(h)
}

func (h *ClassHash) String() string {
	return (*felt.Felt)(h).String()
}

func (h *ClassHash) Equal(other *ClassHash) bool {
	return (*felt.Felt)(h).Equal((*felt.Felt)(other))
}

func (h *ClassHash) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(h).Bytes()
}

func (h *ClassHash) Marshal() []byte {
	return (*felt.Felt)(h).Marshal()
}

func (h *ClassHash) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(h).SetBytesCanonical(data)
}

func (h *ClassHash) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(h).MarshalJSON()
}

func (h *ClassHash) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(h).UnmarshalJSON(data)
}

func (h *ClassHash) MarshalCBOR() ([]byte, error) {
	return (*felt.Felt)(h).MarshalCBOR()
}

func (h *ClassHash) UnmarshalCBOR(data []byte) error {
	return (*felt.Felt)(h).UnmarshalCBOR(data)
}

// ContractStateHash is the value stored for a contract in the global state
// tree. Not to be confused with ClassHash.
type ContractStateHash felt.Felt

func (h *ContractStateHash) AsFelt() *felt.Felt {
	return (*felt.Felt)(h)
}

func (h *ContractStateHash) String() string {
	return (*felt.Felt)(h).String()
}

func (h *ContractStateHash) Equal(other *ContractStateHash) bool {
	return (*felt.Felt)(h).Equal((*felt.Felt)(other))
}

// ContractRoot is the commitment root of a single contract's storage tree.
type ContractRoot felt.Felt

func (r *ContractRoot) AsFelt() *felt.Felt {
	return (*felt.Felt)(r)
}

func (r *ContractRoot) String() string {
	return (*felt.Felt)(r).String()
}

func (r *ContractRoot) Equal(other *ContractRoot) bool {
	return (*felt.Felt)(r).Equal((*felt.Felt)(other))
}

// ByteCodeWord is a single word of a contract's bytecode.
type ByteCodeWord felt.Felt

func (w *ByteCodeWord) AsFelt() *felt.Felt {
	return (*felt.Felt)(w)
}

func (w *ByteCodeWord) String() string {
	return (*felt.Felt)(w).String()
}

func (w *ByteCodeWord) Equal(other *ByteCodeWord) bool {
	return (*felt.Felt)(w).Equal((*felt.Felt)(other))
}

func (w *ByteCodeWord) MarshalCBOR() ([]byte, error) {
	return (*felt.Felt)(w).MarshalCBOR()
}

func (w *ByteCodeWord) UnmarshalCBOR(data []byte) error {
	return (*felt.Felt)(w).UnmarshalCBOR(data)
}

func (w *ByteCodeWord) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(w).MarshalJSON()
}

func (w *ByteCodeWord) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(w).UnmarshalJSON(data)
}

// ContractCode is a contract's deployed bytecode and ABI.
type ContractCode struct {
	Bytecode []ByteCodeWord `cbor:"1,keyasint"`
	Abi      string         `cbor:"2,keyasint"`
}
