package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// StorageAddress is the address of a storage cell within a contract.
type StorageAddress felt.Felt

func (a *StorageAddress) AsFelt() *felt.Felt {
	return (*felt.Felt)(a)
}

func (a *StorageAddress) String() string {
	return (*felt.Felt)(a).String()
}

func (a *StorageAddress) Equal(other *StorageAddress) bool {
	return (*felt.Felt)(a).Equal((*felt.Felt)(other))
}

func (a *StorageAddress) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(a).Bytes()
}

func (a *StorageAddress) Marshal() []byte {
	return (*felt.Felt)(a).Marshal()
}

func (a *StorageAddress) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(a).SetBytesCanonical(data)
}

// StorageValue is the value held by a contract storage cell.
type StorageValue felt.Felt

func (v *StorageValue) AsFelt() *felt.Felt {
	return (*felt.Felt)(v)
}

func (v *StorageValue) String() string {
	return (*felt.Felt)(v).String()
}

func (v *StorageValue) Equal(other *StorageValue) bool {
	return (*felt.Felt)(v).Equal((*felt.Felt)(other))
}

func (v *StorageValue) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(v).Bytes()
}

func (v *StorageValue) Marshal() []byte {
	return (*felt.Felt)(v).Marshal()
}

func (v *StorageValue) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(v).SetBytesCanonical(data)
}

// GlobalRoot is the commitment root of the global state tree.
type GlobalRoot felt.Felt

func (r *GlobalRoot) AsFelt() *felt.Felt {
	return (*felt.Felt)(r)
}

func (r *GlobalRoot) String() string {
	return (*felt.Felt)(r).String()
}

func (r *GlobalRoot) Equal(other *GlobalRoot) bool {
	return (*felt.Felt)(r).Equal((*felt.Felt)(other))
}

func (r *GlobalRoot) MarshalCBOR() ([]byte, error) {
	return (*felt.Felt)(r).MarshalCBOR()
}

func (r *GlobalRoot) UnmarshalCBOR(data []byte) error {
	return (*felt.Felt)(r).UnmarshalCBOR(data)
}
