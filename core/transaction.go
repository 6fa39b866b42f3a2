package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// TransactionHash is the hash of a StarkNet transaction.
type TransactionHash felt.Felt

func (h *TransactionHash) AsFelt() *felt.Felt {
	return (*felt.Felt)(h)
}

func (h *TransactionHash) String() string {
	return (*felt.Felt)(h).String()
}

func (h *TransactionHash) Equal(other *TransactionHash) bool {
	return (*felt.Felt)(h).Equal((*felt.Felt)(other))
}

func (h *TransactionHash) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(h).Bytes()
}

func (h *TransactionHash) Marshal() []byte {
	return (*felt.Felt)(h).Marshal()
}

func (h *TransactionHash) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(h).SetBytesCanonical(data)
}

func (h *TransactionHash) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(h).MarshalJSON()
}

func (h *TransactionHash) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(h).UnmarshalJSON(data)
}

// TransactionIndex is a transaction's position within its block.
type TransactionIndex uint64

func (i TransactionIndex) Uint64() uint64 {
	return uint64(i)
}

// TransactionSignatureElem is a single element of a transaction's signature.
type TransactionSignatureElem felt.Felt

func (s *TransactionSignatureElem) AsFelt() *felt.Felt {
	return (*felt.Felt)(s)
}

func (s *TransactionSignatureElem) String() string {
	return (*felt.Felt)(s).String()
}

func (s *TransactionSignatureElem) Equal(other *TransactionSignatureElem) bool {
	return (*felt.Felt)(s).Equal((*felt.Felt)(other))
}
