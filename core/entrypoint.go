package core

import (
	"github.com/surveyorhq/surveyor/core/crypto"
	"github.com/surveyorhq/surveyor/core/felt"
)

// EntryPoint is the selector of a callable function of a StarkNet contract.
type EntryPoint felt.Felt

// SelectorFromName derives the entry point selector for a function name.
// The derivation is the starknet keccak of the raw name bytes, so it is pure
// and deterministic. Distinct names may collide; the protocol accepts this
// and so does this function.
func SelectorFromName(name []byte) EntryPoint {
	return EntryPoint(crypto.StarknetKeccak(name))
}

func (e *EntryPoint) AsFelt() *felt.Felt {
	return (*felt.Felt)(e)
}

func (e *EntryPoint) String() string {
	return (*felt.Felt)(e).String()
}

func (e *EntryPoint) Equal(other *EntryPoint) bool {
	return (*felt.Felt)(e).Equal((*felt.Felt)(other))
}

func (e *EntryPoint) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(e).Bytes()
}

func (e *EntryPoint) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(e).MarshalJSON()
}

func (e *EntryPoint) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(e).UnmarshalJSON(data)
}
