package crypto

import (
	"golang.org/x/crypto/sha3"

	"github.com/surveyorhq/surveyor/core/felt"
)

// StarknetKeccak implements [StarkNet keccak]
//
// The digest's six most significant bits are masked off, so the result always
// fits in 250 bits and is a valid field element. A fresh hasher is used per
// call, making the function safe for concurrent callers.
//
// [StarkNet keccak]: https://docs.starknet.io/documentation/develop/Hashing/hash-functions/#starknet_keccak
func StarknetKeccak(b []byte) felt.Felt {
	h := sha3.NewLegacyKeccak256()
	h.Write(b) //nolint:errcheck // sha3 write never fails
	d := h.Sum(nil)
	// Remove the first 6 bits from the first byte
	d[0] &= 3
	var f felt.Felt
	f.SetBytes(d)
	return f
}
