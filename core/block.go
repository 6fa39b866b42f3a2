package core

import (
	"encoding/binary"
	"errors"

	"github.com/surveyorhq/surveyor/core/felt"
)

// BlockHash is the hash of a StarkNet block.
type BlockHash felt.Felt

func (h *BlockHash) AsFelt() *felt.Felt {
	return (*felt.Felt)(h)
}

func (h *BlockHash) String() string {
	return (*felt.Felt)(h).String()
}

func (h *BlockHash) Equal(other *BlockHash) bool {
	return (*felt.Felt)(h).Equal((*felt.Felt)(other))
}

func (h *BlockHash) Bytes() [felt.Bytes]byte {
	return (*felt.Felt)(h).Bytes()
}

func (h *BlockHash) Marshal() []byte {
	return (*felt.Felt)(h).Marshal()
}

func (h *BlockHash) SetBytesCanonical(data []byte) error {
	return (*felt.Felt)(h).SetBytesCanonical(data)
}

func (h *BlockHash) MarshalJSON() ([]byte, error) {
	return (*felt.Felt)(h).MarshalJSON()
}

func (h *BlockHash) UnmarshalJSON(data []byte) error {
	return (*felt.Felt)(h).UnmarshalJSON(data)
}

func (h *BlockHash) MarshalCBOR() ([]byte, error) {
	return (*felt.Felt)(h).MarshalCBOR()
}

func (h *BlockHash) UnmarshalCBOR(data []byte) error {
	return (*felt.Felt)(h).UnmarshalCBOR(data)
}

// BlockNumber is the height of a block, counted from genesis. Heights are
// ordinal positions: the only arithmetic defined on them is moving forwards
// and backwards along the chain.
type BlockNumber uint64

// Genesis is the height of the first block.
const Genesis BlockNumber = 0

// ErrBlockNumberUnderflow is returned by Recede when the offset would move
// past genesis.
var ErrBlockNumberUnderflow = errors.New("block number underflow")

// Advance returns the height offset blocks after b.
func (b BlockNumber) Advance(offset uint64) BlockNumber {
	return b + BlockNumber(offset)
}

// Recede returns the height offset blocks before b. Unlike raw uint64
// subtraction this never wraps: offsets reaching past genesis are rejected.
func (b BlockNumber) Recede(offset uint64) (BlockNumber, error) {
	if offset > uint64(b) {
		return 0, ErrBlockNumberUnderflow
	}
	return b - BlockNumber(offset), nil
}

func (b BlockNumber) Uint64() uint64 {
	return uint64(b)
}

// Marshal returns the 8-byte big-endian encoding of the height.
func (b BlockNumber) Marshal() []byte {
	enc := make([]byte, 8)
	binary.BigEndian.PutUint64(enc, uint64(b))
	return enc
}

// BlockNumberFromBytes decodes an 8-byte big-endian height.
func BlockNumberFromBytes(data []byte) (BlockNumber, error) {
	if len(data) != 8 {
		return 0, errors.New("block number must be 8 bytes")
	}
	return BlockNumber(binary.BigEndian.Uint64(data)), nil
}

// BlockTimestamp is the time a sequencer created a block, as a unix epoch
// second count.
type BlockTimestamp uint64

func (t BlockTimestamp) Uint64() uint64 {
	return uint64(t)
}

// L1Head is the latest L2 block and state root accepted on the L1 core
// contract.
type L1Head struct {
	BlockNumber BlockNumber `cbor:"1,keyasint"`
	BlockHash   *BlockHash  `cbor:"2,keyasint"`
	StateRoot   *GlobalRoot `cbor:"3,keyasint"`
}
