package rpc

import (
	"encoding/json"
	"errors"

	"github.com/surveyorhq/surveyor/core"
	"github.com/surveyorhq/surveyor/core/felt"
)

// BlockID is the tagged block reference accepted by the query layer: exactly
// one of pending, latest, a block hash or a block number.
//
// https://github.com/starkware-libs/starknet-specs/blob/a789ccc3432c57777beceaa53a34a7ae2f25fda0/api/starknet_api_openrpc.json#L814
type BlockID struct {
	Pending bool
	Latest  bool
	Hash    *felt.Felt
	Number  uint64
}

// BlockIDFromNumber references a block by its height. The mapping is total
// and keeps the height unchanged.
func BlockIDFromNumber(number core.BlockNumber) BlockID {
	return BlockID{Number: number.Uint64()}
}

// BlockIDFromHash references a block by its hash. The mapping is total and
// keeps the hash unchanged.
func BlockIDFromHash(hash core.BlockHash) BlockID {
	return BlockID{Hash: hash.AsFelt()}
}

// LatestBlockID references the latest accepted block.
func LatestBlockID() BlockID {
	return BlockID{Latest: true}
}

// PendingBlockID references the pending block.
func PendingBlockID() BlockID {
	return BlockID{Pending: true}
}

func (b *BlockID) IsLatest() bool {
	return b.Latest
}

func (b *BlockID) IsPending() bool {
	return b.Pending
}

func (b *BlockID) GetHash() *felt.Felt {
	return b.Hash
}

func (b *BlockID) GetNumber() uint64 {
	return b.Number
}

func (b *BlockID) UnmarshalJSON(data []byte) error {
	if string(data) == `"latest"` {
		b.Latest = true
	} else if string(data) == `"pending"` {
		b.Pending = true
	} else {
		jsonObject := make(map[string]json.RawMessage)
		if err := json.Unmarshal(data, &jsonObject); err != nil {
			return err
		}
		hash, ok := jsonObject["block_hash"]
		if ok {
			b.Hash = new(felt.Felt)
			return json.Unmarshal(hash, b.Hash)
		}

		number, ok := jsonObject["block_number"]
		if ok {
			return json.Unmarshal(number, &b.Number)
		}

		return errors.New("cannot unmarshal block id")
	}
	return nil
}

func (b BlockID) MarshalJSON() ([]byte, error) {
	switch {
	case b.Latest:
		return []byte(`"latest"`), nil
	case b.Pending:
		return []byte(`"pending"`), nil
	case b.Hash != nil:
		return json.Marshal(map[string]*felt.Felt{"block_hash": b.Hash})
	default:
		return json.Marshal(map[string]uint64{"block_number": b.Number})
	}
}
