package types

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Explicit, lossless bridges between this package's identifiers and
// go-ethereum's vocabulary. These are the only sanctioned crossings; nothing
// here converts implicitly.

func L1AddressFromEth(addr common.Address) L1Address {
	var result L1Address
	_ = result.SetBytesCanonical(addr[:])
	return result
}

func (a L1Address) ToEthAddress() common.Address {
	bytes := a.Bytes()
	return common.BytesToAddress(bytes[:])
}

func L1BlockHashFromEth(hash common.Hash) L1BlockHash {
	var result L1BlockHash
	_ = result.SetBytesCanonical(hash[:])
	return result
}

func (h L1BlockHash) ToEthHash() common.Hash {
	bytes := h.Bytes()
	return common.BytesToHash(bytes[:])
}

func L1TransactionHashFromEth(hash common.Hash) L1TransactionHash {
	var result L1TransactionHash
	_ = result.SetBytesCanonical(hash[:])
	return result
}

func (h L1TransactionHash) ToEthHash() common.Hash {
	bytes := h.Bytes()
	return common.BytesToHash(bytes[:])
}

// ToEthBlockNumber returns the block-number query parameter understood by
// go-ethereum's RPC client.
func (n L1BlockNumber) ToEthBlockNumber() ethrpc.BlockNumber {
	return ethrpc.BlockNumber(n) //nolint:gosec // heights never exceed int64
}

// ToBig returns the height as the *big.Int form ethclient calls take.
func (n L1BlockNumber) ToBig() *big.Int {
	return new(big.Int).SetUint64(uint64(n))
}
