package types_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/l1/types"
)

func TestL1AddressEthRoundTrip(t *testing.T) {
	ethAddr := common.HexToAddress("0xc662c410C0ECf747543f5bA90660f6ABeBD9C8c4")

	addr := types.L1AddressFromEth(ethAddr)
	assert.Equal(t, ethAddr, addr.ToEthAddress())
	assert.Equal(t, ethAddr.Bytes(), addr.Marshal())
}

func TestL1HashEthRoundTrip(t *testing.T) {
	ethHash := common.HexToHash("0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943")

	blockHash := types.L1BlockHashFromEth(ethHash)
	assert.Equal(t, ethHash, blockHash.ToEthHash())

	txHash := types.L1TransactionHashFromEth(ethHash)
	assert.Equal(t, ethHash, txHash.ToEthHash())
}

func TestL1BlockNumberQueryParam(t *testing.T) {
	number := types.L1BlockNumber(19_432_811)

	assert.Equal(t, ethrpc.BlockNumber(19_432_811), number.ToEthBlockNumber())

	big := number.ToBig()
	require.NotNil(t, big)
	assert.Equal(t, uint64(19_432_811), big.Uint64())
}
