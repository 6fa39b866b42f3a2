package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/core"
	"github.com/surveyorhq/surveyor/core/felt"
	"github.com/surveyorhq/surveyor/encoder"
	_ "github.com/surveyorhq/surveyor/encoder/registry"
)

func TestGenesis(t *testing.T) {
	assert.Equal(t, core.BlockNumber(0), core.Genesis)
}

func TestAdvance(t *testing.T) {
	assert.Equal(t, core.BlockNumber(5), core.Genesis.Advance(5))
	assert.Equal(t, core.BlockNumber(12), core.BlockNumber(5).Advance(7))

	b := core.BlockNumber(41)
	assert.True(t, b.Advance(1) > b)
}

func TestRecede(t *testing.T) {
	got, err := core.BlockNumber(5).Recede(5)
	require.NoError(t, err)
	assert.Equal(t, core.Genesis, got)

	got, err = core.BlockNumber(100).Recede(58)
	require.NoError(t, err)
	assert.Equal(t, core.BlockNumber(42), got)
}

func TestRecedePastGenesis(t *testing.T) {
	_, err := core.BlockNumber(5).Recede(6)
	assert.ErrorIs(t, err, core.ErrBlockNumberUnderflow)

	_, err = core.Genesis.Recede(1)
	assert.ErrorIs(t, err, core.ErrBlockNumberUnderflow)
}

func TestAdvanceRecedeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		base   core.BlockNumber
		offset uint64
	}{
		{core.Genesis, 0},
		{core.Genesis, 1},
		{core.BlockNumber(1000), 999},
		{core.BlockNumber(1 << 40), 1 << 39},
	} {
		got, err := tc.base.Advance(tc.offset).Recede(tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.base, got)
	}
}

func TestBlockNumberOrder(t *testing.T) {
	assert.True(t, core.BlockNumber(1) < core.BlockNumber(2))
	assert.False(t, core.BlockNumber(2) < core.BlockNumber(2))
	assert.True(t, core.Genesis < core.BlockNumber(1))
}

func TestBlockNumberEncoding(t *testing.T) {
	b := core.BlockNumber(0xdeadbeef)
	enc := b.Marshal()
	assert.Len(t, enc, 8)

	decoded, err := core.BlockNumberFromBytes(enc)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)

	_, err = core.BlockNumberFromBytes(enc[:4])
	assert.Error(t, err)
}

func TestBlockHashEncoding(t *testing.T) {
	var f felt.Felt
	_, err := f.SetRandom()
	require.NoError(t, err)
	hash := core.BlockHash(f)

	var decoded core.BlockHash
	require.NoError(t, decoded.SetBytesCanonical(hash.Marshal()))
	assert.True(t, decoded.Equal(&hash))

	data, err := hash.MarshalJSON()
	require.NoError(t, err)
	var fromJSON core.BlockHash
	require.NoError(t, fromJSON.UnmarshalJSON(data))
	assert.True(t, fromJSON.Equal(&hash))
}

func TestL1HeadEncoding(t *testing.T) {
	var hashFelt felt.Felt
	_, err := hashFelt.SetRandom()
	require.NoError(t, err)
	var rootFelt felt.Felt
	_, err = rootFelt.SetRandom()
	require.NoError(t, err)

	head := core.L1Head{
		BlockNumber: core.BlockNumber(123456),
		BlockHash:   (*core.BlockHash)(&hashFelt),
		StateRoot:   (*core.GlobalRoot)(&rootFelt),
	}

	enc, err := encoder.Marshal(&head)
	require.NoError(t, err)

	var decoded core.L1Head
	require.NoError(t, encoder.Unmarshal(enc, &decoded))
	assert.Equal(t, head, decoded)

	encoder.TestSymmetry(t, head)
}
