package rpc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/core"
	"github.com/surveyorhq/surveyor/core/felt"
	"github.com/surveyorhq/surveyor/rpc"
)

func TestBlockIDFromNumber(t *testing.T) {
	id := rpc.BlockIDFromNumber(core.BlockNumber(231579))
	assert.False(t, id.IsLatest())
	assert.False(t, id.IsPending())
	assert.Nil(t, id.GetHash())
	assert.Equal(t, uint64(231579), id.GetNumber())
}

func TestBlockIDFromHash(t *testing.T) {
	hash, err := felt.FromString[core.BlockHash]("0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943")
	require.NoError(t, err)

	id := rpc.BlockIDFromHash(hash)
	assert.False(t, id.IsLatest())
	assert.False(t, id.IsPending())
	require.NotNil(t, id.GetHash())
	assert.True(t, id.GetHash().Equal(hash.AsFelt()))
}

func TestBlockIDTags(t *testing.T) {
	latest := rpc.LatestBlockID()
	pending := rpc.PendingBlockID()
	assert.True(t, latest.IsLatest())
	assert.True(t, pending.IsPending())
	assert.False(t, latest.IsPending())
}

func TestBlockIDUnmarshal(t *testing.T) {
	tests := map[string]struct {
		input string
		want  rpc.BlockID
	}{
		"latest":  {`"latest"`, rpc.LatestBlockID()},
		"pending": {`"pending"`, rpc.PendingBlockID()},
		"number":  {`{"block_number": 231579}`, rpc.BlockIDFromNumber(231579)},
		"hash": {
			`{"block_hash": "0x800"}`,
			rpc.BlockID{Hash: new(felt.Felt).SetUint64(0x800)},
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var id rpc.BlockID
			require.NoError(t, json.Unmarshal([]byte(test.input), &id))
			assert.Equal(t, test.want, id)
		})
	}

	t.Run("unknown shape", func(t *testing.T) {
		var id rpc.BlockID
		assert.Error(t, json.Unmarshal([]byte(`{"height": 1}`), &id))
	})
}

func TestBlockIDMarshalRoundTrip(t *testing.T) {
	hash, err := felt.FromString[core.BlockHash]("0x47c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943")
	require.NoError(t, err)

	for name, id := range map[string]rpc.BlockID{
		"latest":  rpc.LatestBlockID(),
		"pending": rpc.PendingBlockID(),
		"number":  rpc.BlockIDFromNumber(231579),
		"hash":    rpc.BlockIDFromHash(hash),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := json.Marshal(id)
			require.NoError(t, err)

			var decoded rpc.BlockID
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, id, decoded)
		})
	}
}
