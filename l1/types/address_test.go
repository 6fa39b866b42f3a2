package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/l1/types"
)

func TestL1AddressJSON(t *testing.T) {
	var addr types.L1Address
	require.NoError(t, json.Unmarshal([]byte(`"0xc662c410C0ECf747543f5bA90660f6ABeBD9C8c4"`), &addr))

	data, err := json.Marshal(&addr)
	require.NoError(t, err)

	var decoded types.L1Address
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(&addr))
}

func TestL1AddressJSONRejectsWideValues(t *testing.T) {
	// A 256-bit value fits in a U256 but not in an address; accepting it
	// would make the canonical 20-byte wire form lose the high bytes.
	wide := `"0x` + strings.Repeat("ab", 32) + `"`

	var addr types.L1Address
	assert.Error(t, json.Unmarshal([]byte(wide), &addr))

	// 161 bits is the first width past the boundary.
	var justOver types.L1Address
	assert.Error(t, json.Unmarshal([]byte(`"0x1ffffffffffffffffffffffffffffffffffffffff"`), &justOver))
}

func TestL1AddressJSONBoundary(t *testing.T) {
	// Exactly 160 bits is still a valid address.
	var addr types.L1Address
	require.NoError(t, json.Unmarshal([]byte(`"0xffffffffffffffffffffffffffffffffffffffff"`), &addr))

	var decoded types.L1Address
	require.NoError(t, decoded.SetBytesCanonical(addr.Marshal()))
	assert.True(t, decoded.Equal(&addr))
}
