package core_test

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surveyorhq/surveyor/core"
)

func TestParseBlockVersion(t *testing.T) {
	versions := []struct {
		version  string
		expected *semver.Version
	}{
		{"0.13.1", semver.MustParse("0.13.1")},
		{"0.13.1.1", semver.MustParse("0.13.1")},
		{"0.14", semver.MustParse("0.14.0")},
		{"14", semver.MustParse("14.0.0")},
		{"", semver.MustParse("0.0.0")},
	}

	for _, test := range versions {
		t.Run("block version: "+test.version, func(t *testing.T) {
			version, err := core.ParseBlockVersion(test.version)
			require.Nil(t, err)
			assert.Equal(t, test.expected, version)
		})
	}
}

func TestCannotParseBlockVersion(t *testing.T) {
	version, err := core.ParseBlockVersion("not a version")
	require.Nil(t, version)
	assert.ErrorContains(t, err, "cannot parse starknet protocol version")
}

func TestProtocolVersion(t *testing.T) {
	v, err := core.ProtocolVersionFromBytes([]byte("0.10.3"))
	require.NoError(t, err)
	assert.Equal(t, "0.10.3", v.String())

	parsed, err := v.Semver()
	require.NoError(t, err)
	assert.Equal(t, semver.MustParse("0.10.3"), parsed)

	other, err := core.ProtocolVersionFromBytes([]byte("0.10.3"))
	require.NoError(t, err)
	assert.True(t, v.Equal(&other))

	_, err = core.ProtocolVersionFromBytes(make([]byte, 33))
	assert.Error(t, err)
}

func TestProtocolVersionWireWidth(t *testing.T) {
	v, err := core.ProtocolVersionFromBytes([]byte("0.14.0"))
	require.NoError(t, err)
	b := v.Bytes()
	assert.Len(t, b[:], 32)
	// ASCII text sits in the low bytes of the word.
	assert.Equal(t, "0.14.0", string(b[26:]))

	decoded, err := core.ProtocolVersionFromBytes(b[:])
	require.NoError(t, err)
	assert.True(t, decoded.Equal(&v))
}
