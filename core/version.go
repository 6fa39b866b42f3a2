package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/holiman/uint256"
)

// ProtocolVersion is the 256-bit protocol version word reported for a block.
// The value is ASCII text ("0.10.0" and similar) packed into the low bytes of
// the word.
type ProtocolVersion uint256.Int

// ProtocolVersionFromBytes builds a version from its big-endian encoding.
func ProtocolVersionFromBytes(data []byte) (ProtocolVersion, error) {
	if len(data) > 32 {
		return ProtocolVersion{}, fmt.Errorf("protocol version exceeds 32 bytes")
	}
	var v uint256.Int
	v.SetBytes(data)
	return ProtocolVersion(v), nil
}

func (v *ProtocolVersion) Equal(other *ProtocolVersion) bool {
	return (*uint256.Int)(v).Eq((*uint256.Int)(other))
}

// Bytes returns the 32-byte big-endian representation.
func (v *ProtocolVersion) Bytes() [32]byte {
	return (*uint256.Int)(v).Bytes32()
}

// String returns the ASCII text packed into the word, e.g. "0.10.0".
func (v *ProtocolVersion) String() string {
	b := (*uint256.Int)(v).Bytes()
	return string(b)
}

// Semver parses the version text into a semantic version, defaulting to
// "0.0.0" for the zero value and padding or truncating to three digits the
// way the feeder gateway versions require.
func (v *ProtocolVersion) Semver() (*semver.Version, error) {
	return ParseBlockVersion(v.String())
}

// ParseBlockVersion computes the block version, defaulting to "0.0.0" for empty strings
func ParseBlockVersion(protocolVersion string) (*semver.Version, error) {
	if protocolVersion == "" {
		return semver.NewVersion("0.0.0")
	}

	sep := "."
	digits := strings.Split(protocolVersion, sep)
	// pad with 3 zeros in case version has less than 3 digits
	digits = append(digits, []string{"0", "0", "0"}...)

	// get first 3 digits only
	ver, err := semver.NewVersion(strings.Join(digits[:3], sep))
	if err != nil {
		return nil, fmt.Errorf("cannot parse starknet protocol version %q: %w", protocolVersion, err)
	}
	return ver, nil
}
