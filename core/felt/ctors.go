package felt

// FromUint64 builds any felt-like value from a machine word.
func FromUint64[F FeltLike](v uint64) F {
	var f Felt
	f.SetUint64(v)
	return F(f)
}

// FromBytes builds any felt-like value from big-endian bytes, reducing modulo
// the field.
func FromBytes[F FeltLike](b []byte) F {
	var f Felt
	f.SetBytes(b)
	return F(f)
}

// FromString parses a felt-like value from a decimal or prefixed (0x, 0b)
// string.
func FromString[F FeltLike](s string) (F, error) {
	var f Felt
	if _, err := f.SetString(s); err != nil {
		var zero F
		return zero, err
	}
	return F(f), nil
}
