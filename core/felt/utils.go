package felt

// FeltLike is satisfied by Felt and by every nominal wrapper declared over it.
// It lets callers use the helpers below without first converting back to Felt.
type FeltLike interface {
	~[Limbs]uint64
}

func IsZero[F FeltLike](v F) bool {
	f := Felt(v)
	return f.IsZero()
}

func Equal[F FeltLike](a, b F) bool {
	fa := Felt(a)
	fb := Felt(b)
	return fa.Equal(&fb)
}
