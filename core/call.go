package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// CallParam is a single parameter passed to a contract call.
type CallParam felt.Felt

func (p *CallParam) AsFelt() *felt.Felt {
	return (*felt.Felt)(p)
}

func (p *CallParam) String() string {
	return (*felt.Felt)(p).String()
}

func (p *CallParam) Equal(other *CallParam) bool {
	return (*felt.Felt)(p).Equal((*felt.Felt)(other))
}

// ConstructorParam is a single parameter passed to a contract constructor.
type ConstructorParam felt.Felt

func (p *ConstructorParam) AsFelt() *felt.Felt {
	return (*felt.Felt)(p)
}

func (p *ConstructorParam) String() string {
	return (*felt.Felt)(p).String()
}

func (p *ConstructorParam) Equal(other *ConstructorParam) bool {
	return (*felt.Felt)(p).Equal((*felt.Felt)(other))
}

// CallResultValue is a single value returned by a contract call.
type CallResultValue felt.Felt

func (v *CallResultValue) AsFelt() *felt.Felt {
	return (*felt.Felt)(v)
}

func (v *CallResultValue) String() string {
	return (*felt.Felt)(v).String()
}

func (v *CallResultValue) Equal(other *CallResultValue) bool {
	return (*felt.Felt)(v).Equal((*felt.Felt)(other))
}

// CallSignatureElem is a single element of a call's signature.
type CallSignatureElem felt.Felt

func (s *CallSignatureElem) AsFelt() *felt.Felt {
	return (*felt.Felt)(s)
}

func (s *CallSignatureElem) String() string {
	return (*felt.Felt)(s).String()
}

func (s *CallSignatureElem) Equal(other *CallSignatureElem) bool {
	return (*felt.Felt)(s).Equal((*felt.Felt)(other))
}
