package core

import (
	"github.com/surveyorhq/surveyor/core/felt"
)

// L1ToL2MessageNonce is the nonce attached to an L1 to L2 message.
type L1ToL2MessageNonce felt.Felt

func (n *L1ToL2MessageNonce) AsFelt() *felt.Felt {
	return (*felt.Felt)(n)
}

func (n *L1ToL2MessageNonce) String() string {
	return (*felt.Felt)(n).String()
}

func (n *L1ToL2MessageNonce) Equal(other *L1ToL2MessageNonce) bool {
	return (*felt.Felt)(n).Equal((*felt.Felt)(other))
}

// L1ToL2MessagePayloadElem is a single element of an L1 to L2 message payload.
type L1ToL2MessagePayloadElem felt.Felt

func (e *L1ToL2MessagePayloadElem) AsFelt() *felt.Felt {
	return (*felt.Felt)(e)
}

func (e *L1ToL2MessagePayloadElem) String() string {
	return (*felt.Felt)(e).String()
}

func (e *L1ToL2MessagePayloadElem) Equal(other *L1ToL2MessagePayloadElem) bool {
	return (*felt.Felt)(e).Equal((*felt.Felt)(other))
}

// L2ToL1MessagePayloadElem is a single element of an L2 to L1 message payload.
type L2ToL1MessagePayloadElem felt.Felt

func (e *L2ToL1MessagePayloadElem) AsFelt() *felt.Felt {
	return (*felt.Felt)(e)
}

func (e *L2ToL1MessagePayloadElem) String() string {
	return (*felt.Felt)(e).String()
}

func (e *L2ToL1MessagePayloadElem) Equal(other *L2ToL1MessagePayloadElem) bool {
	return (*felt.Felt)(e).Equal((*felt.Felt)(other))
}
