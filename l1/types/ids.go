package types

// L1BlockHash is the hash of an Ethereum block.
type L1BlockHash U256

func (h *L1BlockHash) Bytes() [32]byte {
	return (*U256)(h).Bytes32()
}

func (h *L1BlockHash) String() string {
	return (*U256)(h).String()
}

func (h *L1BlockHash) Equal(other *L1BlockHash) bool {
	return (*U256)(h).Equal((*U256)(other))
}

func (h *L1BlockHash) Marshal() []byte {
	return (*U256)(h).Marshal()
}

func (h *L1BlockHash) SetBytesCanonical(data []byte) error {
	return (*U256)(h).SetBytesCanonical(data)
}

func (h *L1BlockHash) MarshalCBOR() ([]byte, error) {
	return (*U256)(h).MarshalCBOR()
}

func (h *L1BlockHash) UnmarshalCBOR(data []byte) error {
	return (*U256)(h).UnmarshalCBOR(data)
}

// L1TransactionHash is the hash of an Ethereum transaction.
type L1TransactionHash U256

func (h *L1TransactionHash) Bytes() [32]byte {
	return (*U256)(h).Bytes32()
}

func (h *L1TransactionHash) String() string {
	return (*U256)(h).String()
}

func (h *L1TransactionHash) Equal(other *L1TransactionHash) bool {
	return (*U256)(h).Equal((*U256)(other))
}

func (h *L1TransactionHash) Marshal() []byte {
	return (*U256)(h).Marshal()
}

func (h *L1TransactionHash) SetBytesCanonical(data []byte) error {
	return (*U256)(h).SetBytesCanonical(data)
}

// L1BlockNumber is the height of an Ethereum block.
type L1BlockNumber uint64

func (n L1BlockNumber) Uint64() uint64 {
	return uint64(n)
}

// L1TransactionIndex is a transaction's position within an Ethereum block.
type L1TransactionIndex uint64

func (i L1TransactionIndex) Uint64() uint64 {
	return uint64(i)
}

// L1LogIndex is a log's position within an Ethereum block.
type L1LogIndex uint64

func (i L1LogIndex) Uint64() uint64 {
	return uint64(i)
}
