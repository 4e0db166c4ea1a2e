package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type ReceiptResult struct {
	Hash    common.Hash
	Receipt *types.Receipt
	Error   error
}

// TxDetails are the sender-side fields of a transaction, recovered from
// the raw transaction rather than the receipt.
type TxDetails struct {
	Hash     string
	From     string
	To       *string // nil = contract creation
	Value    *big.Int
	GasPrice *big.Int
	Input    []byte
	Nonce    uint64
}
