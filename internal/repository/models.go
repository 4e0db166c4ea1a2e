package repository

import "time"

// Transaction is one observed chain transaction. Hash is the identity;
// re-observing the same hash only updates GasUsed and Success.
type Transaction struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	Hash        string  `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	BlockNumber uint64  `gorm:"not null;index"`
	FromAddress string  `gorm:"size:42;not null;index"`
	ToAddress   *string `gorm:"size:42;index"`    // nil = contract creation
	Value       string  `gorm:"size:78;not null"` // wei as decimal string
	GasPrice    string  `gorm:"size:78;not null"`
	GasUsed     *string `gorm:"size:78"` // nil until receipt known
	Input       *string `gorm:"type:text"`
	Nonce       uint64  `gorm:"not null"`
	Success     bool    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenTransfer is one BEP-20 Transfer log. A transaction may emit many,
// so identity is (tx hash, log index).
type TokenTransfer struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	TxHash       string `gorm:"size:66;not null;uniqueIndex:idx_token_transfers_tx_log"`
	LogIndex     uint   `gorm:"not null;uniqueIndex:idx_token_transfers_tx_log"`
	TokenAddress string `gorm:"size:42;not null;index"`
	FromAddress  string `gorm:"size:42;not null"`
	ToAddress    string `gorm:"size:42;not null"`
	Amount       string `gorm:"size:78;not null"` // raw token units as decimal string
	BlockNumber  uint64 `gorm:"not null;index"`
	CreatedAt    time.Time
}

// LargeTransfer is a native BNB send at or above the configured threshold.
type LargeTransfer struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement"`
	Hash        string     `gorm:"size:66;uniqueIndex;not null"`
	FromAddress string     `gorm:"size:42;not null"`
	ToAddress   string     `gorm:"size:42;not null"`
	ValueWei    string     `gorm:"size:78;not null"`
	BlockNumber uint64     `gorm:"not null;index"`
	BlockTime   *time.Time
	CreatedAt   time.Time
}

// FailedTransaction is a reverted transaction with its decoded reason,
// when the calldata follows the standard Error(string) encoding.
type FailedTransaction struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement"`
	Hash         string  `gorm:"size:66;uniqueIndex;not null"`
	BlockNumber  uint64  `gorm:"not null;index"`
	FromAddress  string  `gorm:"size:42;not null"`
	ToAddress    *string `gorm:"size:42"`
	GasUsed      string  `gorm:"size:78;not null"`
	RevertReason *string `gorm:"type:text"`
	Input        *string `gorm:"type:text"`
	CreatedAt    time.Time
}

// IndexerCursor is the single-row resume point: the highest block fully
// processed. Written after each block so a restart continues where the
// previous run stopped instead of re-anchoring to the chain tip.
type IndexerCursor struct {
	ID                 uint   `gorm:"primaryKey"`
	LastProcessedBlock uint64 `gorm:"not null"`
	UpdatedAt          time.Time
}

// BlockActivity is the per-block transaction tally for the activity
// chart. GasAvg is reserved for a future per-block gas aggregation and
// is always zero for now.
type BlockActivity struct {
	Block   uint64 `json:"block"`
	TxCount int64  `json:"txCount"`
	Failed  int64  `json:"failed"`
	GasAvg  int64  `json:"gasAvg"`
}

// TokenBalance is a net token position inferred from observed transfers.
type TokenBalance struct {
	Token   string `json:"token"`
	Balance string `json:"balance"`
}

// AddressProfile summarizes everything indexed for one address.
type AddressProfile struct {
	Address       string         `json:"address"`
	TxCount       int64          `json:"txCount"`
	TotalSent     string         `json:"totalSent"`
	TotalReceived string         `json:"totalReceived"`
	Transactions  []Transaction  `json:"transactions"`
	TokenBalances []TokenBalance `json:"tokenBalances"`
}

// Stats summarizes the indexed records for the query API.
type Stats struct {
	TotalTransactions      int64  `json:"totalTransactions"`
	SuccessfulTransactions int64  `json:"successfulTransactions"`
	FailedTransactions     int64  `json:"failedTransactions"`
	LargeTransfers         int64  `json:"largeTransfers"`
	TokenTransfers         int64  `json:"tokenTransfers"`
	LatestBlock            uint64 `json:"latestBlock"`
}
