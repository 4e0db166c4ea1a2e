package repository

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"bscout/internal/db"
)

var ErrTransactionNotFound error = errors.New("transaction not found")

const (
	cursorRowID = 1

	// chartBlockWindow is how many trailing blocks the activity chart
	// covers.
	chartBlockWindow = 30

	// addressTxLimit and addressTransferLimit cap the recent records an
	// address profile embeds.
	addressTxLimit       = 25
	addressTransferLimit = 50
)

// TransactionFilter narrows the transaction list endpoint. Zero value
// means no filtering.
type TransactionFilter struct {
	// Search is a full transaction hash, an address, or a block number.
	Search string
	// DeFiContracts restricts to transactions sent to these addresses.
	DeFiContracts []string
	// FailedOnly keeps only reverted transactions.
	FailedOnly bool
}

type IndexRepository struct {
	db Storage
}

func NewIndexRepository(db Storage) *IndexRepository {
	return &IndexRepository{
		db: db,
	}
}

func (r *IndexRepository) Migrate() error {
	err := r.db.MigrateTable(
		&Transaction{},
		&TokenTransfer{},
		&LargeTransfer{},
		&FailedTransaction{},
		&IndexerCursor{},
	)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// UpsertTransaction inserts the record or, when the hash is already
// known, refreshes only the receipt-derived fields.
func (r *IndexRepository) UpsertTransaction(ctx context.Context, tx Transaction) error {
	err := r.db.Upsert(ctx, &tx, []string{"hash"}, []string{"gas_used", "success", "updated_at"})
	if err != nil {
		return fmt.Errorf("upsert transaction %s: %w", tx.Hash, err)
	}

	return nil
}

// SaveLargeTransfer inserts the record; a duplicate hash is a no-op.
func (r *IndexRepository) SaveLargeTransfer(ctx context.Context, transfer LargeTransfer) error {
	err := r.db.Upsert(ctx, &transfer, []string{"hash"}, nil)
	if err != nil {
		return fmt.Errorf("save large transfer %s: %w", transfer.Hash, err)
	}

	return nil
}

// SaveTokenTransfer inserts the record; a duplicate (hash, log index)
// pair is a no-op.
func (r *IndexRepository) SaveTokenTransfer(ctx context.Context, transfer TokenTransfer) error {
	err := r.db.Upsert(ctx, &transfer, []string{"tx_hash", "log_index"}, nil)
	if err != nil {
		return fmt.Errorf("save token transfer %s/%d: %w", transfer.TxHash, transfer.LogIndex, err)
	}

	return nil
}

// SaveFailedTransaction inserts the record; a duplicate hash is a no-op.
func (r *IndexRepository) SaveFailedTransaction(ctx context.Context, failed FailedTransaction) error {
	err := r.db.Upsert(ctx, &failed, []string{"hash"}, nil)
	if err != nil {
		return fmt.Errorf("save failed transaction %s: %w", failed.Hash, err)
	}

	return nil
}

// LoadCursor returns the stored resume height. The second return value
// is false when no cursor has been stored yet (cold start).
func (r *IndexRepository) LoadCursor(ctx context.Context) (uint64, bool, error) {
	var cursor IndexerCursor
	err := r.db.GetOneBy(ctx, "id", cursorRowID, &cursor)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("load cursor: %w", err)
	}

	return cursor.LastProcessedBlock, true, nil
}

func (r *IndexRepository) StoreCursor(ctx context.Context, height uint64) error {
	cursor := IndexerCursor{
		ID:                 cursorRowID,
		LastProcessedBlock: height,
	}
	err := r.db.Upsert(ctx, &cursor, []string{"id"}, []string{"last_processed_block", "updated_at"})
	if err != nil {
		return fmt.Errorf("store cursor at %d: %w", height, err)
	}

	return nil
}

func (r *IndexRepository) Stats(ctx context.Context) (Stats, error) {
	total, err := r.db.CountWhere(ctx, &Transaction{}, "")
	if err != nil {
		return Stats{}, fmt.Errorf("count transactions: %w", err)
	}

	successful, err := r.db.CountWhere(ctx, &Transaction{}, "success = ?", true)
	if err != nil {
		return Stats{}, fmt.Errorf("count successful transactions: %w", err)
	}

	failed, err := r.db.CountWhere(ctx, &FailedTransaction{}, "")
	if err != nil {
		return Stats{}, fmt.Errorf("count failed transactions: %w", err)
	}

	large, err := r.db.CountWhere(ctx, &LargeTransfer{}, "")
	if err != nil {
		return Stats{}, fmt.Errorf("count large transfers: %w", err)
	}

	tokens, err := r.db.CountWhere(ctx, &TokenTransfer{}, "")
	if err != nil {
		return Stats{}, fmt.Errorf("count token transfers: %w", err)
	}

	latest, _, err := r.LoadCursor(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		TotalTransactions:      total,
		SuccessfulTransactions: successful,
		FailedTransactions:     failed,
		LargeTransfers:         large,
		TokenTransfers:         tokens,
		LatestBlock:            latest,
	}, nil
}

func (r *IndexRepository) ListTransactions(ctx context.Context, filter TransactionFilter, limit, offset int) ([]Transaction, int64, error) {
	condition, args := transactionCondition(filter)

	count, err := r.db.CountWhere(ctx, &Transaction{}, condition, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions: %w", err)
	}

	transactions := []Transaction{}
	err = r.db.List(ctx, &transactions, "block_number DESC, id DESC", limit, offset, condition, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}

	return transactions, count, nil
}

func (r *IndexRepository) GetTransactionWithTransfers(ctx context.Context, hash string) (Transaction, []TokenTransfer, error) {
	var transaction Transaction
	err := r.db.GetOneBy(ctx, "hash", strings.ToLower(hash), &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, nil, ErrTransactionNotFound
		}
		return Transaction{}, nil, fmt.Errorf("get transaction by hash: %w", err)
	}

	transfers := []TokenTransfer{}
	err = r.db.GetAllBy(ctx, "tx_hash", transaction.Hash, &transfers, "log_index ASC")
	if err != nil {
		return Transaction{}, nil, fmt.Errorf("get token transfers by hash: %w", err)
	}

	return transaction, transfers, nil
}

func (r *IndexRepository) ListLargeTransfers(ctx context.Context, limit, offset int) ([]LargeTransfer, int64, error) {
	count, err := r.db.CountWhere(ctx, &LargeTransfer{}, "")
	if err != nil {
		return nil, 0, fmt.Errorf("count large transfers: %w", err)
	}

	transfers := []LargeTransfer{}
	err = r.db.List(ctx, &transfers, "block_number DESC, id DESC", limit, offset, "")
	if err != nil {
		return nil, 0, fmt.Errorf("list large transfers: %w", err)
	}

	return transfers, count, nil
}

func (r *IndexRepository) ListTokenTransfers(ctx context.Context, token string, limit, offset int) ([]TokenTransfer, int64, error) {
	condition := ""
	args := []any{}
	if token != "" {
		condition = "lower(token_address) = ?"
		args = append(args, strings.ToLower(token))
	}

	count, err := r.db.CountWhere(ctx, &TokenTransfer{}, condition, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count token transfers: %w", err)
	}

	transfers := []TokenTransfer{}
	err = r.db.List(ctx, &transfers, "block_number DESC, id DESC", limit, offset, condition, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list token transfers: %w", err)
	}

	return transfers, count, nil
}

func (r *IndexRepository) ListFailedTransactions(ctx context.Context, limit, offset int) ([]FailedTransaction, int64, error) {
	count, err := r.db.CountWhere(ctx, &FailedTransaction{}, "")
	if err != nil {
		return nil, 0, fmt.Errorf("count failed transactions: %w", err)
	}

	failed := []FailedTransaction{}
	err = r.db.List(ctx, &failed, "block_number DESC, id DESC", limit, offset, "")
	if err != nil {
		return nil, 0, fmt.Errorf("list failed transactions: %w", err)
	}

	return failed, count, nil
}

// BlockActivity tallies transactions per block over the trailing chart
// window, anchored at the highest indexed block. Returns an empty slice
// before any transaction has been indexed.
func (r *IndexRepository) BlockActivity(ctx context.Context) ([]BlockActivity, error) {
	latest := []Transaction{}
	err := r.db.List(ctx, &latest, "block_number DESC, id DESC", 1, 0, "")
	if err != nil {
		return nil, fmt.Errorf("find latest indexed block: %w", err)
	}
	if len(latest) == 0 {
		return []BlockActivity{}, nil
	}

	var start uint64
	if latest[0].BlockNumber >= chartBlockWindow-1 {
		start = latest[0].BlockNumber - (chartBlockWindow - 1)
	}

	totals, err := r.db.CountByBucket(ctx, &Transaction{}, "block_number", "block_number >= ?", start)
	if err != nil {
		return nil, fmt.Errorf("count transactions per block: %w", err)
	}

	failed, err := r.db.CountByBucket(ctx, &Transaction{}, "block_number", "block_number >= ? AND success = ?", start, false)
	if err != nil {
		return nil, fmt.Errorf("count failed transactions per block: %w", err)
	}

	failedByBlock := make(map[uint64]int64, len(failed))
	for _, bucket := range failed {
		failedByBlock[bucket.Bucket] = bucket.Count
	}

	activity := make([]BlockActivity, 0, len(totals))
	for _, bucket := range totals {
		activity = append(activity, BlockActivity{
			Block:   bucket.Bucket,
			TxCount: bucket.Count,
			Failed:  failedByBlock[bucket.Bucket],
		})
	}

	return activity, nil
}

// AddressProfile collects the indexed activity of one address: lifetime
// transaction count, recent transactions, native value totals and net
// token balances inferred from the most recent transfers.
func (r *IndexRepository) AddressProfile(ctx context.Context, address string) (AddressProfile, error) {
	addr := strings.ToLower(address)
	condition := "lower(from_address) = ? OR lower(to_address) = ?"

	txCount, err := r.db.CountWhere(ctx, &Transaction{}, condition, addr, addr)
	if err != nil {
		return AddressProfile{}, fmt.Errorf("count address transactions: %w", err)
	}

	transactions := []Transaction{}
	err = r.db.List(ctx, &transactions, "block_number DESC, id DESC", addressTxLimit, 0, condition, addr, addr)
	if err != nil {
		return AddressProfile{}, fmt.Errorf("list address transactions: %w", err)
	}

	sent, err := r.db.SumWhere(ctx, &Transaction{}, "value", "lower(from_address) = ?", addr)
	if err != nil {
		return AddressProfile{}, fmt.Errorf("sum sent value: %w", err)
	}

	received, err := r.db.SumWhere(ctx, &Transaction{}, "value", "lower(to_address) = ?", addr)
	if err != nil {
		return AddressProfile{}, fmt.Errorf("sum received value: %w", err)
	}

	transfers := []TokenTransfer{}
	err = r.db.List(ctx, &transfers, "block_number DESC, id DESC", addressTransferLimit, 0, condition, addr, addr)
	if err != nil {
		return AddressProfile{}, fmt.Errorf("list address token transfers: %w", err)
	}

	return AddressProfile{
		Address:       address,
		TxCount:       txCount,
		TotalSent:     sent,
		TotalReceived: received,
		Transactions:  transactions,
		TokenBalances: tokenBalances(addr, transfers),
	}, nil
}

// tokenBalances nets the transfer amounts per token from the address's
// point of view, keeping only positive positions. Token keys are the
// lowercased contract addresses.
func tokenBalances(address string, transfers []TokenTransfer) []TokenBalance {
	net := map[string]*big.Int{}
	seen := []string{}

	for _, transfer := range transfers {
		amount, ok := new(big.Int).SetString(transfer.Amount, 10)
		if !ok {
			continue
		}
		token := strings.ToLower(transfer.TokenAddress)
		balance, tracked := net[token]
		if !tracked {
			balance = new(big.Int)
			net[token] = balance
			seen = append(seen, token)
		}
		switch {
		case strings.ToLower(transfer.ToAddress) == address:
			balance.Add(balance, amount)
		case strings.ToLower(transfer.FromAddress) == address:
			balance.Sub(balance, amount)
		}
	}

	balances := []TokenBalance{}
	for _, token := range seen {
		if net[token].Sign() <= 0 {
			continue
		}
		balances = append(balances, TokenBalance{Token: token, Balance: net[token].String()})
	}

	return balances
}

func (r *IndexRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func transactionCondition(filter TransactionFilter) (string, []any) {
	conditions := []string{}
	args := []any{}

	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		switch {
		case strings.HasPrefix(search, "0x") && len(search) == 66:
			conditions = append(conditions, "hash = ?")
			args = append(args, search)
		case strings.HasPrefix(search, "0x") && len(search) == 42:
			conditions = append(conditions, "(lower(from_address) = ? OR lower(to_address) = ?)")
			args = append(args, search, search)
		default:
			if number, err := strconv.ParseUint(search, 10, 64); err == nil {
				conditions = append(conditions, "block_number = ?")
				args = append(args, number)
			} else {
				// unparseable search matches nothing
				conditions = append(conditions, "1 = 0")
			}
		}
	}

	if len(filter.DeFiContracts) > 0 {
		lowered := make([]string, 0, len(filter.DeFiContracts))
		for _, addr := range filter.DeFiContracts {
			lowered = append(lowered, strings.ToLower(addr))
		}
		conditions = append(conditions, "lower(to_address) IN ?")
		args = append(args, lowered)
	}

	if filter.FailedOnly {
		conditions = append(conditions, "success = ?")
		args = append(args, false)
	}

	return strings.Join(conditions, " AND "), args
}
