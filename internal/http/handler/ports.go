package handler

import (
	"context"

	"bscout/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExplorerStore . ExplorerStore
type ExplorerStore interface {
	Stats(ctx context.Context) (repository.Stats, error)
	ListTransactions(ctx context.Context, filter repository.TransactionFilter, limit, offset int) ([]repository.Transaction, int64, error)
	GetTransactionWithTransfers(ctx context.Context, hash string) (repository.Transaction, []repository.TokenTransfer, error)
	ListLargeTransfers(ctx context.Context, limit, offset int) ([]repository.LargeTransfer, int64, error)
	ListTokenTransfers(ctx context.Context, token string, limit, offset int) ([]repository.TokenTransfer, int64, error)
	ListFailedTransactions(ctx context.Context, limit, offset int) ([]repository.FailedTransaction, int64, error)
	BlockActivity(ctx context.Context) ([]repository.BlockActivity, error)
	AddressProfile(ctx context.Context, address string) (repository.AddressProfile, error)
	Ping(ctx context.Context) error
}
