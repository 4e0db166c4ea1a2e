package core

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"bscout/internal/ethereum"
	"bscout/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	UpsertTransaction(ctx context.Context, tx repository.Transaction) error
	SaveLargeTransfer(ctx context.Context, transfer repository.LargeTransfer) error
	SaveTokenTransfer(ctx context.Context, transfer repository.TokenTransfer) error
	SaveFailedTransaction(ctx context.Context, failed repository.FailedTransaction) error
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	FetchReceipts(ctx context.Context, hashes []common.Hash) (map[common.Hash]*types.Receipt, error)
	FetchTransaction(ctx context.Context, hash common.Hash) (*ethereum.TxDetails, error)
}
