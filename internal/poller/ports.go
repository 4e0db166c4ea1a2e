package poller

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainSource . ChainSource
type ChainSource interface {
	ChainTip(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*types.Block, error)
}

//counterfeiter:generate -o fake -fake-name BlockHandler . BlockHandler
type BlockHandler interface {
	ProcessBlock(ctx context.Context, block *types.Block) error
}

//counterfeiter:generate -o fake -fake-name CursorStore . CursorStore
type CursorStore interface {
	LoadCursor(ctx context.Context) (uint64, bool, error)
	StoreCursor(ctx context.Context, height uint64) error
}
