package core

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"bscout/internal/ethereum"
	"bscout/internal/events"
	"bscout/internal/filters"
	"bscout/internal/repository"
)

// BlockProcessor turns one block into persisted records: the transaction
// itself, large native transfers, token transfers from its logs and a
// failure record when the receipt status is reverted.
type BlockProcessor struct {
	logs          *zap.SugaredLogger
	repo          Repository
	chain         ChainService
	thresholdBNB  int64
	trackedTokens filters.AddressSet
}

func NewBlockProcessor(
	logger *zap.SugaredLogger,
	repo Repository,
	chain ChainService,
	thresholdBNB int64,
	trackedTokens []string,
) *BlockProcessor {
	return &BlockProcessor{
		logs:          logger,
		repo:          repo,
		chain:         chain,
		thresholdBNB:  thresholdBNB,
		trackedTokens: filters.NewAddressSet(trackedTokens),
	}
}

// ProcessBlock handles every transaction of the block. A receipt fan-out
// error is fatal and propagates to the scheduler; errors confined to a
// single transaction are logged and absorbed so siblings still process.
func (p *BlockProcessor) ProcessBlock(ctx context.Context, block *types.Block) error {
	transactions := block.Transactions()
	if len(transactions) == 0 {
		p.logs.Infow("empty block", "block", block.NumberU64())
		return nil
	}

	p.logs.Infow("processing block", "block", block.NumberU64(), "transactions", len(transactions))

	hashes := make([]common.Hash, 0, len(transactions))
	for _, tx := range transactions {
		hashes = append(hashes, tx.Hash())
	}

	receipts, err := p.chain.FetchReceipts(ctx, hashes)
	if err != nil {
		return fmt.Errorf("fetch receipts for block %d: %w", block.NumberU64(), err)
	}

	for _, hash := range hashes {
		receipt, ok := receipts[hash]
		if !ok {
			// not indexed by the remote node yet; the cursor has not
			// advanced, so the block is retried next tick
			continue
		}

		details, err := p.chain.FetchTransaction(ctx, hash)
		if err != nil {
			return fmt.Errorf("fetch transaction %q: %w", hash.Hex(), err)
		}
		if details == nil {
			continue
		}

		if err := p.handleTransaction(ctx, details, receipt, block); err != nil {
			p.logs.Errorw("failed to handle transaction",
				"error", err,
				"hash", details.Hash,
				"block", block.NumberU64())
		}
	}

	return nil
}

func (p *BlockProcessor) handleTransaction(
	ctx context.Context,
	details *ethereum.TxDetails,
	receipt *types.Receipt,
	block *types.Block,
) error {
	success := receipt.Status == types.ReceiptStatusSuccessful
	gasUsed := fmt.Sprintf("%d", receipt.GasUsed)

	record := repository.Transaction{
		Hash:        details.Hash,
		BlockNumber: block.NumberU64(),
		FromAddress: details.From,
		ToAddress:   details.To,
		Value:       details.Value.String(),
		GasPrice:    details.GasPrice.String(),
		GasUsed:     &gasUsed,
		Input:       inputText(details.Input),
		Nonce:       details.Nonce,
		Success:     success,
	}

	if err := p.repo.UpsertTransaction(ctx, record); err != nil {
		return fmt.Errorf("upsert transaction: %w", err)
	}

	p.handleLargeTransfer(ctx, details, block)
	p.handleLogs(ctx, receipt)
	if !success {
		p.handleFailedTransaction(ctx, details, receipt, gasUsed)
	}

	return nil
}

func (p *BlockProcessor) handleLargeTransfer(ctx context.Context, details *ethereum.TxDetails, block *types.Block) {
	if !filters.IsNativeTransfer(details.Input) || details.To == nil {
		return
	}
	if !filters.IsLargeTransfer(details.Value, p.thresholdBNB) {
		return
	}

	var blockTime *time.Time
	if block.Time() > 0 {
		t := time.Unix(int64(block.Time()), 0).UTC()
		blockTime = &t
	}

	transfer := repository.LargeTransfer{
		Hash:        details.Hash,
		FromAddress: details.From,
		ToAddress:   *details.To,
		ValueWei:    details.Value.String(),
		BlockNumber: block.NumberU64(),
		BlockTime:   blockTime,
	}

	if err := p.repo.SaveLargeTransfer(ctx, transfer); err != nil {
		p.logs.Errorw("failed to save large transfer", "error", err, "hash", details.Hash)
		return
	}

	p.logs.Infow("large transfer",
		"hash", details.Hash,
		"bnb", filters.ToDisplayUnits(details.Value),
		"from", details.From,
		"to", *details.To)
}

func (p *BlockProcessor) handleLogs(ctx context.Context, receipt *types.Receipt) {
	for _, log := range receipt.Logs {
		event, ok := events.Classify(*log)
		if !ok {
			continue
		}

		switch event.Kind {
		case events.KindTransfer:
			p.saveTokenTransfer(ctx, receipt, log, event.Transfer)
		case events.KindSwapV2:
			p.logs.Infow("swap",
				"pool", log.Address.Hex(),
				"hash", receipt.TxHash.Hex(),
				"sender", event.SwapV2.Sender.Hex(),
				"amount0_in", event.SwapV2.Amount0In,
				"amount1_in", event.SwapV2.Amount1In,
				"amount0_out", event.SwapV2.Amount0Out,
				"amount1_out", event.SwapV2.Amount1Out)
		case events.KindSwapV3:
			p.logs.Infow("swap",
				"pool", log.Address.Hex(),
				"hash", receipt.TxHash.Hex(),
				"sender", event.SwapV3.Sender.Hex(),
				"amount0", event.SwapV3.Amount0,
				"amount1", event.SwapV3.Amount1,
				"tick", event.SwapV3.Tick)
		}
	}
}

func (p *BlockProcessor) saveTokenTransfer(ctx context.Context, receipt *types.Receipt, log *types.Log, decoded *events.Transfer) {
	if !p.trackedTokens.Empty() && !p.trackedTokens.Contains(log.Address.Hex()) {
		return
	}

	transfer := repository.TokenTransfer{
		TxHash:       receipt.TxHash.Hex(),
		LogIndex:     log.Index,
		TokenAddress: log.Address.Hex(),
		FromAddress:  decoded.From.Hex(),
		ToAddress:    decoded.To.Hex(),
		Amount:       decoded.Amount.String(),
		BlockNumber:  receipt.BlockNumber.Uint64(),
	}

	if err := p.repo.SaveTokenTransfer(ctx, transfer); err != nil {
		p.logs.Errorw("failed to save token transfer",
			"error", err,
			"hash", transfer.TxHash,
			"log_index", transfer.LogIndex)
	}
}

func (p *BlockProcessor) handleFailedTransaction(
	ctx context.Context,
	details *ethereum.TxDetails,
	receipt *types.Receipt,
	gasUsed string,
) {
	var revertReason *string
	if reason, ok := events.RevertReason(details.Input); ok {
		revertReason = &reason
	}

	failed := repository.FailedTransaction{
		Hash:         details.Hash,
		BlockNumber:  receipt.BlockNumber.Uint64(),
		FromAddress:  details.From,
		ToAddress:    details.To,
		GasUsed:      gasUsed,
		RevertReason: revertReason,
		Input:        inputText(details.Input),
	}

	if err := p.repo.SaveFailedTransaction(ctx, failed); err != nil {
		p.logs.Errorw("failed to save failed transaction", "error", err, "hash", details.Hash)
		return
	}

	p.logs.Infow("failed transaction", "hash", details.Hash, "reason", revertReason)
}

func inputText(input []byte) *string {
	if len(input) == 0 {
		return nil
	}
	text := fmt.Sprintf("0x%x", input)
	return &text
}
