package core_test

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"bscout/internal/core"
	"bscout/internal/core/fake"
	"bscout/internal/ethereum"
	"bscout/internal/events"
	"bscout/internal/filters"
)

var _ = Describe("BlockProcessor", func() {
	var (
		processor *core.BlockProcessor
		repo      *fake.Repository
		chain     *fake.ChainService
		ctx       context.Context

		largeTx  *types.Transaction
		tokenTx  *types.Transaction
		failedTx *types.Transaction
		block    *types.Block
		details  map[common.Hash]*ethereum.TxDetails
		receipts map[common.Hash]*types.Receipt
	)

	const (
		sender    = "0x1111111111111111111111111111111111111111"
		recipient = "0x2222222222222222222222222222222222222222"
	)

	newDetails := func(tx *types.Transaction, to string, value *big.Int, input []byte) *ethereum.TxDetails {
		d := &ethereum.TxDetails{
			Hash:     tx.Hash().Hex(),
			From:     sender,
			Value:    value,
			GasPrice: big.NewInt(3_000_000_000),
			Input:    input,
			Nonce:    tx.Nonce(),
		}
		if to != "" {
			d.To = &to
		}
		return d
	}

	BeforeEach(func() {
		ctx = context.Background()
		repo = new(fake.Repository)
		chain = new(fake.ChainService)
		processor = core.NewBlockProcessor(zap.NewNop().Sugar(), repo, chain, 100, nil)

		toAddr := common.HexToAddress(recipient)
		largeValue, ok := new(big.Int).SetString("150000000000000000000", 10)
		Expect(ok).To(BeTrue())

		largeTx = types.NewTx(&types.LegacyTx{Nonce: 1, To: &toAddr, Value: largeValue, Gas: 21000, GasPrice: big.NewInt(3)})
		tokenTx = types.NewTx(&types.LegacyTx{Nonce: 2, To: &toAddr, Value: big.NewInt(0), Gas: 60000, GasPrice: big.NewInt(3), Data: []byte{0xa9, 0x05, 0x9c, 0xbb}})
		failedTx = types.NewTx(&types.LegacyTx{Nonce: 3, To: &toAddr, Value: big.NewInt(0), Gas: 200000, GasPrice: big.NewInt(3), Data: encodeRevert("INSUFFICIENT_OUTPUT_AMOUNT")})

		block = types.NewBlockWithHeader(&types.Header{
			Number: big.NewInt(100),
			Time:   1_700_000_000,
		}).WithBody(types.Body{Transactions: types.Transactions{largeTx, tokenTx, failedTx}})

		details = map[common.Hash]*ethereum.TxDetails{
			largeTx.Hash():  newDetails(largeTx, recipient, largeValue, nil),
			tokenTx.Hash():  newDetails(tokenTx, filters.TokenUSDT, big.NewInt(0), tokenTx.Data()),
			failedTx.Hash(): newDetails(failedTx, filters.PancakeV2Router, big.NewInt(0), failedTx.Data()),
		}

		receipts = map[common.Hash]*types.Receipt{
			largeTx.Hash(): {
				Status:      types.ReceiptStatusSuccessful,
				GasUsed:     21000,
				TxHash:      largeTx.Hash(),
				BlockNumber: big.NewInt(100),
			},
			tokenTx.Hash(): {
				Status:      types.ReceiptStatusSuccessful,
				GasUsed:     52000,
				TxHash:      tokenTx.Hash(),
				BlockNumber: big.NewInt(100),
				Logs: []*types.Log{
					transferLog(filters.TokenUSDT, sender, recipient, big.NewInt(1_000_000), 7),
					swapV2Log(filters.PancakeV2Router, sender, recipient, 8),
				},
			},
			failedTx.Hash(): {
				Status:      types.ReceiptStatusFailed,
				GasUsed:     180000,
				TxHash:      failedTx.Hash(),
				BlockNumber: big.NewInt(100),
			},
		}

		chain.FetchReceiptsReturns(receipts, nil)
		chain.FetchTransactionCalls(func(_ context.Context, hash common.Hash) (*ethereum.TxDetails, error) {
			return details[hash], nil
		})
	})

	Describe("ProcessBlock", func() {
		It("persists every classification from a mixed block", func() {
			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.UpsertTransactionCallCount()).To(Equal(3))
			byHash := map[string]bool{}
			for i := 0; i < 3; i++ {
				_, record := repo.UpsertTransactionArgsForCall(i)
				byHash[record.Hash] = record.Success
				Expect(record.BlockNumber).To(Equal(uint64(100)))
			}
			Expect(byHash[largeTx.Hash().Hex()]).To(BeTrue())
			Expect(byHash[failedTx.Hash().Hex()]).To(BeFalse())

			Expect(repo.SaveLargeTransferCallCount()).To(Equal(1))
			_, large := repo.SaveLargeTransferArgsForCall(0)
			Expect(large.Hash).To(Equal(largeTx.Hash().Hex()))
			Expect(large.ValueWei).To(Equal("150000000000000000000"))
			Expect(large.ToAddress).To(Equal(recipient))
			Expect(large.BlockTime).NotTo(BeNil())
			Expect(large.BlockTime.Unix()).To(Equal(int64(1_700_000_000)))

			Expect(repo.SaveTokenTransferCallCount()).To(Equal(1))
			_, transfer := repo.SaveTokenTransferArgsForCall(0)
			Expect(transfer.TxHash).To(Equal(tokenTx.Hash().Hex()))
			Expect(transfer.TokenAddress).To(Equal(common.HexToAddress(filters.TokenUSDT).Hex()))
			Expect(transfer.Amount).To(Equal("1000000"))
			Expect(transfer.LogIndex).To(Equal(uint(7)))

			Expect(repo.SaveFailedTransactionCallCount()).To(Equal(1))
			_, failed := repo.SaveFailedTransactionArgsForCall(0)
			Expect(failed.Hash).To(Equal(failedTx.Hash().Hex()))
			Expect(failed.GasUsed).To(Equal("180000"))
			Expect(failed.RevertReason).NotTo(BeNil())
			Expect(*failed.RevertReason).To(Equal("INSUFFICIENT_OUTPUT_AMOUNT"))
		})

		It("does nothing for an empty block", func() {
			empty := types.NewBlockWithHeader(&types.Header{Number: big.NewInt(101)})

			Expect(processor.ProcessBlock(ctx, empty)).To(Succeed())

			Expect(chain.FetchReceiptsCallCount()).To(BeZero())
			Expect(repo.UpsertTransactionCallCount()).To(BeZero())
		})

		It("fails the whole block when the receipt fan-out fails", func() {
			chain.FetchReceiptsReturns(nil, errors.New("rpc timeout"))

			err := processor.ProcessBlock(ctx, block)

			Expect(err).To(MatchError(ContainSubstring("fetch receipts for block 100")))
			Expect(repo.UpsertTransactionCallCount()).To(BeZero())
		})

		It("skips transactions whose receipt the node has not indexed yet", func() {
			delete(receipts, tokenTx.Hash())

			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.UpsertTransactionCallCount()).To(Equal(2))
			Expect(repo.SaveTokenTransferCallCount()).To(BeZero())
		})

		It("keeps processing siblings when one transaction fails to persist", func() {
			repo.UpsertTransactionReturnsOnCall(0, errors.New("connection reset"))

			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.UpsertTransactionCallCount()).To(Equal(3))
		})

		It("fails the block when transaction details cannot be fetched", func() {
			chain.FetchTransactionCalls(nil)
			chain.FetchTransactionReturns(nil, errors.New("rpc timeout"))

			err := processor.ProcessBlock(ctx, block)

			Expect(err).To(MatchError(ContainSubstring("fetch transaction")))
		})

		It("ignores token transfers outside the tracked allow-list", func() {
			processor = core.NewBlockProcessor(zap.NewNop().Sugar(), repo, chain, 100, []string{filters.TokenBUSD})

			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.SaveTokenTransferCallCount()).To(BeZero())
		})

		It("records a failed transaction without a reason when the calldata is not revert-encoded", func() {
			details[failedTx.Hash()].Input = []byte{0x38, 0xed, 0x17, 0x39}

			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.SaveFailedTransactionCallCount()).To(Equal(1))
			_, failed := repo.SaveFailedTransactionArgsForCall(0)
			Expect(failed.RevertReason).To(BeNil())
		})

		It("does not record a large transfer for contract calls", func() {
			largeValue, _ := new(big.Int).SetString("500000000000000000000", 10)
			details[tokenTx.Hash()].Value = largeValue

			Expect(processor.ProcessBlock(ctx, block)).To(Succeed())

			Expect(repo.SaveLargeTransferCallCount()).To(Equal(1))
			_, large := repo.SaveLargeTransferArgsForCall(0)
			Expect(large.Hash).To(Equal(largeTx.Hash().Hex()))
		})
	})
})

func transferLog(token, from, to string, amount *big.Int, index uint) *types.Log {
	return &types.Log{
		Address: common.HexToAddress(token),
		Topics: []common.Hash{
			events.TransferTopic,
			common.BytesToHash(common.LeftPadBytes(common.HexToAddress(from).Bytes(), 32)),
			common.BytesToHash(common.LeftPadBytes(common.HexToAddress(to).Bytes(), 32)),
		},
		Data:  math.U256Bytes(new(big.Int).Set(amount)),
		Index: index,
	}
}

func swapV2Log(pool, from, to string, index uint) *types.Log {
	data := []byte{}
	for _, amount := range []int64{1_000_000, 0, 0, 950_000} {
		data = append(data, math.U256Bytes(big.NewInt(amount))...)
	}
	return &types.Log{
		Address: common.HexToAddress(pool),
		Topics: []common.Hash{
			events.SwapV2Topic,
			common.BytesToHash(common.LeftPadBytes(common.HexToAddress(from).Bytes(), 32)),
			common.BytesToHash(common.LeftPadBytes(common.HexToAddress(to).Bytes(), 32)),
		},
		Data:  data,
		Index: index,
	}
}

func encodeRevert(reason string) []byte {
	stringType, err := abi.NewType("string", "", nil)
	Expect(err).NotTo(HaveOccurred())
	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	Expect(err).NotTo(HaveOccurred())
	return append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...)
}
