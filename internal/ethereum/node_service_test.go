package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	gethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bscout/internal/ethereum"
	"bscout/internal/ethereum/fake"
)

var _ = Describe("NodeService", func() {
	var (
		service *ethereum.NodeService
		client  *fake.EthClient
		ctx     context.Context
	)

	chainID := big.NewInt(56)

	BeforeEach(func() {
		ctx = context.Background()
		client = new(fake.EthClient)
		service = ethereum.NewNodeService(client)
	})

	Describe("ChainTip", func() {
		It("returns the head block height", func() {
			client.BlockNumberReturns(12345, nil)

			tip, err := service.ChainTip(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(tip).To(Equal(uint64(12345)))
		})

		It("wraps client errors", func() {
			client.BlockNumberReturns(0, errors.New("connection refused"))

			_, err := service.ChainTip(ctx)

			Expect(err).To(MatchError(ContainSubstring("get block number")))
		})
	})

	Describe("FetchBlock", func() {
		It("returns the block at the requested height", func() {
			block := types.NewBlockWithHeader(&types.Header{Number: big.NewInt(77)})
			client.BlockByNumberReturns(block, nil)

			got, err := service.FetchBlock(ctx, 77)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(block))
			_, height := client.BlockByNumberArgsForCall(0)
			Expect(height.Uint64()).To(Equal(uint64(77)))
		})

		It("returns nil without error when the node has not indexed the height", func() {
			client.BlockByNumberReturns(nil, gethereum.NotFound)

			got, err := service.FetchBlock(ctx, 77)

			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})

		It("wraps other client errors", func() {
			client.BlockByNumberReturns(nil, errors.New("rpc timeout"))

			_, err := service.FetchBlock(ctx, 77)

			Expect(err).To(MatchError(ContainSubstring("get block 77")))
		})
	})

	Describe("FetchReceipts", func() {
		var hashes []common.Hash

		BeforeEach(func() {
			hashes = []common.Hash{
				common.HexToHash("0x01"),
				common.HexToHash("0x02"),
				common.HexToHash("0x03"),
			}
		})

		It("fetches all receipts concurrently and keys them by hash", func() {
			client.TransactionReceiptCalls(func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				return &types.Receipt{TxHash: hash, Status: types.ReceiptStatusSuccessful}, nil
			})

			receipts, err := service.FetchReceipts(ctx, hashes)

			Expect(err).NotTo(HaveOccurred())
			Expect(receipts).To(HaveLen(3))
			for _, hash := range hashes {
				Expect(receipts).To(HaveKey(hash))
				Expect(receipts[hash].TxHash).To(Equal(hash))
			}
		})

		It("omits receipts the node does not know yet", func() {
			client.TransactionReceiptCalls(func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == hashes[1] {
					return nil, gethereum.NotFound
				}
				return &types.Receipt{TxHash: hash}, nil
			})

			receipts, err := service.FetchReceipts(ctx, hashes)

			Expect(err).NotTo(HaveOccurred())
			Expect(receipts).To(HaveLen(2))
			Expect(receipts).NotTo(HaveKey(hashes[1]))
		})

		It("fails the whole call when any fetch errors", func() {
			client.TransactionReceiptCalls(func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
				if hash == hashes[0] {
					return &types.Receipt{TxHash: hash}, nil
				}
				return nil, errors.New("rpc timeout")
			})

			receipts, err := service.FetchReceipts(ctx, hashes)

			Expect(receipts).To(BeNil())
			Expect(err).To(MatchError(ContainSubstring(hashes[1].Hex())))
			Expect(err).To(MatchError(ContainSubstring(hashes[2].Hex())))
		})

		It("returns an empty map for no hashes", func() {
			receipts, err := service.FetchReceipts(ctx, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(receipts).To(BeEmpty())
		})
	})

	Describe("FetchTransaction", func() {
		It("recovers the sender from the signature", func() {
			key, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender := crypto.PubkeyToAddress(key.PublicKey)

			to := common.HexToAddress("0x2222222222222222222222222222222222222222")
			tx, err := types.SignTx(
				types.NewTx(&types.LegacyTx{
					Nonce:    9,
					To:       &to,
					Value:    big.NewInt(1_000_000),
					Gas:      21000,
					GasPrice: big.NewInt(3_000_000_000),
				}),
				types.LatestSignerForChainID(chainID),
				key,
			)
			Expect(err).NotTo(HaveOccurred())

			client.TransactionByHashReturns(tx, false, nil)
			client.NetworkIDReturns(chainID, nil)

			details, err := service.FetchTransaction(ctx, tx.Hash())

			Expect(err).NotTo(HaveOccurred())
			Expect(details.Hash).To(Equal(tx.Hash().Hex()))
			Expect(details.From).To(Equal(sender.Hex()))
			Expect(details.To).To(HaveValue(Equal(to.Hex())))
			Expect(details.Value.String()).To(Equal("1000000"))
			Expect(details.Nonce).To(Equal(uint64(9)))
		})

		It("returns nil without error for an unknown hash", func() {
			client.TransactionByHashReturns(nil, false, gethereum.NotFound)

			details, err := service.FetchTransaction(ctx, common.HexToHash("0xdead"))

			Expect(err).NotTo(HaveOccurred())
			Expect(details).To(BeNil())
		})

		It("queries the network id once and caches it", func() {
			tx := signedTx(chainID)
			client.TransactionByHashReturns(tx, false, nil)
			client.NetworkIDReturns(chainID, nil)

			_, err := service.FetchTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			_, err = service.FetchTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())

			Expect(client.NetworkIDCallCount()).To(Equal(1))
		})

		It("retries the network id query after a failure", func() {
			tx := signedTx(chainID)
			client.TransactionByHashReturns(tx, false, nil)
			client.NetworkIDReturnsOnCall(0, nil, errors.New("connection refused"))
			client.NetworkIDReturns(chainID, nil)

			_, err := service.FetchTransaction(ctx, tx.Hash())
			Expect(err).To(MatchError(ContainSubstring("get network id")))

			details, err := service.FetchTransaction(ctx, tx.Hash())
			Expect(err).NotTo(HaveOccurred())
			Expect(details).NotTo(BeNil())
			Expect(client.NetworkIDCallCount()).To(Equal(2))
		})
	})
})

func signedTx(chainID *big.Int) *types.Transaction {
	key, err := crypto.GenerateKey()
	Expect(err).NotTo(HaveOccurred())
	to := common.HexToAddress("0x3333333333333333333333333333333333333333")
	tx, err := types.SignTx(
		types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Value: big.NewInt(1), Gas: 21000, GasPrice: big.NewInt(1)}),
		types.LatestSignerForChainID(chainID),
		key,
	)
	Expect(err).NotTo(HaveOccurred())
	return tx
}
