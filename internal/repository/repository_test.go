package repository_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bscout/internal/db"
	"bscout/internal/repository"
	"bscout/internal/repository/fake"
)

var _ = Describe("IndexRepository", func() {
	var (
		repo    *repository.IndexRepository
		storage *fake.Storage
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		storage = new(fake.Storage)
		repo = repository.NewIndexRepository(storage)
	})

	Describe("Migrate", func() {
		It("migrates every indexed table", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(storage.MigrateTableCallCount()).To(Equal(1))
			Expect(storage.MigrateTableArgsForCall(0)).To(HaveLen(5))
		})

		It("wraps migration errors", func() {
			storage.MigrateTableReturns(errors.New("permission denied"))

			Expect(repo.Migrate()).To(MatchError(ContainSubstring("migrate table(s)")))
		})
	})

	Describe("UpsertTransaction", func() {
		It("conflicts on hash and refreshes only receipt fields", func() {
			tx := repository.Transaction{Hash: "0xabc", BlockNumber: 12}

			Expect(repo.UpsertTransaction(ctx, tx)).To(Succeed())

			_, record, conflict, update := storage.UpsertArgsForCall(0)
			Expect(record).To(Equal(&tx))
			Expect(conflict).To(Equal([]string{"hash"}))
			Expect(update).To(Equal([]string{"gas_used", "success", "updated_at"}))
		})
	})

	Describe("SaveLargeTransfer", func() {
		It("treats a duplicate hash as a no-op", func() {
			transfer := repository.LargeTransfer{Hash: "0xabc"}

			Expect(repo.SaveLargeTransfer(ctx, transfer)).To(Succeed())

			_, _, conflict, update := storage.UpsertArgsForCall(0)
			Expect(conflict).To(Equal([]string{"hash"}))
			Expect(update).To(BeNil())
		})
	})

	Describe("SaveTokenTransfer", func() {
		It("conflicts on the transaction hash and log index pair", func() {
			transfer := repository.TokenTransfer{TxHash: "0xabc", LogIndex: 3}

			Expect(repo.SaveTokenTransfer(ctx, transfer)).To(Succeed())

			_, _, conflict, update := storage.UpsertArgsForCall(0)
			Expect(conflict).To(Equal([]string{"tx_hash", "log_index"}))
			Expect(update).To(BeNil())
		})
	})

	Describe("cursor", func() {
		It("reports a cold start when no cursor row exists", func() {
			storage.GetOneByReturns(db.ErrNotFound)

			height, found, err := repo.LoadCursor(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
			Expect(height).To(BeZero())
		})

		It("returns the stored height", func() {
			storage.GetOneByCalls(func(_ context.Context, column string, value interface{}, entity interface{}) error {
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal(1))
				entity.(*repository.IndexerCursor).LastProcessedBlock = 4242
				return nil
			})

			height, found, err := repo.LoadCursor(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(height).To(Equal(uint64(4242)))
		})

		It("propagates storage failures", func() {
			storage.GetOneByReturns(errors.New("connection reset"))

			_, _, err := repo.LoadCursor(ctx)

			Expect(err).To(MatchError(ContainSubstring("load cursor")))
		})

		It("stores the height into the single cursor row", func() {
			Expect(repo.StoreCursor(ctx, 4242)).To(Succeed())

			_, record, conflict, update := storage.UpsertArgsForCall(0)
			cursor := record.(*repository.IndexerCursor)
			Expect(cursor.ID).To(Equal(uint(1)))
			Expect(cursor.LastProcessedBlock).To(Equal(uint64(4242)))
			Expect(conflict).To(Equal([]string{"id"}))
			Expect(update).To(Equal([]string{"last_processed_block", "updated_at"}))
		})
	})

	Describe("Stats", func() {
		It("aggregates counts across all tables and the cursor", func() {
			storage.CountWhereReturnsOnCall(0, 1000, nil)
			storage.CountWhereReturnsOnCall(1, 950, nil)
			storage.CountWhereReturnsOnCall(2, 50, nil)
			storage.CountWhereReturnsOnCall(3, 7, nil)
			storage.CountWhereReturnsOnCall(4, 120, nil)
			storage.GetOneByCalls(func(_ context.Context, _ string, _ interface{}, entity interface{}) error {
				entity.(*repository.IndexerCursor).LastProcessedBlock = 777
				return nil
			})

			stats, err := repo.Stats(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(repository.Stats{
				TotalTransactions:      1000,
				SuccessfulTransactions: 950,
				FailedTransactions:     50,
				LargeTransfers:         7,
				TokenTransfers:         120,
				LatestBlock:            777,
			}))

			_, _, condition, args := storage.CountWhereArgsForCall(1)
			Expect(condition).To(Equal("success = ?"))
			Expect(args).To(Equal([]interface{}{true}))
		})

		It("fails when any count fails", func() {
			storage.CountWhereReturns(0, errors.New("connection reset"))

			_, err := repo.Stats(ctx)

			Expect(err).To(MatchError(ContainSubstring("count transactions")))
		})
	})

	Describe("ListTransactions", func() {
		It("applies no condition for an empty filter", func() {
			storage.CountWhereReturns(3, nil)

			_, count, err := repo.ListTransactions(ctx, repository.TransactionFilter{}, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))

			_, _, order, limit, offset, condition, _ := storage.ListArgsForCall(0)
			Expect(order).To(Equal("block_number DESC, id DESC"))
			Expect(limit).To(Equal(20))
			Expect(offset).To(Equal(0))
			Expect(condition).To(BeEmpty())
		})

		It("searches by full hash", func() {
			hash := "0x" + repeatHex("Ab", 32)
			filter := repository.TransactionFilter{Search: hash}

			_, _, err := repo.ListTransactions(ctx, filter, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("hash = ?"))
			Expect(args).To(Equal([]interface{}{"0x" + repeatHex("ab", 32)}))
		})

		It("searches addresses on both sides of the transfer", func() {
			address := "0x" + repeatHex("Cd", 20)
			filter := repository.TransactionFilter{Search: address}

			_, _, err := repo.ListTransactions(ctx, filter, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("(lower(from_address) = ? OR lower(to_address) = ?)"))
			Expect(args).To(HaveLen(2))
		})

		It("searches by block number", func() {
			filter := repository.TransactionFilter{Search: "12345"}

			_, _, err := repo.ListTransactions(ctx, filter, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("block_number = ?"))
			Expect(args).To(Equal([]interface{}{uint64(12345)}))
		})

		It("matches nothing for an unparseable search", func() {
			filter := repository.TransactionFilter{Search: "not-a-hash"}

			_, _, err := repo.ListTransactions(ctx, filter, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, _ := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("1 = 0"))
		})

		It("combines the contract allow-list with the failed filter", func() {
			filter := repository.TransactionFilter{
				DeFiContracts: []string{"0xAAAA", "0xBBBB"},
				FailedOnly:    true,
			}

			_, _, err := repo.ListTransactions(ctx, filter, 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("lower(to_address) IN ? AND success = ?"))
			Expect(args[0]).To(Equal([]string{"0xaaaa", "0xbbbb"}))
			Expect(args[1]).To(Equal(false))
		})
	})

	Describe("GetTransactionWithTransfers", func() {
		It("maps a missing row to the not-found sentinel", func() {
			storage.GetOneByReturns(db.ErrNotFound)

			_, _, err := repo.GetTransactionWithTransfers(ctx, "0xabc")

			Expect(err).To(MatchError(repository.ErrTransactionNotFound))
		})

		It("looks up the hash lowercased and loads its token transfers", func() {
			storage.GetOneByCalls(func(_ context.Context, column string, value interface{}, entity interface{}) error {
				Expect(column).To(Equal("hash"))
				Expect(value).To(Equal("0xabc"))
				entity.(*repository.Transaction).Hash = "0xabc"
				return nil
			})

			_, _, err := repo.GetTransactionWithTransfers(ctx, "0xABC")

			Expect(err).NotTo(HaveOccurred())
			_, column, value, _, order := storage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("tx_hash"))
			Expect(value).To(Equal("0xabc"))
			Expect(order).To(Equal("log_index ASC"))
		})
	})

	Describe("ListTokenTransfers", func() {
		It("filters by token address case-insensitively", func() {
			_, _, err := repo.ListTokenTransfers(ctx, "0xDEAD", 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(Equal("lower(token_address) = ?"))
			Expect(args).To(Equal([]interface{}{"0xdead"}))
		})

		It("lists all transfers when no token is given", func() {
			_, _, err := repo.ListTokenTransfers(ctx, "", 20, 0)

			Expect(err).NotTo(HaveOccurred())
			_, _, condition, args := storage.CountWhereArgsForCall(0)
			Expect(condition).To(BeEmpty())
			Expect(args).To(BeEmpty())
		})
	})

	Describe("BlockActivity", func() {
		It("returns an empty chart before any transaction is indexed", func() {
			activity, err := repo.BlockActivity(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(activity).To(BeEmpty())
			Expect(storage.CountByBucketCallCount()).To(BeZero())
		})

		It("tallies the trailing window anchored at the highest indexed block", func() {
			storage.ListCalls(func(_ context.Context, entities interface{}, _ string, limit, _ int, _ string, _ ...interface{}) error {
				Expect(limit).To(Equal(1))
				*entities.(*[]repository.Transaction) = []repository.Transaction{{BlockNumber: 100}}
				return nil
			})
			storage.CountByBucketReturnsOnCall(0, []db.BucketCount{
				{Bucket: 98, Count: 4},
				{Bucket: 100, Count: 2},
			}, nil)
			storage.CountByBucketReturnsOnCall(1, []db.BucketCount{
				{Bucket: 100, Count: 1},
			}, nil)

			activity, err := repo.BlockActivity(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(activity).To(Equal([]repository.BlockActivity{
				{Block: 98, TxCount: 4, Failed: 0},
				{Block: 100, TxCount: 2, Failed: 1},
			}))

			_, _, column, condition, args := storage.CountByBucketArgsForCall(0)
			Expect(column).To(Equal("block_number"))
			Expect(condition).To(Equal("block_number >= ?"))
			Expect(args).To(Equal([]interface{}{uint64(71)}))

			_, _, _, condition, args = storage.CountByBucketArgsForCall(1)
			Expect(condition).To(Equal("block_number >= ? AND success = ?"))
			Expect(args).To(Equal([]interface{}{uint64(71), false}))
		})

		It("clamps the window start at genesis", func() {
			storage.ListCalls(func(_ context.Context, entities interface{}, _ string, _, _ int, _ string, _ ...interface{}) error {
				*entities.(*[]repository.Transaction) = []repository.Transaction{{BlockNumber: 10}}
				return nil
			})

			_, err := repo.BlockActivity(ctx)

			Expect(err).NotTo(HaveOccurred())
			_, _, _, _, args := storage.CountByBucketArgsForCall(0)
			Expect(args).To(Equal([]interface{}{uint64(0)}))
		})
	})

	Describe("AddressProfile", func() {
		const account = "0xAAaa000000000000000000000000000000000001"

		It("collects counts, totals and recent records for the address", func() {
			storage.CountWhereReturns(3, nil)
			storage.SumWhereReturnsOnCall(0, "500", nil)
			storage.SumWhereReturnsOnCall(1, "1200", nil)
			storage.ListCalls(func(_ context.Context, entities interface{}, _ string, limit, _ int, condition string, args ...interface{}) error {
				Expect(condition).To(Equal("lower(from_address) = ? OR lower(to_address) = ?"))
				Expect(args).To(Equal([]interface{}{"0xaaaa000000000000000000000000000000000001", "0xaaaa000000000000000000000000000000000001"}))
				switch typed := entities.(type) {
				case *[]repository.Transaction:
					Expect(limit).To(Equal(25))
					*typed = []repository.Transaction{{Hash: "0x1"}, {Hash: "0x2"}}
				case *[]repository.TokenTransfer:
					Expect(limit).To(Equal(50))
				}
				return nil
			})

			profile, err := repo.AddressProfile(ctx, account)

			Expect(err).NotTo(HaveOccurred())
			Expect(profile.Address).To(Equal(account))
			Expect(profile.TxCount).To(Equal(int64(3)))
			Expect(profile.TotalSent).To(Equal("500"))
			Expect(profile.TotalReceived).To(Equal("1200"))
			Expect(profile.Transactions).To(HaveLen(2))
			Expect(profile.TokenBalances).To(BeEmpty())

			_, _, column, condition, _ := storage.SumWhereArgsForCall(0)
			Expect(column).To(Equal("value"))
			Expect(condition).To(Equal("lower(from_address) = ?"))
			_, _, _, condition, _ = storage.SumWhereArgsForCall(1)
			Expect(condition).To(Equal("lower(to_address) = ?"))
		})

		It("nets token balances and keeps only positive positions", func() {
			lowered := "0xaaaa000000000000000000000000000000000001"
			storage.ListCalls(func(_ context.Context, entities interface{}, _ string, _, _ int, _ string, _ ...interface{}) error {
				transfers, ok := entities.(*[]repository.TokenTransfer)
				if !ok {
					return nil
				}
				*transfers = []repository.TokenTransfer{
					{TokenAddress: "0xTOKEN1", ToAddress: lowered, FromAddress: "0xother", Amount: "100"},
					{TokenAddress: "0xtoken1", FromAddress: lowered, ToAddress: "0xother", Amount: "30"},
					{TokenAddress: "0xtoken2", FromAddress: lowered, ToAddress: "0xother", Amount: "5"},
					{TokenAddress: "0xtoken3", ToAddress: lowered, FromAddress: "0xother", Amount: "not-a-number"},
				}
				return nil
			})

			profile, err := repo.AddressProfile(ctx, account)

			Expect(err).NotTo(HaveOccurred())
			Expect(profile.TokenBalances).To(Equal([]repository.TokenBalance{
				{Token: "0xtoken1", Balance: "70"},
			}))
		})

		It("wraps count errors", func() {
			storage.CountWhereReturns(0, errors.New("boom"))

			_, err := repo.AddressProfile(ctx, account)

			Expect(err).To(MatchError(ContainSubstring("count address transactions")))
		})
	})
})

func repeatHex(pair string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += pair
	}
	return out
}
