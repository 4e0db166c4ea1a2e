package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"bscout/internal/http/handler"
	"bscout/internal/http/handler/fake"
	"bscout/internal/repository"
)

var _ = Describe("ExplorerHandler", func() {
	var (
		explorer *handler.ExplorerHandler
		store    *fake.ExplorerStore
		recorder *httptest.ResponseRecorder
	)

	defiContracts := []string{
		"0x10ED43C718714eb63d5aA57B78B54704E256024E",
		"0x13f4EA83D0bd40E75C8222255bc855a974568Dd4",
	}

	validHash := "0x" + strings.Repeat("ab", 32)

	decode := func() handler.Response {
		var response handler.Response
		Expect(json.NewDecoder(recorder.Body).Decode(&response)).To(Succeed())
		return response
	}

	BeforeEach(func() {
		store = new(fake.ExplorerStore)
		explorer = handler.NewExplorerHandler(zap.NewNop().Sugar(), store, defiContracts)
		recorder = httptest.NewRecorder()
	})

	Describe("HandleGetStats", func() {
		It("returns the aggregated counters", func() {
			store.StatsReturns(repository.Stats{
				TotalTransactions: 1000,
				LargeTransfers:    7,
				LatestBlock:       999,
			}, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			explorer.HandleGetStats(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(Equal("application/json"))

			data, ok := decode().Data.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(data["totalTransactions"]).To(BeEquivalentTo(1000))
			Expect(data["latestBlock"]).To(BeEquivalentTo(999))
		})

		It("hides internal errors behind a generic message", func() {
			store.StatsReturns(repository.Stats{}, errors.New("connection reset"))

			request := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			explorer.HandleGetStats(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			response := decode()
			Expect(response.Error).NotTo(BeEmpty())
			Expect(response.Error).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("HandleGetTransactions", func() {
		It("lists with default pagination", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, filter, limit, offset := store.ListTransactionsArgsForCall(0)
			Expect(filter).To(Equal(repository.TransactionFilter{}))
			Expect(limit).To(Equal(20))
			Expect(offset).To(Equal(0))
		})

		It("translates page and limit into an offset", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions?page=3&limit=50", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, _, limit, offset := store.ListTransactionsArgsForCall(0)
			Expect(limit).To(Equal(50))
			Expect(offset).To(Equal(100))
		})

		It("expands the defi flag into the contract allow-list", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions?defi=true&failed=true&search=12345", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, filter, _, _ := store.ListTransactionsArgsForCall(0)
			Expect(filter.DeFiContracts).To(Equal(defiContracts))
			Expect(filter.FailedOnly).To(BeTrue())
			Expect(filter.Search).To(Equal("12345"))
		})

		It("rejects a limit above the maximum", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions?limit=1000", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(store.ListTransactionsCallCount()).To(BeZero())
		})

		It("rejects a non-numeric page", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions?page=first", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("wraps the items in a page envelope", func() {
			store.ListTransactionsReturns([]repository.Transaction{{Hash: validHash}}, 41, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/transactions?page=2", nil)
			explorer.HandleGetTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			data, ok := decode().Data.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(data["page"]).To(BeEquivalentTo(2))
			Expect(data["limit"]).To(BeEquivalentTo(20))
			Expect(data["total"]).To(BeEquivalentTo(41))
			Expect(data["items"]).To(HaveLen(1))
		})
	})

	Describe("HandleGetTransaction", func() {
		newRequest := func(hash string) *http.Request {
			request := httptest.NewRequest(http.MethodGet, "/api/transactions/"+hash, nil)
			request.SetPathValue("hash", hash)
			return request
		}

		It("returns the transaction with its token transfers", func() {
			store.GetTransactionWithTransfersReturns(
				repository.Transaction{Hash: validHash},
				[]repository.TokenTransfer{{TxHash: validHash, LogIndex: 0}},
				nil,
			)

			explorer.HandleGetTransaction(recorder, newRequest(validHash))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, hash := store.GetTransactionWithTransfersArgsForCall(0)
			Expect(hash).To(Equal(validHash))

			data, ok := decode().Data.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveKey("transaction"))
			Expect(data["tokenTransfers"]).To(HaveLen(1))
		})

		It("returns 404 for an unknown hash", func() {
			store.GetTransactionWithTransfersReturns(repository.Transaction{}, nil, repository.ErrTransactionNotFound)

			explorer.HandleGetTransaction(recorder, newRequest(validHash))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed hash before touching the store", func() {
			explorer.HandleGetTransaction(recorder, newRequest("0x1234"))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(store.GetTransactionWithTransfersCallCount()).To(BeZero())
		})
	})

	Describe("HandleGetLargeTransfers", func() {
		It("pages through the transfers", func() {
			store.ListLargeTransfersReturns([]repository.LargeTransfer{}, 0, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/transfers/large?page=2&limit=5", nil)
			explorer.HandleGetLargeTransfers(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, limit, offset := store.ListLargeTransfersArgsForCall(0)
			Expect(limit).To(Equal(5))
			Expect(offset).To(Equal(5))
		})
	})

	Describe("HandleGetTokenTransfers", func() {
		It("passes the token filter through", func() {
			token := "0x55d398326f99059fF775485246999027B3197955"

			request := httptest.NewRequest(http.MethodGet, "/api/transfers/tokens?token="+token, nil)
			explorer.HandleGetTokenTransfers(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, got, _, _ := store.ListTokenTransfersArgsForCall(0)
			Expect(got).To(Equal(token))
		})

		It("rejects a malformed token address", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/transfers/tokens?token=usdt", nil)
			explorer.HandleGetTokenTransfers(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(store.ListTokenTransfersCallCount()).To(BeZero())
		})
	})

	Describe("HandleGetFailedTransactions", func() {
		It("lists reverted transactions", func() {
			store.ListFailedTransactionsReturns([]repository.FailedTransaction{{Hash: validHash}}, 1, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/transactions/failed", nil)
			explorer.HandleGetFailedTransactions(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			data, ok := decode().Data.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(data["total"]).To(BeEquivalentTo(1))
		})
	})

	Describe("HandleGetChartBlocks", func() {
		It("returns the per-block activity window", func() {
			store.BlockActivityReturns([]repository.BlockActivity{
				{Block: 98, TxCount: 4, Failed: 1},
				{Block: 99, TxCount: 2, Failed: 0},
			}, nil)

			request := httptest.NewRequest(http.MethodGet, "/api/chart/blocks", nil)
			explorer.HandleGetChartBlocks(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			data, ok := decode().Data.([]any)
			Expect(ok).To(BeTrue())
			Expect(data).To(HaveLen(2))
			first, ok := data[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(first["block"]).To(BeEquivalentTo(98))
			Expect(first["txCount"]).To(BeEquivalentTo(4))
			Expect(first["failed"]).To(BeEquivalentTo(1))
			Expect(first["gasAvg"]).To(BeEquivalentTo(0))
		})

		It("hides internal errors behind a generic message", func() {
			store.BlockActivityReturns(nil, errors.New("connection reset"))

			request := httptest.NewRequest(http.MethodGet, "/api/chart/blocks", nil)
			explorer.HandleGetChartBlocks(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode().Error).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("HandleGetAddress", func() {
		account := "0x" + strings.Repeat("aa", 20)

		newRequest := func(address string) *http.Request {
			request := httptest.NewRequest(http.MethodGet, "/api/address/"+address, nil)
			request.SetPathValue("address", address)
			return request
		}

		It("returns the profile with token addresses mapped to symbols", func() {
			store.AddressProfileReturns(repository.AddressProfile{
				Address:       account,
				TxCount:       3,
				TotalSent:     "500",
				TotalReceived: "1200",
				TokenBalances: []repository.TokenBalance{
					{Token: "0x55d398326f99059ff775485246999027b3197955", Balance: "70"},
					{Token: "0x1234567890abcdef1234567890abcdef12345678", Balance: "9"},
				},
			}, nil)

			explorer.HandleGetAddress(recorder, newRequest(account))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			_, address := store.AddressProfileArgsForCall(0)
			Expect(address).To(Equal(account))

			data, ok := decode().Data.(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(data["txCount"]).To(BeEquivalentTo(3))
			Expect(data["totalSent"]).To(Equal("500"))

			balances, ok := data["tokenBalances"].([]any)
			Expect(ok).To(BeTrue())
			Expect(balances).To(HaveLen(2))
			known, ok := balances[0].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(known["token"]).To(Equal("USDT"))
			unknown, ok := balances[1].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(unknown["token"]).To(Equal("0x12345678..."))
		})

		It("rejects a malformed address before touching the store", func() {
			explorer.HandleGetAddress(recorder, newRequest("0x1234"))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(store.AddressProfileCallCount()).To(BeZero())
		})

		It("hides internal errors behind a generic message", func() {
			store.AddressProfileReturns(repository.AddressProfile{}, errors.New("connection reset"))

			explorer.HandleGetAddress(recorder, newRequest(account))

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			Expect(decode().Error).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("HandleGetHealth", func() {
		It("reports ok while the database responds", func() {
			request := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			explorer.HandleGetHealth(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			response := decode()
			Expect(response.Message).To(Equal("ok"))
		})

		It("reports unhealthy when the database is unreachable", func() {
			store.PingReturns(errors.New("connection refused"))

			request := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			explorer.HandleGetHealth(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			response := decode()
			Expect(response.Message).To(Equal("unhealthy"))
		})
	})
})
