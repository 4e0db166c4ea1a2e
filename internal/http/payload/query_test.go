package payload_test

import (
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"bscout/internal/http/payload"
)

var _ = Describe("ParsePagination", func() {
	It("falls back to page 1 and the default limit", func() {
		pagination, err := payload.ParsePagination(url.Values{})

		Expect(err).NotTo(HaveOccurred())
		Expect(pagination.Page).To(Equal(1))
		Expect(pagination.Limit).To(Equal(20))
		Expect(pagination.Offset()).To(Equal(0))
	})

	It("accepts the maximum limit", func() {
		pagination, err := payload.ParsePagination(url.Values{"page": {"4"}, "limit": {"100"}})

		Expect(err).NotTo(HaveOccurred())
		Expect(pagination.Offset()).To(Equal(300))
	})

	DescribeTable("rejects out-of-range values",
		func(page, limit string) {
			values := url.Values{}
			if page != "" {
				values.Set("page", page)
			}
			if limit != "" {
				values.Set("limit", limit)
			}

			_, err := payload.ParsePagination(values)

			Expect(err).To(HaveOccurred())
		},
		Entry("zero page", "0", ""),
		Entry("negative page", "-1", ""),
		Entry("zero limit", "", "0"),
		Entry("limit above the maximum", "", "101"),
		Entry("non-numeric page", "first", ""),
		Entry("non-numeric limit", "", "many"),
	)
})

var _ = Describe("ParseTransactionsQuery", func() {
	It("reads the search and flag parameters", func() {
		values := url.Values{
			"search": {"12345"},
			"defi":   {"true"},
			"failed": {"true"},
		}

		query, err := payload.ParseTransactionsQuery(values)

		Expect(err).NotTo(HaveOccurred())
		Expect(query.Search).To(Equal("12345"))
		Expect(query.DeFi).To(BeTrue())
		Expect(query.Failed).To(BeTrue())
	})

	It("treats any other flag value as false", func() {
		values := url.Values{"defi": {"1"}, "failed": {"yes"}}

		query, err := payload.ParseTransactionsQuery(values)

		Expect(err).NotTo(HaveOccurred())
		Expect(query.DeFi).To(BeFalse())
		Expect(query.Failed).To(BeFalse())
	})

	It("rejects a search longer than a transaction hash", func() {
		values := url.Values{"search": {"0x" + strings.Repeat("a", 65)}}

		_, err := payload.ParseTransactionsQuery(values)

		Expect(err).To(MatchError(ContainSubstring("validate transactions query")))
	})
})

var _ = Describe("ParseTokenTransfersQuery", func() {
	It("accepts a well-formed token address", func() {
		values := url.Values{"token": {"0x55d398326f99059fF775485246999027B3197955"}}

		query, err := payload.ParseTokenTransfersQuery(values)

		Expect(err).NotTo(HaveOccurred())
		Expect(query.Token).To(Equal("0x55d398326f99059fF775485246999027B3197955"))
	})

	It("allows the token to be absent", func() {
		query, err := payload.ParseTokenTransfersQuery(url.Values{})

		Expect(err).NotTo(HaveOccurred())
		Expect(query.Token).To(BeEmpty())
	})

	It("rejects a malformed token address", func() {
		_, err := payload.ParseTokenTransfersQuery(url.Values{"token": {"usdt"}})

		Expect(err).To(MatchError(ContainSubstring("validate token transfers query")))
	})
})

var _ = Describe("ValidateTxHash", func() {
	It("accepts a canonical hash", func() {
		Expect(payload.ValidateTxHash("0x" + strings.Repeat("Ab", 32))).To(Succeed())
	})

	DescribeTable("rejects malformed hashes",
		func(hash string) {
			Expect(payload.ValidateTxHash(hash)).NotTo(Succeed())
		},
		Entry("empty", ""),
		Entry("missing prefix", strings.Repeat("ab", 33)),
		Entry("too short", "0x1234"),
		Entry("non-hex characters", "0x"+strings.Repeat("zz", 32)),
	)
})
