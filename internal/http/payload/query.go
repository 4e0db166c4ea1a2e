package payload

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/jellydator/validation"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var (
	hashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// Pagination is the page/limit pair shared by every list endpoint.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Min(1)),
		validation.Field(&p.Limit, validation.Min(1), validation.Max(maxPageLimit)),
	)
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination reads page/limit query parameters, clamping absent
// values to the defaults.
func ParsePagination(values url.Values) (Pagination, error) {
	page, err := intParam(values, "page", 1)
	if err != nil {
		return Pagination{}, err
	}

	limit, err := intParam(values, "limit", defaultPageLimit)
	if err != nil {
		return Pagination{}, err
	}

	pagination := Pagination{Page: page, Limit: limit}
	if err := pagination.Validate(); err != nil {
		return Pagination{}, fmt.Errorf("validate pagination: %w", err)
	}

	return pagination, nil
}

// TransactionsQuery is the filter set of the transaction list endpoint.
type TransactionsQuery struct {
	Pagination
	Search string
	DeFi   bool
	Failed bool
}

func (q TransactionsQuery) Validate() error {
	if err := q.Pagination.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&q,
		validation.Field(&q.Search, validation.Length(0, 66)),
	)
}

func ParseTransactionsQuery(values url.Values) (TransactionsQuery, error) {
	pagination, err := ParsePagination(values)
	if err != nil {
		return TransactionsQuery{}, err
	}

	query := TransactionsQuery{
		Pagination: pagination,
		Search:     values.Get("search"),
		DeFi:       values.Get("defi") == "true",
		Failed:     values.Get("failed") == "true",
	}

	if err := query.Validate(); err != nil {
		return TransactionsQuery{}, fmt.Errorf("validate transactions query: %w", err)
	}

	return query, nil
}

// TokenTransfersQuery optionally narrows the transfer list to one token.
type TokenTransfersQuery struct {
	Pagination
	Token string
}

func (q TokenTransfersQuery) Validate() error {
	if err := q.Pagination.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(&q,
		validation.Field(&q.Token, validation.Match(addressRegex)),
	)
}

func ParseTokenTransfersQuery(values url.Values) (TokenTransfersQuery, error) {
	pagination, err := ParsePagination(values)
	if err != nil {
		return TokenTransfersQuery{}, err
	}

	query := TokenTransfersQuery{
		Pagination: pagination,
		Token:      values.Get("token"),
	}

	if err := query.Validate(); err != nil {
		return TokenTransfersQuery{}, fmt.Errorf("validate token transfers query: %w", err)
	}

	return query, nil
}

// ValidateTxHash checks a path parameter is a well-formed transaction hash.
func ValidateTxHash(hash string) error {
	return validation.Validate(hash, validation.Required, validation.Match(hashRegex))
}

// ValidateAddress checks a path parameter is a well-formed address.
func ValidateAddress(address string) error {
	return validation.Validate(address, validation.Required, validation.Match(addressRegex))
}

func intParam(values url.Values, key string, fallback int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return value, nil
}
