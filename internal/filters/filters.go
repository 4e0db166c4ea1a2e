package filters

import (
	"math/big"
	"strings"
)

var weiPerBNB = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// AddressSet is a case-insensitive set of hex addresses.
type AddressSet map[string]struct{}

func NewAddressSet(addresses []string) AddressSet {
	set := make(AddressSet, len(addresses))
	for _, addr := range addresses {
		set[strings.ToLower(addr)] = struct{}{}
	}
	return set
}

func (s AddressSet) Contains(address string) bool {
	_, ok := s[strings.ToLower(address)]
	return ok
}

func (s AddressSet) Empty() bool {
	return len(s) == 0
}

// IsNativeTransfer reports whether the transaction carries no calldata,
// i.e. a plain BNB send rather than a contract call.
func IsNativeTransfer(input []byte) bool {
	return len(input) == 0
}

// ThresholdWei converts a whole-BNB threshold into wei.
func ThresholdWei(thresholdBNB int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(thresholdBNB), weiPerBNB)
}

// IsLargeTransfer reports whether value is at or above the threshold.
// Comparison is exact big.Int arithmetic; floating point would truncate
// values past 2^53.
func IsLargeTransfer(value *big.Int, thresholdBNB int64) bool {
	if value == nil {
		return false
	}
	return value.Cmp(ThresholdWei(thresholdBNB)) >= 0
}

// IsKnownContract reports whether the destination is in the tracked set.
func IsKnownContract(to string, contracts AddressSet) bool {
	if to == "" {
		return false
	}
	return contracts.Contains(to)
}

// ToDisplayUnits converts wei to BNB as a float. Lossy; for logs and
// display only, never for comparisons or persisted amounts.
func ToDisplayUnits(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	value, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetInt(weiPerBNB),
	).Float64()
	return value
}
