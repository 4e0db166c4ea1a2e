package filters

import "strings"

// Router contracts of the major BSC DEX aggregators.
const (
	PancakeV2Router  = "0x10ED43C718714eb63d5aA57B78B54704E256024E"
	PancakeV3Router  = "0x13f4EA83D0bd40E75C8222255bc855a974568Dd4"
	PancakeV2Factory = "0xcA143Ce32Fe78f1f7019d7d551a6402fC5350c73"
	OneInchRouter    = "0x1111111254EEB25477B68fb85Ed929f73A960582"
	BiswapRouter     = "0x3a6d8cA21D1CF76F653A67577FA0D27453350dD8"
)

// High-volume BEP-20 tokens.
const (
	TokenUSDT = "0x55d398326f99059fF775485246999027B3197955"
	TokenBUSD = "0xe9e7CEA3DedcA5984780Bafc599bD69ADd087D56"
	TokenWBNB = "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c"
	TokenUSDC = "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"
	TokenBTCB = "0x7130d2A12B9BCbFAe4f2634d864A1Ee1Ce3Ead9c"
	TokenETH  = "0x2170Ed0880ac9A755fd29B2688956BD959F933F8"
)

var tokenSymbols = map[string]string{
	strings.ToLower(TokenUSDT): "USDT",
	strings.ToLower(TokenBUSD): "BUSD",
	strings.ToLower(TokenWBNB): "WBNB",
	strings.ToLower(TokenUSDC): "USDC",
	strings.ToLower(TokenBTCB): "BTCB",
	strings.ToLower(TokenETH):  "ETH",
}

// TokenSymbol resolves a token contract address to its ticker symbol.
// Lookup is case-insensitive; ok is false for unknown tokens.
func TokenSymbol(address string) (string, bool) {
	symbol, ok := tokenSymbols[strings.ToLower(address)]
	return symbol, ok
}

// DefaultDeFiContracts returns the router set tracked when no allow-list is configured.
func DefaultDeFiContracts() []string {
	return []string{
		PancakeV2Router,
		PancakeV3Router,
		PancakeV2Factory,
		OneInchRouter,
		BiswapRouter,
	}
}
