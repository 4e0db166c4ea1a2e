package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Topic-0 hashes of the recognized event signatures.
var (
	TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	SwapV2Topic   = crypto.Keccak256Hash([]byte("Swap(address,uint256,uint256,uint256,uint256,address)"))
	SwapV3Topic   = crypto.Keccak256Hash([]byte("Swap(address,address,int256,int256,uint160,uint128,int24)"))
)

type Kind int

const (
	KindTransfer Kind = iota + 1
	KindSwapV2
	KindSwapV3
)

// Transfer is a decoded ERC-20/BEP-20 Transfer event.
type Transfer struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// SwapV2 is a decoded constant-product swap (PancakeSwap V2 layout).
type SwapV2 struct {
	Sender     common.Address
	To         common.Address
	Amount0In  *big.Int
	Amount1In  *big.Int
	Amount0Out *big.Int
	Amount1Out *big.Int
}

// SwapV3 is a decoded concentrated-liquidity swap (PancakeSwap V3 layout).
type SwapV3 struct {
	Sender       common.Address
	Recipient    common.Address
	Amount0      *big.Int
	Amount1      *big.Int
	SqrtPriceX96 *big.Int
	Liquidity    *big.Int
	Tick         int32
}

// Event is the tagged union a log classifies into. Exactly one of the
// pointers matching Kind is set.
type Event struct {
	Kind     Kind
	Transfer *Transfer
	SwapV2   *SwapV2
	SwapV3   *SwapV3
}

var (
	transferDataArgs abi.Arguments
	swapV2DataArgs   abi.Arguments
	swapV3DataArgs   abi.Arguments
	stringArgs       abi.Arguments

	decoders map[common.Hash]func(types.Log) (Event, bool)
)

func init() {
	uint256Type, _ := abi.NewType("uint256", "", nil)
	int256Type, _ := abi.NewType("int256", "", nil)
	uint160Type, _ := abi.NewType("uint160", "", nil)
	uint128Type, _ := abi.NewType("uint128", "", nil)
	int24Type, _ := abi.NewType("int24", "", nil)
	stringType, _ := abi.NewType("string", "", nil)

	transferDataArgs = abi.Arguments{
		{Name: "value", Type: uint256Type},
	}
	swapV2DataArgs = abi.Arguments{
		{Name: "amount0In", Type: uint256Type},
		{Name: "amount1In", Type: uint256Type},
		{Name: "amount0Out", Type: uint256Type},
		{Name: "amount1Out", Type: uint256Type},
	}
	swapV3DataArgs = abi.Arguments{
		{Name: "amount0", Type: int256Type},
		{Name: "amount1", Type: int256Type},
		{Name: "sqrtPriceX96", Type: uint160Type},
		{Name: "liquidity", Type: uint128Type},
		{Name: "tick", Type: int24Type},
	}
	stringArgs = abi.Arguments{
		{Name: "reason", Type: stringType},
	}

	decoders = map[common.Hash]func(types.Log) (Event, bool){
		TransferTopic: decodeTransfer,
		SwapV2Topic:   decodeSwapV2,
		SwapV3Topic:   decodeSwapV3,
	}
}

// Classify matches a raw log against the known event signatures. The
// second return value is false when topic-0 is unknown, the topic count
// is wrong, or the data payload does not decode; classification never
// returns an error.
func Classify(log types.Log) (Event, bool) {
	if len(log.Topics) == 0 {
		return Event{}, false
	}

	decode, ok := decoders[log.Topics[0]]
	if !ok {
		return Event{}, false
	}

	return decode(log)
}

func decodeTransfer(log types.Log) (Event, bool) {
	if len(log.Topics) != 3 {
		return Event{}, false
	}

	values, err := transferDataArgs.Unpack(log.Data)
	if err != nil || len(values) != 1 {
		return Event{}, false
	}

	amount, ok := values[0].(*big.Int)
	if !ok {
		return Event{}, false
	}

	return Event{
		Kind: KindTransfer,
		Transfer: &Transfer{
			From:   common.BytesToAddress(log.Topics[1].Bytes()),
			To:     common.BytesToAddress(log.Topics[2].Bytes()),
			Amount: amount,
		},
	}, true
}

func decodeSwapV2(log types.Log) (Event, bool) {
	if len(log.Topics) != 3 {
		return Event{}, false
	}

	values, err := swapV2DataArgs.Unpack(log.Data)
	if err != nil || len(values) != 4 {
		return Event{}, false
	}

	amounts := make([]*big.Int, 0, 4)
	for _, value := range values {
		amount, ok := value.(*big.Int)
		if !ok {
			return Event{}, false
		}
		amounts = append(amounts, amount)
	}

	return Event{
		Kind: KindSwapV2,
		SwapV2: &SwapV2{
			Sender:     common.BytesToAddress(log.Topics[1].Bytes()),
			To:         common.BytesToAddress(log.Topics[2].Bytes()),
			Amount0In:  amounts[0],
			Amount1In:  amounts[1],
			Amount0Out: amounts[2],
			Amount1Out: amounts[3],
		},
	}, true
}

func decodeSwapV3(log types.Log) (Event, bool) {
	if len(log.Topics) != 3 {
		return Event{}, false
	}

	values, err := swapV3DataArgs.Unpack(log.Data)
	if err != nil || len(values) != 5 {
		return Event{}, false
	}

	nums := make([]*big.Int, 0, 5)
	for _, value := range values {
		num, ok := value.(*big.Int)
		if !ok {
			return Event{}, false
		}
		nums = append(nums, num)
	}

	return Event{
		Kind: KindSwapV3,
		SwapV3: &SwapV3{
			Sender:       common.BytesToAddress(log.Topics[1].Bytes()),
			Recipient:    common.BytesToAddress(log.Topics[2].Bytes()),
			Amount0:      nums[0],
			Amount1:      nums[1],
			SqrtPriceX96: nums[2],
			Liquidity:    nums[3],
			Tick:         int32(nums[4].Int64()),
		},
	}, true
}
