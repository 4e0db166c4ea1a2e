package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	gethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type NodeService struct {
	client EthClient

	mu      sync.Mutex
	chainID *big.Int
}

func NewNodeService(client EthClient) *NodeService {
	return &NodeService{
		client: client,
	}
}

// ChainTip returns the current head block height.
func (s *NodeService) ChainTip(ctx context.Context) (uint64, error) {
	tip, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return tip, nil
}

// FetchBlock returns the block at the given height with its transactions,
// or nil when the remote node has not indexed it yet.
func (s *NodeService) FetchBlock(ctx context.Context, height uint64) (*types.Block, error) {
	block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		if errors.Is(err, gethereum.NotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}
	return block, nil
}

// FetchReceipts retrieves the receipts for all hashes concurrently.
// Receipts the node does not know yet are omitted from the result; any
// fetch error fails the whole call.
func (s *NodeService) FetchReceipts(ctx context.Context, hashes []common.Hash) (map[common.Hash]*types.Receipt, error) {
	resultsChan := make(chan ReceiptResult)

	var wg sync.WaitGroup
	for _, hash := range hashes {
		wg.Add(1)
		go func(hash common.Hash) {
			defer wg.Done()
			receipt, err := s.client.TransactionReceipt(ctx, hash)
			if err != nil {
				if errors.Is(err, gethereum.NotFound) {
					resultsChan <- ReceiptResult{Hash: hash}
					return
				}
				resultsChan <- ReceiptResult{Hash: hash, Error: fmt.Errorf("fetching receipt %q: %w", hash.Hex(), err)}
				return
			}
			resultsChan <- ReceiptResult{Hash: hash, Receipt: receipt}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	receipts := make(map[common.Hash]*types.Receipt, len(hashes))
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		if result.Receipt != nil {
			receipts[result.Hash] = result.Receipt
		}
	}

	if aggrErr != nil {
		return nil, aggrErr
	}

	return receipts, nil
}

// FetchTransaction returns the sender-side details of a transaction, or
// nil when the remote node does not know the hash.
func (s *NodeService) FetchTransaction(ctx context.Context, hash common.Hash) (*TxDetails, error) {
	tx, _, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gethereum.NotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction %q: %w", hash.Hex(), err)
	}

	chainID, err := s.networkID(ctx)
	if err != nil {
		return nil, err
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return nil, fmt.Errorf("recover sender of %q: %w", hash.Hex(), err)
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	gasPrice := tx.GasPrice()
	if gasPrice == nil {
		gasPrice = big.NewInt(0)
	}

	return &TxDetails{
		Hash:     tx.Hash().Hex(),
		From:     from.Hex(),
		To:       to,
		Value:    tx.Value(),
		GasPrice: gasPrice,
		Input:    tx.Data(),
		Nonce:    tx.Nonce(),
	}, nil
}

func (s *NodeService) networkID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.chainID != nil {
		return s.chainID, nil
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get network id: %w", err)
	}

	s.chainID = chainID
	return chainID, nil
}
