package application_test

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/mock"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
)

// ports.Explorer
type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) GetTx(
	ctx context.Context, txid chainhash.Hash,
) (*wire.MsgTx, error) {
	args := m.Called(ctx, txid)
	var res *wire.MsgTx
	if a := args.Get(0); a != nil {
		res = a.(*wire.MsgTx)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetTxInfo(
	ctx context.Context, txid chainhash.Hash,
) (*domain.Tx, error) {
	args := m.Called(ctx, txid)
	var res *domain.Tx
	if a := args.Get(0); a != nil {
		res = a.(*domain.Tx)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetTxidAtBlockIndex(
	ctx context.Context, blockHash chainhash.Hash, index uint32,
) (*chainhash.Hash, error) {
	args := m.Called(ctx, blockHash, index)
	var res *chainhash.Hash
	if a := args.Get(0); a != nil {
		res = a.(*chainhash.Hash)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetTxStatus(
	ctx context.Context, txid chainhash.Hash,
) (*domain.TxStatus, error) {
	args := m.Called(ctx, txid)
	var res *domain.TxStatus
	if a := args.Get(0); a != nil {
		res = a.(*domain.TxStatus)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetBlockHeader(
	ctx context.Context, blockHash chainhash.Hash,
) (*wire.BlockHeader, error) {
	args := m.Called(ctx, blockHash)
	var res *wire.BlockHeader
	if a := args.Get(0); a != nil {
		res = a.(*wire.BlockHeader)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetBlockStatus(
	ctx context.Context, blockHash chainhash.Hash,
) (*domain.BlockStatus, error) {
	args := m.Called(ctx, blockHash)
	var res *domain.BlockStatus
	if a := args.Get(0); a != nil {
		res = a.(*domain.BlockStatus)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetBlock(
	ctx context.Context, blockHash chainhash.Hash,
) (*wire.MsgBlock, error) {
	args := m.Called(ctx, blockHash)
	var res *wire.MsgBlock
	if a := args.Get(0); a != nil {
		res = a.(*wire.MsgBlock)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetMerkleProof(
	ctx context.Context, txid chainhash.Hash,
) (*domain.MerkleProof, error) {
	args := m.Called(ctx, txid)
	var res *domain.MerkleProof
	if a := args.Get(0); a != nil {
		res = a.(*domain.MerkleProof)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetMerkleBlock(
	ctx context.Context, txid chainhash.Hash,
) (string, error) {
	args := m.Called(ctx, txid)
	var res string
	if a := args.Get(0); a != nil {
		res = a.(string)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetOutputStatus(
	ctx context.Context, txid chainhash.Hash, index uint32,
) (*domain.OutputStatus, error) {
	args := m.Called(ctx, txid, index)
	var res *domain.OutputStatus
	if a := args.Get(0); a != nil {
		res = a.(*domain.OutputStatus)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) Broadcast(
	ctx context.Context, tx *wire.MsgTx,
) (*chainhash.Hash, error) {
	args := m.Called(ctx, tx)
	var res *chainhash.Hash
	if a := args.Get(0); a != nil {
		res = a.(*chainhash.Hash)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetBlockHash(
	ctx context.Context, height uint32,
) (*chainhash.Hash, error) {
	args := m.Called(ctx, height)
	var res *chainhash.Hash
	if a := args.Get(0); a != nil {
		res = a.(*chainhash.Hash)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetFeeEstimates(
	ctx context.Context,
) (map[string]float64, error) {
	args := m.Called(ctx)
	var res map[string]float64
	if a := args.Get(0); a != nil {
		res = a.(map[string]float64)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetScriptHashTxs(
	ctx context.Context, script []byte, lastSeen *chainhash.Hash,
) ([]domain.Tx, error) {
	args := m.Called(ctx, script, lastSeen)
	var res []domain.Tx
	if a := args.Get(0); a != nil {
		res = a.([]domain.Tx)
	}
	return res, args.Error(1)
}

func (m *mockExplorer) GetRecentBlocks(
	ctx context.Context, startHeight *uint32,
) ([]domain.BlockSummary, error) {
	args := m.Called(ctx, startHeight)
	var res []domain.BlockSummary
	if a := args.Get(0); a != nil {
		res = a.([]domain.BlockSummary)
	}
	return res, args.Error(1)
}
