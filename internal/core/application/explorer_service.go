package application

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	log "github.com/sirupsen/logrus"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
	"github.com/vulpemventures/esplora-cli/internal/core/ports"
)

// ExplorerService is responsible for dispatching every command of the CLI
// to the remote explorer:
//   - Fetch a transaction, its metadata, its confirmation status or its
//     proofs of inclusion.
//   - Fetch a block, its header or its status.
//   - Broadcast a raw transaction over the network.
//   - Fetch info about the chain, like the current tip, the hash of a block
//     at some height, the fee estimations or the recent block summaries.
//   - Fetch the confirmed tx history of an address.
//
// Every operation performs exactly one call towards the remote explorer,
// with the only exception of GetTip that is the projection of the most
// recent block summary. Arguments are expected to be already validated into
// their domain types, something the callers do with the Parse* helpers of
// this package before hitting the network.
type ExplorerService struct {
	explorer ports.Explorer

	log func(format string, a ...interface{})
}

func NewExplorerService(explorer ports.Explorer) *ExplorerService {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("explorer service: %s", format)
		log.Debugf(format, a...)
	}
	return &ExplorerService{explorer, logFn}
}

// GetTx returns the canonical hex encoding of the transaction identified by
// the given hash.
func (es *ExplorerService) GetTx(
	ctx context.Context, txid chainhash.Hash,
) (string, error) {
	tx, err := es.explorer.GetTx(ctx, txid)
	if err != nil {
		return "", err
	}
	return txHex(tx)
}

// GetTxInfo returns the full metadata record of the transaction identified
// by the given hash.
func (es *ExplorerService) GetTxInfo(
	ctx context.Context, txid chainhash.Hash,
) (*domain.Tx, error) {
	return es.explorer.GetTxInfo(ctx, txid)
}

// GetTxidAtBlockIndex returns the hash of the transaction at the given
// index within the given block.
func (es *ExplorerService) GetTxidAtBlockIndex(
	ctx context.Context, blockHash chainhash.Hash, index uint32,
) (string, error) {
	txid, err := es.explorer.GetTxidAtBlockIndex(ctx, blockHash, index)
	if err != nil {
		return "", err
	}
	return txid.String(), nil
}

// GetTxStatus returns the confirmation status of the transaction identified
// by the given hash.
func (es *ExplorerService) GetTxStatus(
	ctx context.Context, txid chainhash.Hash,
) (*domain.TxStatus, error) {
	return es.explorer.GetTxStatus(ctx, txid)
}

// GetBlockHeader returns the header of the block identified by the given
// hash, projected to a human-readable record.
func (es *ExplorerService) GetBlockHeader(
	ctx context.Context, blockHash chainhash.Hash,
) (*BlockHeaderInfo, error) {
	header, err := es.explorer.GetBlockHeader(ctx, blockHash)
	if err != nil {
		return nil, err
	}
	return blockHeaderInfo(header), nil
}

// GetBlockStatus returns the status of the block identified by the given
// hash.
func (es *ExplorerService) GetBlockStatus(
	ctx context.Context, blockHash chainhash.Hash,
) (*domain.BlockStatus, error) {
	return es.explorer.GetBlockStatus(ctx, blockHash)
}

// GetBlockTxids returns the hashes of all transactions included in the
// block identified by the given hash, in block order. The coinbase
// transaction is filtered out of the list if excludeCoinbase is set.
func (es *ExplorerService) GetBlockTxids(
	ctx context.Context, blockHash chainhash.Hash, excludeCoinbase bool,
) ([]string, error) {
	block, err := es.explorer.GetBlock(ctx, blockHash)
	if err != nil {
		return nil, err
	}

	txids := make([]string, 0, len(block.Transactions))
	for _, tx := range block.Transactions {
		if excludeCoinbase && isCoinbase(tx) {
			continue
		}
		txids = append(txids, tx.TxHash().String())
	}

	es.log("fetched block %s with %d txs", blockHash, len(block.Transactions))
	return txids, nil
}

// GetMerkleProof returns the proof of inclusion of the transaction
// identified by the given hash in the block that contains it.
func (es *ExplorerService) GetMerkleProof(
	ctx context.Context, txid chainhash.Hash,
) (*domain.MerkleProof, error) {
	return es.explorer.GetMerkleProof(ctx, txid)
}

// GetMerkleBlock returns the merkle block inclusion proof of the
// transaction identified by the given hash, in hex format.
func (es *ExplorerService) GetMerkleBlock(
	ctx context.Context, txid chainhash.Hash,
) (string, error) {
	return es.explorer.GetMerkleBlock(ctx, txid)
}

// GetOutputStatus returns the spend status of the given output of the
// transaction identified by the given hash.
func (es *ExplorerService) GetOutputStatus(
	ctx context.Context, txid chainhash.Hash, index uint32,
) (*domain.OutputStatus, error) {
	return es.explorer.GetOutputStatus(ctx, txid, index)
}

// Broadcast sends the given raw transaction over the network and returns
// the hash assigned by the explorer.
func (es *ExplorerService) Broadcast(
	ctx context.Context, tx *wire.MsgTx,
) (string, error) {
	txid, err := es.explorer.Broadcast(ctx, tx)
	if err != nil {
		return "", err
	}
	return txid.String(), nil
}

// GetTip returns hash and height of the best block of the chain.
func (es *ExplorerService) GetTip(ctx context.Context) (*TipInfo, error) {
	blocks, err := es.explorer.GetRecentBlocks(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(blocks) <= 0 {
		return nil, fmt.Errorf("explorer returned no recent blocks")
	}

	tip := blocks[0]
	return &TipInfo{Hash: tip.Id, Height: tip.Height}, nil
}

// GetBlockHash returns the hash of the block at the given height of the
// best chain.
func (es *ExplorerService) GetBlockHash(
	ctx context.Context, height uint32,
) (string, error) {
	hash, err := es.explorer.GetBlockHash(ctx, height)
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// GetFeeEstimates returns the whole fee estimations map of the explorer,
// keyed by confirmation target in number of blocks.
func (es *ExplorerService) GetFeeEstimates(
	ctx context.Context,
) (map[string]float64, error) {
	return es.explorer.GetFeeEstimates(ctx)
}

// GetAddressTxs returns the hashes of the confirmed transactions of the
// given address, sorted with newest first. The optional lastSeen tx hash
// acts as pagination cursor: if set, the returned page contains only the
// transactions confirmed before it.
func (es *ExplorerService) GetAddressTxs(
	ctx context.Context, addr btcutil.Address, lastSeen *chainhash.Hash,
) ([]string, error) {
	script, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to compute script pubkey: %s", err)
	}

	txs, err := es.explorer.GetScriptHashTxs(ctx, script, lastSeen)
	if err != nil {
		return nil, err
	}

	txids := make([]string, 0, len(txs))
	for _, tx := range txs {
		txids = append(txids, tx.Txid)
	}
	return txids, nil
}

// GetRecentBlocks returns the most recent block summaries at the tip of the
// chain, or at the given height if set.
func (es *ExplorerService) GetRecentBlocks(
	ctx context.Context, startHeight *uint32,
) ([]domain.BlockSummary, error) {
	return es.explorer.GetRecentBlocks(ctx, startHeight)
}
