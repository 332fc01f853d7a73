package ports

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
)

// Explorer is the abstraction for any kind of service representing a
// block explorer. It gives info about blocks and txs of the blockchain and
// lets broadcast transactions over the Bitcoin network.
//
// Every operation performs exactly one request towards the remote source
// and returns domain.ErrNotFound (possibly wrapped) whenever the requested
// resource doesn't exist.
type Explorer interface {
	// GetTx returns the raw transaction identified by its hash.
	GetTx(ctx context.Context, txid chainhash.Hash) (*wire.MsgTx, error)
	// GetTxInfo returns the full metadata record of the transaction
	// identified by its hash.
	GetTxInfo(ctx context.Context, txid chainhash.Hash) (*domain.Tx, error)
	// GetTxidAtBlockIndex returns the hash of the transaction at the given
	// index within the block identified by its hash.
	GetTxidAtBlockIndex(
		ctx context.Context, blockHash chainhash.Hash, index uint32,
	) (*chainhash.Hash, error)
	// GetTxStatus returns the confirmation status of the transaction
	// identified by its hash.
	GetTxStatus(ctx context.Context, txid chainhash.Hash) (*domain.TxStatus, error)
	// GetBlockHeader returns the header of the block identified by its hash.
	GetBlockHeader(
		ctx context.Context, blockHash chainhash.Hash,
	) (*wire.BlockHeader, error)
	// GetBlockStatus returns the status of the block identified by its hash.
	GetBlockStatus(
		ctx context.Context, blockHash chainhash.Hash,
	) (*domain.BlockStatus, error)
	// GetBlock returns the whole block identified by its hash.
	GetBlock(ctx context.Context, blockHash chainhash.Hash) (*wire.MsgBlock, error)
	// GetMerkleProof returns the proof of inclusion of the transaction
	// identified by its hash in the block that contains it.
	GetMerkleProof(
		ctx context.Context, txid chainhash.Hash,
	) (*domain.MerkleProof, error)
	// GetMerkleBlock returns the merkle block inclusion proof of the
	// transaction identified by its hash, serialized in hex format.
	GetMerkleBlock(ctx context.Context, txid chainhash.Hash) (string, error)
	// GetOutputStatus returns the spend status of the output of the
	// transaction identified by its hash at the given index.
	GetOutputStatus(
		ctx context.Context, txid chainhash.Hash, index uint32,
	) (*domain.OutputStatus, error)
	// Broadcast sends the given raw tx over the network in order to be
	// included in a later block and returns its hash.
	Broadcast(ctx context.Context, tx *wire.MsgTx) (*chainhash.Hash, error)
	// GetBlockHash returns the hash of the block at the given height of the
	// best chain.
	GetBlockHash(ctx context.Context, height uint32) (*chainhash.Hash, error)
	// GetFeeEstimates returns the fee estimations of the explorer as a map
	// of confirmation target (in number of blocks) -> fee rate (sat/vB).
	GetFeeEstimates(ctx context.Context) (map[string]float64, error)
	// GetScriptHashTxs returns the confirmed tx history of the given script
	// pubkey, sorted with newest first. The optional lastSeen tx hash acts
	// as pagination cursor: if set, the returned page contains only txs
	// confirmed before it.
	GetScriptHashTxs(
		ctx context.Context, script []byte, lastSeen *chainhash.Hash,
	) ([]domain.Tx, error)
	// GetRecentBlocks returns the 10 most recent block summaries at the tip
	// of the chain, or at the given height if set.
	GetRecentBlocks(
		ctx context.Context, startHeight *uint32,
	) ([]domain.BlockSummary, error)
}
