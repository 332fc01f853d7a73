package domain

import "fmt"

var ErrBlockNotFound = fmt.Errorf("block %w", ErrNotFound)

// BlockStatus tells whether a block belongs to the best chain and which
// block follows it there.
type BlockStatus struct {
	InBestChain bool   `json:"in_best_chain"`
	Height      uint32 `json:"height,omitempty"`
	NextBest    string `json:"next_best,omitempty"`
}

// BlockSummary is the lightweight record the explorer returns when listing
// recent blocks.
type BlockSummary struct {
	Id                string  `json:"id"`
	Height            uint32  `json:"height"`
	Version           int32   `json:"version"`
	Timestamp         int64   `json:"timestamp"`
	TxCount           uint32  `json:"tx_count"`
	Size              uint64  `json:"size"`
	Weight            uint64  `json:"weight"`
	MerkleRoot        string  `json:"merkle_root"`
	PreviousBlockHash string  `json:"previousblockhash,omitempty"`
	Nonce             uint32  `json:"nonce"`
	Bits              uint32  `json:"bits"`
	Difficulty        float64 `json:"difficulty"`
}

// ChainTip is the summary of the best block of the chain.
type ChainTip struct {
	Hash   string `json:"hash"`
	Height uint32 `json:"height"`
}
