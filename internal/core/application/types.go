package application

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
)

// BlockHeaderInfo is the human-readable projection of a block header.
type BlockHeaderInfo struct {
	Version       int32  `json:"version"`
	PrevBlockHash string `json:"previousblockhash"`
	MerkleRoot    string `json:"merkle_root"`
	Timestamp     int64  `json:"timestamp"`
	Bits          uint32 `json:"bits"`
	Nonce         uint32 `json:"nonce"`
}

func blockHeaderInfo(header *wire.BlockHeader) *BlockHeaderInfo {
	return &BlockHeaderInfo{
		Version:       header.Version,
		PrevBlockHash: header.PrevBlock.String(),
		MerkleRoot:    header.MerkleRoot.String(),
		Timestamp:     header.Timestamp.Unix(),
		Bits:          header.Bits,
		Nonce:         header.Nonce,
	}
}

type TipInfo domain.ChainTip

// ParseTxid validates and parses the given string as a transaction hash.
func ParseTxid(txid string) (*chainhash.Hash, error) {
	hash, err := parseHash(txid)
	if err != nil {
		return nil, fmt.Errorf("invalid txid: %s", err)
	}
	return hash, nil
}

// ParseBlockHash validates and parses the given string as a block hash.
func ParseBlockHash(blockHash string) (*chainhash.Hash, error) {
	hash, err := parseHash(blockHash)
	if err != nil {
		return nil, fmt.Errorf("invalid block hash: %s", err)
	}
	return hash, nil
}

// chainhash zero-pads strings shorter than 64 chars instead of rejecting
// them, so the length is checked here.
func parseHash(s string) (*chainhash.Hash, error) {
	if len(s) != 2*chainhash.HashSize {
		return nil, fmt.Errorf(
			"must be a %d-char hex string", 2*chainhash.HashSize,
		)
	}
	return chainhash.NewHashFromStr(s)
}

// ParseHeight validates and parses the given string as a block height.
func ParseHeight(height string) (uint32, error) {
	h, err := strconv.ParseUint(height, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid block height: %s", err)
	}
	return uint32(h), nil
}

// ParseIndex validates and parses the given string as a tx or output index.
func ParseIndex(index string) (uint32, error) {
	i, err := strconv.ParseUint(index, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", err)
	}
	return uint32(i), nil
}

// ParseTxHex validates and parses the given string as a raw transaction in
// hex format.
func ParseTxHex(txHex string) (*wire.MsgTx, error) {
	buf, err := hex.DecodeString(txHex)
	if err != nil {
		return nil, fmt.Errorf("invalid tx hex: %s", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(buf)); err != nil {
		return nil, fmt.Errorf("invalid raw transaction: %s", err)
	}
	return tx, nil
}

// ParseAddress validates and parses the given string as an address of the
// given Bitcoin network.
func ParseAddress(
	addr string, net *chaincfg.Params,
) (btcutil.Address, error) {
	address, err := btcutil.DecodeAddress(addr, net)
	if err != nil {
		return nil, fmt.Errorf("invalid address: %s", err)
	}
	if !address.IsForNet(net) {
		return nil, fmt.Errorf("address is not for network %s", net.Name)
	}
	return address, nil
}

func txHex(tx *wire.MsgTx) (string, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %s", err)
	}
	return hex.EncodeToString(buf.Bytes()), nil
}

func isCoinbase(tx *wire.MsgTx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	prevOut := tx.TxIn[0].PreviousOutPoint
	return prevOut.Index == wire.MaxPrevOutIndex && prevOut.Hash == chainhash.Hash{}
}
