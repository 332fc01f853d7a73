package esplora_explorer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/pkg/errors"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
	"github.com/vulpemventures/esplora-cli/internal/core/ports"
)

type service struct {
	baseUrl string
	client  *http.Client
}

// NewEsploraExplorer returns an implementation of the Explorer interface
// backed by the REST API of an Esplora instance reachable at the given url.
func NewEsploraExplorer(
	baseUrl string, requestTimeout time.Duration,
) (ports.Explorer, error) {
	if baseUrl == "" {
		return nil, fmt.Errorf("missing esplora base url")
	}
	return &service{
		baseUrl: strings.TrimRight(baseUrl, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}, nil
}

func (s *service) GetTx(
	ctx context.Context, txid chainhash.Hash,
) (*wire.MsgTx, error) {
	res, err := s.get(ctx, fmt.Sprintf("/tx/%s/raw", txid.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTxNotFound
		}
		return nil, err
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(res)); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize raw transaction")
	}
	return tx, nil
}

func (s *service) GetTxInfo(
	ctx context.Context, txid chainhash.Hash,
) (*domain.Tx, error) {
	res, err := s.get(ctx, fmt.Sprintf("/tx/%s", txid.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTxNotFound
		}
		return nil, err
	}

	tx := &domain.Tx{}
	if err := json.Unmarshal(res, tx); err != nil {
		return nil, errors.Wrap(err, "failed to parse transaction info")
	}
	return tx, nil
}

func (s *service) GetTxidAtBlockIndex(
	ctx context.Context, blockHash chainhash.Hash, index uint32,
) (*chainhash.Hash, error) {
	res, err := s.get(
		ctx, fmt.Sprintf("/block/%s/txid/%d", blockHash.String(), index),
	)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTxNotFound
		}
		return nil, err
	}

	txid, err := chainhash.NewHashFromStr(strings.TrimSpace(string(res)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse txid")
	}
	return txid, nil
}

func (s *service) GetTxStatus(
	ctx context.Context, txid chainhash.Hash,
) (*domain.TxStatus, error) {
	res, err := s.get(ctx, fmt.Sprintf("/tx/%s/status", txid.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTxNotFound
		}
		return nil, err
	}

	status := &domain.TxStatus{}
	if err := json.Unmarshal(res, status); err != nil {
		return nil, errors.Wrap(err, "failed to parse transaction status")
	}
	return status, nil
}

func (s *service) GetBlockHeader(
	ctx context.Context, blockHash chainhash.Hash,
) (*wire.BlockHeader, error) {
	res, err := s.get(ctx, fmt.Sprintf("/block/%s/header", blockHash.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, err
	}

	buf, err := hex.DecodeString(strings.TrimSpace(string(res)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode block header hex")
	}
	header := &wire.BlockHeader{}
	if err := header.Deserialize(bytes.NewReader(buf)); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize block header")
	}
	return header, nil
}

func (s *service) GetBlockStatus(
	ctx context.Context, blockHash chainhash.Hash,
) (*domain.BlockStatus, error) {
	res, err := s.get(ctx, fmt.Sprintf("/block/%s/status", blockHash.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, err
	}

	status := &domain.BlockStatus{}
	if err := json.Unmarshal(res, status); err != nil {
		return nil, errors.Wrap(err, "failed to parse block status")
	}
	return status, nil
}

func (s *service) GetBlock(
	ctx context.Context, blockHash chainhash.Hash,
) (*wire.MsgBlock, error) {
	res, err := s.get(ctx, fmt.Sprintf("/block/%s/raw", blockHash.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, err
	}

	block := &wire.MsgBlock{}
	if err := block.Deserialize(bytes.NewReader(res)); err != nil {
		return nil, errors.Wrap(err, "failed to deserialize raw block")
	}
	return block, nil
}

func (s *service) GetMerkleProof(
	ctx context.Context, txid chainhash.Hash,
) (*domain.MerkleProof, error) {
	res, err := s.get(ctx, fmt.Sprintf("/tx/%s/merkle-proof", txid.String()))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTxNotFound
		}
		return nil, err
	}

	proof := &domain.MerkleProof{}
	if err := json.Unmarshal(res, proof); err != nil {
		return nil, errors.Wrap(err, "failed to parse merkle proof")
	}
	return proof, nil
}

func (s *service) GetMerkleBlock(
	ctx context.Context, txid chainhash.Hash,
) (string, error) {
	res, err := s.get(
		ctx, fmt.Sprintf("/tx/%s/merkleblock-proof", txid.String()),
	)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrTxNotFound
		}
		return "", err
	}

	return strings.TrimSpace(string(res)), nil
}

func (s *service) GetOutputStatus(
	ctx context.Context, txid chainhash.Hash, index uint32,
) (*domain.OutputStatus, error) {
	res, err := s.get(
		ctx, fmt.Sprintf("/tx/%s/outspend/%d", txid.String(), index),
	)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrOutputNotFound
		}
		return nil, err
	}

	status := &domain.OutputStatus{}
	if err := json.Unmarshal(res, status); err != nil {
		return nil, errors.Wrap(err, "failed to parse output status")
	}
	return status, nil
}

func (s *service) Broadcast(
	ctx context.Context, tx *wire.MsgTx,
) (*chainhash.Hash, error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize transaction")
	}

	res, err := s.post(
		ctx, "/tx", strings.NewReader(hex.EncodeToString(buf.Bytes())),
	)
	if err != nil {
		return nil, err
	}

	txid, err := chainhash.NewHashFromStr(strings.TrimSpace(string(res)))
	if err != nil {
		return nil, errors.Wrap(
			err, fmt.Sprintf("failed to parse txid, %s", string(res)),
		)
	}
	return txid, nil
}

func (s *service) GetBlockHash(
	ctx context.Context, height uint32,
) (*chainhash.Hash, error) {
	res, err := s.get(ctx, fmt.Sprintf("/block-height/%d", height))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, err
	}

	hash, err := chainhash.NewHashFromStr(strings.TrimSpace(string(res)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse block hash")
	}
	return hash, nil
}

func (s *service) GetFeeEstimates(
	ctx context.Context,
) (map[string]float64, error) {
	res, err := s.get(ctx, "/fee-estimates")
	if err != nil {
		return nil, err
	}

	estimates := make(map[string]float64)
	if err := json.Unmarshal(res, &estimates); err != nil {
		return nil, errors.Wrap(err, "failed to parse fee estimates")
	}
	return estimates, nil
}

func (s *service) GetScriptHashTxs(
	ctx context.Context, script []byte, lastSeen *chainhash.Hash,
) ([]domain.Tx, error) {
	scriptHash := sha256.Sum256(script)
	subPath := fmt.Sprintf("/scripthash/%s/txs", hex.EncodeToString(scriptHash[:]))
	if lastSeen != nil {
		subPath = fmt.Sprintf("%s/chain/%s", subPath, lastSeen.String())
	}

	res, err := s.get(ctx, subPath)
	if err != nil {
		return nil, err
	}

	txs := make([]domain.Tx, 0)
	if err := json.Unmarshal(res, &txs); err != nil {
		return nil, errors.Wrap(err, "failed to parse tx history")
	}
	return txs, nil
}

func (s *service) GetRecentBlocks(
	ctx context.Context, startHeight *uint32,
) ([]domain.BlockSummary, error) {
	subPath := "/blocks"
	if startHeight != nil {
		subPath = fmt.Sprintf("/blocks/%d", *startHeight)
	}

	res, err := s.get(ctx, subPath)
	if err != nil {
		return nil, err
	}

	blocks := make([]domain.BlockSummary, 0)
	if err := json.Unmarshal(res, &blocks); err != nil {
		return nil, errors.Wrap(err, "failed to parse block summaries")
	}
	return blocks, nil
}
