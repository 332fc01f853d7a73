package esplora_explorer_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
	"github.com/vulpemventures/esplora-cli/internal/core/domain"
	esplora_explorer "github.com/vulpemventures/esplora-cli/internal/infrastructure/explorer/esplora"
)

var ctx = context.Background()

func TestGetBlockHashGenesis(t *testing.T) {
	t.Parallel()

	genesis := chaincfg.MainNetParams.GenesisHash

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/block-height/0", r.URL.Path)
			fmt.Fprint(w, genesis.String())
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	hash, err := explorer.GetBlockHash(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, genesis, hash)
}

func TestGetTx(t *testing.T) {
	t.Parallel()

	tx := testTx(t)
	txid := tx.TxHash()
	var rawTx bytes.Buffer
	require.NoError(t, tx.Serialize(&rawTx))

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, fmt.Sprintf("/tx/%s/raw", txid), r.URL.Path)
			w.Write(rawTx.Bytes())
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	res, err := explorer.GetTx(ctx, txid)
	require.NoError(t, err)
	require.Equal(t, txid, res.TxHash())
}

func TestGetTxNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	txid := testTx(t).TxHash()

	_, err = explorer.GetTx(ctx, txid)
	require.ErrorIs(t, err, domain.ErrTxNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = explorer.GetOutputStatus(ctx, txid, 1)
	require.ErrorIs(t, err, domain.ErrOutputNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = explorer.GetBlockHash(ctx, 1000000000)
	require.ErrorIs(t, err, domain.ErrBlockNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetTxInfo(t *testing.T) {
	t.Parallel()

	txInfo := domain.Tx{
		Txid:    testTx(t).TxHash().String(),
		Version: 2,
		Size:    225,
		Weight:  570,
		Fee:     1350,
		Status: domain.TxStatus{
			Confirmed:   true,
			BlockHeight: 810000,
			BlockTime:   1695000000,
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, fmt.Sprintf("/tx/%s", txInfo.Txid), r.URL.Path)
			json.NewEncoder(w).Encode(txInfo)
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	txid, err := chainhash.NewHashFromStr(txInfo.Txid)
	require.NoError(t, err)

	res, err := explorer.GetTxInfo(ctx, *txid)
	require.NoError(t, err)
	require.Equal(t, txInfo, *res)
}

func TestGetBlockHeader(t *testing.T) {
	t.Parallel()

	header := &wire.BlockHeader{
		Version:   1,
		Timestamp: time.Unix(1231006505, 0),
		Bits:      0x1d00ffff,
		Nonce:     2083236893,
	}
	var buf bytes.Buffer
	require.NoError(t, header.Serialize(&buf))
	blockHash := header.BlockHash()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(
				t, fmt.Sprintf("/block/%s/header", blockHash), r.URL.Path,
			)
			fmt.Fprint(w, hex.EncodeToString(buf.Bytes()))
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	res, err := explorer.GetBlockHeader(ctx, blockHash)
	require.NoError(t, err)
	require.Equal(t, blockHash, res.BlockHash())
}

func TestGetFeeEstimates(t *testing.T) {
	t.Parallel()

	estimates := map[string]float64{
		"1": 32.75, "2": 28.1, "3": 24.0, "6": 12.5, "144": 4.2, "1008": 1.0,
	}

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/fee-estimates", r.URL.Path)
			json.NewEncoder(w).Encode(estimates)
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	res, err := explorer.GetFeeEstimates(ctx)
	require.NoError(t, err)
	require.Equal(t, estimates, res)

	for target, feeRate := range res {
		require.Regexp(t, `^\d+$`, target)
		require.Greater(t, feeRate, float64(0))
	}
}

func TestGetScriptHashTxs(t *testing.T) {
	t.Parallel()

	script := []byte{
		0x76, 0xa9, 0x14, 0x62, 0xe9, 0x07, 0xb1, 0x5c, 0xbf, 0x27, 0xd5,
		0x42, 0x53, 0x99, 0xeb, 0xf6, 0xf0, 0xfb, 0x50, 0xeb, 0xb8, 0x8f,
		0x18, 0x88, 0xac,
	}
	scriptHash := sha256.Sum256(script)
	txs := []domain.Tx{{Txid: testTx(t).TxHash().String()}}

	t.Run("first page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					fmt.Sprintf(
						"/scripthash/%s/txs", hex.EncodeToString(scriptHash[:]),
					),
					r.URL.Path,
				)
				json.NewEncoder(w).Encode(txs)
			},
		))
		defer srv.Close()

		explorer, err := esplora_explorer.NewEsploraExplorer(
			srv.URL, time.Minute,
		)
		require.NoError(t, err)

		res, err := explorer.GetScriptHashTxs(ctx, script, nil)
		require.NoError(t, err)
		require.Equal(t, txs, res)
	})

	t.Run("with pagination cursor", func(t *testing.T) {
		lastSeen := testTx(t).TxHash()

		srv := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(
					t,
					fmt.Sprintf(
						"/scripthash/%s/txs/chain/%s",
						hex.EncodeToString(scriptHash[:]), lastSeen,
					),
					r.URL.Path,
				)
				json.NewEncoder(w).Encode([]domain.Tx{})
			},
		))
		defer srv.Close()

		explorer, err := esplora_explorer.NewEsploraExplorer(
			srv.URL, time.Minute,
		)
		require.NoError(t, err)

		res, err := explorer.GetScriptHashTxs(ctx, script, &lastSeen)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestBroadcast(t *testing.T) {
	t.Parallel()

	tx := testTx(t)
	txid := tx.TxHash()
	var rawTx bytes.Buffer
	require.NoError(t, tx.Serialize(&rawTx))

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/tx", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.Equal(t, hex.EncodeToString(rawTx.Bytes()), string(body))

			fmt.Fprint(w, txid.String())
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	res, err := explorer.Broadcast(ctx, tx)
	require.NoError(t, err)
	require.Equal(t, txid, *res)
}

func TestGetRecentBlocks(t *testing.T) {
	t.Parallel()

	blocks := []domain.BlockSummary{
		{Id: testTx(t).TxHash().String(), Height: 810001},
		{Id: testTx(t).TxHash().String(), Height: 810000},
	}

	tests := []struct {
		name        string
		startHeight *uint32
		path        string
	}{
		{
			name: "at the tip",
			path: "/blocks",
		},
		{
			name:        "at height",
			startHeight: uint32Ptr(810001),
			path:        "/blocks/810001",
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					require.Equal(t, tt.path, r.URL.Path)
					json.NewEncoder(w).Encode(blocks)
				},
			))
			defer srv.Close()

			explorer, err := esplora_explorer.NewEsploraExplorer(
				srv.URL, time.Minute,
			)
			require.NoError(t, err)

			res, err := explorer.GetRecentBlocks(ctx, tt.startHeight)
			require.NoError(t, err)
			require.Equal(t, blocks, res)
		})
	}
}

func TestExplorerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			http.Error(
				w, "sendrawtransaction RPC error", http.StatusBadRequest,
			)
		},
	))
	defer srv.Close()

	explorer, err := esplora_explorer.NewEsploraExplorer(srv.URL, time.Minute)
	require.NoError(t, err)

	_, err = explorer.Broadcast(ctx, testTx(t))
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrNotFound))
	require.Contains(t, err.Error(), "400")
	require.Contains(t, err.Error(), "sendrawtransaction RPC error")
}

func TestMissingBaseUrl(t *testing.T) {
	t.Parallel()

	_, err := esplora_explorer.NewEsploraExplorer("", time.Minute)
	require.Error(t, err)
}

func testTx(t *testing.T) *wire.MsgTx {
	t.Helper()

	buf := make([]byte, 32)
	copy(buf, []byte(t.Name()))
	prevout, err := chainhash.NewHash(buf)
	require.NoError(t, err)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevout, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(10000, []byte{0x51}))
	return tx
}

func uint32Ptr(v uint32) *uint32 {
	return &v
}
