package main

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/spf13/cobra"
	"github.com/vulpemventures/esplora-cli/internal/config"
	"github.com/vulpemventures/esplora-cli/internal/core/application"
)

var getScriptHashTxsCmd = &cobra.Command{
	Use:   "getscripthashtxs <address> [last-seen-txid]",
	Short: "get confirmed transaction history for the given address",
	Long: "this command lets you fetch the confirmed tx history of an " +
		"address, sorted with newest first and printed one txid per line. " +
		"The optional last-seen txid acts as pagination cursor: if given, " +
		"the printed page contains only the transactions confirmed before " +
		"it. The address is decoded against the network set via " +
		"ESPLORA_NETWORK (one of mainnet | testnet3 | signet | regtest)",
	Args: cobra.RangeArgs(1, 2),
	RunE: getScriptHashTxs,
}

func getScriptHashTxs(_ *cobra.Command, args []string) error {
	addr, err := application.ParseAddress(args[0], config.GetNetwork())
	if err != nil {
		return err
	}

	var lastSeen *chainhash.Hash
	if len(args) > 1 {
		lastSeen, err = application.ParseTxid(args[1])
		if err != nil {
			return err
		}
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	txids, err := svc.GetAddressTxs(context.Background(), addr, lastSeen)
	if err != nil {
		return err
	}

	for _, txid := range txids {
		fmt.Println(txid)
	}
	return nil
}
