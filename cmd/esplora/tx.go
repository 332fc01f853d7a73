package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/esplora-cli/internal/core/application"
)

var (
	getTxCmd = &cobra.Command{
		Use:   "gettx <txid>",
		Short: "get transaction by id",
		Long: "this command lets you fetch a transaction by its id and " +
			"prints its canonical hex encoding",
		Args: cobra.ExactArgs(1),
		RunE: getTx,
	}
	getTxInfoCmd = &cobra.Command{
		Use:   "gettxinfo <txid>",
		Short: "get info of a transaction",
		Long: "this command lets you fetch the full metadata record of a " +
			"transaction by its id",
		Args: cobra.ExactArgs(1),
		RunE: getTxInfo,
	}
	getTxStatusCmd = &cobra.Command{
		Use:   "gettxstatus <txid>",
		Short: "get transaction status by id",
		Long: "this command lets you fetch the confirmation status of a " +
			"transaction by its id",
		Args: cobra.ExactArgs(1),
		RunE: getTxStatus,
	}
	getMerkleProofCmd = &cobra.Command{
		Use:   "getmerkleproof <txid>",
		Short: "get transaction merkle proof by tx id",
		Long: "this command lets you fetch the proof of inclusion of a " +
			"transaction in the block that contains it",
		Args: cobra.ExactArgs(1),
		RunE: getMerkleProof,
	}
	getMerkleBlockCmd = &cobra.Command{
		Use:   "getmerkleblock <txid>",
		Short: "get transaction merkle block inclusion proof by id",
		Long: "this command lets you fetch the merkle block inclusion proof " +
			"of a transaction, printed in hex format",
		Args: cobra.ExactArgs(1),
		RunE: getMerkleBlock,
	}
	getOutputStatusCmd = &cobra.Command{
		Use:   "getoutputstatus <txid> <index>",
		Short: "get output spending status by tx id and output index",
		Long: "this command lets you fetch the spend status of the output " +
			"of a transaction at the given index",
		Args: cobra.ExactArgs(2),
		RunE: getOutputStatus,
	}
	broadcastCmd = &cobra.Command{
		Use:   "broadcast <txhex>",
		Short: "broadcast transaction",
		Long: "this command lets you publish a final signed transaction " +
			"(in hex format) through the network to be included in a future " +
			"block, and prints the id assigned to it",
		Args: cobra.ExactArgs(1),
		RunE: broadcast,
	}
)

func getTx(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	txHex, err := svc.GetTx(context.Background(), *txid)
	if err != nil {
		return err
	}

	fmt.Println(txHex)
	return nil
}

func getTxInfo(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	info, err := svc.GetTxInfo(context.Background(), *txid)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(info)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getTxStatus(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	status, err := svc.GetTxStatus(context.Background(), *txid)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(status)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getMerkleProof(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	proof, err := svc.GetMerkleProof(context.Background(), *txid)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(proof)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getMerkleBlock(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	proof, err := svc.GetMerkleBlock(context.Background(), *txid)
	if err != nil {
		return err
	}

	fmt.Println(proof)
	return nil
}

func getOutputStatus(_ *cobra.Command, args []string) error {
	txid, err := application.ParseTxid(args[0])
	if err != nil {
		return err
	}
	index, err := application.ParseIndex(args[1])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	status, err := svc.GetOutputStatus(context.Background(), *txid, index)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(status)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func broadcast(_ *cobra.Command, args []string) error {
	tx, err := application.ParseTxHex(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	txid, err := svc.Broadcast(context.Background(), tx)
	if err != nil {
		return err
	}

	fmt.Println(txid)
	return nil
}
