package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/esplora-cli/internal/core/application"
)

var (
	excludeCoinbase bool

	getHeaderCmd = &cobra.Command{
		Use:   "getheader <hash>",
		Short: "get block header by block hash",
		Long: "this command lets you fetch the header of a block by its " +
			"hash",
		Args: cobra.ExactArgs(1),
		RunE: getHeader,
	}
	getBlockStatusCmd = &cobra.Command{
		Use:   "getblockstatus <hash>",
		Short: "get block status by block hash",
		Long: "this command lets you fetch the status of a block by its " +
			"hash, telling whether it belongs to the best chain",
		Args: cobra.ExactArgs(1),
		RunE: getBlockStatus,
	}
	getBlockCmd = &cobra.Command{
		Use:   "getblock <hash>",
		Short: "get block by block hash",
		Long: "this command lets you fetch a block by its hash and prints " +
			"the ids of all its transactions, one per line and in block " +
			"order, coinbase included unless --exclude-coinbase is set",
		Args: cobra.ExactArgs(1),
		RunE: getBlock,
	}
	getTxAtBlockIndexCmd = &cobra.Command{
		Use:   "gettxatblockindex <hash> <index>",
		Short: "get transaction at block index",
		Long: "this command lets you fetch the id of the transaction at the " +
			"given index within the block identified by the given hash",
		Args: cobra.ExactArgs(2),
		RunE: getTxAtBlockIndex,
	}
)

func init() {
	getBlockCmd.Flags().BoolVar(
		&excludeCoinbase, "exclude-coinbase", false,
		"use this flag to filter the coinbase transaction out of the list",
	)
}

func getHeader(_ *cobra.Command, args []string) error {
	hash, err := application.ParseBlockHash(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	header, err := svc.GetBlockHeader(context.Background(), *hash)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(header)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getBlockStatus(_ *cobra.Command, args []string) error {
	hash, err := application.ParseBlockHash(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	status, err := svc.GetBlockStatus(context.Background(), *hash)
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

func getBlock(_ *cobra.Command, args []string) error {
	hash, err := application.ParseBlockHash(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	txids, err := svc.GetBlockTxids(
		context.Background(), *hash, excludeCoinbase,
	)
	if err != nil {
		return err
	}

	for _, txid := range txids {
		fmt.Println(txid)
	}
	return nil
}

func getTxAtBlockIndex(_ *cobra.Command, args []string) error {
	hash, err := application.ParseBlockHash(args[0])
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

	txid, err := svc.GetTxidAtBlockIndex(context.Background(), *hash, index)
	if err != nil {
		return err
	}

	fmt.Println(txid)
	return nil
}
