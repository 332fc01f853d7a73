package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vulpemventures/esplora-cli/internal/core/application"
)

var (
	blocksStartHeight uint32

	getTipCmd = &cobra.Command{
		Use:   "gettip",
		Short: "get best block hash and height",
		Long: "this command lets you fetch hash and height of the block at " +
			"the tip of the best chain",
		Args: cobra.NoArgs,
		RunE: getTip,
	}
	getBlockHashCmd = &cobra.Command{
		Use:   "getblockhash <height>",
		Short: "get block hash at height",
		Long: "this command lets you fetch the hash of the block at the " +
			"given height of the best chain",
		Args: cobra.ExactArgs(1),
		RunE: getBlockHash,
	}
	getFeeEstimatesCmd = &cobra.Command{
		Use:   "getfeeestimates",
		Short: "get fee estimates by confirmation target in sat/vB",
		Long: "this command lets you fetch the whole fee estimations map of " +
			"the explorer, keyed by confirmation target in number of blocks",
		Args: cobra.NoArgs,
		RunE: getFeeEstimates,
	}
	getBlocksCmd = &cobra.Command{
		Use:   "getblocks",
		Short: "get recent block summaries",
		Long: "this command lets you fetch the most recent block summaries " +
			"at the tip of the chain, or at --start-height if provided " +
			"(the number of summaries is backend dependent)",
		Args: cobra.NoArgs,
		RunE: getBlocks,
	}
)

func init() {
	getBlocksCmd.Flags().Uint32VarP(
		&blocksStartHeight, "start-height", "s", 0,
		"height to fetch blocks from",
	)
}

func getTip(_ *cobra.Command, _ []string) error {
	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	tip, err := svc.GetTip(context.Background())
	if err != nil {
		return err
	}

	reply, err := jsonResponse(tip)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getBlockHash(_ *cobra.Command, args []string) error {
	height, err := application.ParseHeight(args[0])
	if err != nil {
		return err
	}

	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	hash, err := svc.GetBlockHash(context.Background(), height)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}

func getFeeEstimates(_ *cobra.Command, _ []string) error {
	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	estimates, err := svc.GetFeeEstimates(context.Background())
	if err != nil {
		return err
	}

	reply, err := jsonResponse(estimates)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}

func getBlocks(cmd *cobra.Command, _ []string) error {
	svc, err := getExplorerService()
	if err != nil {
		return err
	}

	var startHeight *uint32
	if cmd.Flags().Changed("start-height") {
		startHeight = &blocksStartHeight
	}

	blocks, err := svc.GetRecentBlocks(context.Background(), startHeight)
	if err != nil {
		return err
	}

	reply, err := jsonResponse(blocks)
	if err != nil {
		return err
	}

	fmt.Println(reply)
	return nil
}
