package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vulpemventures/esplora-cli/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	baseUrl string

	rootCmd = &cobra.Command{
		Use:   "esplora",
		Short: "CLI for Esplora block explorers",
		Long: "This CLI lets you interact with a remote Esplora or Mempool " +
			"block explorer instance",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
			config.Set(config.BaseUrlKey, baseUrl)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       formatVersion(),
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&baseUrl, "base-url", "u", config.GetString(config.BaseUrlKey),
		"url of the Esplora instance to connect to",
	)
	rootCmd.AddCommand(
		getTxCmd, getTxInfoCmd, getTxStatusCmd, getMerkleProofCmd,
		getMerkleBlockCmd, getOutputStatusCmd, broadcastCmd,
		getHeaderCmd, getBlockStatusCmd, getBlockCmd, getTxAtBlockIndexCmd,
		getTipCmd, getBlockHashCmd, getFeeEstimatesCmd, getBlocksCmd,
		getScriptHashTxsCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printErr(err)
		os.Exit(1)
	}
}
