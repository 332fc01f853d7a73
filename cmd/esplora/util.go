package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/vulpemventures/esplora-cli/internal/config"
	"github.com/vulpemventures/esplora-cli/internal/core/application"
	esplora_explorer "github.com/vulpemventures/esplora-cli/internal/infrastructure/explorer/esplora"
)

var colorRed = string("\033[31m")

func getExplorerService() (*application.ExplorerService, error) {
	requestTimeout :=
		time.Duration(config.GetInt(config.RequestTimeoutKey)) * time.Second
	explorer, err := esplora_explorer.NewEsploraExplorer(
		config.GetString(config.BaseUrlKey), requestTimeout,
	)
	if err != nil {
		return nil, err
	}
	return application.NewExplorerService(explorer), nil
}

func jsonResponse(v interface{}) (string, error) {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %s", err)
	}
	return string(buf), nil
}

func printErr(err error) {
	msg := fmt.Sprintf("%s%s", colorRed, capitalize(err.Error()))
	fmt.Fprintln(os.Stderr, msg)
}

func capitalize(s string) string {
	ss := strings.ToUpper(s[0:1])
	ss += s[1:]
	return ss
}

func formatVersion() string {
	return fmt.Sprintf(
		"\nVersion: %s\nCommit: %s\nDate: %s", version, commit, date,
	)
}
