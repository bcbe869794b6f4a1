// main is the entry point for the commitlens CLI.
package main

import (
	"github.com/commitlens/commitlens/cmd"
	"github.com/commitlens/commitlens/internal/contract"
	"github.com/commitlens/commitlens/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	cmd.SetCacheManager(iocache.Manager)

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
