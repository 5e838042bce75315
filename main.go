// main is the entry point for the gitintel CLI.
package main

import (
	"os"

	"github.com/huangsam/gitintel/cmd"
	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/internal/iocache"
)

func main() {
	err := cmd.Execute()
	iocache.CloseStores()
	if err != nil {
		contract.LogWarn("running command", err)
		os.Exit(1)
	}
}
