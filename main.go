package main

import (
	"fmt"
	"os"

	"github.com/IqbalNugrahaa/HappiestStore/cmd/batch"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/match"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/parse"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/reconcile"
	"github.com/IqbalNugrahaa/HappiestStore/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
