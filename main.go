// main is the entrypoint for the ivtreport CLI.
package main

import (
	"github.com/Sudarshanganwani9/Data-analytics-assignment/cmd"
	"github.com/Sudarshanganwani9/Data-analytics-assignment/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
