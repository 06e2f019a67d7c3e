// SPDX-License-Identifier: MIT

// Command teampath computes single-source shortest paths over a dense graph
// with a fixed team of workers.
package main

import (
	"os"

	"github.com/katalvlaran/teampath/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
