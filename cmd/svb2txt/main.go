package main

import (
	"os"

	"github.com/mgpai22/svb2json/internal/cli"
)

func main() {
	if err := cli.ExecuteTxt(); err != nil {
		os.Exit(1)
	}
}
