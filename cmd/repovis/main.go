package main

import (
	"fmt"
	"os"

	"github.com/wrenware/repovis/internal/cli"
	"github.com/wrenware/repovis/internal/render"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", render.ErrorMark, err)
		os.Exit(1)
	}
}
