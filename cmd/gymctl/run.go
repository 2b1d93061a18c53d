package main

import (
	"context"
	"fmt"
	"os"

	"github.com/2beens/gymroutines/internal/cli"
)

func Run(ctx context.Context, args []string) int {
	root := cli.NewRootCmd(Version)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err.Error())
		return 1
	}
	return 0
}
