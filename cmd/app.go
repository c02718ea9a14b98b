package main

import (
	"fmt"
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
)

func main() {
	cmd := appmode.NewSearchCommand(os.LookupEnv, os.Stdout)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, appmode.Describe(err))
		os.Exit(1)
	}
}
