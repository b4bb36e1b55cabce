package main

import (
	"os"
	"runtime/debug"

	"btcforge/cmd"
	"btcforge/logx"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			_ = logx.Errorf("SERVICE CRASHED: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()

	cmd.Execute()
}
