package main

import (
	"os"

	"parallel-pi/internal/cli"
	"parallel-pi/internal/config"
	"parallel-pi/internal/logger"
)

func main() {
	config.InitConfig(".env")
	logger.InitCLILogger()

	code := cli.Run(os.Stdin, os.Stdout, os.Stderr)
	logger.CloseLogger()
	os.Exit(code)
}
