package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Local overrides for development; missing files are fine.
	_ = godotenv.Load()

	cli := NewCLI()
	exitCode := cli.Run(os.Args[1:])
	os.Exit(exitCode)
}
