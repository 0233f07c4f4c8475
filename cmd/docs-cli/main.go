package main

import "github.com/nfrund/zbd-node-docs/cmd/docs-cli/cmd"

func main() {
	cmd.Execute()
}
