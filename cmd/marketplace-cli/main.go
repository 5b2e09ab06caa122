package main

import "github.com/nfrund/marketplace/cmd/marketplace-cli/cmd"

func main() {
	cmd.Execute()
}
