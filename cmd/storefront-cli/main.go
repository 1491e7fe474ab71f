package main

import "github.com/nfrund/storefront/cmd/storefront-cli/cmd"

func main() {
	cmd.Execute()
}
