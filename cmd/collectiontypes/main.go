// Package main provides the collectiontypes CLI.
package main

import "github.com/mesh-intelligence/collectiontypes/internal/cli"

func main() {
	cli.Execute()
}
