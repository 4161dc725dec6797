//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of quadmatch requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/quadmatch` or play in a terminal with `go run ./cmd/quadmatch-term`.")
	os.Exit(2)
}
