//go:build wasm

package main

import (
	_ "bonfire_dao/contract"
)

// The export facade in the contract package is the whole wasm surface.
func main() {}
