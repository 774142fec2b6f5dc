// Command bstdemo loads a word list into binary search trees and compares how
// fast words can be looked up in them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
