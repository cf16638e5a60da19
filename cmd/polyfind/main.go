// SPDX-License-Identifier: MIT

// Command polyfind reads an integer sequence, prints its difference table,
// extrapolates it and prints the polynomial that generates it.
//
//	echo "1 4 9 16 25" | polyfind
//	polyfind --output json 2 5 10 17
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
