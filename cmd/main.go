// Command har-analyzer converts a HAR capture into an Excel workbook with one
// row per request/response exchange.
//
// Usage:
//
//	har-analyzer -i session.har [-o har_analysis.xlsx] [-v]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
