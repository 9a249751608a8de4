// Command veloplan explores the bundled sample city: route queries, station
// placement planning, network inspection, snapshot export and the dashboard
// backend, all from one binary.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
