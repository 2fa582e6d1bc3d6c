// Command bookingctl previews the booking calendar and quotes offline: it
// replays a list of date picks through the same selection rules the API
// uses, without a database or broker.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
