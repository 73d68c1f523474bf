// Command navpath runs route queries against grid maps described in
// scenario files.
//
//	navpath route maps/two_rooms.yaml --verify
//	navpath route maps/two_rooms.yaml --from 0,0 --to 8,2
//	navpath components maps/two_rooms.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
