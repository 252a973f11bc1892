// Command autograph clusters a directory of molecular conformers and writes
// the cluster assignment, representatives and tables to an output directory.
package main

import "os"

var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
