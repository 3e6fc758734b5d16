// Command examesh runs a batch mesh refinement: read a coarse volume mesh,
// partition it, refine each partition, reconcile shared partition-boundary
// vertices, and write out the fine mesh(es).
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
