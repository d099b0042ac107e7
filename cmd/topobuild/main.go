// Command topobuild builds a UniTorus or Cake topology from a config file
// and prints a summary of the result.
package main

import "github.com/sarchlab/torusnet/cmd/topobuild/cmd"

func main() {
	cmd.Execute()
}
