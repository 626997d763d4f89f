// Command tutte computes, evaluates and serves Tutte polynomials.
package main

import "os"

func main() {
	rootCmd, a := newRootCmd()
	err := rootCmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}
