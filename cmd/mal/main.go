/*
The mal command line REPL reads s-expressions and prints them back
in canonical form.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/makealisp/malread/mal"
)

func usage(myflags *flag.FlagSet) {
	fmt.Printf("mal command line help:\n")
	myflags.PrintDefaults()
	os.Exit(1)
}

func main() {
	cfg := mal.NewMalConfig("mal")
	cfg.DefineFlags()
	err := cfg.Flags.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		usage(cfg.Flags)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "mal command line error: '%v'\n", err)
		os.Exit(2)
	}
	err = cfg.ValidateConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mal command line error: '%v'\n", err)
		usage(cfg.Flags)
	}

	// the library does all the heavy lifting.
	mal.ReplMain(cfg)
}
