package mal

import (
	"flag"
	"fmt"
)

// configure a mal repl
type MalConfig struct {
	Command     string
	Prompt      string // default "user> "
	HistoryFile string // default "repl.history"
	Quiet       bool
	Verbose     bool
	MaxDepth    int
	Json        bool
	More        bool
	Raw         bool
	Flags       *flag.FlagSet

	// liner bombs under emacs, avoid it with this flag.
	NoLiner bool
}

func NewMalConfig(cmdname string) *MalConfig {
	return &MalConfig{
		Flags: flag.NewFlagSet(cmdname, flag.ContinueOnError),
	}
}

// call DefineFlags before myflags.Parse()
func (c *MalConfig) DefineFlags() {
	c.Flags.StringVar(&c.Command, "c", "", "read and print the forms in this string, then exit")
	c.Flags.StringVar(&c.Prompt, "prompt", "user> ", "repl prompt")
	c.Flags.StringVar(&c.HistoryFile, "history", "repl.history", "file to load and save line history in; empty for none")
	c.Flags.BoolVar(&c.NoLiner, "noliner", false, "read plain lines from stdin instead of using line editing")
	c.Flags.BoolVar(&c.Quiet, "quiet", false, "start repl without printing the banner")
	c.Flags.BoolVar(&c.Verbose, "v", false, "trace the reader to stderr")
	c.Flags.IntVar(&c.MaxDepth, "maxdepth", 0, "maximum nesting depth the reader accepts; 0 for no limit")
	c.Flags.BoolVar(&c.Json, "json", false, "print results as JSON wire forms")
	c.Flags.BoolVar(&c.More, "more", false, "prompt for more lines when a collection or string is left open")
	c.Flags.BoolVar(&c.Raw, "raw", false, "print strings without quotes or escapes")
}

// call c.ValidateConfig() after myflags.Parse()
func (c *MalConfig) ValidateConfig() error {
	if c.Prompt == "" {
		c.Prompt = "user> "
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("-maxdepth must be >= 0, got %d", c.MaxDepth)
	}
	if c.Json && c.Raw {
		return fmt.Errorf("-json and -raw cannot be combined")
	}
	if c.Verbose {
		Verbose = true
	}
	return nil
}

// ReaderConfig derives the reader settings. Comments always end at
// the line, since -c, script files and -more all hand the reader
// text with newlines in it.
func (c *MalConfig) ReaderConfig() *ReaderConfig {
	return &ReaderConfig{MaxDepth: c.MaxDepth, LineComments: true}
}
