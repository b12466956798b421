package mal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glycerine/liner"
	"github.com/shurcooL/go-goon"
)

// LineSource feeds the repl one line at a time. Getline returns
// io.EOF when input is done.
type LineSource interface {
	Getline(prompt string) (string, error)
	Close() error
}

// plainSource reads lines with bufio; used with -noliner and under test.
type plainSource struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPlainSource(r io.Reader, promptOut io.Writer) LineSource {
	return &plainSource{reader: bufio.NewReader(r), out: promptOut}
}

func (p *plainSource) Getline(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return getLine(p.reader)
}

func (p *plainSource) Close() error { return nil }

func getLine(reader *bufio.Reader) (string, error) {
	line := make([]byte, 0)
	for {
		linepart, hasMore, err := reader.ReadLine()
		if err != nil {
			return "", err
		}
		line = append(line, linepart...)
		if !hasMore {
			break
		}
	}
	return string(line), nil
}

var continuationPrompt = "... "

// Eval is the identity: nothing is evaluated at this stage.
func Eval(x Sexp) Sexp {
	return x
}

// DumpSexp shows the Go structure of a tree.
func DumpSexp(x Sexp) string {
	return goon.Sdump(x)
}

// Session is one repl run: its settings, its outputs, and the forms
// read so far (what .save writes).
type Session struct {
	cfg    *MalConfig
	reader *Reader
	out    io.Writer
	errOut io.Writer
	forms  []Sexp
}

func NewSession(cfg *MalConfig, out, errOut io.Writer) *Session {
	return &Session{
		cfg:    cfg,
		reader: NewReader(cfg.ReaderConfig()),
		out:    out,
		errOut: errOut,
	}
}

// Forms returns every form read successfully in this session.
func (s *Session) Forms() []Sexp {
	return s.forms
}

// Rep is read, eval, print for one line of text.
func (s *Session) Rep(line string) (string, error) {
	x, err := s.reader.Read(line)
	if err != nil {
		return "", err
	}
	x = Eval(x)
	s.forms = append(s.forms, x)
	return s.render(x)
}

func (s *Session) render(x Sexp) (string, error) {
	switch {
	case s.cfg.Json:
		by, err := ToJson(x)
		return string(by), err
	case s.cfg.Raw:
		return PrintStr(x, false), nil
	}
	return Print(x), nil
}

// report writes err as "Error: <msg>". Empty input is not an error
// worth showing.
func (s *Session) report(err error) {
	if errors.Is(err, ErrEmptyInput) {
		return
	}
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

type replCommand func(s *Session, arg string) error

var replCommands = map[string]replCommand{
	".dump": func(s *Session, arg string) error {
		x, err := s.reader.Read(arg)
		if err != nil {
			return err
		}
		fmt.Fprint(s.out, DumpSexp(x))
		return nil
	},
	".json": func(s *Session, arg string) error {
		x, err := s.reader.Read(arg)
		if err != nil {
			return err
		}
		by, err := ToJson(x)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, string(by))
		return nil
	},
	".fp": func(s *Session, arg string) error {
		x, err := s.reader.Read(arg)
		if err != nil {
			return err
		}
		fp, err := Fingerprint(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%016x\n", fp)
		return nil
	},
	".save": func(s *Session, arg string) error {
		if arg == "" {
			return fmt.Errorf("provide a file path to save to")
		}
		if err := Bsave(arg, s.forms); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "saved %d forms to '%s'\n", len(s.forms), arg)
		return nil
	},
	".load": func(s *Session, arg string) error {
		if arg == "" {
			return fmt.Errorf("provide a file path to load from")
		}
		xs, err := Bload(arg)
		if err != nil {
			return err
		}
		for _, x := range xs {
			str, err := s.render(x)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, str)
		}
		s.forms = append(s.forms, xs...)
		return nil
	},
	".verb": func(s *Session, arg string) error {
		Verbose = !Verbose
		fmt.Fprintf(s.out, "verbose: %v.\n", Verbose)
		return nil
	},
}

// HandleLine runs a dot command or read-eval-prints the line.
// It reports whether the session should end.
func (s *Session) HandleLine(line string) (quit bool) {
	trimmed := strings.TrimSpace(line)
	first, rest, _ := strings.Cut(trimmed, " ")
	if first == ".quit" {
		return true
	}
	if cmd, ok := replCommands[first]; ok {
		if err := cmd(s, strings.TrimSpace(rest)); err != nil {
			s.report(err)
		}
		return false
	}

	res, err := s.Rep(line)
	if err != nil {
		s.report(err)
		return false
	}
	fmt.Fprintln(s.out, res)
	return false
}

func isIncomplete(err error) bool {
	return errors.Is(err, ErrUnbalancedCollection) || errors.Is(err, ErrUnbalancedString)
}

// readMore keeps asking for lines while the text so far leaves a
// collection or string open.
func (s *Session) readMore(src LineSource, line string) (string, error) {
	for {
		_, err := s.reader.Read(line)
		if !isIncomplete(err) {
			return line, nil
		}
		next, err := src.Getline(continuationPrompt)
		if err != nil {
			return line, err
		}
		line += "\n" + next
	}
}

func isEndOfInput(err error) bool {
	return err == io.EOF || err == liner.ErrPromptAborted
}

// Repl loops over src until end of input or .quit.
func (s *Session) Repl(src LineSource) error {
	for {
		line, err := src.Getline(s.cfg.Prompt)
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			return err
		}
		if s.cfg.More && !strings.HasPrefix(strings.TrimSpace(line), ".") {
			var moreErr error
			line, moreErr = s.readMore(src, line)
			if moreErr != nil && !isEndOfInput(moreErr) {
				return moreErr
			}
			if s.HandleLine(line) || moreErr != nil {
				return nil
			}
			continue
		}
		if s.HandleLine(line) {
			return nil
		}
	}
}

// printForms reads every form of text and prints each on its own line.
func (s *Session) printForms(text string) error {
	xs, err := s.reader.ReadAll(text)
	if err != nil {
		if errors.Is(err, ErrEmptyInput) {
			return nil
		}
		return err
	}
	for _, x := range xs {
		str, err := s.render(Eval(x))
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, str)
	}
	s.forms = append(s.forms, xs...)
	return nil
}

// Run drives -c, a script file argument, or the interactive repl,
// and returns the process exit code.
func Run(cfg *MalConfig, stdin io.Reader, stdout, stderr io.Writer) int {
	s := NewSession(cfg, stdout, stderr)

	if cfg.Command != "" {
		if err := s.printForms(cfg.Command); err != nil {
			s.report(err)
			return 1
		}
		return 0
	}

	if args := cfg.Flags.Args(); len(args) > 0 {
		by, err := os.ReadFile(args[0])
		if err != nil {
			s.report(err)
			return 1
		}
		if err := s.printForms(string(by)); err != nil {
			s.report(err)
			return 1
		}
		return 0
	}

	if !cfg.Quiet {
		fmt.Fprintf(stdout, "mal reader. Ctrl-d to exit.\n")
	}
	var src LineSource
	if cfg.NoLiner {
		src = NewPlainSource(stdin, stdout)
	} else {
		src = NewPrompter(cfg.HistoryFile)
	}
	defer src.Close()

	if err := s.Repl(src); err != nil {
		fmt.Fprintf(stderr, "Unexpected line reading error: %v\n", err)
		return 1
	}
	return 0
}

// like main() for a standalone repl, now in library
func ReplMain(cfg *MalConfig) {
	os.Exit(Run(cfg, os.Stdin, os.Stdout, os.Stderr))
}
