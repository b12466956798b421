package mal

import (
	"log"
	"os"
	"strings"

	"github.com/glycerine/liner"
)

var completion_keywords = []string{`(`, `[`, `{`, `(quote `, `(quasiquote `, `(unquote `, `(splice-unquote `, `(deref `, `(with-meta `, `.quit`, `.dump `, `.json `, `.fp `, `.save `, `.load `, `nil`, `true`, `false`}

// Prompter is the interactive LineSource, backed by liner.
type Prompter struct {
	prompter    *liner.State
	historyFile string
}

func NewPrompter(historyFile string) *Prompter {
	p := &Prompter{
		prompter:    liner.NewLiner(),
		historyFile: historyFile,
	}

	// Ctrl-C ends the session like Ctrl-D does.
	p.prompter.SetCtrlCAborts(true)

	p.prompter.SetCompleter(func(line string) (c []string) {
		for _, n := range completion_keywords {
			if strings.HasPrefix(n, strings.ToLower(line)) {
				c = append(c, n)
			}
		}
		return
	})

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			n, _ := p.prompter.ReadHistory(f)
			f.Close()
			VPrintf("loaded %d history lines from '%s'\n", n, historyFile)
		}
	}
	return p
}

func (p *Prompter) Close() error {
	defer p.prompter.Close()
	if p.historyFile == "" {
		return nil
	}
	if f, err := os.Create(p.historyFile); err != nil {
		log.Print("Error writing history file: ", err)
	} else {
		p.prompter.WriteHistory(f)
		f.Close()
	}
	return nil
}

// Getline returns io.EOF on Ctrl-D and liner.ErrPromptAborted on Ctrl-C.
// Each line reaches the history file as soon as it is read.
func (p *Prompter) Getline(prompt string) (line string, err error) {
	line, err = p.prompter.Prompt(prompt)
	if err == nil {
		p.prompter.AppendHistory(line)
		if herr := AppendHistoryLine(p.historyFile, line); herr != nil {
			log.Print("Error appending to history file: ", herr)
		}
		return line, nil
	}
	return "", err
}

// AppendHistoryLine adds one line to the end of a history file,
// creating it if need be. Blank lines and an empty path are skipped.
func AppendHistoryLine(historyFile, line string) error {
	if historyFile == "" || strings.TrimSpace(line) == "" {
		return nil
	}
	f, err := os.OpenFile(historyFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(line + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
