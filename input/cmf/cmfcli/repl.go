package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cmfc/core/parameters"
	"github.com/npillmayer/cmfc/input/cmf"
	"github.com/npillmayer/cmfc/input/cmf/astdebug"
	"github.com/npillmayer/cmfc/input/cmf/inline"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	params *parameters.DocumentParameters
	raw    bool // transduce input lines in raw mode
}

func startREPL() error {
	repl, err := readline.New("cmf > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{repl: repl, params: parameters.NewDocumentParameters()}
	pterm.Info.Println("Welcome to the CMF playground")
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, quit := intp.execute(line)
		if quit {
			break
		}
		fmt.Println(out)
	}
	pterm.Info.Println("Good bye!")
}

// execute interprets a line of input. Lines starting with ':' are commands,
// everything else is transduced as inline markup.
func (intp *Intp) execute(line string) (string, bool) {
	if !strings.HasPrefix(line, ":") {
		if intp.raw {
			return inline.Raw(line, intp.params.RawText()), false
		}
		return inline.Text(line, intp.params.RawText()), false
	}
	cmd := strings.Fields(line)
	arg := strings.TrimSpace(strings.TrimPrefix(line, cmd[0]))
	tracer().Debugf("command %s, arg = %q", cmd[0], arg)
	switch cmd[0] {
	case ":quit", ":q":
		return "", true
	case ":raw":
		intp.raw = true
	case ":text":
		intp.raw = false
	case ":rawtext":
		intp.params.SetRawText(arg == "1" || arg == "on")
	case ":block":
		return intp.block(strings.ReplaceAll(arg, `\n`, "\n")), false
	default:
		return help(), false
	}
	return fmt.Sprintf("raw mode = %v, raw-text = %v", intp.raw, intp.params.RawText()), false
}

// block parses arg as block markup and returns a dump of the resulting tree.
func (intp *Intp) block(arg string) string {
	root, err := cmf.Parse([]byte(arg), intp.params)
	if err != nil {
		return err.Error()
	}
	var b strings.Builder
	astdebug.Dump(&b, root)
	return strings.TrimRight(b.String(), "\n")
}

func help() string {
	return `Enter inline markup to see its HTML, or one of
  :text           transduce input in text mode (default)
  :raw            transduce input in raw mode
  :rawtext 0|1    switch raw-text mode off/on
  :block markup   parse block markup (use \n for line breaks) and dump the tree
  :quit           leave`
}
