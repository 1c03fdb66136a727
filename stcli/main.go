package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/styledtext"
	"github.com/npillmayer/styledtext/attr"
	"github.com/npillmayer/styledtext/fontset"
	"github.com/npillmayer/styledtext/hbshape"
	"github.com/npillmayer/styledtext/layout"
	"github.com/pterm/pterm"
)

// tracer traces with key 'styledtext'
func tracer() tracing.Trace {
	return tracing.Select("styledtext")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":  "go",
		"trace.styledtext": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the styled-text CLI")
	//
	// set up REPL
	repl, err := readline.New("st > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, backend: hbshape.NewBackend(12)}
	//
	// load font to use, if provided by flag
	if *fontname != "" {
		if err := intp.loadFont(*fontname); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	backend  *hbshape.Backend
	fonts    int
	text     string
	defaults []attr.Attribute
	ranges   []styledtext.RangeAttribute
	lines    []layout.Line
}

func (intp *Intp) String() string {
	return fmt.Sprintf("( text=%q fonts=%d ranges=%d )", intp.text, intp.fonts, len(intp.ranges))
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	args []string
}

const NOOP = -1
const (
	QUIT int = iota
	HELP
	FONT
	TEXT
	DEFAULT
	RANGE
	RESOLVE
	LAYOUT
	DECOR
)

var opMap = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"font":    FONT,
	"text":    TEXT,
	"default": DEFAULT,
	"range":   RANGE,
	"resolve": RESOLVE,
	"layout":  LAYOUT,
	"decor":   DECOR,
}

// parseCommand understands one operation per line, with ':'-separated
// arguments, e.g. "range:1:4:weight=700" or "text:Hello World".
func (intp *Intp) parseCommand(line string) (*Op, error) {
	c := strings.SplitN(line, ":", 2)
	code, ok := opMap[strings.ToLower(strings.TrimSpace(c[0]))]
	if !ok {
		return nil, fmt.Errorf("unknown command %q, try 'help'", c[0])
	}
	op := &Op{code: code}
	if len(c) > 1 {
		if code == TEXT { // text takes the raw remainder, spaces included
			op.args = []string{c[1]}
		} else {
			op.args = strings.Split(c[1], ":")
		}
	}
	tracer().Debugf("parsed command: %v %v", c[0], op.args)
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:    quitOp,
	HELP:    helpOp,
	FONT:    fontOp,
	TEXT:    textOp,
	DEFAULT: defaultOp,
	RANGE:   rangeOp,
	RESOLVE: resolveOp,
	LAYOUT:  layoutOp,
	DECOR:   decorOp,
}

func (intp *Intp) execute(op *Op) (error, bool) {
	return commandFn[op.code](intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func fontOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errors.New("usage: font:<path>"), false
	}
	return intp.loadFont(op.args[0]), false
}

func (intp *Intp) loadFont(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	id, err := intp.backend.LoadFont(data)
	if err != nil {
		return err
	}
	intp.fonts++
	pterm.Info.Printf("loaded font #%d: %v\n", id, intp.backend.FamilyNames(id))
	return nil
}

func textOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errors.New("usage: text:<string>"), false
	}
	intp.text = strings.ReplaceAll(op.args[0], "\\n", "\n")
	intp.ranges = intp.ranges[:0]
	intp.lines = nil
	return nil, false
}

func defaultOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return errors.New("usage: default:<key>=<value>"), false
	}
	a, err := parseAttribute(op.args[0])
	if err != nil {
		return err, false
	}
	intp.defaults = append(intp.defaults, a)
	return nil, false
}

func rangeOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) < 3 {
		return errors.New("usage: range:<start>:<end>:<key>=<value>"), false
	}
	var start, end int
	if _, err := fmt.Sscanf(op.args[0], "%d", &start); err != nil {
		return fmt.Errorf("range start not numeric: %q", op.args[0]), false
	}
	if _, err := fmt.Sscanf(op.args[1], "%d", &end); err != nil {
		return fmt.Errorf("range end not numeric: %q", op.args[1]), false
	}
	a, err := parseAttribute(op.args[2])
	if err != nil {
		return err, false
	}
	intp.ranges = append(intp.ranges, styledtext.RangeAttribute{Start: start, End: end, Attr: a})
	return nil, false
}

func resolveOp(intp *Intp, op *Op) (error, bool) {
	if intp.text == "" {
		return errors.New("no text set, use 'text:<string>'"), false
	}
	spans, err := styledtext.ResolveString(intp.text, intp.defaults, intp.ranges)
	if err != nil {
		return err, false
	}
	printSpans(spans, 0)
	return nil, false
}

func layoutOp(intp *Intp, op *Op) (error, bool) {
	if intp.text == "" {
		return errors.New("no text set, use 'text:<string>'"), false
	}
	if intp.fonts == 0 {
		return errors.New("no fonts loaded, use 'font:<path>'"), false
	}
	sys := fontset.NewSystem(intp.backend.NewSet())
	lines, err := styledtext.LayoutString(intp.text, sys, intp.backend, intp.defaults, intp.ranges)
	if err != nil {
		return err, false
	}
	intp.lines = lines
	printLines(lines)
	return nil, false
}

func decorOp(intp *Intp, op *Op) (error, bool) {
	if intp.lines == nil {
		return errors.New("no layout yet, use 'layout'"), false
	}
	printDecorations(intp.lines, op.args)
	return nil, false
}
