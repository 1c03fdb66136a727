package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic := ""
	if len(op.args) > 0 {
		topic = op.args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	switch strings.ToLower(topic) {
	case "range", "ranges", "default":
		pterm.Info.Println("Attribute ranges")
		pterm.Println(`
	range:<start>:<end>:<key>=<value>   push an attribute for a byte range
	default:<key>=<value>               merge an attribute into the defaults

	Keys: family, weight, style, size, underline, strike, color.
	Ranges must be pushed in non-decreasing start order; later ranges win
	on overlap. Examples:
	    range:1:4:weight=bold
	    range:0:8:family=mono
	    default:color=aa0000
	`)
	case "resolve", "layout", "decor":
		pterm.Info.Println("Resolution")
		pterm.Println(`
	resolve        flatten the ranges over the text into a span table
	layout         split lines, resolve with font fixing, shape, repair
	decor[:<pos>]  show decoration runs of the last layout (at <pos>)

	'layout' needs at least one loaded font (see 'font:<path>').
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	text:<string>                       set the text ('\n' splits lines)
	font:<path>                         load a TTF/OTF font
	default:<key>=<value>               set a default attribute
	range:<start>:<end>:<key>=<value>   push an attribute range
	resolve                             print the resolved span table
	layout                              run the full pipeline
	decor[:<pos>]                       show decoration runs
	help[:ranges|:resolve]              more on a topic
	quit                                leave
	`)
	}
}
