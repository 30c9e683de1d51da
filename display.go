package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

const (
	LogLevelSilent = iota
	LogLevelError
	LogLevelWarning
	LogLevelVerbose
)

var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warning": LogLevelWarning,
	"verbose": LogLevelVerbose,
}

func isLogLevel(name string) bool {
	_, ok := logLevelNames[name]
	return ok
}

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// Logger writes console messages filtered by a log level.
type Logger struct {
	Level int
	Out   io.Writer
	Err   io.Writer
}

// Console streams used by the CLI commands.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// logger is shared by the CLI commands.
var logger = NewLogger("verbose", stdout, stderr)

// NewLogger returns a logger for the named level. Unknown names (including
// the empty string) select verbose.
func NewLogger(levelName string, out, errOut io.Writer) *Logger {
	level, ok := logLevelNames[levelName]
	if !ok {
		level = LogLevelVerbose
	}
	return &Logger{Level: level, Out: out, Err: errOut}
}

// PrintErrorMessage prints an error with a highlighted tag.
func (l *Logger) PrintErrorMessage(tag string, err error) {
	if l.Level < LogLevelError {
		return
	}
	fmt.Fprintln(l.Err, ErrorStyleBG.Sprint(tag)+" "+ErrorColorFG.Sprint(err.Error()))
}

// PrintWarningMessage prints a warning with a highlighted tag.
func (l *Logger) PrintWarningMessage(tag, msg string) {
	if l.Level < LogLevelWarning {
		return
	}
	fmt.Fprintln(l.Err, WarnStyleBG.Sprint(tag)+" "+WarnColorFG.Sprint(msg))
}

// PrintInfoMessage prints an informational message to the user.
func (l *Logger) PrintInfoMessage(tag, msg string) {
	if l.Level < LogLevelVerbose {
		return
	}
	fmt.Fprintln(l.Out, InfoStyleBG.Sprint(tag)+" "+InfoColorFG.Sprint(msg))
}

// PrintStage dumps the output of a pipeline stage under a banner.
func (l *Logger) PrintStage(title, content string) {
	if l.Level < LogLevelVerbose {
		return
	}
	fmt.Fprintln(l.Out)
	fmt.Fprintln(l.Out, "-- "+InfoStyleBG.Sprint(title)+" "+strings.Repeat("-", stageBannerWidth()-len(title)))
	fmt.Fprintln(l.Out, strings.TrimRight(content, "\n"))
}

func stageBannerWidth() int {
	width := pterm.GetTerminalWidth() / 2
	if width > 50 {
		width = 50
	}
	if width < 20 {
		width = 20
	}
	return width
}
