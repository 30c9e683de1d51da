package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func newTestLogger(level string) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewLogger(level, &out, &errOut), &out, &errOut
}

func TestLoggerSilent(t *testing.T) {
	log, out, errOut := newTestLogger("silent")

	log.PrintErrorMessage("Compile Error", errors.New("boom"))
	log.PrintWarningMessage("Warning", "careful")
	log.PrintInfoMessage("Generated", "M.wat")
	log.PrintStage("SOURCE", "MODULE M; END.")

	be.Equal(t, out.Len(), 0)
	be.Equal(t, errOut.Len(), 0)
}

func TestLoggerErrorLevel(t *testing.T) {
	log, out, errOut := newTestLogger("error")

	log.PrintErrorMessage("Compile Error", errors.New("error at line 1: unterminated comment"))
	log.PrintWarningMessage("Warning", "careful")
	log.PrintInfoMessage("Generated", "M.wat")

	be.Equal(t, out.Len(), 0)
	be.True(t, strings.Contains(errOut.String(), "error at line 1: unterminated comment"))
	be.True(t, !strings.Contains(errOut.String(), "careful"))
}

func TestLoggerWarningLevel(t *testing.T) {
	log, out, errOut := newTestLogger("warning")

	log.PrintWarningMessage("Warning", "careful")
	log.PrintInfoMessage("Generated", "M.wat")

	be.Equal(t, out.Len(), 0)
	be.True(t, strings.Contains(errOut.String(), "careful"))
}

func TestLoggerVerbose(t *testing.T) {
	log, out, _ := newTestLogger("verbose")

	log.PrintInfoMessage("Generated", "M.wat")
	log.PrintStage("EMISSION", "(module $M\n)\n")

	be.True(t, strings.Contains(out.String(), "M.wat"))
	be.True(t, strings.Contains(out.String(), "EMISSION"))
	be.True(t, strings.Contains(out.String(), "(module $M\n)"))
}

func TestNewLoggerUnknownLevel(t *testing.T) {
	log, _, _ := newTestLogger("")
	be.Equal(t, log.Level, LogLevelVerbose)

	log, _, _ = newTestLogger("nonsense")
	be.Equal(t, log.Level, LogLevelVerbose)
}

func TestIsLogLevel(t *testing.T) {
	for _, name := range []string{"silent", "error", "warning", "verbose"} {
		be.True(t, isLogLevel(name))
	}
	be.True(t, !isLogLevel("debug"))
}

func TestPrintStageBanner(t *testing.T) {
	log, out, _ := newTestLogger("verbose")

	log.PrintStage("PARSED", `(module "M")`)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	be.Equal(t, len(lines), 3)
	be.Equal(t, lines[0], "")
	be.True(t, strings.HasPrefix(lines[1], "-- "))
	be.True(t, strings.Contains(lines[1], "PARSED"))
	be.True(t, strings.HasSuffix(lines[1], strings.Repeat("-", stageBannerWidth()-len("PARSED"))))
	be.Equal(t, lines[2], `(module "M")`)
}
