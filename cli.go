package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"
)

// Version is the compiler version reported by `titania version`.
const Version = "0.1.0"

func showUsage() {
	fmt.Fprintf(stderr, `Titania - compiles Titania modules to WebAssembly text

Usage:
    titania <command> [arguments]

Commands:
    build [-o=dir] [-c=config] [-r] [-ll=level] <file>
                    Compile a module to a .wat file named after the module
    check [-c=config] [-ll=level] <file>
                    Parse and check a module without writing anything
    version         Print the compiler version

Named arguments take the form -name=value and follow the command. Log
levels are silent, error, warning and verbose.

Examples:
    titania build examples/hello.tit
    titania build -o=out -r hello.tit
    titania check -ll=error hello.tit
`)
}

func main() {
	os.Exit(run(os.Args))
}

// run executes the command line args and returns the process exit status.
func run(args []string) int {
	logger = NewLogger("verbose", stdout, stderr)
	levels := []string{"silent", "error", "warning", "verbose"}

	// set up the argument parser and its subcommands
	cli := olive.NewCLI("titania", "titania compiles Titania modules to WebAssembly text", true)

	buildCmd := cli.AddSubcommand("build", "compile a module to WebAssembly text", true)
	buildCmd.AddPrimaryArg("file", "the source file to compile", true)
	buildCmd.AddStringArg("output", "o", "the directory to write the .wat file to", false)
	buildCmd.AddStringArg("config", "c", "the config file (default: titania.toml next to the source)", false)
	buildCmd.AddFlag("result-types", "r", "render declared result types in the emitted functions")
	buildCmd.AddSelectorArg("loglevel", "ll", "the compiler log level", false, levels)

	checkCmd := cli.AddSubcommand("check", "parse and check a module", true)
	checkCmd.AddPrimaryArg("file", "the source file to check", true)
	checkCmd.AddStringArg("config", "c", "the config file (default: titania.toml next to the source)", false)
	checkCmd.AddSelectorArg("loglevel", "ll", "the compiler log level", false, levels)

	cli.AddSubcommand("version", "print the compiler version", false)

	result, err := olive.ParseArgs(cli, args)
	if err != nil {
		logger.PrintErrorMessage("CLI Usage Error", err)
		showUsage()
		return 1
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		return execBuildCommand(subResult)
	case "check":
		return execCheckCommand(subResult)
	case "version":
		logger.PrintInfoMessage("Titania Version", Version)
		return 0
	default:
		showUsage()
		return 1
	}
}

// loadCommandConfig resolves the config for the source file named by a
// subcommand and sets up the logger for it.
func loadCommandConfig(result *olive.ArgParseResult) (string, *Config, bool) {
	filename, _ := result.PrimaryArg()

	configPath := filepath.Join(filepath.Dir(filename), ConfigFileName)
	if v, ok := result.Arguments["config"]; ok {
		configPath = v.(string)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		logger.PrintErrorMessage("Config Error", err)
		return "", nil, false
	}
	if v, ok := result.Arguments["loglevel"]; ok {
		cfg.LogLevel = v.(string)
	}
	logger = NewLogger(cfg.LogLevel, stdout, stderr)
	return filename, cfg, true
}

func execBuildCommand(result *olive.ArgParseResult) int {
	filename, cfg, ok := loadCommandConfig(result)
	if !ok {
		return 1
	}
	if v, ok := result.Arguments["output"]; ok {
		cfg.OutputDir = v.(string)
	}
	if result.HasFlag("result-types") {
		cfg.EmitResultTypes = true
	}

	outputFile, err := buildFile(filename, cfg, logger)
	if err != nil {
		reportError(err)
		return 1
	}
	logger.PrintInfoMessage("Generated", outputFile)
	return 0
}

func execCheckCommand(result *olive.ArgParseResult) int {
	filename, _, ok := loadCommandConfig(result)
	if !ok {
		return 1
	}

	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		reportError(fmt.Errorf("reading file %s: %w", filename, err))
		return 1
	}
	module, err := CheckSource(string(sourceBytes))
	if err != nil {
		reportError(err)
		return 1
	}
	logger.PrintStage("PARSED", ToSExpr(module))
	logger.PrintInfoMessage("Checked", fmt.Sprintf("%s: no errors found", filename))
	return 0
}

// buildFile compiles filename and writes the emitted module into the
// configured output directory. It returns the path written.
func buildFile(filename string, cfg *Config, log *Logger) (string, error) {
	sourceBytes, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", filename, err)
	}
	source := string(sourceBytes)
	log.PrintStage("SOURCE", source)

	res, err := CompileSource(source, cfg.Options())
	if err != nil {
		return "", err
	}
	log.PrintStage("PARSED", ToSExpr(res.Module))
	log.PrintStage("COMPILED", WatToSExpr(res.Wat))
	log.PrintStage("EMISSION", res.Code)
	if !cfg.EmitResultTypes {
		warnDroppedResults(res.Wat, log)
	}

	outputFile := filepath.Join(cfg.OutputDir, OutputFileName(res.Wat, cfg.Extension))
	if err := os.WriteFile(outputFile, []byte(res.Code), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return outputFile, nil
}

// warnDroppedResults reports functions whose declared result type is left
// out of the emitted text.
func warnDroppedResults(m *WatModule, log *Logger) {
	for _, fn := range m.Funcs {
		if fn.Result != "" {
			log.PrintWarningMessage("Warning", fmt.Sprintf("result type %s of `%s` is not emitted (enable emit-result-types or -r)", fn.Result, fn.Name))
		}
	}
}

// reportError prints a pipeline error as "error at line N: ..." and any
// other error as is.
func reportError(err error) {
	var compileErr *Error
	if errors.As(err, &compileErr) {
		logger.PrintErrorMessage("Compile Error", compileErr)
		return
	}
	logger.PrintErrorMessage("Error", err)
}
