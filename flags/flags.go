package flags

import (
	"io"
	"os"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nojima/rural-go/exchange"
	"github.com/nojima/rural-go/input"
	"github.com/nojima/rural-go/output"
	"github.com/pborman/getopt"
	"github.com/pkg/errors"
)

var reNumber = regexp.MustCompile(`^[0-9.]+$`)

// Options that consume the following argument when given without "=".
var (
	longValueOptions  = map[string]bool{"--out": true, "--timeout": true}
	shortValueOptions = "o"
)

type FlagSet interface {
	Args() []string
	PrintUsage(w io.Writer)
}

type OptionSet struct {
	InputOptions    input.Options
	ExchangeOptions exchange.Options
	OutputOptions   output.Options

	Verbose       bool
	LogColor      bool
	PrintHelp     bool
	PrintVersion  bool
	PrintLicenses bool
}

type terminalInfo struct {
	stdoutIsTerminal bool
	stderrIsTerminal bool
	supportsANSI     bool
}

func Parse(args []string) (FlagSet, *OptionSet, error) {
	return parse(args, terminalInfo{
		stdoutIsTerminal: isTerminal(os.Stdout),
		stderrIsTerminal: isTerminal(os.Stderr),
		supportsANSI:     runtime.GOOS != "windows",
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parse(args []string, terminal terminalInfo) (FlagSet, *OptionSet, error) {
	inputOptions := input.Options{}
	outputOptions := output.Options{}
	optionSet := &OptionSet{}
	var noColor bool
	timeout := "0"

	flagSet := getopt.New()
	flagSet.SetParameters("METHOD URL [PARAM [PARAM ...]] (items starting with '-' go after --)")
	flagSet.BoolVarLong(&outputOptions.ShowHeaders, "headers", 'd', "print response headers instead of body")
	flagSet.BoolVarLong(&outputOptions.ShowBoth, "both", 'b', "print both response headers and body")
	flagSet.BoolVarLong(&outputOptions.SuppressStatusLine, "suppress-info", 's', "omit the status line (requires --headers or --both)")
	flagSet.BoolVarLong(&inputOptions.Form, "form", 'f', "serialize body in application/x-www-form-urlencoded")
	flagSet.StringVarLong(&outputOptions.OutputFile, "out", 'o', "write response body to FILE", "FILE")
	flagSet.BoolVarLong(&noColor, "no-color", 0, "disable colored output")
	flagSet.StringVarLong(&timeout, "timeout", 0, "deadline for the whole exchange (seconds or duration, 0 for none)", "DURATION")
	flagSet.BoolVarLong(&optionSet.Verbose, "verbose", 'v', "print debug logs to stderr")
	flagSet.BoolVarLong(&optionSet.PrintVersion, "version", 0, "print version and exit")
	flagSet.BoolVarLong(&optionSet.PrintLicenses, "licenses", 0, "print licenses of dependencies and exit")
	flagSet.BoolVarLong(&optionSet.PrintHelp, "help", 'h', "print this help and exit")
	if err := flagSet.Getopt(hoistOptions(args), nil); err != nil {
		return flagSet, nil, input.NewUsageError(err.Error())
	}

	if outputOptions.ShowHeaders && outputOptions.ShowBoth {
		return flagSet, nil, input.NewUsageError("--headers and --both cannot be used together")
	}
	if outputOptions.SuppressStatusLine && !outputOptions.ShowHeaders && !outputOptions.ShowBoth {
		return flagSet, nil, input.NewUsageError("--suppress-info requires --headers or --both")
	}

	d, err := parseDurationOrSeconds(timeout)
	if err != nil {
		return flagSet, nil, err
	}

	outputOptions.EnableColor = !noColor && terminal.supportsANSI && terminal.stdoutIsTerminal
	optionSet.LogColor = !noColor && terminal.supportsANSI && terminal.stderrIsTerminal

	inputOptions.Methods = input.DefaultMethods
	optionSet.InputOptions = inputOptions
	optionSet.ExchangeOptions = exchange.Options{
		Timeout: d,
		Methods: input.DefaultMethods,
	}
	optionSet.OutputOptions = outputOptions
	return flagSet, optionSet, nil
}

// hoistOptions moves options given after METHOD, URL or request items in
// front of them, since getopt stops at the first positional argument.
// Everything after "--" stays positional.
func hoistOptions(args []string) []string {
	if len(args) == 0 {
		return args
	}
	options := []string{args[0]}
	var positionals []string
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		switch {
		case arg == "--":
			positionals = append(positionals, rest[i+1:]...)
			i = len(rest)
		case strings.HasPrefix(arg, "--"):
			options = append(options, arg)
			if longValueOptions[arg] && i+1 < len(rest) {
				i++
				options = append(options, rest[i])
			}
		case len(arg) > 1 && arg[0] == '-':
			options = append(options, arg)
			if takesSeparateValue(arg[1:]) && i+1 < len(rest) {
				i++
				options = append(options, rest[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}
	options = append(options, "--")
	return append(options, positionals...)
}

// takesSeparateValue reports whether a cluster of short options ends with
// one that needs an argument, as in "-bo FILE".
func takesSeparateValue(cluster string) bool {
	for i, c := range cluster {
		if strings.ContainsRune(shortValueOptions, c) {
			return i == len(cluster)-1
		}
	}
	return false
}

func parseDurationOrSeconds(timeout string) (time.Duration, error) {
	if reNumber.MatchString(timeout) {
		timeout += "s"
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return time.Duration(0), errors.Errorf("Value of --timeout must be a number or duration string: %v", timeout)
	}
	return d, nil
}
