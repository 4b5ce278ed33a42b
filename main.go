package rural

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nojima/rural-go/exchange"
	"github.com/nojima/rural-go/flags"
	"github.com/nojima/rural-go/input"
	"github.com/nojima/rural-go/logging"
	"github.com/nojima/rural-go/output"
	"github.com/nojima/rural-go/version"
	"github.com/pkg/errors"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
	// ExitInternal is used when an internal contract was violated (EX_SOFTWARE).
	ExitInternal = 70
)

type Options struct {
	// Args defaults to os.Args.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

func Main(options *Options) error {
	args := options.Args
	if args == nil {
		args = os.Args
	}
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := options.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// Parse flags
	flagSet, optionSet, err := flags.Parse(args)
	if err != nil {
		if isUsageError(err) {
			flagSet.PrintUsage(stderr)
		}
		return err
	}
	if optionSet.PrintHelp {
		flagSet.PrintUsage(stdout)
		return nil
	}
	if optionSet.PrintVersion {
		fmt.Fprintf(stdout, "rural-go %s\n", version.Current())
		return nil
	}
	if optionSet.PrintLicenses {
		version.PrintLicenses(stdout)
		return nil
	}

	logger := logging.New(stderr, logging.Config{
		Verbose:     optionSet.Verbose,
		EnableColor: optionSet.LogColor,
	})
	optionSet.ExchangeOptions.Logger = &logger
	optionSet.OutputOptions.Logger = &logger

	// Parse positional arguments
	in, err := input.ParseArgs(flagSet.Args(), &optionSet.InputOptions)
	if err != nil {
		if isUsageError(err) {
			flagSet.PrintUsage(stderr)
		}
		return err
	}

	// Send request and receive response
	resp, err := exchange.SendRequest(in.Method, in.Request, &optionSet.ExchangeOptions)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Render response
	rendered, err := output.NewRenderer(&optionSet.OutputOptions).Render(resp)
	if err != nil {
		return err
	}
	if rendered == "" {
		return nil
	}
	if !strings.HasSuffix(rendered, "\n") {
		rendered += "\n"
	}
	if _, err := io.WriteString(stdout, rendered); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// ExitCode maps an error returned by Main to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var methodErr *exchange.UnsupportedMethodError
	if errors.As(err, &methodErr) {
		return ExitInternal
	}
	return ExitFailure
}

func isUsageError(err error) bool {
	_, ok := errors.Cause(err).(*input.UsageError)
	return ok
}
