package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/fablink/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is the fully-resolved input of one linker run.
type Invocation struct {
	ArchPath string
	Options  config.Options
}

// Parse processes command-line arguments. It returns a populated
// Invocation, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet("fablink", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fablink - links the operating and physical views of an FPGA block hierarchy.

Usage:
  fablink [options] [ARCH_PATH]

Arguments:
  ARCH_PATH
    Path to an .hcl device description file.

Options:
`)
		flagSet.PrintDefaults()
	}

	archFlag := flagSet.String("arch", "", "Path to the device description file.")
	configFlag := flagSet.String("config", "", "Path to a YAML options file.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	errorPolicyFlag := flagSet.String("error-policy", "", "Phase error handling. Options: 'failfast' or 'collect'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *archFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	opts := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		opts = loaded
	}

	// Flags override whatever the file said.
	if *logLevelFlag != "" {
		opts.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		opts.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if *errorPolicyFlag != "" {
		opts.ErrorPolicy = strings.ToLower(*errorPolicyFlag)
	}
	if err := opts.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &Invocation{ArchPath: path, Options: opts}, false, nil
}
