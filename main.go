package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errInvalidArgumentCount = errors.New("please provide a single command line arg to program")

const defaultLogLevel = zapcore.WarnLevel

type cliArgs struct {
	Input    string `arg:"" name:"input" help:"the string to encode, any value is taken literally"`
	LogLevel string `name:"log-level" env:"HEXREV_LOG_LEVEL" default:"warn" hidden:"" help:"log level written to stderr: debug, info, warn or error"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "%v\n\n", errInvalidArgumentCount)
		return 1
	}

	cli, err := parseArgs(args, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level, levelErr := zapcore.ParseLevel(cli.LogLevel)
	if levelErr != nil {
		level = defaultLogLevel
	}
	setupLogger(stderr, level)

	ctx := ctxAddKvs(context.Background(), "cmd", "hexrev")
	if levelErr != nil {
		loggerOf(ctx).Warn("unknown log level, using default",
			zap.String("log_level", cli.LogLevel), zap.Stringer("default", defaultLogLevel), zap.Error(levelErr))
	}
	loggerOf(ctx).Debug("config", zap.Any("config", cli))

	fmt.Fprintf(stdout, "arg: %s\n", cli.Input)

	tokens := hexTokens(cli.Input)
	out := encodeTokens(tokens)
	ctx = ctxAddKvs(ctx, "code_units", len(tokens))
	loggerOf(ctx).Debug("encoded input", zap.String("output", out))

	fmt.Fprintln(stdout, out)
	return 0
}

// parseArgs resolves the input and the environment configuration. Every user
// argument follows a "--" terminator so values such as "-x" or "--help" are
// encoded instead of being read as flags. With only string fields in the
// grammar, an error here means the grammar itself is broken.
func parseArgs(args []string, stdout, stderr io.Writer) (*cliArgs, error) {
	cli := &cliArgs{}
	parser, err := kong.New(cli,
		kong.Name("hexrev"),
		kong.Description("Prints the UTF-16 code units of the input as hex, in reverse order."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := parser.Parse(append([]string{"--"}, args...)); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cli, nil
}
