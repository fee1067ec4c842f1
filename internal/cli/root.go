package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lognorm/internal/logger"
	"lognorm/internal/processor"
	"lognorm/internal/types"
)

// ErrArgCount is returned when the command is not given exactly three paths
var ErrArgCount = errors.New("wrong number of arguments")

type options struct {
	lang     string
	logLevel string
	getenv   func(string) string
}

// NewRootCmd builds the lognorm command writing to the given streams
func NewRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	opts := &options{getenv: getenv}
	helpLang := ResolveLanguage("", getenv)

	cmd := &cobra.Command{
		Use:           "lognorm <inputFile> <outputFile> <problemsFile>",
		Short:         GetTranslation(helpLang, "cmd_short"),
		Long:          GetTranslation(helpLang, "cmd_long"),
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				lang := ResolveLanguage(opts.lang, opts.getenv)
				return fmt.Errorf("%w: %s", ErrArgCount, GetTranslation(lang, "usage_args"))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&opts.lang, "lang", "", GetTranslation(helpLang, "flag_lang"))
	cmd.Flags().StringVar(&opts.logLevel, "log-level", string(logger.WarnLevel), GetTranslation(helpLang, "flag_log_level"))

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	// Arguments are valid from here on; failures are run errors, not usage errors
	cmd.SilenceUsage = true

	lang := ResolveLanguage(opts.lang, opts.getenv)
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(opts.logLevel),
		Output:     cmd.ErrOrStderr(),
		TimeFormat: "15:04:05",
	})

	req := types.RunRequest{
		InputPath:    args[0],
		OutputPath:   args[1],
		ProblemsPath: args[2],
	}

	log.Debug("starting run", "input", req.InputPath, "output", req.OutputPath, "problems", req.ProblemsPath)

	result, err := processor.ProcessFile(req, log)
	if err != nil {
		LogErrorResponse(log, CategorizeErrorWithLang(err, lang))
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), GetTranslation(lang, "summary")+"\n", result.Processed, result.Problems)

	return err
}

// Execute runs the root command against the process streams and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd(os.Stdout, os.Stderr, os.Getenv)

	err := cmd.Execute()
	if err == nil {
		return
	}

	// Run errors were already reported through the logger
	if !cmd.SilenceUsage {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(1)
}
