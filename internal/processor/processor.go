package processor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lognorm/internal/logger"
	"lognorm/internal/normalizer"
	"lognorm/internal/types"
)

var (
	ErrOpenInput      = errors.New("failed to open input file")
	ErrCreateOutput   = errors.New("failed to create output file")
	ErrCreateProblems = errors.New("failed to create problems file")
	ErrRead           = errors.New("failed to read input file")
	ErrWrite          = errors.New("failed to write output")
)

const (
	byteOrderMark   = "\uFEFF"
	initialLineSize = 64 * 1024
)

// LineNormalizer converts a raw line into a canonical entry
type LineNormalizer interface {
	Normalize(line string) (normalizer.Entry, error)
	Format(e normalizer.Entry) string
}

type StreamingProcessor struct {
	normalizer   LineNormalizer
	maxLineBytes int
	log          logger.Logger
}

func NewStreamingProcessor(n LineNormalizer, maxLineBytes int, log logger.Logger) *StreamingProcessor {
	if log == nil {
		log = logger.Discard()
	}

	if maxLineBytes < initialLineSize {
		maxLineBytes = initialLineSize
	}

	return &StreamingProcessor{
		normalizer:   n,
		maxLineBytes: maxLineBytes,
		log:          log,
	}
}

// ProcessFile splits the input file into the output and problems files.
// Both destinations are truncated. Counters reflect the lines handled before any error.
func (p *StreamingProcessor) ProcessFile(req types.RunRequest) (result types.RunResult, err error) {
	err = validatePaths(req)
	if err != nil {
		return result, err
	}

	inputFile, err := os.Open(req.InputPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer closeFile(inputFile, &err)

	outputFile, err := os.Create(req.OutputPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}
	defer closeFile(outputFile, &err)

	problemsFile, err := os.Create(req.ProblemsPath)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrCreateProblems, err)
	}
	defer closeFile(problemsFile, &err)

	output := bufio.NewWriter(outputFile)
	problems := bufio.NewWriter(problemsFile)

	result, err = p.ProcessStream(inputFile, output, problems)
	if err != nil {
		return result, err
	}

	err = output.Flush()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	err = problems.Flush()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	p.log.Debug("run finished", "input", req.InputPath, "processed", result.Processed, "problems", result.Problems)

	return result, nil
}

// ProcessStream routes every line of r to output or problems, preserving order within each stream
func (p *StreamingProcessor) ProcessStream(r io.Reader, output, problems io.Writer) (types.RunResult, error) {
	var result types.RunResult

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineSize), p.maxLineBytes)

	lineNum := int64(0)

	for scanner.Scan() {
		line := scanner.Text()
		if lineNum == 0 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}

		lineNum++

		entry, err := p.normalizer.Normalize(line)
		if err != nil {
			p.log.Debug("problem line", "line", lineNum, "reason", err)

			_, err = fmt.Fprintln(problems, line)
			if err != nil {
				return result, fmt.Errorf("%w: %w", ErrWrite, err)
			}

			result.Problems++

			continue
		}

		_, err = fmt.Fprintln(output, p.normalizer.Format(entry))
		if err != nil {
			return result, fmt.Errorf("%w: %w", ErrWrite, err)
		}

		result.Processed++
	}

	err := scanner.Err()
	if err != nil {
		return result, fmt.Errorf("%w at line %d: %w", ErrRead, lineNum+1, err)
	}

	return result, nil
}

func closeFile(f *os.File, err *error) {
	cerr := f.Close()
	if cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("failed to close %s: %w", f.Name(), cerr))
	}
}

// ProcessFile processes a file with a normalizer built from the embedded definition
func ProcessFile(req types.RunRequest, log logger.Logger) (types.RunResult, error) {
	n, err := normalizer.New()
	if err != nil {
		return types.RunResult{}, err
	}

	p := NewStreamingProcessor(n, n.Definition().Input.MaxLineBytes, log)

	return p.ProcessFile(req)
}
