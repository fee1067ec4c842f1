package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"lognorm/internal/logger"
	"lognorm/internal/processor"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedType ErrorType
		expectedCode string
	}{
		{
			name:         "missing input",
			err:          fmt.Errorf("%w: %w", processor.ErrOpenInput, os.ErrNotExist),
			expectedType: ErrorTypeInput,
			expectedCode: "input_open_error",
		},
		{
			name:         "output not creatable",
			err:          fmt.Errorf("%w: %w", processor.ErrCreateOutput, os.ErrPermission),
			expectedType: ErrorTypeOutput,
			expectedCode: "output_create_error",
		},
		{
			name:         "problems not creatable",
			err:          fmt.Errorf("%w: boom", processor.ErrCreateProblems),
			expectedType: ErrorTypeOutput,
			expectedCode: "output_create_error",
		},
		{
			name:         "same path",
			err:          fmt.Errorf("%w: input and output", processor.ErrSamePath),
			expectedType: ErrorTypeValidation,
			expectedCode: "invalid_paths",
		},
		{
			name:         "read failure joined with close failure",
			err:          errors.Join(fmt.Errorf("%w: too long", processor.ErrRead), errors.New("close")),
			expectedType: ErrorTypeFileIO,
			expectedCode: "stream_io_error",
		},
		{
			name:         "unknown",
			err:          errors.New("something else"),
			expectedType: ErrorTypeInternal,
			expectedCode: "processing_error",
		},
		{
			name:         "nil",
			expectedType: ErrorTypeInternal,
			expectedCode: "processing_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := CategorizeError(tt.err)
			assert.Equal(t, tt.expectedType, resp.Type)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.NotEmpty(t, resp.Title)
			assert.NotEmpty(t, resp.Suggestions)
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), resp.Details)
			}
		})
	}
}

func TestCategorizeErrorWithLang_Russian(t *testing.T) {
	resp := CategorizeErrorWithLang(processor.ErrOpenInput, "ru")
	assert.Equal(t, "Не удалось прочитать входной файл", resp.Title)
}

func TestLogErrorResponse(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger(&logger.Config{Level: logger.WarnLevel, Output: &buf})

	LogErrorResponse(log, CategorizeError(processor.ErrSamePath))

	out := buf.String()
	assert.Contains(t, out, "Invalid file paths")
	assert.Contains(t, out, "invalid_paths")
	assert.Contains(t, out, "Choose different names")
}
