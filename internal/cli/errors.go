package cli

import (
	"errors"

	"lognorm/internal/logger"
	"lognorm/internal/processor"
)

// ErrorType represents different categories of fatal run errors
type ErrorType string

const (
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFileIO     ErrorType = "file_io"
	ErrorTypeInternal   ErrorType = "internal"
)

// ErrorResponse represents a categorized, localized fatal error
type ErrorResponse struct {
	Type        ErrorType
	Code        string
	Title       string
	Description string
	Details     string
	Suggestions []string
}

// CategorizeError analyzes an error and returns an appropriate ErrorResponse
func CategorizeError(err error) ErrorResponse {
	return CategorizeErrorWithLang(err, "en")
}

// CategorizeErrorWithLang analyzes an error and returns an appropriate ErrorResponse with translations
func CategorizeErrorWithLang(err error, lang string) ErrorResponse {
	details := "No error details available"
	if err != nil {
		details = err.Error()
	}

	switch {
	case errors.Is(err, processor.ErrEmptyPath), errors.Is(err, processor.ErrSamePath):
		return ErrorResponse{
			Type:        ErrorTypeValidation,
			Code:        "invalid_paths",
			Title:       GetTranslation(lang, "error_paths_title"),
			Description: GetTranslation(lang, "error_paths_description"),
			Details:     details,
			Suggestions: []string{
				GetTranslation(lang, "error_paths_suggestion_distinct"),
			},
		}

	case errors.Is(err, processor.ErrOpenInput):
		return ErrorResponse{
			Type:        ErrorTypeInput,
			Code:        "input_open_error",
			Title:       GetTranslation(lang, "error_input_title"),
			Description: GetTranslation(lang, "error_input_description"),
			Details:     details,
			Suggestions: []string{
				GetTranslation(lang, "error_input_suggestion_path"),
				GetTranslation(lang, "error_input_suggestion_permissions"),
			},
		}

	case errors.Is(err, processor.ErrCreateOutput), errors.Is(err, processor.ErrCreateProblems):
		return ErrorResponse{
			Type:        ErrorTypeOutput,
			Code:        "output_create_error",
			Title:       GetTranslation(lang, "error_output_title"),
			Description: GetTranslation(lang, "error_output_description"),
			Details:     details,
			Suggestions: []string{
				GetTranslation(lang, "error_output_suggestion_directory"),
				GetTranslation(lang, "error_output_suggestion_permissions"),
			},
		}

	case errors.Is(err, processor.ErrRead), errors.Is(err, processor.ErrWrite):
		return ErrorResponse{
			Type:        ErrorTypeFileIO,
			Code:        "stream_io_error",
			Title:       GetTranslation(lang, "error_io_title"),
			Description: GetTranslation(lang, "error_io_description"),
			Details:     details,
			Suggestions: []string{
				GetTranslation(lang, "error_io_suggestion_space"),
				GetTranslation(lang, "error_io_suggestion_line_length"),
			},
		}
	}

	// Default fallback for unrecognized errors
	return ErrorResponse{
		Type:        ErrorTypeInternal,
		Code:        "processing_error",
		Title:       GetTranslation(lang, "error_processing_title"),
		Description: GetTranslation(lang, "error_processing_description"),
		Details:     details,
		Suggestions: []string{
			GetTranslation(lang, "error_processing_suggestion_retry"),
		},
	}
}

// LogErrorResponse writes a categorized error through the logger
func LogErrorResponse(log logger.Logger, resp ErrorResponse) {
	log.Error(resp.Title, "code", resp.Code, "details", resp.Details)
	log.Error(resp.Description)

	for _, s := range resp.Suggestions {
		log.Warn(s)
	}
}
