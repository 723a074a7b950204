package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/manytooh/catalog-admin/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormService defines the interface for services that support Create and Update
// operations. Writes return no record; list views refetch from the backend.
type FormService[T any] interface {
	Create(ctx context.Context, req T) error
	Update(ctx context.Context, id string, req T) error
}

// FormRenderer is a function that renders the form template with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorHandler handles service errors and returns field errors and a general
// error message. Return nil for both to fall back to the default handler.
type ErrorHandler func(err error) (fieldErrors map[string]string, generalError string)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Service  FormService[T]
	Renderer FormRenderer
	// Success redirect URL
	SuccessURL string
	// Toast shown alongside the success redirect. Optional.
	SuccessToast string
	// Page metadata for rendering
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
	// Optional: function to extract ID from request (defaults to r.PathValue("id"))
	GetID func(r *http.Request) string
	// Optional: custom error handler for domain-specific errors
	HandleError ErrorHandler
}

// HandleForm is a generic form handler that processes Create and Update
// workflows: parse, validate, call the service, and redirect on success or
// re-render the form with errors and the preserved working copy on failure.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	id, ok := checkFormID(opts)
	if !ok {
		return
	}

	data, fieldErrors := opts.Parser(opts.R)

	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	err := executeFormOperation(opts, id, data)
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	if opts.SuccessToast != "" {
		triggerToast(opts.W, opts.SuccessToast, "success")
	}
	HTMX(opts.W).Redirect(opts.SuccessURL)
}

// validateFormOptions validates required options and mode.
func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.Parser == nil || opts.Service == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// checkFormID checks and returns the ID for edit mode. Returns empty string and true for create mode.
func checkFormID[T any](opts FormHandlerOpts[T]) (string, bool) {
	if opts.Mode != FormModeEdit {
		return "", true
	}

	id := getFormID(opts)
	if id == "" {
		http.NotFound(opts.W, opts.R)
		return "", false
	}
	return id, true
}

// executeFormOperation executes the create or update operation based on mode.
func executeFormOperation[T any](opts FormHandlerOpts[T], id string, data T) error {
	if opts.Mode == FormModeEdit {
		return opts.Service.Update(opts.R.Context(), id, data)
	}
	return opts.Service.Create(opts.R.Context(), data)
}

// getFormID extracts the ID from the request, using custom getter if provided.
func getFormID[T any](opts FormHandlerOpts[T]) string {
	if opts.GetID != nil {
		return opts.GetID(opts.R)
	}
	return opts.R.PathValue("id")
}

// handleFormServiceError maps service errors onto the re-rendered form.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}

	if opts.HandleError != nil {
		fieldErrors, generalError := opts.HandleError(err)
		if fieldErrors != nil || generalError != "" {
			opts.renderFormError(fieldErrors, generalError, data)
			return
		}
	}

	fieldErrors, generalError := formErrorsFor(err)
	opts.renderFormError(fieldErrors, generalError, data)
}

// formErrorsFor translates application error codes into form messaging.
func formErrorsFor(err error) (map[string]string, string) {
	switch {
	case apperrors.IsValidation(err):
		if field := apperrors.GetField(err); field != "" {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) {
				return map[string]string{field: appErr.Message}, ""
			}
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr.Message
		}
		return nil, errMsgFixBelow
	case apperrors.IsConflict(err):
		return nil, "This record conflicts with an existing one."
	case apperrors.IsNotFound(err):
		return nil, "The record no longer exists. It may have been deleted."
	case apperrors.IsUnauthorized(err):
		return nil, "Your session is no longer valid. Please sign in again."
	case apperrors.IsTimeout(err):
		return nil, "The catalog service took too long to respond. Please try again."
	default:
		return nil, "Unable to save. Please try again."
	}
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	templateData := NewTemplateData(fh.R, fh.PageMeta)

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	templateData.With("Mode", fh.Mode)

	// Extra data first so FormData can override if needed
	for k, v := range fh.ExtraData {
		templateData.With(k, v)
	}

	// The parsed working copy, preserved for the re-rendered form
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}
