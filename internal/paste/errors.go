package paste

import "errors"

var (
	ErrPasteDisabled     = errors.New("cellpaste: paste images disabled for document")
	ErrDropDisabled      = errors.New("cellpaste: drop images disabled for document")
	ErrNoImagePayload    = errors.New("cellpaste: transfer carries no image payload")
	ErrNoImageBytes      = errors.New("cellpaste: image payload has no bytes")
	ErrFilenameExtension = errors.New("cellpaste: suggested filename has no extension")
	ErrCellNotFound      = errors.New("cellpaste: no open notebook cell owns the document")
)

// Declined reports whether err is one of the precondition failures that mean
// "decline to handle this event". The host interprets a declined operation as
// a signal to fall back to its default paste/drop behaviour; nothing was
// modified and no edit should be applied.
func Declined(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrPasteDisabled),
		errors.Is(err, ErrDropDisabled),
		errors.Is(err, ErrNoImagePayload),
		errors.Is(err, ErrNoImageBytes),
		errors.Is(err, ErrFilenameExtension),
		errors.Is(err, ErrCellNotFound):
		return true
	}
	return false
}
