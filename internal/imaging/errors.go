package imaging

import "errors"

var (
	// ErrUnsupportedImage is returned for data no registered decoder accepts.
	ErrUnsupportedImage = errors.New("unsupported image format")

	// ErrImageTooLarge is returned when the decoded image would exceed the
	// pixel budget.
	ErrImageTooLarge = errors.New("image dimensions are too large")
)
