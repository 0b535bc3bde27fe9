package util

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrLearnerNotFound    = errors.New("learner not found")
	ErrWordNotFound       = errors.New("word not found")
	ErrUGCWordNotFound    = errors.New("ugc word not found")
	ErrSignNotFound       = errors.New("sign recording not found")
	ErrPayloadTooLarge    = errors.New("payload too large")
	ErrInvalidFileType    = errors.New("invalid file type")
	ErrInvalidDataURI     = errors.New("invalid base64 data")
	ErrVideoProcessing    = errors.New("video processing failed")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsNotFound 任一资源不存在
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrLearnerNotFound) ||
		errors.Is(err, ErrWordNotFound) ||
		errors.Is(err, ErrUGCWordNotFound) ||
		errors.Is(err, ErrSignNotFound)
}
