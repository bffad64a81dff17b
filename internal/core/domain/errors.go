package domain

// RemoteError is a failure reported by the ordering API itself: a non-success
// status with a decoded error detail. Transport failures are plain errors.
type RemoteError struct {
	StatusCode int
	// Detail is the API's error message. Structured field-error arrays are
	// flattened to "field: message" pairs joined by commas before reaching
	// this type. Empty when the response carried no usable detail.
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return "ordering api request failed"
	}
	return e.Detail
}
