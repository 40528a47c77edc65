package commons

// Response is the result envelope every service operation returns. Success
// carries Data; failure carries the caller-facing Message plus detail
// strings, with the machine-readable cause in the accompanying error.
type Response[T any] struct {
	Success bool
	Message string
	Data    *T
	Errors  []string
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
