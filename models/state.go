package models

// DataStatus enumerates the lifecycle of an observable decrypted collection.
type DataStatus int

const (
	// StatusLoading means a refresh is in progress. Data holds the last-known
	// value so the UI keeps rendering through the reload.
	StatusLoading DataStatus = iota
	// StatusLoaded means Data is current.
	StatusLoaded
	// StatusError means the last refresh failed for a non-connectivity
	// reason. Err carries the cause, Data the last-known value.
	StatusError
	// StatusNoNetwork means the last refresh failed because the server was
	// unreachable. Kept distinct from StatusError so callers can offer
	// offline affordances instead of a generic failure.
	StatusNoNetwork
)

// DataState is one published value of an observable collection.
type DataState[T any] struct {
	Status DataStatus
	Data   T
	Err    error
}

// Loaded returns a StatusLoaded state carrying data.
func Loaded[T any](data T) DataState[T] {
	return DataState[T]{Status: StatusLoaded, Data: data}
}

// Loading returns a StatusLoading state preserving the previous data.
func Loading[T any](last T) DataState[T] {
	return DataState[T]{Status: StatusLoading, Data: last}
}

// Failed returns a StatusError state carrying the cause and the previous data.
func Failed[T any](err error, last T) DataState[T] {
	return DataState[T]{Status: StatusError, Data: last, Err: err}
}

// Offline returns a StatusNoNetwork state preserving the previous data.
func Offline[T any](last T) DataState[T] {
	return DataState[T]{Status: StatusNoNetwork, Data: last}
}
