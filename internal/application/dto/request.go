// Package dto contains the request and response types of the application use cases.
package dto

// CheckScenariosRequest asks for one or more scenario files to be replayed.
type CheckScenariosRequest struct {
	Paths []string
	// Parallelism bounds concurrent scenarios; values below 1 mean one at a time
	Parallelism int
}
