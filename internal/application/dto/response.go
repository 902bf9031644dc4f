package dto

import "github.com/reglet-dev/loginform/internal/domain/execution"

// CheckScenariosResponse carries the report of a check run.
type CheckScenariosResponse struct {
	Report *execution.Report
}
