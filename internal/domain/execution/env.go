package execution

// StepEnv is the variable set visible to expectation expressions.
// Values describe the form right after a step's event was handled.
type StepEnv struct {
	Hints          map[string]string `expr:"hints"`
	Field          string            `expr:"field"`
	State          string            `expr:"state"`
	Message        string            `expr:"message"`
	Severity       string            `expr:"severity"`
	AttemptID      string            `expr:"attempt_id"`
	NameState      string            `expr:"name_state"`
	PasswordState  string            `expr:"password_state"`
	FieldsCleared  int               `expr:"fields_cleared"`
	Accepted       bool              `expr:"accepted"`
	GateOpen       bool              `expr:"gate_open"`
	SubmitEnabled  bool              `expr:"submit_enabled"`
	InputsEnabled  bool              `expr:"inputs_enabled"`
	Progress       bool              `expr:"progress"`
	DismissVisible bool              `expr:"dismiss_visible"`
}
