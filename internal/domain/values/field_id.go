package values

// FieldID names one of the two inputs of the login form.
type FieldID string

const (
	// FieldName is the user name input
	FieldName FieldID = "name"
	// FieldPassword is the password input
	FieldPassword FieldID = "password"
)

// Label returns the prefix used in hint messages for this field
func (f FieldID) Label() string {
	if f == FieldName {
		return "ID"
	}
	return "Password"
}

// String returns the string representation
func (f FieldID) String() string {
	return string(f)
}
