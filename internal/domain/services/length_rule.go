// Package services contains domain services that encapsulate the
// validation rules of the login form. They are stateless.
package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/reglet-dev/loginform/internal/domain/entities"
	"github.com/reglet-dev/loginform/internal/domain/values"
)

const (
	// DefaultNameMaxLength is the longest accepted user name, in characters
	DefaultNameMaxLength = 6
	// DefaultPasswordMaxLength is the longest accepted password, in characters
	DefaultPasswordMaxLength = 10
)

// Messages are the hint texts a LengthRule produces.
type Messages struct {
	Empty   string `json:"empty" yaml:"empty"`
	TooLong string `json:"too_long" yaml:"too_long"`
	OK      string `json:"ok" yaml:"ok"`
}

// LengthRule validates a field by its character count.
// A value is valid iff 1 <= length <= MaxLength.
type LengthRule struct {
	Field     values.FieldID
	Messages  Messages
	MaxLength int
}

// Evaluate checks value against the rule. It is total: every string
// yields a result and no error.
func (r LengthRule) Evaluate(value string) entities.ValidationResult {
	n := utf8.RuneCountInString(value)

	switch {
	case n == 0:
		return r.result(values.FieldInvalid, r.Messages.Empty)
	case n > r.MaxLength:
		return r.result(values.FieldInvalid, r.Messages.TooLong)
	default:
		return r.result(values.FieldValid, r.Messages.OK)
	}
}

func (r LengthRule) result(state values.FieldState, message string) entities.ValidationResult {
	return entities.ValidationResult{Field: r.Field, State: state, Message: message}
}

// Validate returns an error if the rule cannot accept any value.
func (r LengthRule) Validate() error {
	if r.MaxLength < 1 {
		return fmt.Errorf("%s: max_length must be at least 1, got %d", r.Field, r.MaxLength)
	}
	return nil
}

// RuleSet holds the rules for both login fields.
type RuleSet struct {
	Name     LengthRule
	Password LengthRule
}

// DefaultRuleSet returns the stock limits and messages.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Name:     DefaultNameRule(),
		Password: DefaultPasswordRule(),
	}
}

// DefaultNameRule accepts 1 to 6 characters.
func DefaultNameRule() LengthRule {
	return LengthRule{
		Field:     values.FieldName,
		MaxLength: DefaultNameMaxLength,
		Messages: Messages{
			Empty:   "ID: Please enter a User Name",
			TooLong: "ID: User Name Too long",
			OK:      "ID: Ok",
		},
	}
}

// DefaultPasswordRule accepts 1 to 10 characters.
func DefaultPasswordRule() LengthRule {
	return LengthRule{
		Field:     values.FieldPassword,
		MaxLength: DefaultPasswordMaxLength,
		Messages: Messages{
			Empty:   "Password: Null",
			TooLong: "Password: Too long",
			OK:      "Password: Ok",
		},
	}
}

// For returns the rule of the given field.
func (s RuleSet) For(field values.FieldID) LengthRule {
	if field == values.FieldPassword {
		return s.Password
	}
	return s.Name
}

// Validate checks both rules.
func (s RuleSet) Validate() error {
	if err := s.Name.Validate(); err != nil {
		return err
	}
	return s.Password.Validate()
}
