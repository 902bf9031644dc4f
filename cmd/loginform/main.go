// Package main provides the loginform CLI: an interactive terminal login
// form and a scenario checker for its validation rules.
package main

func main() {
	Execute()
}
