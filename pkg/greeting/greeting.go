// Copyright (c) 2026 Greet Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package greeting builds greeting messages of the form "{greeting}, {target}!".
//
// Every function is pure except Print and Fprint, which emit the message
// instead of returning it. Defaults are overridden per call with options;
// an option that is set explicitly is used verbatim, even when it is empty.
package greeting

import (
	"errors"
	"strings"
)

// Defaults used when a call supplies no overriding option.
const (
	// DefaultGreeting is the greeting phrase used when none is given.
	DefaultGreeting = "Hello"
	// DefaultTarget is the recipient used when none is given.
	DefaultTarget = "World"
)

// ErrEmptyName is returned by GreetPerson when the supplied name is empty or
// contains only whitespace.
var ErrEmptyName = errors.New("name cannot be empty or whitespace only")

// Greet builds a greeting message from the configured greeting phrase and
// target. Neither part is validated: any text, including the empty string,
// is interpolated verbatim.
func Greet(opts ...Option) string {
	return newMessage(opts...).format()
}

// GreetPerson builds a personalized greeting for name. The name must contain
// at least one non-whitespace character; otherwise ErrEmptyName is returned.
// Trimming is applied only for that check; the message keeps the name
// exactly as supplied. The name always wins over a WithTarget option.
func GreetPerson(name string, opts ...Option) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	m := newMessage(opts...)
	m.target = name
	return m.format(), nil
}
