// Copyright (c) 2026 Greet Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package greeting

import "fmt"

// message holds the two parts of a greeting while options are applied.
type message struct {
	greeting string
	target   string
}

// Option overrides one default of a single build or emit call.
type Option func(*message)

// WithGreeting replaces DefaultGreeting with phrase. The phrase is never
// validated, so empty or non-ASCII text passes through unchanged.
func WithGreeting(phrase string) Option {
	return func(m *message) {
		m.greeting = phrase
	}
}

// WithTarget replaces DefaultTarget with target.
func WithTarget(target string) Option {
	return func(m *message) {
		m.target = target
	}
}

func newMessage(opts ...Option) message {
	m := message{greeting: DefaultGreeting, target: DefaultTarget}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m message) format() string {
	return fmt.Sprintf("%s, %s!", m.greeting, m.target)
}
