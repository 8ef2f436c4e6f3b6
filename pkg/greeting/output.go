// Copyright (c) 2026 Greet Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package greeting

import (
	"fmt"
	"io"
	"os"
)

// Fprint builds the greeting and writes it to w followed by a newline,
// returning the number of bytes written and any write error. It relates to
// Print the way fmt.Fprintln relates to fmt.Println.
func Fprint(w io.Writer, opts ...Option) (int, error) {
	return fmt.Fprintln(w, Greet(opts...))
}

// Print writes the greeting to standard output, newline-terminated. It
// performs no validation and returns nothing; write errors are discarded.
// Standard output is resolved when Print is called, not at package init.
func Print(opts ...Option) {
	_, _ = Fprint(os.Stdout, opts...)
}
