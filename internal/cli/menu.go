// Package cli — menu.go implements the interactive service menu shown
// when devlaunch is invoked with no argument.
//
// The menu is a single-threaded read-evaluate loop over three outcomes:
// launch the backend, launch the frontend, or exit. Invalid input
// re-prompts without bound; the loop terminates only on a valid choice,
// the end of the input stream, or a process signal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mmizuno/devlaunch/internal/model"
)

// runMenu displays the numbered service menu on out and reads one-line
// selections from in until a valid choice is made.
//
// The launch callback is invoked for choices 1 and 2 and its result
// returned as-is; on success it never returns at all, since launching
// replaces the process image. Choice 3 returns nil, which Execute turns
// into exit status 0. Reaching the end of the input stream without a
// valid selection is a non-zero error: the caller piped input that
// never chose anything.
func runMenu(in io.Reader, out io.Writer, launch func(model.ServiceTarget) error) error {
	reader := bufio.NewReader(in)

	for {
		fmt.Fprintln(out, "Select a service to launch:")
		fmt.Fprintln(out, "  1) Backend")
		fmt.Fprintln(out, "  2) Frontend")
		fmt.Fprintln(out, "  3) Exit")
		fmt.Fprint(out, "> ")

		line, readErr := reader.ReadString('\n')
		choice := strings.TrimSpace(line)

		// A valid choice on the final, newline-less line of a pipe still
		// counts, so the choice is evaluated before readErr.
		switch choice {
		case "1":
			return launch(model.TargetBackend)
		case "2":
			return launch(model.TargetFrontend)
		case "3":
			return nil
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return model.NewCLIError(model.ExitGeneralError,
					"menu input closed before a service was selected")
			}
			return model.WrapCLIError(model.ExitGeneralError,
				"cannot read menu selection", readErr)
		}

		fmt.Fprintln(out, "Invalid choice")
	}
}
