// internal/cli/ui.go
//
// Prompt I/O shared by the interactive modes. The UI owns a scanner and
// a writer instead of touching os.Stdin/os.Stdout directly, so the mode
// loops run unchanged under scripted tests.

package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/drewxgarcia/wordle-solver/internal/session"
	"github.com/drewxgarcia/wordle-solver/internal/solver"
	"github.com/drewxgarcia/wordle-solver/internal/words"
)

// UI is the terminal surface for the interactive modes.
type UI struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
}

// NewUI wraps an input/output pair with the default styles.
func NewUI(in io.Reader, out io.Writer) *UI {
	return &UI{in: bufio.NewScanner(in), out: out, styles: DefaultStyles()}
}

// ReadLine returns the next input line, reporting false once the input
// is exhausted.
func (u *UI) ReadLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return u.in.Text(), true
}

// Err reports a scanner failure. Clean end of input is not an error.
func (u *UI) Err() error { return u.in.Err() }

// Printf writes formatted output to the UI's writer.
func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *UI) printCommands(cmds []Command) {
	u.Printf("Commands:\n")
	for _, c := range cmds {
		u.Printf("  %-10s %s\n", c.Name, c.Help)
	}
}

func (u *UI) printBoard(turns []session.Turn) {
	u.Printf("%s\n", RenderBoard(turns, u.styles))
}

func (u *UI) printStatus(sess *session.Session) {
	s := sess.Solver()
	u.Printf("Turn %d/%d. Possible answers remaining: %d.\n",
		s.AttemptNumber(), s.MaxAttempts(), len(s.Candidates()))
}

// printTopWords lists up to n scored guesses with their entropy.
func (u *UI) printTopWords(scored []solver.ScoredGuess, n int) {
	if n > len(scored) {
		n = len(scored)
	}
	for i := 0; i < n; i++ {
		u.Printf("  %2d. %s  %.4f bits\n", i+1, scored[i].Word, scored[i].Score)
	}
}

// printFirstWords lists up to n words from the candidate set, noting
// how many more remain.
func (u *UI) printFirstWords(list []words.Word, n int) {
	if n > len(list) {
		n = len(list)
	}
	for i := 0; i < n; i++ {
		u.Printf("  %s\n", list[i])
	}
	if rest := len(list) - n; rest > 0 {
		u.Printf("  ... +%d more\n", rest)
	}
}
