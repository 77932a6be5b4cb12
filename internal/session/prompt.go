package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Prompter reads whitespace-separated integers, so "3 4" on one line answers
// two prompts.
type Prompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, w: w}
}

// Int shows prompt and reads until it gets an integer in [0, limit), showing
// retry after every rejected word. It returns [io.EOF] once input runs out.
func (p *Prompter) Int(prompt, retry string, limit int) (int, error) {
	fmt.Fprint(p.w, prompt)
	for {
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		n, err := strconv.Atoi(p.scanner.Text())
		if err == nil && 0 <= n && n < limit {
			return n, nil
		}
		fmt.Fprint(p.w, retry)
	}
}
