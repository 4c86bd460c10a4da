package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/Veraticus/ascend/internal/engine"
	"github.com/Veraticus/ascend/internal/model"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// GoalForm asks for whatever a new goal is still missing.
type GoalForm struct {
	reader  *bufio.Reader
	writer  io.Writer
	pending chan lineResult
	mu      sync.Mutex
}

type lineResult struct {
	err   error
	value string
}

// NewGoalForm creates a form reading from r and prompting on w.
func NewGoalForm(r io.Reader, w io.Writer) *GoalForm {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &GoalForm{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Complete fills the empty fields of in. suggested is offered as the
// default weight.
func (f *GoalForm) Complete(ctx context.Context, in *engine.CreateGoalInput, suggested float64) error {
	var err error

	for in.Title == "" {
		if in.Title, err = f.ask(ctx, "Title", ""); err != nil {
			return err
		}
	}
	for in.Description == "" {
		if in.Description, err = f.ask(ctx, "Description", ""); err != nil {
			return err
		}
	}

	if in.Difficulty == "" {
		for {
			answer, askErr := f.ask(ctx, "Difficulty (easy/medium/hard)", string(model.DefaultDifficulty))
			if askErr != nil {
				return askErr
			}
			d, parseErr := model.ParseDifficulty(answer)
			if parseErr == nil {
				in.Difficulty = d
				break
			}
			f.println(FormatError(parseErr.Error()))
		}
	}

	for in.Weight <= 0 {
		answer, askErr := f.ask(ctx, "Weight (0-100]", strconv.FormatFloat(suggested, 'f', -1, 64))
		if askErr != nil {
			return askErr
		}
		w, parseErr := strconv.ParseFloat(answer, 64)
		if parseErr != nil || w <= 0 || w > 100 {
			f.println(FormatError("weight must be a number greater than 0 and at most 100"))
			continue
		}
		in.Weight = w
	}
	return nil
}

func (f *GoalForm) ask(ctx context.Context, label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	if _, err := fmt.Fprint(f.writer, FormatPrompt(prompt)); err != nil {
		return "", err
	}

	line, err := f.readLine(ctx)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// readLine reads a trimmed line, returning early when ctx is canceled.
// At most one read is in flight: a read abandoned by cancellation stays
// pending and its line is handed to the next call.
func (f *GoalForm) readLine(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.pending == nil {
		ch := make(chan lineResult, 1)
		f.pending = ch
		go func() {
			value, err := f.reader.ReadString('\n')
			ch <- lineResult{value: value, err: err}
		}()
	}
	pending := f.pending
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-pending:
		f.mu.Lock()
		f.pending = nil
		f.mu.Unlock()

		if res.err != nil && !(errors.Is(res.err, io.EOF) && res.value != "") {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

func (f *GoalForm) println(s string) {
	_, _ = fmt.Fprintln(f.writer, s)
}
