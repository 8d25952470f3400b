// Package shell is an interactive line-oriented front end for a single
// in-process tracker session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/render"
	"github.com/phrazzld/tasktrack/internal/session"
)

// Prompt is written before every line of input.
const Prompt = "tasktrack> "

const helpText = `Commands:
  add <1-5> <name>  add a task (1 = Critical ... 5 = Very Low)
  complete          complete the most urgent pending task
  undo              move the last completed task back to pending
  next              show the most urgent pending task
  list              show pending tasks
  done              show completed tasks, most recent first
  stats             show task counts
  help              show this help
  quit              leave the shell`

// Shell reads commands from In and writes rendered results to Out.
type Shell struct {
	Session  *session.Session
	Renderer *render.Renderer
	In       io.Reader
	Out      io.Writer
}

// New constructs a Shell over sess using stdin and stdout.
func New(sess *session.Session, renderer *render.Renderer) *Shell {
	return &Shell{Session: sess, Renderer: renderer, In: os.Stdin, Out: os.Stdout}
}

// Run processes commands until quit, end of input or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.In == nil {
		s.In = os.Stdin
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	if s.Renderer == nil {
		s.Renderer = render.New(false)
	}

	fmt.Fprintln(s.Out, s.Renderer.Muted("Type 'help' for commands."))
	scanner := bufio.NewScanner(s.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.Out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.Out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.Execute(ctx, line) {
			break
		}
	}
	return scanner.Err()
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(s.Out, s.Renderer.Muted(helpText))
	case "add":
		s.add(ctx, args)
	case "complete":
		s.complete(ctx)
	case "undo":
		s.undo(ctx)
	case "next":
		s.next()
	case "list", "ls":
		fmt.Fprintln(s.Out, s.Renderer.PendingBoard(s.Session.Pending()))
	case "done":
		fmt.Fprintln(s.Out, s.Renderer.CompletedBoard(s.Session.Completed()))
	case "stats":
		fmt.Fprintln(s.Out, s.Renderer.Stats(s.Session.Stats()))
	default:
		s.printError(fmt.Sprintf("unknown command %q, type 'help'", cmd))
	}
	return false
}

func (s *Shell) add(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.printError("usage: add <1-5> <name>")
		return
	}
	p, err := strconv.Atoi(args[0])
	if err != nil {
		s.printError("priority must be a number between 1 and 5")
		return
	}

	task, err := s.Session.AddTask(ctx, strings.Join(args[1:], " "), domain.Priority(p))
	if err != nil {
		s.printError(userMessage(err))
		return
	}
	fmt.Fprintln(s.Out, s.Renderer.Success("Added: ")+s.Renderer.PendingTask(task))
}

func (s *Shell) complete(ctx context.Context) {
	task, err := s.Session.Complete(ctx)
	if err != nil {
		s.printError(userMessage(err))
		return
	}
	fmt.Fprintln(s.Out, s.Renderer.Success("Completed: ")+s.Renderer.CompletedTask(task))
}

func (s *Shell) undo(ctx context.Context) {
	task, err := s.Session.Undo(ctx)
	if err != nil {
		s.printError(userMessage(err))
		return
	}
	fmt.Fprintln(s.Out, s.Renderer.Success("Reopened: ")+s.Renderer.PendingTask(task))
}

func (s *Shell) next() {
	task, ok := s.Session.NextTask()
	if !ok {
		fmt.Fprintln(s.Out, s.Renderer.Muted("No pending tasks."))
		return
	}
	fmt.Fprintln(s.Out, s.Renderer.Success("Next: ")+s.Renderer.PendingTask(task))
}

func (s *Shell) printError(msg string) {
	fmt.Fprintln(s.Out, s.Renderer.Error(msg))
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrNoPendingTasks):
		return "no pending tasks"
	case errors.Is(err, session.ErrNoCompletedTasks):
		return "no completed tasks to undo"
	case errors.Is(err, domain.ErrEmptyName):
		return "task name cannot be empty"
	case errors.Is(err, domain.ErrNameTooLong):
		return fmt.Sprintf("task name must be at most %d characters", domain.MaxTaskNameLength)
	case errors.Is(err, domain.ErrInvalidPriority):
		return "priority must be between 1 and 5"
	default:
		return err.Error()
	}
}
