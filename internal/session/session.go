package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/events"
	"github.com/phrazzld/tasktrack/internal/pqueue"
	"github.com/phrazzld/tasktrack/internal/stack"
)

// Stats summarises the contents of a session.
type Stats struct {
	Pending           int                     `json:"pending"`
	Completed         int                     `json:"completed"`
	PendingByPriority map[domain.Priority]int `json:"pending_by_priority"`
}

// Session is one user's task tracker: a priority queue of pending tasks and a
// stack of completed ones. All methods are safe for concurrent use; the
// underlying containers are only ever touched with mu held.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu         sync.Mutex
	pending    *pqueue.PriorityQueue[domain.Task]
	completed  *stack.Stack[domain.Task]
	nextTaskID int
	lastActive time.Time

	emitter events.EventEmitter
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithEmitter sets the emitter that receives task lifecycle events.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(s *Session) {
		if emitter != nil {
			s.emitter = emitter
		}
	}
}

// WithLogger sets the session's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates an empty session with the given ID.
func New(id uuid.UUID, opts ...Option) *Session {
	s := &Session{
		ID:        id,
		pending:   pqueue.New(domain.ByPriority),
		completed: stack.New[domain.Task](),
		emitter:   events.NopEmitter{},
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("session_id", id.String())
	s.CreatedAt = s.now().UTC()
	s.lastActive = s.CreatedAt
	return s
}

// AddTask validates and inserts a new pending task.
func (s *Session) AddTask(ctx context.Context, name string, priority domain.Priority) (domain.Task, error) {
	s.mu.Lock()
	now := s.now()
	task, err := domain.NewTask(s.nextTaskID, name, priority, now)
	if err != nil {
		s.mu.Unlock()
		return domain.Task{}, err
	}
	s.nextTaskID++
	s.pending.Insert(task)
	s.lastActive = now
	s.mu.Unlock()

	s.logger.Debug("task added", "task_id", task.ID, "priority", int(task.Priority))
	s.emit(ctx, events.TypeTaskAdded, task)
	return task, nil
}

// Complete moves the most urgent pending task onto the completed stack and
// stamps its completion time. Returns ErrNoPendingTasks if nothing is pending.
func (s *Session) Complete(ctx context.Context) (domain.Task, error) {
	s.mu.Lock()
	task, ok := s.pending.ExtractMin()
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, ErrNoPendingTasks
	}
	now := s.now()
	task.MarkCompleted(now)
	s.completed.Push(task)
	s.lastActive = now
	s.mu.Unlock()

	s.logger.Debug("task completed", "task_id", task.ID, "priority", int(task.Priority))
	s.emit(ctx, events.TypeTaskCompleted, task)
	return task, nil
}

// Undo moves the most recently completed task back into the pending queue and
// clears its completion time. Returns ErrNoCompletedTasks if nothing has been
// completed.
func (s *Session) Undo(ctx context.Context) (domain.Task, error) {
	s.mu.Lock()
	task, ok := s.completed.Pop()
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, ErrNoCompletedTasks
	}
	task.Reopen()
	s.pending.Insert(task)
	s.lastActive = s.now()
	s.mu.Unlock()

	s.logger.Debug("task reopened", "task_id", task.ID, "priority", int(task.Priority))
	s.emit(ctx, events.TypeTaskReopened, task)
	return task, nil
}

// NextTask returns the task Complete would take, without removing it.
func (s *Session) NextTask() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.now()
	return s.pending.Peek()
}

// LastCompleted returns the task Undo would reopen, without removing it.
func (s *Session) LastCompleted() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = s.now()
	return s.completed.Peek()
}

// Pending returns the pending tasks ordered by priority, then creation time.
func (s *Session) Pending() []domain.Task {
	s.mu.Lock()
	tasks := s.pending.Items()
	s.lastActive = s.now()
	s.mu.Unlock()

	domain.SortForDisplay(tasks)
	return tasks
}

// Completed returns the completed tasks, most recently completed first.
func (s *Session) Completed() []domain.Task {
	s.mu.Lock()
	tasks := s.completed.Items()
	s.lastActive = s.now()
	s.mu.Unlock()

	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
	return tasks
}

// Stats returns task counts for the session.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	pending := s.pending.Items()
	completed := s.completed.Size()
	s.lastActive = s.now()
	s.mu.Unlock()

	byPriority := make(map[domain.Priority]int)
	for _, task := range pending {
		byPriority[task.Priority]++
	}

	return Stats{
		Pending:           len(pending),
		Completed:         completed,
		PendingByPriority: byPriority,
	}
}

// LastActive returns the time of the most recent operation on the session.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// idleFor reports how long the session has been inactive as of now.
func (s *Session) idleFor(now time.Time) time.Duration {
	return now.Sub(s.LastActive())
}

func (s *Session) emit(ctx context.Context, eventType events.EventType, task domain.Task) {
	event := events.NewTaskEvent(eventType, s.ID, s.now().UTC())
	event.TaskID = task.ID
	event.TaskName = task.Name
	event.Priority = int(task.Priority)

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("failed to emit task event",
			"error", err,
			"event_type", string(eventType),
			"task_id", task.ID)
	}
}
