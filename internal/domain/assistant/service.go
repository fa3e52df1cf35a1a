package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/focusflow/focusflow/internal/domain/tasks"
	"github.com/focusflow/focusflow/pkg/timeutil"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyMessage = errors.New("message is empty")

// SendResult is the outcome of one exchange. Tasks is set when the reply
// contained a schedule that replaced the plan.
type SendResult struct {
	UserMessage Message      `json:"userMessage"`
	Reply       Message      `json:"reply"`
	Tasks       []tasks.Task `json:"tasks,omitempty"`
}

type Service interface {
	// Send stores text, waits for the reply and stores it. Concurrent sends
	// are not coalesced; each appends its own pair.
	Send(ctx context.Context, text string) (*SendResult, error)
	Messages(ctx context.Context) []Message
	Clear(ctx context.Context) error
	// RouteVoiceCommand maps a spoken command to a tab. Unrecognized
	// commands go to the assistant and are logged as user messages.
	RouteVoiceCommand(ctx context.Context, command string) (Tab, error)
}

type service struct {
	mu        sync.Mutex
	repo      Repository
	responder Responder
	planner   tasks.Service
	clock     timeutil.Clock
	logger    *zap.Logger
}

// NewService wires the chat log. planner may be nil, in which case generated
// schedules are not imported.
func NewService(repo Repository, responder Responder, planner tasks.Service, clock timeutil.Clock, logger *zap.Logger) Service {
	if clock == nil {
		clock = timeutil.SystemClock
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, responder: responder, planner: planner, clock: clock, logger: logger}
}

func (s *service) newMessage(text string, isUser bool) Message {
	return Message{ID: uuid.New(), Text: text, IsUser: isUser, Timestamp: s.clock()}
}

func (s *service) appendMessage(ctx context.Context, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveAll(ctx, append(s.repo.FindAll(ctx), m))
}

func (s *service) Send(ctx context.Context, text string) (*SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	history := s.repo.FindAll(ctx)
	user := s.newMessage(text, true)
	if err := s.appendMessage(ctx, user); err != nil {
		return nil, err
	}

	replyText, respErr := s.responder.Respond(ctx, text, history)
	if respErr != nil {
		s.logger.Error("Error generating assistant response", zap.Error(respErr))
		replyText = FallbackReply
	}

	// Detach so a cancelled request still records its reply.
	persistCtx := context.WithoutCancel(ctx)
	reply := s.newMessage(replyText, false)
	if err := s.appendMessage(persistCtx, reply); err != nil {
		return nil, err
	}

	result := &SendResult{UserMessage: user, Reply: reply}
	if respErr != nil || s.planner == nil {
		return result, nil
	}

	inputs := ParseSchedule(replyText, s.clock())
	if len(inputs) == 0 {
		return result, nil
	}
	planned, perr := s.planner.ReplaceTasks(persistCtx, inputs)
	if perr != nil {
		s.logger.Error("Failed to import generated schedule", zap.Error(perr))
		return result, nil
	}
	s.logger.Info("Schedule imported into planner", zap.Int("tasks", len(planned)))
	result.Tasks = planned
	return result, nil
}

func (s *service) Messages(ctx context.Context) []Message {
	return s.repo.FindAll(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.SaveAll(ctx, nil)
}

var voiceRoutes = []struct {
	tab      Tab
	keywords []string
}{
	{TabStudy, []string{"start pomodoro", "start timer"}},
	{TabPlanner, []string{"add task", "create task"}},
	{TabReminders, []string{"add reminder"}},
	{TabHabits, []string{"habits", "habit tracker"}},
	{TabGoals, []string{"goals", "goal"}},
	{TabAnalytics, []string{"analytics", "stats"}},
	{TabJournal, []string{"journal", "write"}},
}

func (s *service) RouteVoiceCommand(ctx context.Context, command string) (Tab, error) {
	lower := strings.ToLower(command)
	for _, route := range voiceRoutes {
		if containsAny(lower, route.keywords) {
			return route.tab, nil
		}
	}
	if strings.TrimSpace(command) == "" {
		return TabAssistant, nil
	}
	if err := s.appendMessage(ctx, s.newMessage(command, true)); err != nil {
		return TabAssistant, err
	}
	return TabAssistant, nil
}
