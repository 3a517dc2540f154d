package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rookgm/phoenixbot/internal/logger"
	"github.com/rookgm/phoenixbot/internal/models"
	"go.uber.org/zap"
)

// Catalog creates offerings and resolves catalog categories
type Catalog interface {
	CategoryByKey(key string) (models.Category, error)
	CreateOffering(ctx context.Context, offering models.Offering) (*models.Offering, error)
}

// Settings persists configuration values changed by the operator
type Settings interface {
	ChannelID() string
	SetChannel(id string) error
	SetManager(handle string) error
	SetGiveawayDescription(text string) error
}

// Publisher posts announcements to a channel
type Publisher interface {
	Publish(ctx context.Context, channelID, text string) error
}

// Status is the outcome class of an intake step
type Status int

const (
	// StatusIgnored means nothing happened: caller is not the operator or no flow is pending
	StatusIgnored Status = iota
	// StatusPending means the flow waits for the next input
	StatusPending
	// StatusCompleted means the flow committed its result and is cleared
	StatusCompleted
	// StatusAborted means the flow failed and is cleared
	StatusAborted
)

// Result is what a completed flow produced
type Result struct {
	Kind Kind
	// Offering is set by the add-offering flow
	Offering *models.Offering
	// Value is the stored setting or the published text
	Value string
	// Channel is where the announcement went
	Channel string
}

// Outcome reports the effect of a Begin, ChooseCategory or Submit call.
// Reprompt is set when input was rejected and State is still pending.
type Outcome struct {
	Status   Status
	State    State
	Reprompt bool
	Result   Result
	Err      error
}

// Machine drives intake flows of a single operator
type Machine struct {
	operator  int64
	sessions  *Sessions
	catalog   Catalog
	settings  Settings
	publisher Publisher
}

// NewMachine creates new Machine. Operator 0 disables all flows.
func NewMachine(operator int64, sessions *Sessions, catalog Catalog, settings Settings, publisher Publisher) *Machine {
	return &Machine{
		operator:  operator,
		sessions:  sessions,
		catalog:   catalog,
		settings:  settings,
		publisher: publisher,
	}
}

// IsOperator reports whether id is the configured operator
func (m *Machine) IsOperator(id int64) bool {
	return m.operator != 0 && id == m.operator
}

// Begin starts flow kind for caller, replacing any stale pending state
func (m *Machine) Begin(caller int64, kind Kind) Outcome {
	if !m.IsOperator(caller) {
		return Outcome{Status: StatusIgnored}
	}

	st, ok := initial(kind)
	if !ok {
		return Outcome{Status: StatusIgnored}
	}

	if kind == KindPost && m.settings.ChannelID() == "" {
		m.sessions.Clear(caller)
		return Outcome{Status: StatusAborted, Err: models.ErrChannelNotConfigured}
	}

	m.sessions.Put(caller, st)
	logger.Log.Debug("intake flow started", zap.Stringer("flow", kind), zap.String("step", st.Step()))
	return Outcome{Status: StatusPending, State: st}
}

// ChooseCategory answers the category step of the add-offering flow
func (m *Machine) ChooseCategory(caller int64, key string) Outcome {
	if !m.IsOperator(caller) {
		return Outcome{Status: StatusIgnored}
	}

	st, ok := m.sessions.Get(caller)
	if !ok {
		return Outcome{Status: StatusIgnored}
	}
	if _, ok := st.(AwaitingCategory); !ok {
		return Outcome{Status: StatusPending, State: st, Reprompt: true}
	}

	category, err := m.catalog.CategoryByKey(key)
	if err != nil || category.Kind != models.CategoryCatalog {
		return Outcome{Status: StatusPending, State: st, Reprompt: true, Err: models.ErrUnknownCategory}
	}

	next := AwaitingName{Category: category}
	m.sessions.Put(caller, next)
	return Outcome{Status: StatusPending, State: next}
}

// Submit feeds text to the pending step of caller. Empty or whitespace-only
// text is treated as non-text input and re-prompts.
func (m *Machine) Submit(ctx context.Context, caller int64, text string) Outcome {
	if !m.IsOperator(caller) {
		return Outcome{Status: StatusIgnored}
	}

	st, ok := m.sessions.Get(caller)
	if !ok {
		return Outcome{Status: StatusIgnored}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Outcome{Status: StatusPending, State: st, Reprompt: true}
	}

	switch s := st.(type) {
	case AwaitingCategory:
		// category comes from a button, not from text
		return Outcome{Status: StatusPending, State: s, Reprompt: true}
	case AwaitingName:
		if s.Category.Label == "" {
			return m.malformed(caller, s)
		}
		return m.advance(caller, AwaitingDescription{Category: s.Category, Name: text})
	case AwaitingDescription:
		if s.Category.Label == "" || s.Name == "" {
			return m.malformed(caller, s)
		}
		return m.advance(caller, AwaitingPrice{Category: s.Category, Name: s.Name, Description: text})
	case AwaitingPrice:
		if s.Category.Label == "" || s.Name == "" || s.Description == "" {
			return m.malformed(caller, s)
		}
		return m.createOffering(ctx, caller, s, text)
	case AwaitingChannel:
		err := m.settings.SetChannel(text)
		if errors.Is(err, models.ErrInvalidChannel) {
			return Outcome{Status: StatusPending, State: s, Reprompt: true, Err: err}
		}
		return m.finish(caller, Result{Kind: KindSetChannel, Value: text}, err)
	case AwaitingManager:
		handle := strings.TrimPrefix(text, "@")
		if handle == "" {
			return Outcome{Status: StatusPending, State: s, Reprompt: true}
		}
		return m.finish(caller, Result{Kind: KindSetManager, Value: handle}, m.settings.SetManager(handle))
	case AwaitingGiveaway:
		return m.finish(caller, Result{Kind: KindSetGiveaway, Value: text}, m.settings.SetGiveawayDescription(text))
	case AwaitingPost:
		return m.publish(ctx, caller, text)
	default:
		return m.malformed(caller, st)
	}
}

// Clear cancels pending flow of caller, reports whether one existed
func (m *Machine) Clear(caller int64) bool {
	if !m.IsOperator(caller) {
		return false
	}
	return m.sessions.Clear(caller)
}

// Pending returns pending state of caller
func (m *Machine) Pending(caller int64) (State, bool) {
	if !m.IsOperator(caller) {
		return nil, false
	}
	return m.sessions.Get(caller)
}

func (m *Machine) advance(caller int64, next State) Outcome {
	m.sessions.Put(caller, next)
	return Outcome{Status: StatusPending, State: next}
}

func (m *Machine) createOffering(ctx context.Context, caller int64, s AwaitingPrice, price string) Outcome {
	offering, err := m.catalog.CreateOffering(ctx, models.Offering{
		Name:        s.Name,
		Description: s.Description,
		Price:       price,
		Category:    s.Category.Label,
	})
	if err != nil {
		return m.finish(caller, Result{}, fmt.Errorf("create offering: %w", err))
	}

	logger.Log.Info("offering created", zap.Int64("offering_id", offering.ID), zap.String("category", offering.Category))
	return m.finish(caller, Result{Kind: KindAddOffering, Offering: offering}, nil)
}

func (m *Machine) publish(ctx context.Context, caller int64, text string) Outcome {
	channelID := m.settings.ChannelID()
	if channelID == "" {
		return m.finish(caller, Result{}, models.ErrChannelNotConfigured)
	}

	if err := m.publisher.Publish(ctx, channelID, text); err != nil {
		return m.finish(caller, Result{}, fmt.Errorf("publish to %s: %w", channelID, err))
	}

	return m.finish(caller, Result{Kind: KindPost, Value: text, Channel: channelID}, nil)
}

// finish clears the pending state whatever the result
func (m *Machine) finish(caller int64, result Result, err error) Outcome {
	m.sessions.Clear(caller)
	if err != nil {
		logger.Log.Error("intake flow aborted", zap.Error(err))
		return Outcome{Status: StatusAborted, Err: err}
	}
	return Outcome{Status: StatusCompleted, Result: result}
}

func (m *Machine) malformed(caller int64, st State) Outcome {
	m.sessions.Clear(caller)
	step := "none"
	if st != nil {
		step = st.Step()
	}
	logger.Log.Error("intake state is malformed", zap.String("step", step))
	return Outcome{Status: StatusAborted, Err: models.ErrMalformedState}
}
