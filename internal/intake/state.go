// Package intake implements the operator's multi-step text dialogs: creating an
// offering and changing the forwarding channel, manager handle or giveaway text,
// and publishing an announcement.
package intake

import "github.com/rookgm/phoenixbot/internal/models"

// Kind identifies an intake flow
type Kind int

const (
	KindAddOffering Kind = iota + 1
	KindSetChannel
	KindSetManager
	KindSetGiveaway
	KindPost
)

func (k Kind) String() string {
	switch k {
	case KindAddOffering:
		return "add_offering"
	case KindSetChannel:
		return "set_channel"
	case KindSetManager:
		return "set_manager"
	case KindSetGiveaway:
		return "set_giveaway"
	case KindPost:
		return "post"
	default:
		return "unknown"
	}
}

// State is a pending intake step. Each step carries the input collected so far.
type State interface {
	// Kind returns the flow the step belongs to
	Kind() Kind
	// Step names the step for logs
	Step() string
}

// AwaitingCategory waits for a catalog category choice
type AwaitingCategory struct{}

// AwaitingName waits for the offering name
type AwaitingName struct {
	Category models.Category
}

// AwaitingDescription waits for the offering description
type AwaitingDescription struct {
	Category models.Category
	Name     string
}

// AwaitingPrice waits for the offering price, the last add-offering step
type AwaitingPrice struct {
	Category    models.Category
	Name        string
	Description string
}

// AwaitingChannel waits for the forwarding channel identifier
type AwaitingChannel struct{}

// AwaitingManager waits for the manager handle
type AwaitingManager struct{}

// AwaitingGiveaway waits for the giveaway description
type AwaitingGiveaway struct{}

// AwaitingPost waits for announcement text
type AwaitingPost struct{}

func (AwaitingCategory) Kind() Kind    { return KindAddOffering }
func (AwaitingName) Kind() Kind        { return KindAddOffering }
func (AwaitingDescription) Kind() Kind { return KindAddOffering }
func (AwaitingPrice) Kind() Kind       { return KindAddOffering }
func (AwaitingChannel) Kind() Kind     { return KindSetChannel }
func (AwaitingManager) Kind() Kind     { return KindSetManager }
func (AwaitingGiveaway) Kind() Kind    { return KindSetGiveaway }
func (AwaitingPost) Kind() Kind        { return KindPost }

func (AwaitingCategory) Step() string    { return "awaiting_category" }
func (AwaitingName) Step() string        { return "awaiting_name" }
func (AwaitingDescription) Step() string { return "awaiting_description" }
func (AwaitingPrice) Step() string       { return "awaiting_price" }
func (AwaitingChannel) Step() string     { return "awaiting_channel" }
func (AwaitingManager) Step() string     { return "awaiting_manager" }
func (AwaitingGiveaway) Step() string    { return "awaiting_giveaway" }
func (AwaitingPost) Step() string        { return "awaiting_post" }

// initial returns the first step of flow
func initial(kind Kind) (State, bool) {
	switch kind {
	case KindAddOffering:
		return AwaitingCategory{}, true
	case KindSetChannel:
		return AwaitingChannel{}, true
	case KindSetManager:
		return AwaitingManager{}, true
	case KindSetGiveaway:
		return AwaitingGiveaway{}, true
	case KindPost:
		return AwaitingPost{}, true
	default:
		return nil, false
	}
}
