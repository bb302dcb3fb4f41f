package audit

import (
	"errors"
	"time"
)

// Category groups activity log entries by the area of the admin panel they touch.
type Category string

const (
	CategoryAuth    Category = "auth"
	CategoryBooking Category = "booking"
	CategoryUser    Category = "user"
)

// Categories lists the filter options shown on the activity page.
var Categories = []Category{CategoryAuth, CategoryBooking, CategoryUser}

// Action represents the action that occurred.
type Action string

const (
	ActionLogin       Action = "login"
	ActionLoginFailed Action = "login_failed"
	ActionLogout      Action = "logout"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionExport      Action = "export"
)

// Severity represents the severity level of an audit event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

var (
	ErrMissingID       = errors.New("audit event id is required")
	ErrMissingCategory = errors.New("audit event category is required")
	ErrMissingAction   = errors.New("audit event action is required")
)

// Event is one entry in the admin activity log.
type Event struct {
	ID           string
	Timestamp    time.Time
	Category     Category
	Action       Action
	Severity     Severity
	ActorEmail   string
	ResourceType string
	ResourceID   string
	Description  string
	IPAddress    string
	UserAgent    string
}

// NewEvent starts an info-level event.
// PRE: id is unique; category and action are non-empty
// POST: Returns an Event stamped with at (UTC)
func NewEvent(id string, at time.Time, actorEmail string, category Category, action Action) Event {
	return Event{
		ID:         id,
		Timestamp:  at.UTC(),
		Category:   category,
		Action:     action,
		Severity:   SeverityInfo,
		ActorEmail: actorEmail,
	}
}

// WithSeverity sets the severity level.
func (e Event) WithSeverity(s Severity) Event {
	e.Severity = s
	return e
}

// WithResource sets resource information.
// PRE: resourceType and resourceID are non-empty
// POST: Event resource fields are populated
func (e Event) WithResource(resourceType, resourceID string) Event {
	e.ResourceType = resourceType
	e.ResourceID = resourceID
	return e
}

// WithDescription sets the human readable summary shown in the log.
func (e Event) WithDescription(desc string) Event {
	e.Description = desc
	return e
}

// WithRequest records where the action came from.
func (e Event) WithRequest(ipAddress, userAgent string) Event {
	e.IPAddress = ipAddress
	e.UserAgent = userAgent
	return e
}

// Validate checks the fields every stored event needs.
// PRE: none
// POST: Returns nil when the event can be persisted
func (e Event) Validate() error {
	switch {
	case e.ID == "":
		return ErrMissingID
	case e.Category == "":
		return ErrMissingCategory
	case e.Action == "":
		return ErrMissingAction
	}
	return nil
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if string(known) == c {
			return true
		}
	}
	return false
}
