package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSessionStarted EventType = "SessionStarted"
	EventSessionEnded   EventType = "SessionEnded"
	EventModeChanged    EventType = "ModeChanged"
	EventCursorMoved    EventType = "CursorMoved"
	EventPageChanged    EventType = "PageChanged"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventItemFileFound  EventType = "ItemFileFound"
	EventScanCompleted  EventType = "ScanCompleted"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SessionStartedEvent is emitted once before the interaction loop starts
type SessionStartedEvent struct {
	Items int
	At    time.Time
}

func (e SessionStartedEvent) Type() EventType { return EventSessionStarted }

// SessionEndedEvent is emitted once after the interaction loop ends
type SessionEndedEvent struct {
	Err error // nil on a normal quit
	At  time.Time
}

func (e SessionEndedEvent) Type() EventType { return EventSessionEnded }

// ModeChangedEvent is emitted when the interaction mode flips
type ModeChangedEvent struct {
	From string
	To   string
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// CursorMovedEvent is emitted when the active item changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// PageChangedEvent is emitted when the first visible line changes
type PageChangedEvent struct {
	OldPage int
	NewPage int
	Clamped bool // true when the change came from render-time clamping
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ItemFileFoundEvent is emitted for each item file found by a directory scan
type ItemFileFoundEvent struct {
	Path string
}

func (e ItemFileFoundEvent) Type() EventType { return EventItemFileFound }

// ScanCompletedEvent is emitted when a directory scan finishes
type ScanCompletedEvent struct {
	Roots      []string
	FilesFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }
