package types

// Event is an abstract user intent produced from a raw key
type Event int

const (
	// EventNothing is produced when no bound key arrived within a poll window
	EventNothing Event = iota
	EventQuit
	EventEnter
	EventUp
	EventDown
	EventRollUp
	EventRollDown
)

var eventNames = map[Event]string{
	EventNothing:  "nothing",
	EventQuit:     "quit",
	EventEnter:    "enter",
	EventUp:       "up",
	EventDown:     "down",
	EventRollUp:   "roll_up",
	EventRollDown: "roll_down",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}
