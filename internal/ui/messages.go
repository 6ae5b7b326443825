package ui

import "time"

// pollMsg is sent once per poll interval; it carries no key and drives a
// redraw with the Nothing event
type pollMsg time.Time
