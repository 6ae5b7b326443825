package drawable

// Drawable is anything that can render itself as text
type Drawable interface {
	Draw() string
}

// Text is a literal block of text
type Text string

// Draw returns the text unchanged
func (t Text) Draw() string {
	return string(t)
}

// Func adapts a plain function to the Drawable interface
type Func func() string

// Draw calls f
func (f Func) Draw() string {
	return f()
}
