package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Transcript string // Everything the session printed, plus echoed input
	Input      string // Line being typed
	Status     string // Status bar text
	Width      int    // Terminal width
	Height     int    // Terminal height
	Finished   bool   // Session loop has returned
}

// EchoInput appends the submitted line to the transcript, since the
// terminal does not echo it in alt-screen mode.
func (m *AppModel) EchoInput(line string) {
	m.Transcript += line + "\n"
}
