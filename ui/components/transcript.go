package components

import (
	"strings"

	"github.com/Rorical/arraykit/ui/styles"
)

// RenderTranscript shows the tail of the session output that fits into
// height lines. A non-positive height shows everything.
func RenderTranscript(transcript string, height int) string {
	lines := strings.Split(strings.TrimRight(transcript, "\n"), "\n")
	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return styles.TranscriptStyle().Render(strings.Join(lines, "\n")) + "\n"
}
