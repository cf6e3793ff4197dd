//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/obinnaokechukwu/egl/internal/errcode"
	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	criticalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func kindStyle(k khrdebug.Kind) lipgloss.Style {
	switch k {
	case khrdebug.KindCritical:
		return criticalStyle
	case khrdebug.KindError:
		return errorStyle
	case khrdebug.KindWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

// printer serializes output; debug messages arrive on whichever thread
// made the failing call.
type printer struct {
	mu  sync.Mutex
	w   io.Writer
	got []khrdebug.Message
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}

func (p *printer) debug(errorCode uint32, command string, kind int32, objectLabel uintptr, message string) {
	m := khrdebug.Message{
		Error:       errcode.Code(errorCode),
		Command:     command,
		Kind:        khrdebug.Kind(kind),
		ObjectLabel: khrdebug.Label(objectLabel),
		Text:        message,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, m)
	fmt.Fprintln(p.w, formatMessage(m))
}

// messages returns and clears the debug messages received so far.
func (p *printer) messages() []khrdebug.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	got := p.got
	p.got = nil
	return got
}

func formatMessage(m khrdebug.Message) string {
	head := kindStyle(m.Kind).Render(fmt.Sprintf("[%s]", m.Kind))
	s := fmt.Sprintf("%s %s: %s (%s)", head, m.Command, m.Text, m.Error)
	if m.ObjectLabel != 0 {
		s += helpStyle.Render(fmt.Sprintf(" label=%#x", uintptr(m.ObjectLabel)))
	}
	return s
}
