// Package printer renders user-facing console output with consistent
// styling. Commands pull the printer from the context so tests can capture
// everything they print.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/benahmedanass/pomodoro/internal/core/styles"
)

type contextKey struct{}

// Printer writes styled lines to a single destination.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithCtx attaches the printer to the context.
func WithCtx(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// Ctx returns the printer attached to the context, or a stdout printer when
// none was attached (direct calls in tests, init-time paths).
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(contextKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes a plain line.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.InfoStyle, "•", format, args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle, "✓", format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle, "!", format, args...)
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle, "✗", format, args...)
}

// Success writes a success line with a muted detail suffix.
func (p *Printer) Success(msg, detail string) {
	fmt.Fprintf(p.w, "%s %s %s\n",
		styles.SuccessStyle.Render("✓"),
		msg,
		styles.MutedStyle.Render(detail),
	)
}

func (p *Printer) line(style lipgloss.Style, mark, format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", style.Render(mark), fmt.Sprintf(format, args...))
}
