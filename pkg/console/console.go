// Package console prints styled status messages.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle()
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Icons prefixing each kind of message.
const (
	IconSuccess = "✅"
	IconInfo    = "✔"
	IconWarning = "⚠️ "
	IconError   = "❌"
	IconFile    = "📦"
	IconSave    = "💾"
	IconURL     = "🔗"
	IconDeploy  = "🚀"
	IconTip     = "💡"
)

// Console writes info to Out and warnings/errors to Err.
type Console struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Console on stdout/stderr.
func New() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.Out, successStyle.Render(IconSuccess+" "+msg))
}

// Info prints msg with icon, or IconInfo when icon is empty.
func (c *Console) Info(msg, icon string) {
	if icon == "" {
		icon = IconInfo
	}
	fmt.Fprintln(c.Out, icon+" "+infoStyle.Render(msg))
}

func (c *Console) Warning(msg string) {
	fmt.Fprintln(c.Err, warningStyle.Render(IconWarning+" "+msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.Err, errorStyle.Render(IconError+" "+msg))
}

func (c *Console) File(msg string)   { c.Info(msg, IconFile) }
func (c *Console) Save(msg string)   { c.Info(msg, IconSave) }
func (c *Console) URL(msg string)    { c.Info(msg, IconURL) }
func (c *Console) Deploy(msg string) { c.Info(msg, IconDeploy) }

// Tip prints a dimmed hint.
func (c *Console) Tip(msg string) {
	fmt.Fprintln(c.Out, IconTip+" "+dimStyle.Render(msg))
}
