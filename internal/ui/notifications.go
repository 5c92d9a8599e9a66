package ui

import (
	"time"

	"github.com/anomredux/timerail/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const notificationTTL = 5 * time.Second

type Notification struct {
	Message   string
	Warning   bool
	CreatedAt time.Time
}

type NotificationManager struct {
	active *Notification
	now    func() time.Time
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{now: time.Now}
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.active = &Notification{Message: msg, CreatedAt: nm.now()}
}

// SetWarning shows a transient notification in the warning style.
func (nm *NotificationManager) SetWarning(msg string) {
	nm.active = &Notification{Message: msg, Warning: true, CreatedAt: nm.now()}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil || nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		nm.active = nil
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	color := theme.ColorMauve
	if n.Warning {
		color = theme.ColorPeach
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(color).
		Render(n.Message)
}
