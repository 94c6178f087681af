package common

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ToastType selects the color, icon and lifetime of a toast.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastSuccess
	ToastError
	ToastWarning
)

type toastKind struct {
	icon     string
	lifetime time.Duration
	style    func(Styles) lipgloss.Style
}

var toastKinds = map[ToastType]toastKind{
	ToastInfo:    {icon: "i ", lifetime: 2 * time.Second, style: func(s Styles) lipgloss.Style { return s.ToastInfo }},
	ToastSuccess: {icon: "✓ ", lifetime: 3 * time.Second, style: func(s Styles) lipgloss.Style { return s.ToastSuccess }},
	ToastWarning: {icon: "! ", lifetime: 4 * time.Second, style: func(s Styles) lipgloss.Style { return s.ToastWarning }},
	ToastError:   {icon: "✗ ", lifetime: 5 * time.Second, style: func(s Styles) lipgloss.Style { return s.ToastError }},
}

func kindOf(t ToastType) toastKind {
	if k, ok := toastKinds[t]; ok {
		return k
	}
	return toastKinds[ToastInfo]
}

// Toast is one notification line.
type Toast struct {
	Message  string
	Type     ToastType
	Duration time.Duration
}

// ToastDismissed ends the toast with the matching ID. Ticks from toasts that
// were already replaced carry an old ID and are ignored.
type ToastDismissed struct {
	ID int
}

// ToastModel holds at most one toast; showing another replaces it.
type ToastModel struct {
	styles  Styles
	now     func() time.Time
	current *Toast
	id      int
	expires time.Time
}

func NewToastModel() *ToastModel {
	return &ToastModel{styles: DefaultStyles(), now: time.Now}
}

func (m *ToastModel) SetStyles(styles Styles) {
	m.styles = styles
}

// Show replaces the current toast and returns the tick that dismisses it.
// A non-positive duration uses the default lifetime for toastType.
func (m *ToastModel) Show(message string, toastType ToastType, duration time.Duration) tea.Cmd {
	if duration <= 0 {
		duration = kindOf(toastType).lifetime
	}
	m.id++
	m.current = &Toast{Message: message, Type: toastType, Duration: duration}
	m.expires = m.now().Add(duration)

	id := m.id
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return ToastDismissed{ID: id}
	})
}

func (m *ToastModel) ShowSuccess(message string) tea.Cmd { return m.Show(message, ToastSuccess, 0) }
func (m *ToastModel) ShowError(message string) tea.Cmd   { return m.Show(message, ToastError, 0) }
func (m *ToastModel) ShowInfo(message string) tea.Cmd    { return m.Show(message, ToastInfo, 0) }
func (m *ToastModel) ShowWarning(message string) tea.Cmd { return m.Show(message, ToastWarning, 0) }

func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	if d, ok := msg.(ToastDismissed); ok && d.ID == m.id {
		m.current = nil
	}
	return m, nil
}

// View renders the toast with its icon, or "" when nothing is showing.
func (m *ToastModel) View() string {
	t := m.Current()
	if t == nil {
		return ""
	}
	k := kindOf(t.Type)
	return k.style(m.styles).Render(k.icon + t.Message)
}

func (m *ToastModel) Visible() bool {
	return m.current != nil && m.now().Before(m.expires)
}

// Current returns the showing toast, or nil once it is dismissed or expired.
func (m *ToastModel) Current() *Toast {
	if !m.Visible() {
		return nil
	}
	return m.current
}

func (m *ToastModel) Dismiss() {
	m.current = nil
}
