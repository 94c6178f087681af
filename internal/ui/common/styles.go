package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	Title  lipgloss.Style // left title on the top row
	Hint   lipgloss.Style // right-aligned hint on the top row
	Status lipgloss.Style // cell count and mode
	Paint  lipgloss.Style // painted cells

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() Styles {
	return NewStyles(GruvboxTheme())
}

// NewStyles derives the styles from a theme's palette.
func NewStyles(theme Theme) Styles {
	c := theme.Colors
	toast := lipgloss.NewStyle().Padding(0, 1).Foreground(c.Background)
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(c.Primary),
		Hint:   lipgloss.NewStyle().Foreground(c.Muted),
		Status: lipgloss.NewStyle().Foreground(c.Info),
		Paint:  lipgloss.NewStyle().Foreground(c.Foreground),

		ToastSuccess: toast.Background(c.Success),
		ToastError:   toast.Background(c.Error),
		ToastWarning: toast.Background(c.Warning),
		ToastInfo:    toast.Background(c.Info),
	}
}
