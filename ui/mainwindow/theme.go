package mainwindow

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// TablePlanTheme provides a custom theme for the application.
type TablePlanTheme struct{}

var _ fyne.Theme = (*TablePlanTheme)(nil)

func (t *TablePlanTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0xFF} // Blue to match selection
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x1E, G: 0x88, B: 0xE5, A: 0x60}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *TablePlanTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *TablePlanTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *TablePlanTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
