package cli

import (
	"github.com/astraldesk/astral/internal/cli/formatter"
	"github.com/astraldesk/astral/internal/profile"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pickProfile shows a select form over the built-in profiles and returns
// the chosen name.
func pickProfile() (string, error) {
	names := profile.BuiltinNames()
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	var chosen string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Profile").
				Options(options...).
				Value(&chosen),
		),
	).WithTheme(astralHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return chosen, nil
}

func astralHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
