package console

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)

	serverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("25")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("246")).
				Padding(0, 1)

	// The two stats states are mutually exclusive: nominal while below the
	// retention cap, alarm from the moment size reaches it.
	statsNominalStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("220"))

	statsAlarmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("220")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))
)
