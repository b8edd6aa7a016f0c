package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mekvam/logdeck/internal/apitypes"
	"github.com/mekvam/logdeck/internal/helpers"
)

// chromeHeight is the number of rows around the content viewport: header,
// tabs, stats, search line and footer.
const chromeHeight = 6

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "initializing..."
	}

	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("logdeck"),
		serverStyle.Render(m.client.BaseURL()),
	))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")
	b.WriteString(m.statsView())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.searchLineView())
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) tabsView() string {
	tab := func(s apitypes.Stream, key string) string {
		label := fmt.Sprintf("[%s] %s", key, s)
		if s == m.activeStream {
			return activeTabStyle.Render(label)
		}
		return inactiveTabStyle.Render(label)
	}
	return tab(apitypes.StreamRequests, "1") + " " + tab(apitypes.StreamErrors, "2")
}

func (m Model) statsView() string {
	if !m.statsKnown {
		return serverStyle.Render("Size: -")
	}
	text := fmt.Sprintf("Size: %s / %s",
		helpers.FormatBytes(m.stats.Size),
		helpers.FormatBytes(m.stats.MaxSize))
	if m.stats.Size >= m.stats.MaxSize {
		return statsAlarmStyle.Render(text + "  AT CAPACITY")
	}
	return statsNominalStyle.Render(text)
}

func (m Model) searchLineView() string {
	line := m.searchInput.View()
	if m.countLabel != "" {
		line += "  " + countStyle.Render(m.countLabel)
	}
	return line
}

func (m Model) footerView() string {
	if m.confirming {
		return confirmStyle.Render(
			fmt.Sprintf("Archive and clear the %s log? (y/n)", m.activeStream.Label()))
	}

	help := helpStyle.Render("1/2 streams • tab switch • / search • r reload • a archive • q quit")
	if m.status != "" {
		return statusStyle.Render(m.status) + " " + help
	}
	return help
}

func matchLabel(count int) string {
	if count == 1 {
		return "1 Match"
	}
	return fmt.Sprintf("%d Matches", count)
}
