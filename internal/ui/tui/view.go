package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)

	if m.Status == nil {
		b.WriteString(dimStyle.Render("  collecting..."))
		b.WriteString("\n")
		renderFooter(&b, m)
		return b.String()
	}

	renderEndpoints(&b, m)
	renderRecords(&b, m)
	renderPods(&b, m)
	renderLogs(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("carbonctl: %s", m.Namespace)
	b.WriteString(titleStyle.Render(title))

	state := " "
	switch {
	case m.Err != nil:
		state += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Status == nil:
		state += dimStyle.Render(currentSpinner(m.SpinnerFrame))
	case !m.Status.Health.OK():
		state += failedStyle.Render("API unreachable")
	case !m.Status.HasData():
		state += warningStyle.Render("Healthy, no data")
	default:
		state += readyStyle.Render("Healthy")
	}
	b.WriteString(state)
	b.WriteString("\n")
}

func renderEndpoints(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Endpoints"))
	b.WriteString("\n")

	st := m.Status
	if st.APIEndpoint != "" {
		fmt.Fprintf(b, "    %s Ingestion API  %s\n", readyStyle.Render(checkMark), st.APIEndpoint)
	} else {
		fmt.Fprintf(b, "    %s Ingestion API  %s\n", failedStyle.Render(crossMark), dimStyle.Render("unresolved"))
	}

	if st.DashboardEndpoint != "" {
		fmt.Fprintf(b, "    %s Dashboard      %s\n", readyStyle.Render(checkMark), st.DashboardEndpoint)
	} else {
		fmt.Fprintf(b, "    %s Dashboard      %s\n", warningStyle.Render(warnMark), dimStyle.Render("unresolved"))
	}
}

func renderRecords(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Ingestion"))
	b.WriteString("\n")

	st := m.Status
	switch {
	case !st.Stats.OK():
		fmt.Fprintf(b, "    %s stats unavailable: %s\n", failedStyle.Render(crossMark), st.Stats.Error)
	case st.HasData():
		fmt.Fprintf(b, "    %s %d records stored\n", readyStyle.Render(checkMark), st.TotalRecords)
	default:
		fmt.Fprintf(b, "    %s no records yet - start a device agent\n", warningStyle.Render(warnMark))
	}
}

func renderPods(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Pods"))
	b.WriteString("\n")

	st := m.Status
	if st.PodsError != "" {
		fmt.Fprintf(b, "    %s %s\n", failedStyle.Render(crossMark), st.PodsError)
		return
	}
	if len(st.Pods) == 0 {
		fmt.Fprintf(b, "    %s\n", dimStyle.Render("no pods in namespace"))
		return
	}

	for _, pod := range st.Pods {
		icon := readyStyle.Render(checkMark)
		if pod.Phase != "Running" && pod.Phase != "Succeeded" {
			icon = failedStyle.Render(crossMark)
		}
		fmt.Fprintf(b, "    %s %-40s %-6s %-12s %s\n", icon, pod.Name, pod.Ready, pod.Phase, pod.Age)
	}
}

// renderLogs shows the last few log lines; the full tail belongs to the
// non-interactive output.
func renderLogs(b *strings.Builder, m Model) {
	st := m.Status
	if !st.LogsAvailable {
		return
	}

	b.WriteString(sectionStyle.Render("  Logs"))
	b.WriteString("\n")

	lines := strings.Split(strings.TrimRight(st.Logs, "\n"), "\n")
	const maxLines = 8
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for _, line := range lines {
		fmt.Fprintf(b, "    %s\n", dimStyle.Render(line))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	footer := "q: quit"
	if !m.LastUpdate.IsZero() {
		footer += fmt.Sprintf("  •  updated %s ago", time.Since(m.LastUpdate).Round(time.Second))
	}
	b.WriteString(footerStyle.Render("  " + footer))
	b.WriteString("\n")
}
