package handlers

import (
	"fmt"
	"strings"

	"github.com/carbonprofiling/carbonctl/internal/config"
	"github.com/carbonprofiling/carbonctl/internal/jsontext"
	"github.com/carbonprofiling/carbonctl/internal/status"
)

const sectionRule = 40

// logsFallback is printed whenever the log tail could not be retrieved, in
// place of the raw error.
const logsFallback = "No logs available - the deployment may not be running yet."

func printHeader(title string) {
	fmt.Println()
	fmt.Printf("%s\n", title)
	fmt.Println(strings.Repeat("═", sectionRule))
}

func printSection(title string) {
	fmt.Println()
	fmt.Printf("%s\n", title)
	fmt.Println(strings.Repeat("─", sectionRule))
}

// printFetch prints one fetched document: pretty JSON when possible, raw
// text otherwise, or the failure text when the fetch itself failed.
func printFetch(f status.Fetch) {
	switch {
	case !f.OK():
		fmt.Println(f.Error)
	case len(f.JSON) > 0:
		fmt.Println(jsontext.Pretty(f.JSON))
	case strings.TrimSpace(f.Text) != "":
		fmt.Println(f.Text)
	default:
		fmt.Println("(empty response)")
	}
}

// printStatus renders the full report as the sectioned text output.
func printStatus(st *status.PlatformStatus, cfg *config.Config) {
	printHeader("🌱 Carbon Profiling Platform Status")

	if st.APIEndpoint != "" {
		fmt.Printf("\n📡 Ingestion API: %s\n", st.APIEndpoint)
	} else {
		fmt.Printf("\n📡 Ingestion API: ❌ could not resolve service %q in namespace %q\n", cfg.APIService, cfg.Namespace)
		if st.ResolveError != "" {
			fmt.Printf("   %s\n", st.ResolveError)
		}
	}

	printSection("🏥 Health Check")
	printFetch(st.Health)

	printSection("📊 Ingestion Stats")
	printFetch(st.Stats)

	if st.HasData() {
		fmt.Printf("\n✅ Found %d records\n", st.TotalRecords)
		printSection("🌍 Carbon Summary")
		if st.Summary != nil {
			printFetch(*st.Summary)
		}
	} else {
		printNoData(st.APIEndpoint)
	}

	printSection(fmt.Sprintf("📦 Pods (%s)", st.Namespace))
	printPods(st)

	printSection(fmt.Sprintf("📜 Logs: %s (last %d lines)", cfg.Deployment, cfg.TailLines))
	if st.LogsAvailable {
		fmt.Print(ensureTrailingNewline(st.Logs))
	} else {
		fmt.Println(logsFallback)
	}

	fmt.Println()
	if st.DashboardEndpoint != "" {
		fmt.Printf("📈 Dashboard: %s\n", st.DashboardEndpoint)
	} else {
		fmt.Printf("📈 Dashboard: ❌ could not resolve service %q\n", cfg.DashboardService)
	}

	fmt.Println()
	fmt.Println("👉 Connect a device agent with:")
	printAgentEnv(st.APIEndpoint)
}

// printNoData renders the setup guidance shown when the platform has no
// ingested records yet.
func printNoData(endpoint string) {
	printSection("⚠️  NO DATA FOUND")
	fmt.Println("No device metrics have been ingested yet.")
	fmt.Println()
	fmt.Println("To start sending data:")
	fmt.Println("  1. Install the device agent on a machine you want to profile")
	fmt.Println("  2. Point it at the ingestion API:")
	fmt.Printf("       export API_ENDPOINT=%s\n", endpoint)
	fmt.Println("       export SEND_TO_API=true")
	fmt.Println("  3. Run the agent and wait for its next report interval")
}

func printPods(st *status.PlatformStatus) {
	if st.PodsError != "" {
		// No masking here: the raw failure is what the user needs to see.
		fmt.Println(st.PodsError)
		return
	}
	if len(st.Pods) == 0 {
		fmt.Println("No pods found.")
		return
	}

	for _, pod := range st.Pods {
		indicator := "✅"
		if pod.Phase != "Running" && pod.Phase != "Succeeded" {
			indicator = "❌"
		}
		fmt.Printf("%s  %-42s %-6s %-12s restarts=%-3d %s\n",
			indicator, pod.Name, pod.Ready, pod.Phase, pod.Restarts, pod.Age)
	}
}

// printAgentEnv prints the environment assignments a device agent needs,
// suitable for copy-paste or eval.
func printAgentEnv(endpoint string) {
	fmt.Printf("export API_ENDPOINT=%s\n", endpoint)
	fmt.Println("export SEND_TO_API=true")
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
