package cmd

import (
	"fmt"
	"io"
	"strings"

	"devserver/core/server"
	"devserver/feature/project"
)

var rule = strings.Repeat("=", 60)

func printBanner(w io.Writer, cfg server.Config) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🚀 Otomono Jerseys Development Server")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📍 Server running at: http://%s\n", cfg.Address())
	fmt.Fprintf(w, "📁 Serving files from: %s\n", cfg.Root)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🔗 Quick Links:")
	for _, link := range project.QuickLinks {
		fmt.Fprintf(w, "   • %s: %s\n", link.Label, cfg.URL(link.Path))
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "💡 Press Ctrl+C to stop the server")
	fmt.Fprintln(w, rule)
}

func printPortInUse(w io.Writer, name string, port int) {
	alt := port + 1
	if alt > 65535 {
		alt = 8001
	}
	fmt.Fprintf(w, "❌ Error: Port %d is already in use\n", port)
	fmt.Fprintf(w, "💡 Try a different port or stop the process using port %d\n", port)
	fmt.Fprintf(w, "🔧 Alternative: %s --port %d\n", name, alt)
}
