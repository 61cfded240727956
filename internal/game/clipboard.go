package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

// summaryReport renders the end-of-game summary as plain text.
func summaryReport(sm sim.Summary, tps int, record string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Teh Zombeez: %s\n", sm.Outcome)
	fmt.Fprintf(&sb, "time:     %.1fs (%d frames)\n", sm.Seconds(tps), sm.EndFrame)
	fmt.Fprintf(&sb, "kills:    %d/%d\n", sm.Kills, sm.ZombiesTotal)
	fmt.Fprintf(&sb, "shots:    %d (%.2f kills/shot)\n", sm.Shots, sm.Accuracy())
	if record != "" {
		fmt.Fprintf(&sb, "record:   %s\n", record)
	}
	return sb.String()
}

// copySummary puts the summary report on the system clipboard.
func (g *Game) copySummary() {
	report := summaryReport(sim.Summarize(g.state), g.cfg.TPS, g.recordLine())
	if err := clipboard.WriteAll(report); err != nil {
		log.Printf("[Clipboard] Warning: copy failed: %v", err)
		g.feed.Add(g.state.Frame, "copy failed")
		return
	}
	log.Printf("[Clipboard] summary copied")
	g.feed.Add(g.state.Frame, "summary copied")
}
