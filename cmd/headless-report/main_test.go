package main

import (
	"testing"

	"github.com/Garsondee/teh-zombeez/internal/sim"
)

func TestAggregateCountsOutcomes(t *testing.T) {
	all := []runStats{
		{seed: 1, summary: sim.Summary{Outcome: sim.PhaseWon, EndFrame: 900, Kills: 8, Shots: 20}},
		{seed: 2, summary: sim.Summary{Outcome: sim.PhaseLost, EndFrame: 120, Kills: 2, Shots: 6}},
		{seed: 3, summary: sim.Summary{Outcome: sim.PhaseWon, EndFrame: 700, Kills: 8, Shots: 14}},
		{seed: 4, summary: sim.Summary{Outcome: sim.PhasePlaying, Kills: 5, Shots: 40}},
	}

	ag := aggregate(all)
	if ag.wins != 2 || ag.losses != 1 || ag.undecided != 1 {
		t.Fatalf("expected won=2 lost=1 undecided=1, got won=%d lost=%d undecided=%d", ag.wins, ag.losses, ag.undecided)
	}
	if ag.kills != 23 || ag.shots != 80 {
		t.Fatalf("expected kills=23 shots=80, got kills=%d shots=%d", ag.kills, ag.shots)
	}
	if ag.winRate() != 50 {
		t.Fatalf("expected win rate 50, got %.1f", ag.winRate())
	}
	if len(ag.seedsLost) != 1 || ag.seedsLost[0] != 2 {
		t.Fatalf("expected lost seeds [2], got %v", ag.seedsLost)
	}
}

func TestMedianAndAverage(t *testing.T) {
	if got := medianString([]int{700, 900}); got != "800.0" {
		t.Fatalf("median of even set = %s, want 800.0", got)
	}
	if got := medianString([]int{5, 1, 3}); got != "3" {
		t.Fatalf("median of odd set = %s, want 3", got)
	}
	if got := avgString(nil); got != "n/a" {
		t.Fatalf("avg of empty = %s, want n/a", got)
	}
	if got := avgString([]int{1, 2}); got != "1.5" {
		t.Fatalf("avg = %s, want 1.5", got)
	}
}

func TestRunAutopilotIsDeterministic(t *testing.T) {
	rules := sim.DefaultRules()
	a, _ := runAutopilot(1, 7, rules, 600)
	b, _ := runAutopilot(1, 7, rules, 600)
	if a.summary != b.summary || a.firstKillFrame != b.firstKillFrame {
		t.Fatalf("same seed gave different runs: %+v vs %+v", a, b)
	}
	if a.summary.Kills+a.summary.ZombiesLeft != rules.ZombieCount {
		t.Fatalf("kills+left = %d, want %d", a.summary.Kills+a.summary.ZombiesLeft, rules.ZombieCount)
	}
}

func TestFirstAndLastFrame(t *testing.T) {
	entries := []sim.Event{
		{Frame: 3, Category: "fire", Key: "spawn"},
		{Frame: 9, Category: "combat", Key: "kill"},
		{Frame: 15, Category: "combat", Key: "kill"},
	}
	if got := firstFrame(entries, "combat", "kill"); got != 9 {
		t.Fatalf("firstFrame = %d, want 9", got)
	}
	if got := lastFrame(entries, "combat", "kill"); got != 15 {
		t.Fatalf("lastFrame = %d, want 15", got)
	}
	if got := firstFrame(entries, "phase", "won"); got != -1 {
		t.Fatalf("firstFrame for missing event = %d, want -1", got)
	}
}
