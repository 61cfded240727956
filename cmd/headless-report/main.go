package main

import (
	"flag"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Garsondee/teh-zombeez/internal/config"
	"github.com/Garsondee/teh-zombeez/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64

	summary        sim.Summary
	firstKillFrame int
	lastKillFrame  int
	offscreenShots int
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var cfgPath string
	var dump bool

	flag.IntVar(&runs, "runs", 10, "number of headless games")
	flag.IntVar(&frames, "frames", 30*180, "frame cap per game")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&cfgPath, "config", "", "YAML config file (defaults when empty)")
	flag.BoolVar(&dump, "dump", false, "print every run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	rules := cfg.Rules()

	fmt.Printf("=== Headless Autopilot Report ===\n")
	fmt.Printf("runs=%d frames=%d zombies=%d seed_base=%d seed_step=%d\n\n",
		runs, frames, rules.ZombieCount, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs, log := runAutopilot(i+1, seed, rules, frames)
		all = append(all, rs)
		printRun(rs, cfg.TPS)
		if dump {
			fmt.Print(log.Dump())
			fmt.Println()
		}
	}

	printAggregate(aggregate(all), cfg.TPS)
}

func runAutopilot(runIndex int, seed int64, rules sim.Rules, frames int) (runStats, *sim.EventLog) {
	h := &sim.Harness{State: sim.New(rules, rand.New(rand.NewSource(seed)))} // #nosec G404 -- report only
	h.RunUntilOver(frames, sim.DefaultAutopilot().Input)

	log := h.State.Log
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		summary:        sim.Summarize(h.State),
		firstKillFrame: firstFrame(log.Entries(), "combat", "kill"),
		lastKillFrame:  lastFrame(log.Entries(), "combat", "kill"),
		offscreenShots: log.Count("fire", "offscreen"),
	}, log
}

func firstFrame(entries []sim.Event, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

func lastFrame(entries []sim.Event, category, key string) int {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Category == category && entries[i].Key == key {
			return entries[i].Frame
		}
	}
	return -1
}

func printRun(rs runStats, tps int) {
	sm := rs.summary
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s end_frame=%d (%.1fs) kills=%d/%d shots=%d accuracy=%.2f\n",
		sm.Outcome, sm.EndFrame, sm.Seconds(tps), sm.Kills, sm.ZombiesTotal, sm.Shots, sm.Accuracy())
	fmt.Printf("kill_frames: first=%d last=%d  missed_shots=%d\n\n",
		rs.firstKillFrame, rs.lastKillFrame, rs.offscreenShots)
}

type aggregateStats struct {
	runs       int
	wins       int
	losses     int
	undecided  int
	winFrames  []int
	lossFrames []int
	kills      int
	shots      int
	seedsLost  []int64
}

func aggregate(all []runStats) aggregateStats {
	ag := aggregateStats{runs: len(all)}
	for _, rs := range all {
		sm := rs.summary
		ag.kills += sm.Kills
		ag.shots += sm.Shots
		switch sm.Outcome {
		case sim.PhaseWon:
			ag.wins++
			ag.winFrames = append(ag.winFrames, sm.EndFrame)
		case sim.PhaseLost:
			ag.losses++
			ag.lossFrames = append(ag.lossFrames, sm.EndFrame)
			ag.seedsLost = append(ag.seedsLost, rs.seed)
		default:
			ag.undecided++
		}
	}
	return ag
}

func (ag aggregateStats) winRate() float64 {
	if ag.runs == 0 {
		return 0
	}
	return float64(ag.wins) / float64(ag.runs) * 100
}

func printAggregate(ag aggregateStats, tps int) {
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d won=%d lost=%d undecided=%d win_rate=%.0f%%\n",
		ag.runs, ag.wins, ag.losses, ag.undecided, ag.winRate())
	fmt.Printf("win_frames: avg=%s median=%s\n", avgString(ag.winFrames), medianString(ag.winFrames))
	fmt.Printf("loss_frames: avg=%s median=%s\n", avgString(ag.lossFrames), medianString(ag.lossFrames))
	shotsPerKill := "n/a"
	if ag.kills > 0 {
		shotsPerKill = fmt.Sprintf("%.2f", float64(ag.shots)/float64(ag.kills))
	}
	fmt.Printf("kills=%d shots=%d shots_per_kill=%s tps=%d\n", ag.kills, ag.shots, shotsPerKill, tps)
	fmt.Printf("lost_seeds=%s\n", joinSeeds(ag.seedsLost))
}

func avgString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func medianString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sorted := append([]int(nil), vals...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return fmt.Sprintf("%d", sorted[mid])
	}
	return fmt.Sprintf("%.1f", float64(sorted[mid-1]+sorted[mid])/2)
}

func joinSeeds(seeds []int64) string {
	if len(seeds) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(seeds))
	for _, s := range seeds {
		parts = append(parts, fmt.Sprintf("%d", s))
	}
	return strings.Join(parts, ",")
}
