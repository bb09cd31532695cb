package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/vkbind/vkbind-go/pkg/log"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents      int
	EventsByStage    map[log.Stage]int
	EventsByCategory map[log.Category]int
	Kinds            map[string]*KindStats
	DropsByOrigin    map[string]int
	Runs             map[string]*RunStats
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// KindStats counts emitted and skipped units of one declaration kind.
type KindStats struct {
	Units   int
	Items   int
	Skipped int
}

// RunStats holds statistics for a single generation run.
type RunStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Digest    string
	State     log.RunState
	Units     int
	Dropped   int
}

// RunStatsCommand analyzes the trace file and prints statistics.
func RunStatsCommand(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func newStats() *Stats {
	return &Stats{
		EventsByStage:    make(map[log.Stage]int),
		EventsByCategory: make(map[log.Category]int),
		Kinds:            make(map[string]*KindStats),
		DropsByOrigin:    make(map[string]int),
		Runs:             make(map[string]*RunStats),
	}
}

func (s *Stats) kind(name string) *KindStats {
	k, ok := s.Kinds[name]
	if !ok {
		k = &KindStats{}
		s.Kinds[name] = k
	}
	return k
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByStage[event.Stage]++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	run, ok := s.Runs[event.RunID]
	if !ok {
		run = &RunStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Runs[event.RunID] = run
	}
	run.Events++
	if event.Timestamp.After(run.LastSeen) {
		run.LastSeen = event.Timestamp
	}

	switch {
	case event.Run != nil:
		run.State = event.Run.State
		if event.Run.Digest != "" {
			run.Digest = event.Run.Digest
		}
		if event.Run.State == log.RunFinished {
			run.Units = event.Run.Units
			run.Dropped = event.Run.Dropped
		}
	case event.Unit != nil:
		k := s.kind(event.Unit.Kind)
		k.Units++
		k.Items += event.Unit.Items
	case event.Skip != nil:
		s.kind(event.Skip.Kind).Skipped++
	case event.Drop != nil:
		s.DropsByOrigin[event.Drop.Origin]++
	case event.Error != nil:
		s.Errors++
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== vkbindgen Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Stage:")
	for st := log.StageIndex; st <= log.StageEmit; st++ {
		if count := stats.EventsByStage[st]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", st.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for c := log.CategoryRun; c <= log.CategoryError; c++ {
		if count := stats.EventsByCategory[c]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", c.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Kinds) > 0 {
		kinds := make([]string, 0, len(stats.Kinds))
		for k := range stats.Kinds {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)

		var data [][]string
		for _, k := range kinds {
			ks := stats.Kinds[k]
			data = append(data, []string{k, strconv.Itoa(ks.Units), strconv.Itoa(ks.Items), strconv.Itoa(ks.Skipped)})
		}
		renderTable(w, []string{"KIND", "UNITS", "ITEMS", "SKIPPED"}, data)
		fmt.Fprintln(w)
	}

	if len(stats.DropsByOrigin) > 0 {
		origins := make([]string, 0, len(stats.DropsByOrigin))
		for o := range stats.DropsByOrigin {
			origins = append(origins, o)
		}
		sort.Strings(origins)

		var data [][]string
		for _, o := range origins {
			data = append(data, []string{o, strconv.Itoa(stats.DropsByOrigin[o])})
		}
		renderTable(w, []string{"ORIGIN", "DROPPED"}, data)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Runs: %d\n", len(stats.Runs))
	if len(stats.Runs) > 0 {
		type runInfo struct {
			id    string
			stats *RunStats
		}
		runs := make([]runInfo, 0, len(stats.Runs))
		for id, rs := range stats.Runs {
			runs = append(runs, runInfo{id, rs})
		}
		sort.Slice(runs, func(i, j int) bool {
			return runs[i].stats.FirstSeen.Before(runs[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, r := range runs {
			duration := r.stats.LastSeen.Sub(r.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %s, %d events, duration %s\n",
				shortenRunID(r.id), r.stats.State.String(), r.stats.Events, duration)
			if r.stats.Digest != "" {
				fmt.Fprintf(w, "           Digest: %s\n", r.stats.Digest)
			}
			if r.stats.State == log.RunFinished {
				fmt.Fprintf(w, "           Units: %d, dropped: %d\n", r.stats.Units, r.stats.Dropped)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
