// Package commands implements the vkbindgen CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/vkbind/vkbind-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Stage    *log.Stage
	Category *log.Category
	Name     string
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [run:id] STAGE CATEGORY label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [run:%s] %-11s %-5s %s\n",
		ts, shortenRunID(event.RunID), event.Stage.String(), event.Category.String(), eventLabel(event))

	switch {
	case event.Run != nil:
		formatRunDetails(w, event.Run)
	case event.Unit != nil:
		formatUnitDetails(w, event.Unit)
	case event.Skip != nil:
		fmt.Fprintf(w, "  Reason: %s\n", event.Skip.Reason)
	case event.Drop != nil:
		fmt.Fprintf(w, "  Origin: %s\n", event.Drop.Origin)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// eventLabel returns the short label printed after the category.
func eventLabel(event log.Event) string {
	switch {
	case event.Run != nil:
		return event.Run.State.String()
	case event.Unit != nil:
		return event.Unit.Kind + " " + event.Unit.Name
	case event.Skip != nil:
		if event.Skip.Name == "" {
			return event.Skip.Kind
		}
		return event.Skip.Kind + " " + event.Skip.Name
	case event.Drop != nil:
		return event.Drop.Command
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenRunID returns the first 8 characters of the run ID.
func shortenRunID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatRunDetails(w io.Writer, run *log.RunEvent) {
	if run.Digest != "" {
		fmt.Fprintf(w, "  Digest: %s\n", run.Digest)
	}
	if run.State == log.RunFinished {
		fmt.Fprintf(w, "  Units: %d  Dropped: %d\n", run.Units, run.Dropped)
	}
}

func formatUnitDetails(w io.Writer, unit *log.UnitEvent) {
	if unit.Source != "" && unit.Source != unit.Name {
		fmt.Fprintf(w, "  Source: %s\n", unit.Source)
	}
	if unit.Items > 0 {
		fmt.Fprintf(w, "  Items: %d\n", unit.Items)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Stage: %s\n", err.Stage.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseStageFlag parses a stage name (case-insensitive).
func ParseStageFlag(s string) (log.Stage, error) {
	for st := log.StageIndex; st <= log.StageEmit; st++ {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, fmt.Errorf("invalid stage: %s (must be index, features, extensions, definitions, enums, constants, or emit)", s)
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	for c := log.CategoryRun; c <= log.CategoryError; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("invalid category: %s (must be run, unit, skip, drop, or error)", s)
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Stage:    filter.Stage,
		Category: filter.Category,
		Name:     filter.Name,
	})
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
