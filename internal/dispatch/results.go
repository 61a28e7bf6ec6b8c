package dispatch

import (
	"log/slog"
	"slices"
	"time"
)

// Summary aggregates the handler durations of successful results.
type Summary struct {
	Count  int
	Failed int
	Mean   time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Summarize logs each result as it arrives and returns statistics once the channel is closed.
func Summarize(results <-chan Result) Summary {
	var (
		durations []time.Duration
		summary   Summary
	)

	for result := range results {
		duration := result.EndTime.Sub(result.StartTime)
		args := []any{
			"event_name", result.Event.Name,
			"event_at", result.Event.At,
			"worker_id", result.WorkerID,
			"duration_microseconds", duration.Microseconds(),
		}

		if result.Error != nil {
			summary.Failed++
			args = append(args, "error", result.Error)
			slog.Error("error handling event", args...)
		} else {
			durations = append(durations, duration)
			slog.Info("event handled", args...)
		}
	}

	if len(durations) == 0 {
		return summary
	}

	slices.Sort(durations)

	var total time.Duration
	for _, d := range durations {
		total += d
	}

	summary.Count = len(durations)
	summary.Mean = total / time.Duration(len(durations))
	summary.Median = durations[len(durations)/2]
	summary.Min = durations[0]
	summary.Max = durations[len(durations)-1]

	slog.Info(
		"event dispatch summary",
		"count", summary.Count,
		"failed", summary.Failed,
		"mean_microseconds", summary.Mean.Microseconds(),
		"median_microseconds", summary.Median.Microseconds(),
		"min_microseconds", summary.Min.Microseconds(),
		"max_microseconds", summary.Max.Microseconds(),
	)

	return summary
}
