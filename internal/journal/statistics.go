package journal

import (
	"sort"
	"time"
)

// DaySummary holds review counts for a single calendar day
type DaySummary struct {
	Date        string // "2025-01-31"
	ReviewCount int    // Total reviews on the day
	CardCount   int    // Unique cards reviewed on the day
}

// ResultCount holds how often one result token was chosen. Tokens are
// opaque here; their meaning belongs to the backend scheduler.
type ResultCount struct {
	Result string
	Count  int
}

// Summary holds aggregate statistics over the review journal
type Summary struct {
	TotalReviews int           // Total reviews across all days
	UniqueCards  int           // Unique cards reviewed (deduplicated across days)
	Days         []DaySummary  // Per-day counts, oldest first
	Results      []ResultCount // Per-result counts, most frequent first
	StreakDays   int           // Consecutive days ending at the latest recorded day
}

// dayData tracks counts per calendar day
type dayData struct {
	date        time.Time
	reviewCount int
	uniqueCards map[int64]struct{}
}

// Summarize calculates aggregate statistics from review logs.
// It accepts optional year and month filters (0 means no filter).
func Summarize(logs []ReviewLog, year, month int) Summary {
	days := make(map[string]*dayData)
	uniqueCards := make(map[int64]struct{})
	resultCounts := make(map[string]int)
	total := 0

	for _, log := range logs {
		if log.ReviewedAt.IsZero() {
			continue
		}
		if !matchesFilter(log.ReviewedAt.Year(), int(log.ReviewedAt.Month()), year, month) {
			continue
		}

		total++
		uniqueCards[log.CardID] = struct{}{}
		resultCounts[log.Result]++

		key := log.ReviewedAt.Format("2006-01-02")
		if days[key] == nil {
			days[key] = &dayData{
				date: time.Date(log.ReviewedAt.Year(), log.ReviewedAt.Month(), log.ReviewedAt.Day(),
					0, 0, 0, 0, log.ReviewedAt.Location()),
				uniqueCards: make(map[int64]struct{}),
			}
		}
		days[key].reviewCount++
		days[key].uniqueCards[log.CardID] = struct{}{}
	}

	return buildSummary(days, uniqueCards, resultCounts, total)
}

func matchesFilter(logYear, logMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if logYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return logMonth == filterMonth
}

func buildSummary(days map[string]*dayData, uniqueCards map[int64]struct{}, resultCounts map[string]int, total int) Summary {
	daySummaries := make([]DaySummary, 0, len(days))
	dates := make([]time.Time, 0, len(days))
	for key, day := range days {
		daySummaries = append(daySummaries, DaySummary{
			Date:        key,
			ReviewCount: day.reviewCount,
			CardCount:   len(day.uniqueCards),
		})
		dates = append(dates, day.date)
	}

	// Sort by date ascending (oldest first)
	sort.Slice(daySummaries, func(i, j int) bool {
		return daySummaries[i].Date < daySummaries[j].Date
	})
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	results := make([]ResultCount, 0, len(resultCounts))
	for result, count := range resultCounts {
		results = append(results, ResultCount{Result: result, Count: count})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Result < results[j].Result
	})

	return Summary{
		TotalReviews: total,
		UniqueCards:  len(uniqueCards),
		Days:         daySummaries,
		Results:      results,
		StreakDays:   streakDays(dates),
	}
}

// streakDays counts consecutive calendar days ending at the latest
// recorded day. Dates must be sorted ascending and truncated to
// midnight.
func streakDays(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := len(dates) - 1; i > 0; i-- {
		if !dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
			break
		}
		streak++
	}
	return streak
}
