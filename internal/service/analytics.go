package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

const (
	analyticsWindowDays  = 7
	responseTimeSample   = 100
	topAnomalyHosts      = 10
	topAnomalyCategories = 10
	topAnomalySources    = 5
	unknownLogType       = "unknown"
)

var analyticsScoreRanges = [][2]float64{
	{0.5, 0.6},
	{0.6, 0.7},
	{0.7, 0.8},
	{0.8, 0.9},
	{0.9, 1.0},
}

type AnalyticsService struct {
	logRepo     repo.Log
	anomalyRepo repo.Anomaly
}

func NewAnalyticsService(lr repo.Log, ar repo.Anomaly) *AnalyticsService {
	return &AnalyticsService{logRepo: lr, anomalyRepo: ar}
}

func (s *AnalyticsService) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -analyticsWindowDays)
	window := repotypes.TimeRange{From: start, To: end}

	totalLogs, err := s.logRepo.CountLogs(ctx, repotypes.TimeRange{})
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}
	totalAnomalies, err := s.anomalyRepo.CountAnomalies(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}

	rate := 0.0
	if totalLogs > 0 {
		rate = round(float64(totalAnomalies)/float64(totalLogs)*100, 1)
	}

	durations, err := s.anomalyRepo.ResponseTimes(ctx, window, responseTimeSample)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}

	byDate, err := s.anomalyRepo.CountByDate(ctx, window)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}
	byHost, err := s.anomalyRepo.CountByHost(ctx, repotypes.TimeRange{}, topAnomalyHosts)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}
	categories, err := s.anomalyRepo.CountByLogType(ctx, repotypes.TimeRange{}, topAnomalyCategories)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}

	buckets, err := s.scoreDistribution(ctx)
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}

	sources, err := s.anomalyRepo.TopAnomalySources(ctx, topAnomalySources)
	if err != nil {
		return domain.AnalyticsSummary{}, errorsUtils.WrapPathErr(err)
	}

	return domain.AnalyticsSummary{
		TotalLogs:         totalLogs,
		TotalAnomalies:    totalAnomalies,
		AnomalyRate:       rate,
		AvgResponseTimeMs: averageResponseMs(durations),
		AnomaliesByDate:   byDate,
		AnomaliesByHost:   byHost,
		Categories:        categories,
		ScoreDistribution: buckets,
		TopSources:        weightSources(sources),
		StartDate:         start,
		EndDate:           end,
	}, nil
}

func (s *AnalyticsService) scoreDistribution(ctx context.Context) ([]domain.WeightedBucket, error) {
	out := make([]domain.WeightedBucket, 0, len(analyticsScoreRanges))
	maxCount := 0
	for _, r := range analyticsScoreRanges {
		n, err := s.anomalyRepo.CountScoreRange(ctx, r[0], r[1], false)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		if n > maxCount {
			maxCount = n
		}
		out = append(out, domain.WeightedBucket{
			ScoreBucket: domain.ScoreBucket{Min: r[0], Max: r[1], Count: n},
			Label:       fmt.Sprintf("%.1f - %.1f", r[0], r[1]),
		})
	}

	for i := range out {
		out[i].Percentage = percentOf(out[i].Count, maxCount)
	}
	return out, nil
}

func (s *AnalyticsService) Chart(ctx context.Context, chartType string, days int) (domain.AnalyticsChart, error) {
	if days < 1 {
		days = analyticsWindowDays
	}
	end := time.Now()
	window := repotypes.TimeRange{From: end.AddDate(0, 0, -days), To: end}

	switch chartType {
	case domain.ChartLine:
		data, err := s.anomalyRepo.CountByDate(ctx, window)
		if err != nil {
			return domain.AnalyticsChart{}, errorsUtils.WrapPathErr(err)
		}
		return domain.AnalyticsChart{
			Type:  domain.ChartLine,
			Data:  data,
			XAxis: "date",
			YAxis: "count",
			Title: fmt.Sprintf("Anomalies Over Time (Last %d days)", days),
		}, nil

	case domain.ChartBar:
		data, err := s.anomalyRepo.CountByHost(ctx, window, topAnomalyHosts)
		if err != nil {
			return domain.AnalyticsChart{}, errorsUtils.WrapPathErr(err)
		}
		return domain.AnalyticsChart{
			Type:  domain.ChartBar,
			Data:  data,
			XAxis: "host",
			YAxis: "count",
			Title: fmt.Sprintf("Anomalies by Source (Last %d days)", days),
		}, nil

	case domain.ChartPie:
		data, err := s.anomalyRepo.CountByLogType(ctx, window, topAnomalyCategories)
		if err != nil {
			return domain.AnalyticsChart{}, errorsUtils.WrapPathErr(err)
		}
		return domain.AnalyticsChart{
			Type:  domain.ChartPie,
			Data:  data,
			Label: "log_type",
			Value: "count",
			Title: fmt.Sprintf("Anomaly Categories (Last %d days)", days),
		}, nil
	}

	return domain.AnalyticsChart{}, ErrInvalidChartType
}

// averageResponseMs averages the non-negative durations, rounded to whole milliseconds.
func averageResponseMs(durations []time.Duration) int {
	var total float64
	n := 0
	for _, d := range durations {
		if d < 0 {
			continue
		}
		total += float64(d) / float64(time.Millisecond)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(round(total/float64(n), 0))
}

func weightSources(sources []domain.SourceCount) []domain.WeightedSource {
	maxCount := 0
	for _, src := range sources {
		if src.Count > maxCount {
			maxCount = src.Count
		}
	}

	out := make([]domain.WeightedSource, 0, len(sources))
	for _, src := range sources {
		if src.LogType == "" {
			src.LogType = unknownLogType
		}
		out = append(out, domain.WeightedSource{SourceCount: src, Percentage: percentOf(src.Count, maxCount)})
	}
	return out
}

func percentOf(n, top int) int {
	if top <= 0 {
		return 0
	}
	return n * 100 / top
}
