package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/feed"
	"github.com/xolan/worklog/internal/group"
	"github.com/xolan/worklog/internal/stats"
	"github.com/xolan/worklog/internal/timeline"
	"github.com/xolan/worklog/internal/timeutil"
)

// StdinSource is the file argument that selects standard input
const StdinSource = "-"

// ErrNoLog is returned when no file argument is given and default_log is not configured
var ErrNoLog = errors.New("no log file given and default_log is not set")

// AnalysisService runs the interval pipeline over a log
type AnalysisService struct {
	config config.Config
	format feed.Format
	colors bool
	logger *log.Logger
}

// Option configures an AnalysisService
type Option func(*AnalysisService)

// WithLogger sets the logger used for pipeline diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(s *AnalysisService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithActivityColors overrides the color_by_activity setting
func WithActivityColors(enabled bool) Option {
	return func(s *AnalysisService) {
		s.colors = enabled
	}
}

// WithInputFormat overrides the input_format setting
func WithInputFormat(format feed.Format) Option {
	return func(s *AnalysisService) {
		s.format = format
	}
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(cfg config.Config, opts ...Option) *AnalysisService {
	s := &AnalysisService{
		config: cfg,
		format: cfg.Format(),
		colors: cfg.ColorByActivity,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveDay returns the date interval fragments are anchored to: dateFlag when
// given, today in the configured timezone otherwise.
func (s *AnalysisService) ResolveDay(dateFlag string) (time.Time, error) {
	return ResolveDay(dateFlag, s.config.Location())
}

// ResolveDay parses dateFlag in loc, or returns today's midnight in loc when dateFlag is empty
func ResolveDay(dateFlag string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.TrimSpace(dateFlag) == "" {
		return timeutil.Today(loc), nil
	}
	return timeutil.ParseDateIn(dateFlag, loc)
}

// ResolveSource picks the log to read: the argument when given, default_log otherwise.
// A leading "~/" is expanded to the home directory. "-" is passed through for stdin.
func (s *AnalysisService) ResolveSource(arg string) (string, error) {
	source := strings.TrimSpace(arg)
	if source == "" {
		source = s.config.DefaultLog
	}
	if source == "" {
		return "", ErrNoLog
	}
	if source == StdinSource {
		return source, nil
	}
	return expandHome(source)
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Format returns the input format in effect
func (s *AnalysisService) Format() feed.Format {
	return s.format
}

// Colors reports whether intervals are colored by activity
func (s *AnalysisService) Colors() bool {
	return s.colors
}

// WithColors returns a copy of the service with activity coloring set to enabled.
// Format, logger and config carry over unchanged.
func (s *AnalysisService) WithColors(enabled bool) *AnalysisService {
	c := *s
	c.colors = enabled
	return &c
}

// AnalyzeFile reads the log at path and analyzes it
func (s *AnalysisService) AnalyzeFile(path string, day time.Time) (*Analysis, error) {
	result, err := feed.ReadFile(path, s.format)
	if err != nil {
		return nil, fmt.Errorf("failed to read log %s: %w", path, err)
	}
	a := s.analyze(result, day)
	a.Source = path
	return a, nil
}

// AnalyzeReader reads a log from r and analyzes it
func (s *AnalysisService) AnalyzeReader(r io.Reader, format feed.Format, day time.Time) (*Analysis, error) {
	result, err := feed.Read(r, format)
	if err != nil {
		return nil, err
	}
	a := s.analyze(result, day)
	a.Source = StdinSource
	return a, nil
}

// AnalyzeData analyzes log content already in memory
func (s *AnalysisService) AnalyzeData(data []byte, format feed.Format, day time.Time) (*Analysis, error) {
	result, err := feed.Parse(data, format)
	if err != nil {
		return nil, err
	}
	return s.analyze(result, day), nil
}

func (s *AnalysisService) analyze(result feed.ReadResult, day time.Time) *Analysis {
	for _, w := range result.Warnings {
		s.logger.Printf("line %d skipped: %s", w.LineNumber, w.Error)
	}
	a := s.AnalyzeRows(result.Rows, day)
	a.Format = result.Format
	a.Warnings = result.Warnings
	return a
}

// AnalyzeRows runs the pipeline over rows that are already in memory
func (s *AnalysisService) AnalyzeRows(rows []group.RawRow, day time.Time) *Analysis {
	groups := group.Accumulate(rows,
		group.WithDay(day),
		group.WithActivityColors(s.colors),
		group.WithLogger(s.logger),
	)

	thresholds := s.config.Thresholds()
	a := &Analysis{
		Day:         day,
		Groups:      groups,
		Thresholds:  thresholds,
		Evaluations: make([]stats.Evaluation, len(groups)),
		Breakdown:   stats.CalculateActivityBreakdown(group.AllIntervals(groups)),
		Summary:     stats.Summarize(group.AllMetrics(groups)),
		Warnings:    []feed.ParseWarning{},
	}

	// empty groups have nothing to classify and keep a zero Evaluation
	for i, g := range groups {
		if g.IsEmpty() {
			continue
		}
		a.Evaluations[i] = thresholds.Evaluate(g.Metrics)
	}

	positions, scale, err := timeline.ProjectAll(groups)
	if err != nil {
		s.logger.Printf("timeline skipped: %v", err)
		return a
	}
	a.Scale = scale
	a.Positions = positions

	return a
}
