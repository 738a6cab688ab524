package application

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"har-analyzer/domain"
)

type Count struct {
	Key   string
	Count int
}

type Summary struct {
	Entries  int
	Methods  []Count
	Statuses []Count
}

type UI interface {
	Init(total int)
	Update(current int, currentItem string)
	RenderSummary(summary Summary)
	Close()
}

type ConvertService struct {
	cfg       Config
	source    domain.DocumentSource
	writer    domain.RowWriter
	extractor *domain.Extractor
	ui        UI
	logger    *slog.Logger
}

func NewConvertService(cfg Config, source domain.DocumentSource, writer domain.RowWriter, extractor *domain.Extractor, ui UI, logger *slog.Logger) *ConvertService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ConvertService{
		cfg:       cfg,
		source:    source,
		writer:    writer,
		extractor: extractor,
		ui:        ui,
		logger:    logger,
	}
}

// Run loads the archive, extracts one row per entry and writes the workbook.
// Read and parse failures come back as *InputError, write failures as *OutputError.
func (s *ConvertService) Run() (Summary, error) {
	s.logger.Info("loading HAR file", "path", s.cfg.InputPath)
	doc, err := s.source.Load()
	if err != nil {
		return Summary{}, &InputError{Path: s.cfg.InputPath, Err: err}
	}

	entries := doc.Log.Entries
	s.logger.Info("HAR file loaded", "version", doc.Log.Version, "entries", len(entries))

	rows := make([]domain.Row, 0, len(entries))
	s.ui.Init(len(entries))
	for i, entry := range entries {
		rows = append(rows, s.extractor.Extract(i, entry))
		s.ui.Update(i+1, entry.Request.URL)
	}
	s.ui.Close()

	s.logger.Info("writing workbook", "path", s.cfg.OutputPath, "rows", len(rows))
	if err := s.writer.WriteRows(rows); err != nil {
		return Summary{}, &OutputError{Path: s.cfg.OutputPath, Err: err}
	}

	summary := summarize(rows)
	s.ui.RenderSummary(summary)
	return summary, nil
}

func summarize(rows []domain.Row) Summary {
	methods := make(map[string]int)
	statuses := make(map[string]int)
	for _, row := range rows {
		method := row.Method
		if method == "" {
			method = "(none)"
		}
		methods[method]++

		status := "(none)"
		if row.StatusCode != 0 {
			status = strconv.Itoa(row.StatusCode)
		}
		statuses[status]++
	}

	return Summary{
		Entries:  len(rows),
		Methods:  sortedCounts(methods),
		Statuses: sortedCounts(statuses),
	}
}

func sortedCounts(m map[string]int) []Count {
	counts := make([]Count, 0, len(m))
	for key, n := range m {
		counts = append(counts, Count{Key: key, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	return counts
}

func (s Summary) String() string {
	return fmt.Sprintf("%d entries, %d methods, %d status codes", s.Entries, len(s.Methods), len(s.Statuses))
}
