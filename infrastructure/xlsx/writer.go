package xlsx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"har-analyzer/domain"
)

const SheetName = "HAR Analysis"

const dataRowHeight = 60

var columnWidths = []float64{20, 15, 20, 10, 15, 50, 30, 30}

// payloadColumns are rendered in a monospace font.
var payloadColumns = map[int]bool{6: true, 7: true}

// Writer renders rows as a single-sheet workbook.
type Writer struct {
	out    io.Writer
	logger *slog.Logger
}

func NewWriter(out io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Writer{out: out, logger: logger}
}

func (w *Writer) WriteRows(rows []domain.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	for i, width := range columnWidths {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	header := make([]interface{}, len(domain.Columns))
	for i, name := range domain.Columns {
		header[i] = excelize.Cell{StyleID: st.header, Value: name}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		cells := row.Cells()
		values := make([]interface{}, len(cells))
		for col, text := range cells {
			if n := utf8.RuneCountInString(text); n > excelize.TotalCellChars {
				w.logger.Warn("cell text truncated",
					"row", i+1,
					"column", domain.Columns[col],
					"length", n,
					"limit", excelize.TotalCellChars,
				)
			}
			style := st.cell
			if payloadColumns[col] {
				style = st.payload
			}
			values[col] = excelize.Cell{StyleID: style, Value: text}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values, excelize.RowOpts{Height: dataRowHeight}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if err := f.Write(w.out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// FileWriter writes the workbook to a path, creating or truncating it.
type FileWriter struct {
	path   string
	logger *slog.Logger
}

func NewFileWriter(path string, logger *slog.Logger) *FileWriter {
	return &FileWriter{path: path, logger: logger}
}

func (w *FileWriter) WriteRows(rows []domain.Row) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := NewWriter(file, w.logger).WriteRows(rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

type styles struct {
	header  int
	cell    int
	payload int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	wrap := &excelize.Alignment{WrapText: true, Vertical: "top"}

	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Border: border,
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"D3D3D3"}, Pattern: 1},
		Font:   &excelize.Font{Bold: true},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}
	s.cell, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: wrap,
	})
	if err != nil {
		return s, fmt.Errorf("failed to create cell style: %w", err)
	}
	s.payload, err = f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: wrap,
		Font:      &excelize.Font{Family: "Consolas", Size: 9},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create payload style: %w", err)
	}
	return s, nil
}
