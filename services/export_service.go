package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/utils"
)

// fixedColumns is the CSV contract shared with the original dashboard
// export; custom habit columns follow these.
var fixedColumns = []string{"date", "sleep", "healthy_food", "junk_food", "exercise", "water", "reading"}

type ExportService struct{ entries *EntryService }

func NewExportService(entries *EntryService) *ExportService {
	return &ExportService{entries: entries}
}

// ExportCSV renders every entry for the user as CSV, one row per stored
// entry (duplicate dates stay duplicated). Custom habit columns are the
// union of habit names across all entries, sorted; cells for days without
// a value are left empty rather than written as zero.
func (s *ExportService) ExportCSV(ctx context.Context, userID uint) ([]byte, error) {
	entries, err := s.entries.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	nameSet := map[string]struct{}{}
	for _, e := range entries {
		for _, cv := range e.Customs {
			nameSet[cv.Name] = struct{}{}
		}
	}
	customNames := make([]string, 0, len(nameSet))
	for name := range nameSet {
		customNames = append(customNames, name)
	}
	sort.Strings(customNames)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append(append([]string{}, fixedColumns...), customNames...)); err != nil {
		return nil, err
	}

	for _, e := range entries {
		row := []string{
			e.Date.Format("2006-01-02"),
			formatFloat(e.Sleep),
			formatFloat(e.HealthyFood),
			formatFloat(e.JunkFood),
			formatFloat(e.Exercise),
			formatFloat(e.Water),
			formatFloat(e.Reading),
		}
		values := map[string]float64{}
		for _, cv := range e.Customs {
			values[cv.Name] = cv.Value
		}
		for _, name := range customNames {
			if v, ok := values[name]; ok {
				row = append(row, formatFloat(v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ImportCSV appends rows from an uploaded CSV. The header must contain a
// "date" column; columns outside the fixed set import as custom habit
// values (empty cells stay missing). Missing fixed columns default to 0.
// Returns the number of imported entries.
func (s *ExportService) ImportCSV(ctx context.Context, userID uint, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	if _, ok := col["date"]; !ok {
		return 0, fmt.Errorf("csv missing 'date' column")
	}

	fixed := map[string]bool{}
	for _, name := range fixedColumns {
		fixed[name] = true
	}

	var ins []EntryInput
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read csv row: %w", err)
		}

		date, err := time.Parse("2006-01-02", row[col["date"]])
		if err != nil {
			return 0, fmt.Errorf("parse date %q: %w", row[col["date"]], err)
		}

		in := EntryInput{
			Date:        date,
			Sleep:       cell(row, col, "sleep"),
			HealthyFood: cell(row, col, "healthy_food"),
			JunkFood:    cell(row, col, "junk_food"),
			Exercise:    cell(row, col, "exercise"),
			Water:       cell(row, col, "water"),
			Reading:     cell(row, col, "reading"),
		}
		for name, i := range col {
			if fixed[name] || i >= len(row) || row[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return 0, fmt.Errorf("parse %s value %q: %w", name, row[i], err)
			}
			if in.Custom == nil {
				in.Custom = map[string]float64{}
			}
			in.Custom[name] = v
		}
		ins = append(ins, in)
	}

	return s.entries.BulkImport(ctx, userID, ins)
}

// BackupToS3 uploads the current CSV export and returns the object URL.
func (s *ExportService) BackupToS3(ctx context.Context, userID uint) (string, error) {
	data, err := s.ExportCSV(ctx, userID)
	if err != nil {
		return "", err
	}
	return utils.UploadCSVBackup(data, fmt.Sprintf("habits-user-%d", userID))
}

func cell(row []string, col map[string]int, name string) float64 {
	i, ok := col[name]
	if !ok || i >= len(row) || row[i] == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(row[i], 64)
	return v
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
