package surveyfile

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"netcompare/domain/survey"
	"netcompare/internal/errors"
)

// DefaultCandidates are the relative paths tried, in order, when no
// explicit survey file is configured. The export keeps its grid-view
// filename so a fresh download drops in without renaming.
var DefaultCandidates = []string{
	"Survey_Responses-Grid_view.csv",
	"data/Survey_Responses-Grid_view.csv",
	"../Survey_Responses-Grid_view.csv",
}

// Reader loads the survey export from CSV or Excel files
type Reader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewReader creates a reader for the given file path
func NewReader(filePath string) *Reader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Load reads and parses the survey file into an immutable dataset
func (r *Reader) Load() (*survey.Dataset, error) {
	log.Printf("[SurveyReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.MissingInputFile([]string{r.filePath})
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InvalidInput("survey file must have a header row and at least one data row")
	}

	records := parseRows(rows)
	log.Printf("[SurveyReader] Loaded %d survey responses from %s", len(records), r.filePath)
	return survey.NewDataset(records, r.filePath), nil
}

// LoadFromCandidates tries an explicit override first, then the
// default relative paths. Every path missing is the one fatal error in
// the system: without the dataset there is no dashboard.
func LoadFromCandidates(override string) (*survey.Dataset, error) {
	candidates := DefaultCandidates
	if override != "" {
		candidates = append([]string{override}, candidates...)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return NewReader(path).Load()
	}
	return nil, errors.MissingInputFile(candidates)
}

func (r *Reader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	log.Printf("[SurveyReader] CSV file read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	// The grid-view export always lands on the first sheet
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}

// parseRows converts raw string rows into survey records. Header cells
// are trimmed and stripped of stray quotes; score cells that fail
// numeric coercion or fall outside [0,10] become missing values, never
// errors.
func parseRows(rows [][]string) []survey.Record {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		clean := strings.TrimSpace(header)
		headers[i] = strings.ReplaceAll(clean, `"`, "")
	}

	var records []survey.Record
	for i := 1; i < len(rows); i++ {
		cells := make(map[string]string, len(headers))
		for j, cell := range rows[i] {
			if j < len(headers) {
				cells[headers[j]] = strings.TrimSpace(cell)
			}
		}

		records = append(records, survey.Record{
			TopOfMindBrand:   cells[survey.ColTopOfMindBrand],
			StoppedUsing:     cells[survey.ColStoppedUsing],
			PrimaryNetwork:   cells[survey.ColPrimaryNetwork],
			ChoiceFactors:    cells[survey.ColChoiceFactors],
			Tenure:           cells[survey.ColTenure],
			MostLiked:        cells[survey.ColMostLiked],
			MostDisliked:     cells[survey.ColMostDisliked],
			DesiredServices:  cells[survey.ColDesiredServices],
			ImprovementAreas: cells[survey.ColImprovementAreas],
			ExcelAreas:       cells[survey.ColExcelAreas],
			Overall:          coerceScore(cells[survey.ColScoreOverall]),
			Service:          coerceScore(cells[survey.ColScoreService]),
			Communication:    coerceScore(cells[survey.ColScoreComms]),
			Pricing:          coerceScore(cells[survey.ColScorePricing]),
			Age:              cells[survey.ColAge],
			Location:         cells[survey.ColLocation],
			Employment:       cells[survey.ColEmployment],
			Income:           cells[survey.ColIncome],
		})
	}
	return records
}

// coerceScore parses a satisfaction score cell. Blank, non-numeric, or
// out-of-range values are treated as missing.
func coerceScore(cell string) survey.Value {
	if cell == "" {
		return survey.Missing()
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return survey.Missing()
	}
	if f < 0 || f > 10 {
		return survey.Missing()
	}
	return survey.NewValue(f)
}
