package services

import (
	"strconv"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Weight",
	"Body fat %",
	"Training minutes",
	"Training calories",
	"Water ml",
	"Sleep hours",
	"Mood",
	"Diet ok",
	"Notes",
}

type ExportRecordReader interface {
	FetchRecordsForOptionalRange(from *time.Time, to *time.Time) ([]models.DailyRecord, error)
}

type ExportService struct {
	records  ExportRecordReader
	location *time.Location
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportJSONEntry struct {
	Date             string   `json:"date"`
	Weight           *float64 `json:"weight,omitempty"`
	BodyFatPercent   *float64 `json:"body_fat_percent,omitempty"`
	TrainingMinutes  int      `json:"training_minutes"`
	TrainingCalories int      `json:"training_calories"`
	WaterML          int      `json:"water_ml"`
	SleepHours       float64  `json:"sleep_hours"`
	Mood             int      `json:"mood"`
	DietOK           bool     `json:"diet_ok"`
	Notes            string   `json:"notes"`
}

func NewExportService(records ExportRecordReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{records: records, location: location}
}

func (service *ExportService) BuildSummary(from *time.Time, to *time.Time) (ExportSummary, error) {
	records, err := service.records.FetchRecordsForOptionalRange(from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(records) == 0 {
		return ExportSummary{}, nil
	}

	first := records[0].Date
	last := records[0].Date
	for _, record := range records[1:] {
		if record.Date.Before(first) {
			first = record.Date
		}
		if record.Date.After(last) {
			last = record.Date
		}
	}

	return ExportSummary{
		TotalEntries: len(records),
		HasData:      true,
		DateFrom:     DateAtLocation(first, service.location).Format(exportDateLayout),
		DateTo:       DateAtLocation(last, service.location).Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildJSONEntries(from *time.Time, to *time.Time) ([]ExportJSONEntry, error) {
	records, err := service.records.FetchRecordsForOptionalRange(from, to)
	if err != nil {
		return nil, err
	}

	entries := make([]ExportJSONEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, ExportJSONEntry{
			Date:             DateAtLocation(record.Date, service.location).Format(exportDateLayout),
			Weight:           record.Weight,
			BodyFatPercent:   record.BodyFatPercent,
			TrainingMinutes:  record.TrainingMinutes,
			TrainingCalories: record.TrainingCalories,
			WaterML:          record.WaterML,
			SleepHours:       record.SleepHours,
			Mood:             record.Mood,
			DietOK:           record.DietOK,
			Notes:            record.Notes,
		})
	}
	return entries, nil
}

// BuildCSVRows renders the same data as string rows ready for an
// encoding/csv writer. Absent measurements export as empty cells, never
// as zero.
func (service *ExportService) BuildCSVRows(from *time.Time, to *time.Time) ([][]string, error) {
	records, err := service.records.FetchRecordsForOptionalRange(from, to)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			DateAtLocation(record.Date, service.location).Format(exportDateLayout),
			formatOptionalFloat(record.Weight),
			formatOptionalFloat(record.BodyFatPercent),
			strconv.Itoa(record.TrainingMinutes),
			strconv.Itoa(record.TrainingCalories),
			strconv.Itoa(record.WaterML),
			strconv.FormatFloat(record.SleepHours, 'f', 1, 64),
			strconv.Itoa(record.Mood),
			formatBool(record.DietOK),
			record.Notes,
		})
	}
	return rows, nil
}

func formatOptionalFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', 1, 64)
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
