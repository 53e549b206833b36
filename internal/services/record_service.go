package services

import (
	"errors"
	"math"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

var (
	ErrRecordLoadFailed   = errors.New("load daily record failed")
	ErrRecordCreateFailed = errors.New("create daily record failed")
	ErrRecordUpdateFailed = errors.New("update daily record failed")
	ErrStatsMissing       = errors.New("user stats row missing")
)

type RecordInput struct {
	Weight              *float64
	BodyFatPercent      *float64
	TrainingMinutes     int
	TrainingCalories    int
	WaterML             int
	SleepHours          float64
	Mood                int
	DietOK              bool
	Notes               string
	TrainingCompletedAt *time.Time
}

type DailyRecordStore interface {
	ListAll() ([]models.DailyRecord, error)
	ListRange(fromStart *time.Time, toEnd *time.Time) ([]models.DailyRecord, error)
	FindByDayRange(dayStart time.Time, dayEnd time.Time) (models.DailyRecord, bool, error)
	Create(record *models.DailyRecord) error
	Save(record *models.DailyRecord) error
	DeleteByDayRange(dayStart time.Time, dayEnd time.Time) error
}

type UserStatsStore interface {
	Load() (models.UserStats, bool, error)
	Save(stats *models.UserStats) error
}

// RecordService runs the central workflow: persist the day's record,
// rebuild the stats aggregate and push the fresh metrics through the
// achievement engine.
type RecordService struct {
	records      DailyRecordStore
	stats        UserStatsStore
	achievements *AchievementService
	location     *time.Location
}

func NewRecordService(records DailyRecordStore, stats UserStatsStore, achievements *AchievementService, location *time.Location) *RecordService {
	if location == nil {
		location = time.UTC
	}
	return &RecordService{
		records:      records,
		stats:        stats,
		achievements: achievements,
		location:     location,
	}
}

func (service *RecordService) FetchAllRecords() ([]models.DailyRecord, error) {
	return service.records.ListAll()
}

func (service *RecordService) FetchRecordsForOptionalRange(from *time.Time, to *time.Time) ([]models.DailyRecord, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return service.records.ListRange(fromStart, toEnd)
}

func (service *RecordService) FetchRecordByDate(day time.Time) (models.DailyRecord, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.records.FindByDayRange(dayStart, dayEnd)
}

// DeleteRecordByDate removes the day's record and rebuilds the stats
// aggregate so streaks and totals never go stale. Unlocked achievements
// stay unlocked; the rebuild touches counters only.
func (service *RecordService) DeleteRecordByDate(day time.Time, now time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	if err := service.records.DeleteByDayRange(dayStart, dayEnd); err != nil {
		return err
	}
	_, _, err := service.rebuildStats(now)
	return err
}

// UpsertDailyRecord saves the record for day and returns it together with
// every achievement the save unlocked.
func (service *RecordService) UpsertDailyRecord(day time.Time, payload RecordInput, now time.Time) (models.DailyRecord, []models.Achievement, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	record, found, err := service.records.FindByDayRange(dayStart, dayEnd)
	if err != nil {
		return models.DailyRecord{}, nil, ErrRecordLoadFailed
	}

	if found {
		applyRecordInput(&record, payload)
		if err := service.records.Save(&record); err != nil {
			return models.DailyRecord{}, nil, ErrRecordUpdateFailed
		}
	} else {
		record = models.DailyRecord{Date: dayStart}
		applyRecordInput(&record, payload)
		if err := service.records.Create(&record); err != nil {
			return models.DailyRecord{}, nil, ErrRecordCreateFailed
		}
	}

	unlocked, err := service.refreshStatsAndEvaluate(record, now)
	if err != nil {
		return record, unlocked, err
	}
	return record, unlocked, nil
}

func (service *RecordService) refreshStatsAndEvaluate(record models.DailyRecord, now time.Time) ([]models.Achievement, error) {
	history, stats, err := service.rebuildStats(now)
	if err != nil {
		return nil, err
	}
	return service.evaluateAll(history, stats, record, now)
}

func (service *RecordService) rebuildStats(now time.Time) ([]models.DailyRecord, models.UserStats, error) {
	history, err := service.records.ListAll()
	if err != nil {
		return nil, models.UserStats{}, err
	}

	previous, found, err := service.stats.Load()
	if err != nil {
		return nil, models.UserStats{}, err
	}
	if !found {
		return nil, models.UserStats{}, ErrStatsMissing
	}

	stats := RebuildUserStats(previous, history, now)
	if err := service.stats.Save(&stats); err != nil {
		return nil, models.UserStats{}, err
	}
	return history, stats, nil
}

// evaluateAll feeds every category its freshly computed metric. A single
// save can satisfy several thresholds at once; all of them unlock in this
// pass and each awards its own points.
func (service *RecordService) evaluateAll(history []models.DailyRecord, stats models.UserStats, record models.DailyRecord, now time.Time) ([]models.Achievement, error) {
	unlocked := make([]models.Achievement, 0)

	collect := func(batch []models.Achievement, err error) error {
		unlocked = append(unlocked, batch...)
		return err
	}

	if err := collect(service.achievements.EvaluateCategory(models.CategoryCheckin, stats.CurrentStreak, now)); err != nil {
		return unlocked, err
	}
	if err := collect(service.achievements.EvaluateCategory(models.CategoryTraining, stats.TotalWorkouts, now)); err != nil {
		return unlocked, err
	}
	if err := collect(service.achievements.EvaluateCategory(models.CategoryWeekly, stats.CurrentWeek, now)); err != nil {
		return unlocked, err
	}

	// Loss thresholds are whole kilograms / percentage points; floor the
	// observed change so 4.9 kg does not unlock the 5 kg badge.
	if loss, ok := WeightChange(history, stats.ProgramStart); ok && loss < 0 {
		metric := int(math.Floor(-loss))
		if err := collect(service.achievements.EvaluateCategory(models.CategoryWeightLoss, metric, now)); err != nil {
			return unlocked, err
		}
	}
	if drop, ok := BodyFatChange(history, stats.ProgramStart); ok && drop < 0 {
		metric := int(math.Floor(-drop))
		if err := collect(service.achievements.EvaluateCategory(models.CategoryBodyFat, metric, now)); err != nil {
			return unlocked, err
		}
	}

	if err := collect(service.achievements.EvaluateCategory(models.CategoryDiet, DietStreak(history, now), now)); err != nil {
		return unlocked, err
	}
	if err := collect(service.achievements.EvaluateCategory(models.CategoryCalories, record.TrainingCalories, now)); err != nil {
		return unlocked, err
	}

	dataMetric := 0
	if HasAnyWeightRecord(history) {
		dataMetric = 1
	}
	if err := collect(service.achievements.EvaluateCategory(models.CategoryData, dataMetric, now)); err != nil {
		return unlocked, err
	}

	if err := collect(service.achievements.EvaluateSpecial(record, now)); err != nil {
		return unlocked, err
	}

	return unlocked, nil
}

func applyRecordInput(record *models.DailyRecord, payload RecordInput) {
	record.Weight = payload.Weight
	record.BodyFatPercent = payload.BodyFatPercent
	record.TrainingMinutes = payload.TrainingMinutes
	record.TrainingCalories = payload.TrainingCalories
	record.WaterML = payload.WaterML
	record.SleepHours = payload.SleepHours
	record.Mood = payload.Mood
	record.DietOK = payload.DietOK
	record.Notes = payload.Notes
	record.TrainingCompletedAt = payload.TrainingCompletedAt
}
