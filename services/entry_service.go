package services

import (
	"context"
	"time"

	"github.com/jaseerashabeer/smart-habit-tracker/models"
	"github.com/jaseerashabeer/smart-habit-tracker/wellness"

	"gorm.io/gorm"
)

// EntryService is the entry store: append-only daily records plus bulk
// import and date-range filtering. The analytics core never sees this
// layer; it is handed plain wellness.Record snapshots.
type EntryService struct{ db *gorm.DB }

func NewEntryService(db *gorm.DB) *EntryService { return &EntryService{db: db} }

// EntryInput carries one entry from a controller or importer. Fixed fields
// left out of the request body bind to 0, which is the defaulting contract
// the analytics core relies on.
type EntryInput struct {
	Date        time.Time          `json:"date"`
	Sleep       float64            `json:"sleep"`
	HealthyFood float64            `json:"healthy_food"`
	JunkFood    float64            `json:"junk_food"`
	Exercise    float64            `json:"exercise"`
	Water       float64            `json:"water"`
	Reading     float64            `json:"reading"`
	Custom      map[string]float64 `json:"custom,omitempty"`
}

func (s *EntryService) Add(ctx context.Context, userID uint, in EntryInput) (*models.HabitEntry, error) {
	entry := models.HabitEntry{
		UserID:      userID,
		Date:        dayStart(in.Date),
		Sleep:       in.Sleep,
		HealthyFood: in.HealthyFood,
		JunkFood:    in.JunkFood,
		Exercise:    in.Exercise,
		Water:       in.Water,
		Reading:     in.Reading,
	}
	for name, v := range in.Custom {
		entry.Customs = append(entry.Customs, models.CustomHabitValue{Name: name, Value: v})
	}

	// always a new row; corrections are additional rows for the same date
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) BulkImport(ctx context.Context, userID uint, ins []EntryInput) (int, error) {
	added := 0
	for _, in := range ins {
		if _, err := s.Add(ctx, userID, in); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

func (s *EntryService) ListRange(ctx context.Context, userID uint, from, to time.Time) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	err := s.db.WithContext(ctx).
		Preload("Customs").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) ListAll(ctx context.Context, userID uint) ([]models.HabitEntry, error) {
	var entries []models.HabitEntry
	err := s.db.WithContext(ctx).
		Preload("Customs").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (s *EntryService) ClearAll(ctx context.Context, userID uint) error {
	var ids []uint
	if err := s.db.WithContext(ctx).
		Model(&models.HabitEntry{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).
		Where("entry_id IN ?", ids).
		Delete(&models.CustomHabitValue{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.HabitEntry{}).Error
}

// ToRecords converts stored rows into the snapshots the analytics core
// consumes. Custom values become map entries; habits without a value for a
// row stay absent from that row's map.
func ToRecords(entries []models.HabitEntry) []wellness.Record {
	recs := make([]wellness.Record, 0, len(entries))
	for _, e := range entries {
		rec := wellness.Record{
			Date:        e.Date,
			Sleep:       e.Sleep,
			HealthyFood: e.HealthyFood,
			JunkFood:    e.JunkFood,
			Exercise:    e.Exercise,
			Water:       e.Water,
			Reading:     e.Reading,
		}
		if len(e.Customs) > 0 {
			rec.Custom = make(map[string]float64, len(e.Customs))
			for _, cv := range e.Customs {
				rec.Custom[cv.Name] = cv.Value
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
