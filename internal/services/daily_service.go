package services

import (
	"errors"
	"fmt"

	"github.com/calotrack/backend/internal/calc"
	"github.com/calotrack/backend/internal/dto"
	"github.com/calotrack/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrProfileRequired signals "finish onboarding first", distinct from a
	// bad-id NotFound.
	ErrProfileRequired = errors.New("profile required")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrInvalidEntry    = errors.New("invalid entry fields")
)

// DailyLogService maintains the per-user-per-day running totals. Every
// mutation writes the entry and the owning log's totals in one transaction
// so a crash can never leave an entry orphaned from its total.
type DailyLogService struct {
	db *gorm.DB
}

func NewDailyLogService(db *gorm.DB) *DailyLogService {
	return &DailyLogService{db: db}
}

// GetToday returns today's log for the user, creating it on first access.
func (s *DailyLogService) GetToday(userID uuid.UUID) (*models.DailyLog, error) {
	if _, err := s.requireProfile(s.db, userID); err != nil {
		return nil, err
	}
	return s.getOrCreate(s.db, userID, models.Today())
}

// getOrCreate returns the unique log for (user, date), inserting a zeroed
// one when absent. The unique index on (user_id, date) makes this safe
// under concurrent requests: the insert loser sees ErrDuplicatedKey and
// re-fetches the winner's row instead of failing.
func (s *DailyLogService) getOrCreate(db *gorm.DB, userID uuid.UUID, date models.Date) (*models.DailyLog, error) {
	log, err := s.fetch(db, userID, date)
	if err == nil {
		return log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.DailyLog{
		ID:     uuid.New(),
		UserID: userID,
		Date:   date,
		Status: calc.StatusMaintenance,
	}
	if err := db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.fetch(db, userID, date)
		}
		return nil, fmt.Errorf("failed to create daily log: %w", err)
	}

	return s.fetch(db, userID, date)
}

func (s *DailyLogService) fetch(db *gorm.DB, userID uuid.UUID, date models.Date) (*models.DailyLog, error) {
	var log models.DailyLog
	err := db.Preload("FoodEntries").Preload("ExerciseEntries").
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// AddFood appends a food entry to today's log and folds its calories into
// the running totals.
func (s *DailyLogService) AddFood(userID uuid.UUID, req *dto.AddFoodRequest) (*models.FoodEntry, error) {
	if req.Name == "" || req.Calories < 0 || !req.InputType.Valid() {
		return nil, ErrInvalidEntry
	}

	var entry models.FoodEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.requireProfile(tx, userID)
		if err != nil {
			return err
		}

		log, err := s.getOrCreate(tx, userID, models.Today())
		if err != nil {
			return err
		}

		entry = models.FoodEntry{
			ID:         uuid.New(),
			DailyLogID: log.ID,
			Name:       req.Name,
			Calories:   req.Calories,
			InputType:  req.InputType,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create food entry: %w", err)
		}

		log.TotalConsumed = calc.Round2(log.TotalConsumed + req.Calories)
		return s.saveTotals(tx, log, profile)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddExercise estimates calories burned from the MET table using the
// profile weight at creation time and stores the result on the entry; later
// weight changes never touch it.
func (s *DailyLogService) AddExercise(userID uuid.UUID, req *dto.AddExerciseRequest) (*models.ExerciseEntry, error) {
	if req.Type == "" || req.DurationMin <= 0 {
		return nil, ErrInvalidEntry
	}

	var entry models.ExerciseEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.requireProfile(tx, userID)
		if err != nil {
			return err
		}

		log, err := s.getOrCreate(tx, userID, models.Today())
		if err != nil {
			return err
		}

		burned := calc.ExerciseCalories(req.Type, req.DurationMin, profile.Weight)
		entry = models.ExerciseEntry{
			ID:             uuid.New(),
			DailyLogID:     log.ID,
			Type:           req.Type,
			DurationMin:    req.DurationMin,
			CaloriesBurned: burned,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to create exercise entry: %w", err)
		}

		log.TotalBurned = calc.Round2(log.TotalBurned + burned)
		return s.saveTotals(tx, log, profile)
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateFood changes an entry's name and/or calories. A calorie change
// swaps the old contribution for the new one in the owning log; name-only
// updates leave the totals untouched.
func (s *DailyLogService) UpdateFood(userID, entryID uuid.UUID, req *dto.UpdateFoodRequest) (*models.FoodEntry, error) {
	if req.Calories != nil && *req.Calories < 0 {
		return nil, ErrInvalidEntry
	}

	var entry models.FoodEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.requireProfile(tx, userID)
		if err != nil {
			return err
		}

		found, log, err := s.ownedFoodEntry(tx, userID, entryID)
		if err != nil {
			return err
		}
		entry = *found

		if req.Name != nil {
			entry.Name = *req.Name
		}
		if req.Calories != nil {
			log.TotalConsumed = calc.Round2(log.TotalConsumed - entry.Calories + *req.Calories)
			entry.Calories = *req.Calories
			if err := s.saveTotals(tx, log, profile); err != nil {
				return err
			}
		}

		return tx.Save(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteFood removes an entry and reverses its contribution to the totals.
// The consumed total clamps at zero to guard against drift.
func (s *DailyLogService) DeleteFood(userID, entryID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		profile, err := s.requireProfile(tx, userID)
		if err != nil {
			return err
		}

		entry, log, err := s.ownedFoodEntry(tx, userID, entryID)
		if err != nil {
			return err
		}

		log.TotalConsumed = calc.Round2(max(log.TotalConsumed-entry.Calories, 0))
		if err := s.saveTotals(tx, log, profile); err != nil {
			return err
		}

		return tx.Delete(entry).Error
	})
}

// History lists the user's daily summaries, newest first.
func (s *DailyLogService) History(userID uuid.UUID) ([]dto.DailySummary, error) {
	var logs []models.DailyLog
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.DailySummary, 0, len(logs))
	for _, log := range logs {
		summaries = append(summaries, dto.DailySummary{
			ID:            log.ID,
			Date:          log.Date,
			TotalConsumed: log.TotalConsumed,
			TotalBurned:   log.TotalBurned,
			NetCalories:   log.NetCalories,
			Status:        log.Status,
		})
	}
	return summaries, nil
}

// saveTotals recomputes the derived net and status from the current totals
// and persists the log row.
func (s *DailyLogService) saveTotals(tx *gorm.DB, log *models.DailyLog, profile *models.Profile) error {
	log.NetCalories = calc.Round2(log.TotalConsumed - log.TotalBurned)
	log.Status = calc.Status(log.NetCalories, profile.DailyTarget)
	if err := tx.Save(log).Error; err != nil {
		return fmt.Errorf("failed to update daily log: %w", err)
	}
	return nil
}

// ownedFoodEntry loads an entry together with its log, scoped to the given
// user so one user can never touch another's entries.
func (s *DailyLogService) ownedFoodEntry(tx *gorm.DB, userID, entryID uuid.UUID) (*models.FoodEntry, *models.DailyLog, error) {
	var entry models.FoodEntry
	err := tx.Joins("JOIN daily_logs ON daily_logs.id = food_entries.daily_log_id").
		Where("food_entries.id = ? AND daily_logs.user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrEntryNotFound
		}
		return nil, nil, err
	}

	var log models.DailyLog
	if err := tx.First(&log, "id = ?", entry.DailyLogID).Error; err != nil {
		return nil, nil, err
	}

	return &entry, &log, nil
}

func (s *DailyLogService) requireProfile(tx *gorm.DB, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, err
	}
	return &profile, nil
}
