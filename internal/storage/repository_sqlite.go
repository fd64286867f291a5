package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/SebastianignacioDS/camino-ahorro/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
	// recentTTL bounds the recent-sessions listing window.
	recentTTL time.Duration
}

func NewSQLiteRepository(db *gorm.DB, recentTTL time.Duration) Repository {
	return &sqliteRepository{db: db, recentTTL: recentTTL}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByID(id uint) (*game.Session, error) {
	var s game.Session
	if err := r.db.Preload("Participants.Events").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) FindSessionByJoinCode(code string) (*game.Session, error) {
	var s game.Session
	err := r.db.Preload("Participants.Events").Where("join_code = ?", code).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) ListRecentSessions() ([]game.Session, error) {
	var sessions []game.Session
	cutoff := time.Now().Add(-r.recentTTL)
	if err := r.db.Preload("Participants").
		Where("created_at > ?", cutoff).
		Order("created_at desc").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sqliteRepository) SaveScores(entries []game.ScoreEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

// GetTopScores returns the top N leaderboard entries ordered by net worth.
func (r *sqliteRepository) GetTopScores(limit int) ([]game.ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []game.ScoreEntry
	if err := r.db.Model(&game.ScoreEntry{}).
		Order("net_worth DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ClaimTimedOutSessionIDs marks expired sessions as claimed by this worker
// and returns their IDs. The claim is a plain column update guarded by the
// previous claim's age, which is safe under SQLite's serialized writes.
func (r *sqliteRepository) ClaimTimedOutSessionIDs(now time.Time, limit int, claimTTL time.Duration, workerID string) ([]uint, error) {
	if limit <= 0 {
		limit = 20
	}
	staleClaim := now.Add(-claimTTL)

	var ids []uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var candidates []game.Session
		if err := tx.Model(&game.Session{}).
			Select("id").
			Where("phase != ?", game.PhaseFinished).
			Where("action_deadline != ? AND action_deadline <= ?", time.Time{}, now).
			Where("claimed_at <= ? OR claimed_by = ?", staleClaim, workerID).
			Order("action_deadline asc").
			Limit(limit).
			Find(&candidates).Error; err != nil {
			return err
		}
		for _, c := range candidates {
			res := tx.Model(&game.Session{}).
				Where("id = ?", c.ID).
				Where("claimed_at <= ? OR claimed_by = ?", staleClaim, workerID).
				Updates(map[string]interface{}{"claimed_by": workerID, "claimed_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				ids = append(ids, c.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
