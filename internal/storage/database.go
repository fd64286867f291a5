package storage

import (
	"github.com/SebastianignacioDS/camino-ahorro/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at dataSourceName and keeps the
// schema updated via AutoMigrate. The database only carries live sessions
// and leaderboard scores; removing the file resets both.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Session{}, &game.Participant{}, &game.EventRecord{}, &game.ScoreEntry{}); err != nil {
		return nil, err
	}
	return db, nil
}
