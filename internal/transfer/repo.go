package transfer

import (
	"errors"                       // Sentinel error comparison
	"league_system/internal/domain" // Domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Row-level locking clause
)

// Lookup helpers shared by the engine components. A nil result with a nil
// error means the row does not exist; callers must handle the missing case
// explicitly instead of relying on lazy relationship traversal.

// teamForUser returns the team owned by the given user, or nil if the user
// has not registered one.
func teamForUser(db *gorm.DB, userID uint) (*domain.Team, error) {
	var team domain.Team
	err := db.Where("user_id = ?", userID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // User has no team
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// playerByID returns the player with the given id, or nil if absent.
func playerByID(db *gorm.DB, id uint) (*domain.Player, error) {
	var player domain.Player
	err := db.First(&player, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// teamByID returns the team with the given id, or nil if absent.
func teamByID(db *gorm.DB, id uint) (*domain.Team, error) {
	var team domain.Team
	err := db.First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// lockPlayerByID reads the player row with SELECT ... FOR UPDATE so a
// concurrent buy on the same listing blocks until this transaction settles.
func lockPlayerByID(tx *gorm.DB, id uint) (*domain.Player, error) {
	return playerByID(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// lockTeamsByID locks the given team rows FOR UPDATE in ascending id order so
// two opposing trades between the same pair of teams cannot deadlock.
func lockTeamsByID(tx *gorm.DB, ids ...uint) (map[uint]*domain.Team, error) {
	ordered := append([]uint(nil), ids...)
	for i := range ordered {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j] < ordered[i] {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}
	locked := make(map[uint]*domain.Team, len(ordered))
	for _, id := range ordered {
		team, err := teamByID(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return nil, err
		}
		if team == nil {
			return nil, nil // Team vanished under us, caller re-validates
		}
		locked[id] = team
	}
	return locked, nil
}
