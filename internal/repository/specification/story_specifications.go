package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByStoryID filters child rows (views, messages) by their parent story.
type ByStoryID struct {
	StoryID uuid.UUID
}

func (s ByStoryID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("story_id = ?", s.StoryID)
}

// ActiveAt keeps stories that are still live at the given instant. The
// comparison is strict: expires_at == now is already expired.
type ActiveAt struct {
	Now time.Time
}

func (s ActiveAt) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at > ?", s.Now)
}

// ExpiredBefore keeps stories whose expiry passed before the given cutoff.
// Used by the reaper to select rows past the retention window.
type ExpiredBefore struct {
	Cutoff time.Time
}

func (s ExpiredBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expires_at <= ?", s.Cutoff)
}
