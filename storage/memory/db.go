// Package memory is the only storage backend: every collection lives in
// process memory, is seeded at open time and resets on restart.
package memory

import (
	"sync"
	"time"

	"github.com/hmpssainta/sainta/core/achievement"
	"github.com/hmpssainta/sainta/core/agenda"
	"github.com/hmpssainta/sainta/core/document"
	"github.com/hmpssainta/sainta/core/gallery"
	"github.com/hmpssainta/sainta/core/member"
	"github.com/hmpssainta/sainta/core/org"
	"github.com/hmpssainta/sainta/core/outcome"
	"github.com/hmpssainta/sainta/core/video"
)

type (
	DB struct {
		members      *table[member.Member]
		agenda       *table[agenda.Item]
		photos       *table[gallery.Photo]
		videos       *table[video.Video]
		outcomes     *table[outcome.Outcome]
		courses      *table[outcome.Course]
		documents    *table[document.Document]
		achievements *table[achievement.Achievement]

		profileMu sync.RWMutex
		profile   org.Profile
		structure []org.Position
		contact   org.Contact

		idMu   sync.Mutex
		lastID int64
	}

	// table is an append-only, insertion-ordered collection of one entity type.
	table[T any] struct {
		mutex sync.RWMutex
		rows  []T
	}
)

// Open returns a DB populated with the seed collections.
func Open() (*DB, error) {
	db := &DB{
		members:      &table[member.Member]{rows: seedMembers()},
		agenda:       &table[agenda.Item]{rows: seedAgenda()},
		photos:       &table[gallery.Photo]{rows: seedPhotos()},
		videos:       &table[video.Video]{rows: seedVideos()},
		outcomes:     &table[outcome.Outcome]{rows: seedOutcomes()},
		courses:      &table[outcome.Course]{rows: seedCourses()},
		documents:    &table[document.Document]{rows: seedDocuments()},
		achievements: &table[achievement.Achievement]{rows: seedAchievements()},
		profile:      seedProfile(),
		structure:    seedStructure(),
		contact:      seedContact(),
	}
	return db, nil
}

// nextID returns a timestamp-derived id, bumped by one whenever two creates
// land in the same millisecond so uniqueness always holds.
func (db *DB) nextID() int64 {
	db.idMu.Lock()
	defer db.idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= db.lastID {
		id = db.lastID + 1
	}
	db.lastID = id
	return id
}

func (t *table[T]) insert(row T) T {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.rows = append(t.rows, row)
	return row
}

func (t *table[T]) all() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) where(match func(T) bool) []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	return out
}
