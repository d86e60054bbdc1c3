package store

import (
	"github.com/oguzk/unienroll/internal/app/models"
)

// LectureTimeStore caches the lecture-slot collections: the flat
// listing, one course's slots, one day's slots, and the currently
// open slot.
type LectureTimeStore struct {
	all      *Collection[models.LectureTimeDetail]
	byCourse *Collection[models.LectureTime]
	byDay    *Collection[models.LectureTimeDetail]
	current  *Single[models.LectureTimeDetail]
}

// NewLectureTimeStore creates an empty lecture-time store.
func NewLectureTimeStore() *LectureTimeStore {
	detailID := func(lt models.LectureTimeDetail) int64 { return lt.ID }
	return &LectureTimeStore{
		all:      NewCollection(detailID),
		byCourse: NewCollection(func(lt models.LectureTime) int64 { return lt.ID }),
		byDay:    NewCollection(detailID),
		current:  NewSingle[models.LectureTimeDetail](),
	}
}

// All returns the flat listing collection.
func (s *LectureTimeStore) All() *Collection[models.LectureTimeDetail] { return s.all }

// ByCourse returns the course-scoped collection.
func (s *LectureTimeStore) ByCourse() *Collection[models.LectureTime] { return s.byCourse }

// ByDay returns the day-scoped collection.
func (s *LectureTimeStore) ByDay() *Collection[models.LectureTimeDetail] { return s.byDay }

// Current returns the single-entity slot for the open lecture slot.
func (s *LectureTimeStore) Current() *Single[models.LectureTimeDetail] { return s.current }

// ApplyCreate appends a freshly created slot to the course-scoped
// collection, the only one the add screen shows.
func (s *LectureTimeStore) ApplyCreate(lectureTime models.LectureTime) {
	s.byCourse.Append(lectureTime)
}

// ApplyDelete removes the slot by id from every collection that may
// hold it and clears the current slot when it shows that entry.
func (s *LectureTimeStore) ApplyDelete(id int64) {
	s.all.RemoveByID(id)
	s.byCourse.RemoveByID(id)
	s.byDay.RemoveByID(id)
	if current, _, _ := s.current.Get(); current != nil && current.ID == id {
		s.current.Clear()
	}
}

// Reset returns every slot to its initial empty state.
func (s *LectureTimeStore) Reset() {
	s.all.Reset()
	s.byCourse.Reset()
	s.byDay.Reset()
	s.current.Clear()
}
