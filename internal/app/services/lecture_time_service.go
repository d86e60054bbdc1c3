package services

import (
	"context"

	"github.com/oguzk/unienroll/internal/app/models"
	"github.com/oguzk/unienroll/internal/app/models/dto"
	"github.com/oguzk/unienroll/internal/app/models/dto/enums"
	"github.com/oguzk/unienroll/internal/app/store"
	"github.com/oguzk/unienroll/internal/client"
	"github.com/oguzk/unienroll/internal/session"
)

// LectureTimeService coordinates lecture-slot fetches and mutations.
type LectureTimeService struct {
	api          *client.Client
	lectureTimes *store.LectureTimeStore
	session      *session.Session
}

// NewLectureTimeService creates a new lecture-time service instance.
func NewLectureTimeService(api *client.Client, lectureTimes *store.LectureTimeStore, sess *session.Session) *LectureTimeService {
	return &LectureTimeService{
		api:          api,
		lectureTimes: lectureTimes,
		session:      sess,
	}
}

// FetchAll refreshes the flat listing of every lecture slot.
func (s *LectureTimeService) FetchAll(ctx context.Context) ([]models.LectureTimeDetail, error) {
	coll := s.lectureTimes.All()
	coll.SetLoading()

	slots, err := s.api.GetLectureTimes(ctx)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(slots)
	return slots, nil
}

// FetchByCourse refreshes the course-scoped collection.
func (s *LectureTimeService) FetchByCourse(ctx context.Context, courseID int64) ([]models.LectureTime, error) {
	coll := s.lectureTimes.ByCourse()
	coll.SetLoading()

	slots, err := s.api.GetCourseLectureTimes(ctx, courseID)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(slots)
	return slots, nil
}

// FetchByDay refreshes the day-scoped collection.
func (s *LectureTimeService) FetchByDay(ctx context.Context, day enums.Day) ([]models.LectureTimeDetail, error) {
	coll := s.lectureTimes.ByDay()
	coll.SetLoading()

	slots, err := s.api.GetDayLectureTimes(ctx, day)
	if err != nil {
		coll.SetFailed(err.Error())
		return nil, err
	}

	coll.SetSucceeded(slots)
	return slots, nil
}

// FetchOne refreshes the single-entity slot for one lecture slot.
func (s *LectureTimeService) FetchOne(ctx context.Context, id int64) (*models.LectureTimeDetail, error) {
	single := s.lectureTimes.Current()
	single.SetLoading()

	slot, err := s.api.GetLectureTime(ctx, id)
	if err != nil {
		single.SetFailed(err.Error())
		return nil, err
	}

	single.Set(slot)
	return slot, nil
}

// Create adds a weekly slot to a course and appends the server's
// record to the course-scoped cache.
func (s *LectureTimeService) Create(ctx context.Context, req dto.LectureTimeRequest) (*models.LectureTime, error) {
	if err := authorize(s.session, OpManageLectureTimes); err != nil {
		return nil, err
	}
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	slot, err := s.api.CreateLectureTime(ctx, req)
	if err != nil {
		return nil, err
	}

	s.lectureTimes.ApplyCreate(*slot)
	return slot, nil
}

// Delete removes a slot and prunes the id from every collection that
// held it.
func (s *LectureTimeService) Delete(ctx context.Context, id int64) error {
	if err := authorize(s.session, OpManageLectureTimes); err != nil {
		return err
	}

	if err := s.api.DeleteLectureTime(ctx, id); err != nil {
		return err
	}

	s.lectureTimes.ApplyDelete(id)
	return nil
}
