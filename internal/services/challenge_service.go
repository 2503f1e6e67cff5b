package services

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ChallengeStore is the document backend: two collections of keyed JSON
// documents, replaced wholesale on every save.
type ChallengeStore interface {
	ListChallenges() (map[string]*Challenge, error)
	GetChallenge(dayID string) (*Challenge, error)
	PutChallenge(dayID string, ch *Challenge) error

	ListCourseContent() ([]*CourseContent, error)
	PutCourseContent(dayID string, cc *CourseContent) error
}

type ChallengeService struct {
	store ChallengeStore
	now   func() time.Time
}

func NewChallengeService(store ChallengeStore) *ChallengeService {
	return &ChallengeService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ChallengeEntry pairs a challenge with its document key.
type ChallengeEntry struct {
	DayID     string     `json:"day_id"`
	Challenge *Challenge `json:"challenge"`
}

// List returns every challenge sorted ascending by day number, the order
// the admin view renders them in.
func (s *ChallengeService) List() ([]ChallengeEntry, error) {
	docs, err := s.store.ListChallenges()
	if err != nil {
		return nil, err
	}
	out := make([]ChallengeEntry, 0, len(docs))
	for id, ch := range docs {
		out = append(out, ChallengeEntry{DayID: id, Challenge: ch})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Challenge.Day < out[j].Challenge.Day })
	return out, nil
}

func (s *ChallengeService) Get(dayID string) (*Challenge, error) {
	if strings.TrimSpace(dayID) == "" {
		return nil, NewInvalidError("day id required")
	}
	ch, err := s.store.GetChallenge(dayID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, NewNotFoundError("challenge not found")
	}
	return ch, nil
}

// Save replaces the full document, then mirrors the reduced projection into
// the courseContent collection. The two writes are not transactional: if
// the projection write fails after the document landed, the collections are
// left inconsistent and the caller gets a partial-write error instead of a
// silent success.
func (s *ChallengeService) Save(dayID string, ch *Challenge) error {
	if strings.TrimSpace(dayID) == "" {
		return NewInvalidError("day id required")
	}
	if ch == nil {
		return NewInvalidError("challenge required")
	}
	if ch.Cards == nil {
		ch.Cards = []ChallengeCard{}
	}
	if err := s.store.PutChallenge(dayID, ch); err != nil {
		return err
	}
	if err := s.store.PutCourseContent(dayID, projectionOf(ch)); err != nil {
		return NewPartialWriteError(fmt.Sprintf("challenge %s saved but courseContent projection failed: %v", dayID, err))
	}
	return nil
}

// CreateNew allocates day = max(existing days, 0)+1 and seeds the standard
// four-card deck. Hand-edited day numbers can make the allocation reuse a
// number (delete the highest day, create two more); that matches the
// original tool and is left alone.
func (s *ChallengeService) CreateNew() (string, *Challenge, error) {
	docs, err := s.store.ListChallenges()
	if err != nil {
		return "", nil, err
	}
	maxDay := 0
	for _, ch := range docs {
		if ch.Day > maxDay {
			maxDay = ch.Day
		}
	}
	nextDay := maxDay + 1
	ch := &Challenge{
		Day:             nextDay,
		Title:           fmt.Sprintf("Day %d Challenge", nextDay),
		Description:     "New challenge description",
		Enabled:         true,
		Order:           nextDay,
		FinalButtonText: "Start Challenge",
		Cards: []ChallengeCard{
			{ID: 1, Type: "intro", Title: fmt.Sprintf("Day %d Intro", nextDay), Content: "Introduction content here..."},
			{ID: 2, Type: "instruction", Title: "How it works", Content: "Instructions here..."},
			{ID: 3, Type: "notification", Title: "Reminders", Content: "Reminder settings...", ButtonText: "Enable Reminders"},
			{ID: 4, Type: "why", Title: "Why this works", Content: "Explanation here..."},
		},
	}
	dayID := fmt.Sprintf("day%d", nextDay)
	if err := s.store.PutChallenge(dayID, ch); err != nil {
		return "", nil, err
	}
	if err := s.store.PutCourseContent(dayID, projectionOf(ch)); err != nil {
		return "", nil, NewPartialWriteError(fmt.Sprintf("challenge %s created but courseContent projection failed: %v", dayID, err))
	}
	return dayID, ch, nil
}

// ListCourseContent exposes the lightweight listing the reader app uses.
func (s *ChallengeService) ListCourseContent() ([]*CourseContent, error) {
	items, err := s.store.ListCourseContent()
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Day < items[j].Day })
	return items, nil
}

func projectionOf(ch *Challenge) *CourseContent {
	return &CourseContent{
		Day:         ch.Day,
		Title:       ch.Title,
		Description: ch.Description,
		Enabled:     ch.Enabled,
		Order:       ch.Order,
	}
}
