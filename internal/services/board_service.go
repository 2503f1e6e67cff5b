package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BoardStore persists the people-and-links side of the research board.
// List methods return newest-first.
type BoardStore interface {
	ListCompetitors(category string) ([]*Competitor, error)
	InsertCompetitor(c *Competitor) error
	DeleteCompetitor(id string) error

	ListArtists() ([]*Artist, error)
	InsertArtist(a *Artist) error
	DeleteArtist(id string) error

	ListExperts() ([]*Expert, error)
	InsertExpert(e *Expert) error
	DeleteExpert(id string) error
}

type BoardService struct {
	store BoardStore
	now   func() time.Time
	idGen func(n int) string
}

func NewBoardService(store BoardStore) *BoardService {
	return &BoardService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: shortID,
	}
}

type CompetitorInput struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type ArtistInput struct {
	Name       string `json:"name"`
	ProfileURL string `json:"profile_url"`
	Specialty  string `json:"specialty"`
	Notes      string `json:"notes"`
}

type ExpertInput struct {
	Name         string `json:"name"`
	ProfileURL   string `json:"profile_url"`
	Expertise    string `json:"expertise"`
	Organization string `json:"organization"`
	Notes        string `json:"notes"`
}

// ListCompetitors returns all competitors, or only those carrying the given
// category label when one is supplied.
func (s *BoardService) ListCompetitors(category string) ([]*Competitor, error) {
	return s.store.ListCompetitors(strings.TrimSpace(category))
}

func (s *BoardService) CreateCompetitor(in CompetitorInput) (*Competitor, error) {
	name := strings.TrimSpace(in.Name)
	url := strings.TrimSpace(in.URL)
	if name == "" || url == "" {
		return nil, NewInvalidError("name and url required")
	}
	c := &Competitor{
		ID:        s.idGen(8),
		Name:      name,
		URL:       url,
		Category:  strings.TrimSpace(in.Category),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}
	if err := s.store.InsertCompetitor(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCompetitor issues the delete unconditionally; a missing id is not
// an error. Callers reload the collection afterwards.
func (s *BoardService) DeleteCompetitor(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidError("id required")
	}
	return s.store.DeleteCompetitor(id)
}

func (s *BoardService) ListArtists() ([]*Artist, error) {
	return s.store.ListArtists()
}

func (s *BoardService) CreateArtist(in ArtistInput) (*Artist, error) {
	name := strings.TrimSpace(in.Name)
	url := strings.TrimSpace(in.ProfileURL)
	if name == "" || url == "" {
		return nil, NewInvalidError("name and profile_url required")
	}
	a := &Artist{
		ID:         s.idGen(8),
		Name:       name,
		ProfileURL: url,
		Specialty:  strings.TrimSpace(in.Specialty),
		Notes:      strings.TrimSpace(in.Notes),
		CreatedAt:  s.now(),
	}
	if err := s.store.InsertArtist(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *BoardService) DeleteArtist(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidError("id required")
	}
	return s.store.DeleteArtist(id)
}

func (s *BoardService) ListExperts() ([]*Expert, error) {
	return s.store.ListExperts()
}

func (s *BoardService) CreateExpert(in ExpertInput) (*Expert, error) {
	name := strings.TrimSpace(in.Name)
	url := strings.TrimSpace(in.ProfileURL)
	if name == "" || url == "" {
		return nil, NewInvalidError("name and profile_url required")
	}
	e := &Expert{
		ID:           s.idGen(8),
		Name:         name,
		ProfileURL:   url,
		Expertise:    strings.TrimSpace(in.Expertise),
		Organization: strings.TrimSpace(in.Organization),
		Notes:        strings.TrimSpace(in.Notes),
		CreatedAt:    s.now(),
	}
	if err := s.store.InsertExpert(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *BoardService) DeleteExpert(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidError("id required")
	}
	return s.store.DeleteExpert(id)
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
