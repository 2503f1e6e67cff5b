package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ResearchStore persists research notes, their tag attachments, and the
// tag/category label tables.
type ResearchStore interface {
	ListResearch() ([]*ResearchItem, error)
	InsertResearch(item *ResearchItem, tagIDs []string) error
	DeleteResearch(id string) error

	ListTags() ([]*Tag, error)
	FindTagByName(name string) (*Tag, error)
	InsertTag(t *Tag) error

	ListCategories() ([]*Category, error)
	InsertCategory(c *Category) error
	DeleteCategory(id string) error
}

type ResearchService struct {
	store ResearchStore
	now   func() time.Time
	idGen func(n int) string
	color func() string
}

func NewResearchService(store ResearchStore) *ResearchService {
	return &ResearchService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: shortID,
		color: randomColor,
	}
}

// randomColor mirrors the picker used for tags created on the fly: a random
// value below 0xffffff, hex-encoded without zero padding.
func randomColor() string {
	return fmt.Sprintf("#%x", rand.Intn(0xffffff))
}

type ResearchInput struct {
	Kind     string   `json:"type"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	URL      string   `json:"url"`
	Category string   `json:"category"`
	TagIDs   []string `json:"tag_ids"`
}

func (s *ResearchService) ListResearch() ([]*ResearchItem, error) {
	return s.store.ListResearch()
}

func (s *ResearchService) CreateResearch(in ResearchInput) (*ResearchItem, error) {
	kind := strings.TrimSpace(in.Kind)
	if kind != ResearchLink && kind != ResearchThought {
		return nil, NewInvalidError("type must be link or thought")
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, NewInvalidError("title and content required")
	}
	url := strings.TrimSpace(in.URL)
	if kind == ResearchLink && url == "" {
		return nil, NewInvalidError("url required for links")
	}
	if kind == ResearchThought {
		// A thought never carries a url, even if one was typed first.
		url = ""
	}
	item := &ResearchItem{
		ID:        s.idGen(8),
		Kind:      kind,
		Title:     title,
		Content:   content,
		URL:       url,
		Category:  strings.TrimSpace(in.Category),
		CreatedAt: s.now(),
	}
	if err := s.store.InsertResearch(item, in.TagIDs); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ResearchService) DeleteResearch(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidError("id required")
	}
	return s.store.DeleteResearch(id)
}

func (s *ResearchService) ListTags() ([]*Tag, error) {
	return s.store.ListTags()
}

// ResolveOrCreateTag returns the tag whose name matches case-insensitively,
// creating it with a random display color on first use. At most one insert
// happens per unresolved name per call; nothing guards against two
// concurrent callers racing the same new name.
func (s *ResearchService) ResolveOrCreateTag(name string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewInvalidError("name required")
	}
	existing, err := s.store.FindTagByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	t := &Tag{ID: s.idGen(8), Name: name, Color: s.color()}
	if err := s.store.InsertTag(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *ResearchService) ListCategories() ([]*Category, error) {
	return s.store.ListCategories()
}

type CategoryInput struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (s *ResearchService) CreateCategory(in CategoryInput) (*Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, NewInvalidError("name required")
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = "#3B82F6"
	}
	c := &Category{
		ID:          s.idGen(8),
		Name:        name,
		Color:       color,
		Description: strings.TrimSpace(in.Description),
	}
	if err := s.store.InsertCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ResearchService) DeleteCategory(id string) error {
	if strings.TrimSpace(id) == "" {
		return NewInvalidError("id required")
	}
	return s.store.DeleteCategory(id)
}
