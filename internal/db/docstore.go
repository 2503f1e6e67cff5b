package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/unboundhq/research-board/internal/services"
)

const (
	collectionChallenges    = "challenges"
	collectionCourseContent = "courseContent"
)

// DocStore holds keyed JSON documents, one row per document. A Set is a
// full replace, matching the document backend the editor was written
// against.
type DocStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewDocStore(sqldb *sql.DB) *DocStore {
	return &DocStore{db: sqldb, now: func() time.Time { return time.Now().UTC() }}
}

var _ services.ChallengeStore = (*DocStore)(nil)

func (s *DocStore) get(collection, key string) ([]byte, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM documents WHERE collection = ? AND key = ?`, collection, key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return []byte(body), nil
}

func (s *DocStore) set(collection, key string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, key, err)
	}
	_, err = s.db.Exec(`INSERT INTO documents (collection, key, body, updated_at) VALUES (?, ?, ?, ?)
      ON CONFLICT(collection, key) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		collection, key, string(body), s.now())
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *DocStore) list(collection string) (map[string][]byte, error) {
	rows, err := s.db.Query(`SELECT key, body FROM documents WHERE collection = ? ORDER BY key`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	out := map[string][]byte{}
	for rows.Next() {
		var key, body string
		if err := rows.Scan(&key, &body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		out[key] = []byte(body)
	}
	return out, rows.Err()
}

func (s *DocStore) ListChallenges() (map[string]*services.Challenge, error) {
	docs, err := s.list(collectionChallenges)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*services.Challenge, len(docs))
	for key, body := range docs {
		var ch services.Challenge
		if err := json.Unmarshal(body, &ch); err != nil {
			// A malformed document hides one challenge, not the whole list.
			log.Printf("doc store: decode challenge %s: %v", key, err)
			continue
		}
		out[key] = &ch
	}
	return out, nil
}

func (s *DocStore) GetChallenge(dayID string) (*services.Challenge, error) {
	body, err := s.get(collectionChallenges, dayID)
	if err != nil || body == nil {
		return nil, err
	}
	var ch services.Challenge
	if err := json.Unmarshal(body, &ch); err != nil {
		return nil, fmt.Errorf("decode challenge %s: %w", dayID, err)
	}
	return &ch, nil
}

func (s *DocStore) PutChallenge(dayID string, ch *services.Challenge) error {
	return s.set(collectionChallenges, dayID, ch)
}

func (s *DocStore) ListCourseContent() ([]*services.CourseContent, error) {
	docs, err := s.list(collectionCourseContent)
	if err != nil {
		return nil, err
	}
	out := make([]*services.CourseContent, 0, len(docs))
	for key, body := range docs {
		var cc services.CourseContent
		if err := json.Unmarshal(body, &cc); err != nil {
			log.Printf("doc store: decode course content %s: %v", key, err)
			continue
		}
		out = append(out, &cc)
	}
	return out, nil
}

func (s *DocStore) PutCourseContent(dayID string, cc *services.CourseContent) error {
	return s.set(collectionCourseContent, dayID, cc)
}
