package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/unboundhq/research-board/internal/services"
)

// Store is the relational backend for the board, research, and auth tables.
type Store struct {
	db *sql.DB
}

func NewStore(sqldb *sql.DB) *Store {
	return &Store{db: sqldb}
}

var (
	_ services.BoardStore    = (*Store)(nil)
	_ services.ResearchStore = (*Store)(nil)
	_ services.AuthStore     = (*Store)(nil)
)

// --- competitors ---

func (s *Store) ListCompetitors(category string) ([]*services.Competitor, error) {
	query := `SELECT id, name, url, category, notes, created_at FROM competitors ORDER BY created_at DESC`
	args := []any{}
	if category != "" {
		query = `SELECT id, name, url, category, notes, created_at FROM competitors WHERE category = ? ORDER BY created_at DESC`
		args = append(args, category)
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list competitors: %w", err)
	}
	defer rows.Close()

	out := []*services.Competitor{}
	for rows.Next() {
		var c services.Competitor
		var cat, notes sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.URL, &cat, &notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan competitor: %w", err)
		}
		c.Category = cat.String
		c.Notes = notes.String
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (s *Store) InsertCompetitor(c *services.Competitor) error {
	_, err := s.db.Exec(`INSERT INTO competitors (id, name, url, category, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.URL, toNullString(c.Category), toNullString(c.Notes), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert competitor: %w", err)
	}
	return nil
}

func (s *Store) DeleteCompetitor(id string) error {
	if _, err := s.db.Exec(`DELETE FROM competitors WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete competitor: %w", err)
	}
	return nil
}

// --- artists ---

func (s *Store) ListArtists() ([]*services.Artist, error) {
	rows, err := s.db.Query(`SELECT id, name, profile_url, specialty, notes, created_at FROM artists ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	out := []*services.Artist{}
	for rows.Next() {
		var a services.Artist
		var specialty, notes sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &a.ProfileURL, &specialty, &notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		a.Specialty = specialty.String
		a.Notes = notes.String
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (s *Store) InsertArtist(a *services.Artist) error {
	_, err := s.db.Exec(`INSERT INTO artists (id, name, profile_url, specialty, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.ProfileURL, toNullString(a.Specialty), toNullString(a.Notes), a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert artist: %w", err)
	}
	return nil
}

func (s *Store) DeleteArtist(id string) error {
	if _, err := s.db.Exec(`DELETE FROM artists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}

// --- subject-matter experts ---

func (s *Store) ListExperts() ([]*services.Expert, error) {
	rows, err := s.db.Query(`SELECT id, name, profile_url, expertise, organization, notes, created_at FROM sme ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer rows.Close()

	out := []*services.Expert{}
	for rows.Next() {
		var e services.Expert
		var expertise, org, notes sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.ProfileURL, &expertise, &org, &notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expert: %w", err)
		}
		e.Expertise = expertise.String
		e.Organization = org.String
		e.Notes = notes.String
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *Store) InsertExpert(e *services.Expert) error {
	_, err := s.db.Exec(`INSERT INTO sme (id, name, profile_url, expertise, organization, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.ProfileURL, toNullString(e.Expertise), toNullString(e.Organization), toNullString(e.Notes), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expert: %w", err)
	}
	return nil
}

func (s *Store) DeleteExpert(id string) error {
	if _, err := s.db.Exec(`DELETE FROM sme WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete expert: %w", err)
	}
	return nil
}

// --- research + tags ---

func (s *Store) ListResearch() ([]*services.ResearchItem, error) {
	rows, err := s.db.Query(`SELECT id, type, title, content, url, category, created_at FROM research ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list research: %w", err)
	}
	defer rows.Close()

	out := []*services.ResearchItem{}
	byID := map[string]*services.ResearchItem{}
	for rows.Next() {
		var item services.ResearchItem
		var url, cat sql.NullString
		if err := rows.Scan(&item.ID, &item.Kind, &item.Title, &item.Content, &url, &cat, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan research: %w", err)
		}
		item.URL = url.String
		item.Category = cat.String
		out = append(out, &item)
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := s.db.Query(`
        SELECT rt.research_id, t.id, t.name, t.color
        FROM research_tags rt
        JOIN tags t ON t.id = rt.tag_id
        ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("list research tags: %w", err)
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var researchID string
		var t services.Tag
		if err := tagRows.Scan(&researchID, &t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan research tag: %w", err)
		}
		if item, ok := byID[researchID]; ok {
			item.Tags = append(item.Tags, t)
		}
	}
	return out, tagRows.Err()
}

func (s *Store) InsertResearch(item *services.ResearchItem, tagIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("insert research: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO research (id, type, title, content, url, category, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Kind, item.Title, item.Content, toNullString(item.URL), toNullString(item.Category), item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert research: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO research_tags (research_id, tag_id) VALUES (?, ?)`, item.ID, tagID); err != nil {
			return fmt.Errorf("attach tag: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Store) DeleteResearch(id string) error {
	// research_tags rows cascade
	if _, err := s.db.Exec(`DELETE FROM research WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete research: %w", err)
	}
	return nil
}

func (s *Store) ListTags() ([]*services.Tag, error) {
	rows, err := s.db.Query(`SELECT id, name, color FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	out := []*services.Tag{}
	for rows.Next() {
		var t services.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (s *Store) FindTagByName(name string) (*services.Tag, error) {
	var t services.Tag
	err := s.db.QueryRow(`SELECT id, name, color FROM tags WHERE LOWER(name) = LOWER(?) LIMIT 1`, name).
		Scan(&t.ID, &t.Name, &t.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &t, nil
}

func (s *Store) InsertTag(t *services.Tag) error {
	if _, err := s.db.Exec(`INSERT INTO tags (id, name, color) VALUES (?, ?, ?)`, t.ID, t.Name, t.Color); err != nil {
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// --- categories ---

func (s *Store) ListCategories() ([]*services.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, color, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := []*services.Category{}
	for rows.Next() {
		var c services.Category
		var desc sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &desc); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Description = desc.String
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (s *Store) InsertCategory(c *services.Category) error {
	_, err := s.db.Exec(`INSERT INTO categories (id, name, color, description) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.Color, toNullString(c.Description))
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *Store) DeleteCategory(id string) error {
	if _, err := s.db.Exec(`DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// --- users + invitations ---

func (s *Store) FindUserByEmail(email string) (*services.User, error) {
	var u services.User
	err := s.db.QueryRow(`SELECT id, email, pass_hash, created_at FROM users WHERE LOWER(email) = LOWER(?)`, email).
		Scan(&u.ID, &u.Email, &u.PassHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (s *Store) AddUser(u *services.User) error {
	if _, err := s.db.Exec(`INSERT INTO users (id, email, pass_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.ID, u.Email, u.PassHash, u.CreatedAt); err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

func (s *Store) FindInvitationByCode(code string) (*services.Invitation, error) {
	var inv services.Invitation
	var email, note sql.NullString
	var redeemed sql.NullTime
	err := s.db.QueryRow(`SELECT id, code, email, note, redeemed_at, created_at FROM invitations WHERE code = ?`, code).
		Scan(&inv.ID, &inv.Code, &email, &note, &redeemed, &inv.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find invitation: %w", err)
	}
	inv.Email = email.String
	inv.Note = note.String
	if redeemed.Valid {
		t := redeemed.Time
		inv.RedeemedAt = &t
	}
	return &inv, nil
}

func (s *Store) InsertInvitation(inv *services.Invitation) error {
	_, err := s.db.Exec(`INSERT INTO invitations (id, code, email, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, toNullString(inv.Email), toNullString(inv.Note), inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert invitation: %w", err)
	}
	return nil
}

func (s *Store) MarkInvitationRedeemed(id string, at time.Time) error {
	if _, err := s.db.Exec(`UPDATE invitations SET redeemed_at = ? WHERE id = ?`, at, id); err != nil {
		return fmt.Errorf("redeem invitation: %w", err)
	}
	return nil
}

func (s *Store) ListInvitations() ([]*services.Invitation, error) {
	rows, err := s.db.Query(`SELECT id, code, email, note, redeemed_at, created_at FROM invitations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	out := []*services.Invitation{}
	for rows.Next() {
		var inv services.Invitation
		var email, note sql.NullString
		var redeemed sql.NullTime
		if err := rows.Scan(&inv.ID, &inv.Code, &email, &note, &redeemed, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		inv.Email = email.String
		inv.Note = note.String
		if redeemed.Valid {
			t := redeemed.Time
			inv.RedeemedAt = &t
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}
