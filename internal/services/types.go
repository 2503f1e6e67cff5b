package services

import "time"

type Competitor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Category  string    `json:"category,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Artist struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ProfileURL string    `json:"profile_url"`
	Specialty  string    `json:"specialty,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Expert struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ProfileURL   string    `json:"profile_url"`
	Expertise    string    `json:"expertise,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ResearchItem is either a saved link or a free-form thought.
type ResearchItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	URL       string    `json:"url,omitempty"`
	Category  string    `json:"category,omitempty"`
	Tags      []Tag     `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	ResearchLink    = "link"
	ResearchThought = "thought"
)

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

type Invitation struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Email      string     `json:"email,omitempty"`
	Note       string     `json:"note,omitempty"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type User struct {
	ID        string
	Email     string
	PassHash  []byte
	CreatedAt time.Time
}

// Challenge is one day of editorial content. Documents are keyed "day<N>".
type Challenge struct {
	Day             int                   `json:"day"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	Enabled         bool                  `json:"enabled"`
	Order           int                   `json:"order"`
	FinalButtonText string                `json:"finalButtonText,omitempty"`
	Cards           []ChallengeCard       `json:"cards"`
	Notifications   []NotificationMessage `json:"notifications,omitempty"`
}

// ChallengeCard ids are only unique within the parent challenge. Cards are
// addressed by list position; ids exist for display and debugging.
type ChallengeCard struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	ButtonText string `json:"buttonText,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

type NotificationMessage struct {
	Time  string `json:"time"`
	Hour  int    `json:"hour"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// CourseContent is the reduced challenge projection kept in its own
// collection so list views can skip loading full card decks.
type CourseContent struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	Order       int    `json:"order"`
}
