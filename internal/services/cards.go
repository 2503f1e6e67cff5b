package services

import (
	"fmt"
	"strings"
)

// Card and notification edits are pure: each function copies the slice it
// touches and leaves the input challenge untouched, so callers can stage
// edits on a fetched document and persist with a single save.

// NextCardID allocates max(existing ids, 0)+1. Ids are never reused while a
// card holding a higher id survives, even after deletions leave gaps.
func NextCardID(cards []ChallengeCard) int {
	max := 0
	for _, c := range cards {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func newCard(cards []ChallengeCard) ChallengeCard {
	return ChallengeCard{
		ID:      NextCardID(cards),
		Type:    "custom",
		Title:   "New Screen",
		Content: "Enter your content here...",
	}
}

// AddCard appends a placeholder card at the end of the deck.
func AddCard(ch Challenge) Challenge {
	cards := append([]ChallengeCard(nil), ch.Cards...)
	ch.Cards = append(cards, newCard(cards))
	return ch
}

// InsertCardAt splices a placeholder card in at position (0 = before the
// first card). Positions outside the deck clamp to the nearest end.
func InsertCardAt(ch Challenge, position int) Challenge {
	cards := append([]ChallengeCard(nil), ch.Cards...)
	if position < 0 {
		position = 0
	}
	if position > len(cards) {
		position = len(cards)
	}
	card := newCard(cards)
	cards = append(cards[:position], append([]ChallengeCard{card}, cards[position:]...)...)
	ch.Cards = cards
	return ch
}

// RemoveCard drops the card at index. Remaining ids are not renumbered.
func RemoveCard(ch Challenge, index int) Challenge {
	if index < 0 || index >= len(ch.Cards) {
		return ch
	}
	cards := append([]ChallengeCard(nil), ch.Cards[:index]...)
	ch.Cards = append(cards, ch.Cards[index+1:]...)
	return ch
}

const (
	MoveUp   = "up"
	MoveDown = "down"
)

// MoveCard swaps the card at index with its neighbor in the given
// direction. Moving past either end returns the challenge unchanged.
func MoveCard(ch Challenge, index int, direction string) Challenge {
	to := index + 1
	if direction == MoveUp {
		to = index - 1
	}
	if index < 0 || index >= len(ch.Cards) || to < 0 || to >= len(ch.Cards) {
		return ch
	}
	cards := append([]ChallengeCard(nil), ch.Cards...)
	cards[index], cards[to] = cards[to], cards[index]
	ch.Cards = cards
	return ch
}

// UpdateCardField replaces one field of the card at index. Unknown fields
// and out-of-range indexes leave the challenge unchanged; the card id is
// not editable.
func UpdateCardField(ch Challenge, index int, field string, value any) Challenge {
	if index < 0 || index >= len(ch.Cards) {
		return ch
	}
	cards := append([]ChallengeCard(nil), ch.Cards...)
	card := cards[index]
	switch field {
	case "type":
		card.Type = toString(value)
	case "title":
		card.Title = toString(value)
	case "content":
		card.Content = toString(value)
	case "buttonText":
		card.ButtonText = toString(value)
	case "imageUrl":
		card.ImageURL = toString(value)
	default:
		return ch
	}
	cards[index] = card
	ch.Cards = cards
	return ch
}

// AddNotification appends a reminder slotted after the last existing one:
// none yet gives morning/9, morning gives afternoon/14, afternoon gives
// evening/19. An evening tail rolls back to morning/9 rather than
// advancing, so repeated adds past three entries alternate from morning
// again. No hour/bucket consistency is enforced here or anywhere else.
func AddNotification(ch Challenge) Challenge {
	nextTime := TimeMorning
	nextHour := 9
	if n := len(ch.Notifications); n > 0 {
		switch ch.Notifications[n-1].Time {
		case TimeMorning:
			nextTime = TimeAfternoon
			nextHour = 14
		case TimeAfternoon:
			nextTime = TimeEvening
			nextHour = 19
		}
	}
	notifs := append([]NotificationMessage(nil), ch.Notifications...)
	ch.Notifications = append(notifs, NotificationMessage{
		Time:  nextTime,
		Hour:  nextHour,
		Title: fmt.Sprintf("Day %d %s", ch.Day, capitalize(nextTime)),
		Body:  "Enter notification message here...",
	})
	return ch
}

// UpdateNotificationField replaces one field of the notification at index.
func UpdateNotificationField(ch Challenge, index int, field string, value any) Challenge {
	if index < 0 || index >= len(ch.Notifications) {
		return ch
	}
	notifs := append([]NotificationMessage(nil), ch.Notifications...)
	notif := notifs[index]
	switch field {
	case "time":
		notif.Time = toString(value)
	case "hour":
		notif.Hour = toInt(value)
	case "title":
		notif.Title = toString(value)
	case "body":
		notif.Body = toString(value)
	default:
		return ch
	}
	notifs[index] = notif
	ch.Notifications = notifs
	return ch
}

// RemoveNotification drops the notification at index.
func RemoveNotification(ch Challenge, index int) Challenge {
	if index < 0 || index >= len(ch.Notifications) {
		return ch
	}
	notifs := append([]NotificationMessage(nil), ch.Notifications[:index]...)
	ch.Notifications = append(notifs, ch.Notifications[index+1:]...)
	return ch
}

// HourPreview renders the 12-hour label shown next to the hour input. It
// derives from the hour alone and ignores the time bucket.
func HourPreview(hour int) string {
	switch {
	case hour == 0:
		return "12:00 AM"
	case hour < 12:
		return fmt.Sprintf("%d:00 AM", hour)
	case hour == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", hour-12)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func toInt(v any) int {
	switch t := v.(type) {
	case int:
		return t
	case float64:
		return int(t)
	default:
		return 0
	}
}
