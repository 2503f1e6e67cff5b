package services

import (
	"reflect"
	"testing"
)

func deck(ids ...int) []ChallengeCard {
	cards := make([]ChallengeCard, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, ChallengeCard{ID: id, Type: "custom", Title: "Card"})
	}
	return cards
}

func TestNextCardIDSkipsGaps(t *testing.T) {
	if got := NextCardID(nil); got != 1 {
		t.Fatalf("empty deck: got %d, want 1", got)
	}
	// Deleting card 2 leaves a gap; the next id still goes past the max.
	if got := NextCardID(deck(1, 3)); got != 4 {
		t.Fatalf("gapped deck: got %d, want 4", got)
	}
}

func TestAddCardAppendsPlaceholder(t *testing.T) {
	ch := Challenge{Cards: deck(1, 2)}
	out := AddCard(ch)
	if len(out.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(out.Cards))
	}
	added := out.Cards[2]
	if added.ID != 3 || added.Type != "custom" || added.Title != "New Screen" {
		t.Fatalf("unexpected placeholder: %+v", added)
	}
	if len(ch.Cards) != 2 {
		t.Fatalf("input was mutated: %+v", ch.Cards)
	}
}

func TestInsertCardAtClampsPosition(t *testing.T) {
	ch := Challenge{Cards: deck(1, 2)}

	out := InsertCardAt(ch, 0)
	if out.Cards[0].ID != 3 {
		t.Fatalf("insert at head: got ids %v", cardIDs(out.Cards))
	}

	out = InsertCardAt(ch, -5)
	if out.Cards[0].ID != 3 {
		t.Fatalf("negative position should clamp to head, got %v", cardIDs(out.Cards))
	}

	out = InsertCardAt(ch, 99)
	if out.Cards[len(out.Cards)-1].ID != 3 {
		t.Fatalf("oversized position should clamp to tail, got %v", cardIDs(out.Cards))
	}
}

func TestRemoveCardKeepsIDs(t *testing.T) {
	ch := Challenge{Cards: deck(1, 2, 3)}
	out := RemoveCard(ch, 1)
	if !reflect.DeepEqual(cardIDs(out.Cards), []int{1, 3}) {
		t.Fatalf("got ids %v, want [1 3]", cardIDs(out.Cards))
	}
	// Out-of-range indexes are a no-op.
	out = RemoveCard(ch, 3)
	if len(out.Cards) != 3 {
		t.Fatalf("out-of-range remove changed the deck: %v", cardIDs(out.Cards))
	}
}

func TestMoveCardBoundaries(t *testing.T) {
	ch := Challenge{Cards: deck(1, 2, 3)}

	out := MoveCard(ch, 1, MoveUp)
	if !reflect.DeepEqual(cardIDs(out.Cards), []int{2, 1, 3}) {
		t.Fatalf("move up: got %v", cardIDs(out.Cards))
	}
	out = MoveCard(ch, 1, MoveDown)
	if !reflect.DeepEqual(cardIDs(out.Cards), []int{1, 3, 2}) {
		t.Fatalf("move down: got %v", cardIDs(out.Cards))
	}

	// First card up and last card down stay put.
	if out := MoveCard(ch, 0, MoveUp); !reflect.DeepEqual(cardIDs(out.Cards), []int{1, 2, 3}) {
		t.Fatalf("move first up changed the deck: %v", cardIDs(out.Cards))
	}
	if out := MoveCard(ch, 2, MoveDown); !reflect.DeepEqual(cardIDs(out.Cards), []int{1, 2, 3}) {
		t.Fatalf("move last down changed the deck: %v", cardIDs(out.Cards))
	}
}

func TestUpdateCardField(t *testing.T) {
	ch := Challenge{Cards: deck(1, 2)}

	out := UpdateCardField(ch, 0, "title", "Welcome")
	if out.Cards[0].Title != "Welcome" {
		t.Fatalf("title not updated: %+v", out.Cards[0])
	}
	if ch.Cards[0].Title != "Card" {
		t.Fatalf("input was mutated: %+v", ch.Cards[0])
	}

	out = UpdateCardField(ch, 1, "buttonText", "Go")
	if out.Cards[1].ButtonText != "Go" {
		t.Fatalf("buttonText not updated: %+v", out.Cards[1])
	}

	// The id field is not editable and unknown fields are ignored.
	out = UpdateCardField(ch, 0, "id", 99)
	if out.Cards[0].ID != 1 {
		t.Fatalf("id should not be editable: %+v", out.Cards[0])
	}
}

func TestAddNotificationRotation(t *testing.T) {
	ch := Challenge{Day: 3}

	ch = AddNotification(ch)
	ch = AddNotification(ch)
	ch = AddNotification(ch)

	want := []NotificationMessage{
		{Time: TimeMorning, Hour: 9, Title: "Day 3 Morning", Body: "Enter notification message here..."},
		{Time: TimeAfternoon, Hour: 14, Title: "Day 3 Afternoon", Body: "Enter notification message here..."},
		{Time: TimeEvening, Hour: 19, Title: "Day 3 Evening", Body: "Enter notification message here..."},
	}
	if !reflect.DeepEqual(ch.Notifications, want) {
		t.Fatalf("rotation mismatch:\n got %+v\nwant %+v", ch.Notifications, want)
	}

	// An evening tail rolls back to morning instead of advancing.
	ch = AddNotification(ch)
	last := ch.Notifications[3]
	if last.Time != TimeMorning || last.Hour != 9 {
		t.Fatalf("expected morning/9 after evening, got %+v", last)
	}
}

func TestUpdateNotificationFieldHourFromJSON(t *testing.T) {
	ch := AddNotification(Challenge{Day: 1})

	// Decoded JSON numbers arrive as float64.
	out := UpdateNotificationField(ch, 0, "hour", float64(15))
	if out.Notifications[0].Hour != 15 {
		t.Fatalf("hour not updated from float64: %+v", out.Notifications[0])
	}
	out = UpdateNotificationField(ch, 0, "time", TimeEvening)
	if out.Notifications[0].Time != TimeEvening {
		t.Fatalf("time not updated: %+v", out.Notifications[0])
	}
	// Hour and bucket can disagree; nothing reconciles them.
	out = UpdateNotificationField(out, 0, "hour", 6)
	if out.Notifications[0].Time != TimeEvening || out.Notifications[0].Hour != 6 {
		t.Fatalf("bucket/hour pair should be stored as given: %+v", out.Notifications[0])
	}
}

func TestRemoveNotification(t *testing.T) {
	ch := AddNotification(AddNotification(Challenge{Day: 1}))
	out := RemoveNotification(ch, 0)
	if len(out.Notifications) != 1 || out.Notifications[0].Time != TimeAfternoon {
		t.Fatalf("unexpected notifications after remove: %+v", out.Notifications)
	}
}

func TestHourPreview(t *testing.T) {
	cases := map[int]string{
		0:  "12:00 AM",
		9:  "9:00 AM",
		12: "12:00 PM",
		14: "2:00 PM",
		23: "11:00 PM",
	}
	for hour, want := range cases {
		if got := HourPreview(hour); got != want {
			t.Fatalf("HourPreview(%d) = %q, want %q", hour, got, want)
		}
	}
}

func cardIDs(cards []ChallengeCard) []int {
	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}
