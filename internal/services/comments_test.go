package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"janamat/internal/models"
)

func TestAppendAndListOrdering(t *testing.T) {
	conn := testDB(t)
	comments := NewCommentService(conn)
	leader := createLeader(t, conn, "Sita Lama")

	// Insert out of chronological order; List must sort by time.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for _, c := range []models.Comment{
		{LeaderID: &leader.ID, AuthorID: "anon:a", DisplayName: "A", Body: "second", CreatedAt: base.Add(time.Minute)},
		{LeaderID: &leader.ID, AuthorID: "anon:b", DisplayName: "B", Body: "third", CreatedAt: base.Add(2 * time.Minute)},
		{LeaderID: &leader.ID, AuthorID: "anon:c", DisplayName: "C", Body: "first", CreatedAt: base},
	} {
		if err := conn.Create(&c).Error; err != nil {
			t.Fatalf("Failed to insert comment: %v", err)
		}
	}

	list, err := comments.List(&leader.ID, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 comments, got %d", len(list))
	}
	for i, want := range []string{"first", "second", "third"} {
		if list[i].Body != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, list[i].Body)
		}
	}

	// Append returns the refreshed list with the new comment last.
	list, err = comments.Append(&leader.ID, nil, "anon:d", "D", "fourth")
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if len(list) != 4 || list[3].Body != "fourth" {
		t.Errorf("Expected appended comment at the tail, got %+v", list)
	}
}

func TestAppendLengthBounds(t *testing.T) {
	conn := testDB(t)
	comments := NewCommentService(conn)
	leader := createLeader(t, conn, "Hari Sharma")

	if _, err := comments.Append(&leader.ID, nil, "anon:a", "A", ""); !errors.Is(err, ErrEmptyBody) {
		t.Errorf("Expected ErrEmptyBody, got %v", err)
	}

	// Length is counted in runes, so 1000 multi-byte characters pass.
	atLimit := strings.Repeat("न", MaxCommentLength)
	if _, err := comments.Append(&leader.ID, nil, "anon:a", "A", atLimit); err != nil {
		t.Errorf("Expected %d-rune body to pass, got %v", MaxCommentLength, err)
	}

	over := strings.Repeat("x", MaxCommentLength+1)
	if _, err := comments.Append(&leader.ID, nil, "anon:a", "A", over); !errors.Is(err, ErrBodyTooLong) {
		t.Errorf("Expected ErrBodyTooLong, got %v", err)
	}
}

func TestAppendTargetExclusivity(t *testing.T) {
	conn := testDB(t)
	comments := NewCommentService(conn)
	leader := createLeader(t, conn, "Gita Thapa")
	agenda := createAgenda(t, conn, leader.ID, "Education Reform")

	if _, err := comments.Append(nil, nil, "anon:a", "A", "hello"); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Expected ErrInvalidTarget for no target, got %v", err)
	}
	if _, err := comments.Append(&leader.ID, &agenda.ID, "anon:a", "A", "hello"); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Expected ErrInvalidTarget for both targets, got %v", err)
	}
	if _, err := comments.List(nil, nil); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Expected ErrInvalidTarget from List, got %v", err)
	}
}

func TestCommentsScopedToTarget(t *testing.T) {
	conn := testDB(t)
	comments := NewCommentService(conn)
	leader := createLeader(t, conn, "Bipin Rai")
	agenda := createAgenda(t, conn, leader.ID, "Jobs for Youth")

	if _, err := comments.Append(&leader.ID, nil, "anon:a", "A", "on the leader"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := comments.Append(nil, &agenda.ID, "anon:a", "A", "on the agenda"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	leaderList, err := comments.List(&leader.ID, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(leaderList) != 1 || leaderList[0].Body != "on the leader" {
		t.Errorf("Expected only the leader comment, got %+v", leaderList)
	}

	agendaList, err := comments.List(nil, &agenda.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(agendaList) != 1 || agendaList[0].Body != "on the agenda" {
		t.Errorf("Expected only the agenda comment, got %+v", agendaList)
	}
}
