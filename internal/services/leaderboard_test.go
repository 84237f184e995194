package services

import (
	"fmt"
	"testing"

	"janamat/internal/models"

	"gorm.io/gorm"
)

// seedNet inserts enough distinct-voter rows to give the leader the
// requested net score.
func seedNet(t *testing.T, conn *gorm.DB, leaderID uint, net int) {
	t.Helper()

	voteType := models.VoteUp
	if net < 0 {
		voteType = models.VoteDown
		net = -net
	}
	for i := 0; i < net; i++ {
		vote := models.LeaderVote{
			LeaderID: leaderID,
			VoterID:  fmt.Sprintf("voter-%d-%d", leaderID, i),
			VoteType: voteType,
		}
		if err := conn.Create(&vote).Error; err != nil {
			t.Fatalf("Failed to insert vote: %v", err)
		}
	}
}

func TestRankOrderAndTieBreak(t *testing.T) {
	conn := testDB(t)
	votes := NewVoteService(conn)
	leaderboard := NewLeaderboardService(conn, votes)

	// Insertion order picked so that ranking cannot accidentally match
	// creation order. Nets: a=3, b=5, c=5, d=-1.
	a := createLeader(t, conn, "Leader A")
	b := createLeader(t, conn, "Leader B")
	c := createLeader(t, conn, "Leader C")
	d := createLeader(t, conn, "Leader D")
	seedNet(t, conn, a.ID, 3)
	seedNet(t, conn, b.ID, 5)
	seedNet(t, conn, c.ID, 5)
	seedNet(t, conn, d.ID, -1)

	ranked, err := leaderboard.Rank(10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 4 {
		t.Fatalf("Expected 4 ranked leaders, got %d", len(ranked))
	}

	// Ties resolve to the lower ID, so b comes before c.
	wantOrder := []uint{b.ID, c.ID, a.ID, d.ID}
	for i, want := range wantOrder {
		if ranked[i].ID != want {
			t.Errorf("Position %d: expected leader %d, got %d (net %d)", i, want, ranked[i].ID, ranked[i].Votes.Net)
		}
	}

	if ranked[0].Votes.Net != 5 || ranked[3].Votes.Net != -1 {
		t.Errorf("Expected nets 5 and -1 at the extremes, got %d and %d", ranked[0].Votes.Net, ranked[3].Votes.Net)
	}
}

func TestRankLimit(t *testing.T) {
	conn := testDB(t)
	votes := NewVoteService(conn)
	leaderboard := NewLeaderboardService(conn, votes)

	for i := 0; i < 5; i++ {
		leader := createLeader(t, conn, fmt.Sprintf("Leader %d", i))
		seedNet(t, conn, leader.ID, i+1)
	}

	ranked, err := leaderboard.Rank(2)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 ranked leaders, got %d", len(ranked))
	}
	if ranked[0].Votes.Net != 5 || ranked[1].Votes.Net != 4 {
		t.Errorf("Expected top nets [5 4], got [%d %d]", ranked[0].Votes.Net, ranked[1].Votes.Net)
	}

	// A non-positive limit falls back to the default page size.
	ranked, err = leaderboard.Rank(0)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if len(ranked) != 5 {
		t.Errorf("Expected all 5 leaders under the default limit, got %d", len(ranked))
	}
}

func TestRankReflectsRetraction(t *testing.T) {
	conn := testDB(t)
	votes := NewVoteService(conn)
	leaderboard := NewLeaderboardService(conn, votes)

	first := createLeader(t, conn, "First")
	second := createLeader(t, conn, "Second")

	if _, err := votes.Cast(TargetLeader, first.ID, "voter-a", models.VoteUp); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if _, err := votes.Cast(TargetLeader, second.ID, "voter-a", models.VoteUp); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if _, err := votes.Cast(TargetLeader, second.ID, "voter-b", models.VoteUp); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}

	ranked, err := leaderboard.Rank(10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != second.ID {
		t.Fatalf("Expected leader %d on top, got %d", second.ID, ranked[0].ID)
	}

	// Retract both of second's upvotes; first should overtake on the
	// next recomputation.
	if _, err := votes.Cast(TargetLeader, second.ID, "voter-a", models.VoteUp); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if _, err := votes.Cast(TargetLeader, second.ID, "voter-b", models.VoteUp); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}

	ranked, err = leaderboard.Rank(10)
	if err != nil {
		t.Fatalf("Rank failed: %v", err)
	}
	if ranked[0].ID != first.ID {
		t.Errorf("Expected leader %d on top after retraction, got %d", first.ID, ranked[0].ID)
	}
	if ranked[1].Votes.Net != 0 {
		t.Errorf("Expected retracted leader net 0, got %d", ranked[1].Votes.Net)
	}
}
