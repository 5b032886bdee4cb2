package render

import (
	"strings"
	"testing"

	"github.com/sskmsk/creditbot/internal/credit"
	"github.com/sskmsk/creditbot/internal/db"
)

// firstPick always selects index 0, making flavor selection deterministic.
func firstPick(n int) int { return 0 }

func TestScoreEmoji(t *testing.T) {
	tests := []struct {
		score int64
		want  string
	}{
		{150, "🏆"},
		{101, "🏆"},
		{100, "🌟"},
		{51, "🌟"},
		{50, "🎯"},
		{1, "🎯"},
		{0, "😅"},
		{-50, "😅"},
		{-51, "⚠️"},
		{-200, "⚠️"},
	}

	for _, tt := range tests {
		if got := ScoreEmoji(tt.score); got != tt.want {
			t.Errorf("ScoreEmoji(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestFlavorPodiumBeatsScoreBand(t *testing.T) {
	for rank := 1; rank <= 3; rank++ {
		got := flavor(-100, rank, firstPick)
		if got != topRankComments[rank] {
			t.Errorf("flavor(rank=%d) = %q, want podium comment", rank, got)
		}
	}
}

func TestFlavorBands(t *testing.T) {
	tests := []struct {
		name  string
		score int64
		want  string
	}{
		{"high band", 80, highScoreComments[0]},
		{"low band", -80, lowScoreComments[0]},
		{"neutral band", 10, neutralComments[0]},
		{"zero is neutral", 0, neutralComments[0]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flavor(tt.score, 5, firstPick); got != tt.want {
				t.Errorf("flavor(%d) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestUpdateReply(t *testing.T) {
	res := &credit.UpdateResult{OldScore: 80, NewScore: 100, Rank: 1}
	got := UpdateReply("Bob", 20, res, firstPick)

	for _, want := range []string{"Bob", "gained 20", "100", "#1"} {
		if !strings.Contains(got, want) {
			t.Errorf("UpdateReply missing %q: %s", want, got)
		}
	}
}

func TestUpdateReplyNegativeDelta(t *testing.T) {
	res := &credit.UpdateResult{OldScore: 0, NewScore: -20, Rank: 4}
	got := UpdateReply("Bob", -20, res, firstPick)

	if !strings.Contains(got, "lost 20") {
		t.Errorf("UpdateReply should report a loss of 20: %s", got)
	}
	if strings.Contains(got, "lost -20") {
		t.Errorf("UpdateReply leaked the sign: %s", got)
	}
}

func TestDenialMessages(t *testing.T) {
	reasons := []credit.Denial{
		credit.DenialNoTarget,
		credit.DenialSenderExcluded,
		credit.DenialSelfVote,
		credit.DenialBotTarget,
	}

	seen := make(map[string]credit.Denial)
	for _, reason := range reasons {
		msg := DenialMessage(reason)
		if msg == "" {
			t.Errorf("DenialMessage(%q) is empty", reason)
			continue
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("Reasons %q and %q share a message", prev, reason)
		}
		seen[msg] = reason
	}
}

func TestLeaderboard(t *testing.T) {
	scores := []db.Score{
		{UserID: "1", DisplayName: "Alice", Score: 120},
		{UserID: "2", DisplayName: "Bob", Score: 80},
		{UserID: "3", DisplayName: "Carol", Score: 40},
		{UserID: "4", DisplayName: "Dave", Score: 10},
	}

	got := Leaderboard(scores)

	for _, want := range []string{"🥇 Alice — 120", "🥈 Bob — 80", "🥉 Carol — 40", "4. Dave — 10"} {
		if !strings.Contains(got, want) {
			t.Errorf("Leaderboard missing %q:\n%s", want, got)
		}
	}
}

func TestLeaderboardFallsBackToUserID(t *testing.T) {
	got := Leaderboard([]db.Score{{UserID: "42", Score: 1}})
	if !strings.Contains(got, "42") {
		t.Errorf("Leaderboard should show the user ID when the name is empty:\n%s", got)
	}
}
