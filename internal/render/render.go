// Package render turns ledger results into user-facing Discord messages.
// Everything here is a pure function of its inputs; random flavor selection
// goes through an injectable Picker so tests stay deterministic.
package render

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sskmsk/creditbot/internal/credit"
	"github.com/sskmsk/creditbot/internal/db"
)

// Picker selects an index in [0, n). Nil means math/rand.
type Picker func(n int) int

func pick(p Picker, n int) int {
	if p == nil {
		return rand.Intn(n)
	}
	return p(n)
}

// Fixed user-facing strings.
const (
	ApologyMessage          = "Something went wrong on my end. Please try again later."
	NotRegisteredMessage    = "You don't have a credit score yet. Run /start to register."
	EmptyLeaderboardMessage = "No credit scores in this server yet. Hand out some stickers!"
)

var denialMessages = map[credit.Denial]string{
	credit.DenialNoTarget:       "Reply to someone's message to change their credit score.",
	credit.DenialSenderExcluded: "You are not allowed to hand out social credit.",
	credit.DenialSelfVote:       "Nice try, but you can't vote on your own credit score.",
	credit.DenialBotTarget:      "Bots are beyond the credit system.",
}

// DenialMessage maps an eligibility denial to its fixed reply.
func DenialMessage(reason credit.Denial) string {
	return denialMessages[reason]
}

// ScoreEmoji picks the band emoji for a score, checking thresholds from the
// top down.
func ScoreEmoji(score int64) string {
	switch {
	case score > 100:
		return "🏆"
	case score > 50:
		return "🌟"
	case score > 0:
		return "🎯"
	case score < -50:
		return "⚠️"
	default:
		return "😅"
	}
}

var (
	topRankComments = map[int]string{
		1: "Absolute legend of this server!",
		2: "So close to the top!",
		3: "On the podium!",
	}

	highScoreComments = []string{
		"The social credit system smiles upon you.",
		"A model citizen!",
		"Keep up the good work, comrade.",
	}
	lowScoreComments = []string{
		"The party is disappointed.",
		"Re-education may be required.",
		"Your ration card privileges are at risk.",
	}
	neutralComments = []string{
		"Plenty of room to grow.",
		"Every journey starts somewhere.",
		"The ledger is watching.",
	}
)

// flavor picks a comment for a score/rank pair: fixed superlatives for the
// podium, otherwise a random line from the matching score band.
func flavor(score int64, rank int, p Picker) string {
	if comment, ok := topRankComments[rank]; ok {
		return comment
	}
	var pool []string
	switch {
	case score > 50:
		pool = highScoreComments
	case score < -50:
		pool = lowScoreComments
	default:
		pool = neutralComments
	}
	return pool[pick(p, len(pool))]
}

// UpdateReply renders the response to an applied signal.
func UpdateReply(name string, delta int64, res *credit.UpdateResult, p Picker) string {
	verb := "gained"
	amount := delta
	if delta < 0 {
		verb = "lost"
		amount = -delta
	}
	return fmt.Sprintf("%s %s %s %d social credit! Current score: %d (rank #%d)\n%s",
		ScoreEmoji(res.NewScore), name, verb, amount, res.NewScore, res.Rank,
		flavor(res.NewScore, res.Rank, p))
}

// ScoreReply renders the /start and /score response.
func ScoreReply(name string, res *credit.UpdateResult, p Picker) string {
	return fmt.Sprintf("%s %s, your credit score is %d (rank #%d)\n%s",
		ScoreEmoji(res.NewScore), name, res.NewScore, res.Rank,
		flavor(res.NewScore, res.Rank, p))
}

var medals = [3]string{"🥇", "🥈", "🥉"}

// Leaderboard renders the top scores of a guild, medals for the podium and
// ordinals after.
func Leaderboard(scores []db.Score) string {
	var b strings.Builder
	b.WriteString("📊 Social credit leaderboard\n")
	for i, sc := range scores {
		name := sc.DisplayName
		if name == "" {
			name = sc.UserID
		}
		if i < len(medals) {
			fmt.Fprintf(&b, "%s %s — %d\n", medals[i], name, sc.Score)
		} else {
			fmt.Fprintf(&b, "%d. %s — %d\n", i+1, name, sc.Score)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
