package credit

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rules maps a signal key to its score delta. A key is either a sticker file
// unique ID, or "reaction:<emoji>" for emoji reactions. Several keys may
// alias the same delta (sticker packs get re-uploaded and every revision
// keeps its old IDs working). The table is built once at startup and read
// only afterwards.
type Rules struct {
	deltas map[string]int64
}

// ReactionKey builds the rule key for an emoji reaction.
func ReactionKey(emoji string) string {
	return "reaction:" + emoji
}

// Delta looks up the delta for a signal key. The second return is false when
// the key carries no score effect; callers must treat that as a silent no-op.
func (r *Rules) Delta(key string) (int64, bool) {
	delta, ok := r.deltas[key]
	return delta, ok
}

// Len reports the number of configured signal keys.
func (r *Rules) Len() int {
	return len(r.deltas)
}

// DefaultRules returns the built-in signal table: the accumulated upvote and
// downvote sticker IDs plus the thumbs reactions.
func DefaultRules() *Rules {
	return &Rules{deltas: map[string]int64{
		// upvote stickers (aliases of +20)
		"AgADBQADmKo0Gw":     20,
		"AgADBAADoKo0Gw":     20,
		"AgADAwADpqo0Gw":     20,
		"CAACAgIAAxkBAmKo0h": 20,
		// downvote stickers (aliases of -20)
		"AgADBgADmao0Gw":     -20,
		"AgADBwADn6o0Gw":     -20,
		"CAACAgIAAxkBAmao0h": -20,
		// reactions
		ReactionKey("👍"): 20,
		ReactionKey("👎"): -20,
	}}
}

type signalRule struct {
	Key   string `json:"key"`
	Delta int64  `json:"delta"`
}

// LoadRules reads a JSON rule file (an array of {"key", "delta"} objects)
// and returns a table built from it, replacing the defaults wholesale.
// An empty path returns the defaults.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read signal rules: %w", err)
	}

	var entries []signalRule
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse signal rules: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("signal rules file %s defines no rules", path)
	}

	deltas := make(map[string]int64, len(entries))
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("signal rules file %s contains an empty key", path)
		}
		deltas[e.Key] = e.Delta
	}
	return &Rules{deltas: deltas}, nil
}
