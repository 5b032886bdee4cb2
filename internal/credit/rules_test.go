package credit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRulesLookup(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name      string
		key       string
		wantDelta int64
		wantOk    bool
	}{
		{
			name:      "upvote sticker",
			key:       "AgADBQADmKo0Gw",
			wantDelta: 20,
			wantOk:    true,
		},
		{
			name:      "upvote sticker alias maps to the same delta",
			key:       "AgADBAADoKo0Gw",
			wantDelta: 20,
			wantOk:    true,
		},
		{
			name:      "downvote sticker",
			key:       "AgADBgADmao0Gw",
			wantDelta: -20,
			wantOk:    true,
		},
		{
			name:      "thumbs up reaction",
			key:       ReactionKey("👍"),
			wantDelta: 20,
			wantOk:    true,
		},
		{
			name:      "thumbs down reaction",
			key:       ReactionKey("👎"),
			wantDelta: -20,
			wantOk:    true,
		},
		{
			name:   "unknown sticker",
			key:    "AgADunknown",
			wantOk: false,
		},
		{
			name:   "unknown reaction",
			key:    ReactionKey("🤷"),
			wantOk: false,
		},
		{
			name:   "raw emoji without reaction prefix",
			key:    "👍",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta, ok := rules.Delta(tt.key)
			if ok != tt.wantOk {
				t.Errorf("Delta(%q) ok = %v, want %v", tt.key, ok, tt.wantOk)
				return
			}
			if ok && delta != tt.wantDelta {
				t.Errorf("Delta(%q) = %d, want %d", tt.key, delta, tt.wantDelta)
			}
		})
	}
}

func TestLoadRulesEmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("LoadRules(\"\") returned error: %v", err)
	}
	if rules.Len() != DefaultRules().Len() {
		t.Errorf("Expected default table, got %d rules", rules.Len())
	}
}

func TestLoadRulesReplacesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	content := `[
		{"key": "stickerA", "delta": 5},
		{"key": "stickerB", "delta": 5},
		{"key": "reaction:❤️", "delta": -10}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules returned error: %v", err)
	}

	if rules.Len() != 3 {
		t.Errorf("Expected 3 rules, got %d", rules.Len())
	}
	if delta, ok := rules.Delta("stickerA"); !ok || delta != 5 {
		t.Errorf("Delta(stickerA) = %d, %v; want 5, true", delta, ok)
	}
	if delta, ok := rules.Delta(ReactionKey("❤️")); !ok || delta != -10 {
		t.Errorf("Delta(reaction:❤️) = %d, %v; want -10, true", delta, ok)
	}
	// Defaults must be gone after wholesale replacement
	if _, ok := rules.Delta("AgADBQADmKo0Gw"); ok {
		t.Error("Default sticker survived a rules file replacement")
	}
}

func TestLoadRulesRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(empty); err == nil {
		t.Error("Expected error for empty rules file")
	}

	badKey := filepath.Join(dir, "badkey.json")
	if err := os.WriteFile(badKey, []byte(`[{"key": "", "delta": 1}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRules(badKey); err == nil {
		t.Error("Expected error for empty key")
	}

	if _, err := LoadRules(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
