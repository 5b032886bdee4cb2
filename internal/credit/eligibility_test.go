package credit

import "testing"

func TestGuardCheck(t *testing.T) {
	guard := NewGuard([]string{"svc-account", "anon-admin"})

	tests := []struct {
		name string
		ev   Event
		want Denial
	}{
		{
			name: "regular signal allowed",
			ev:   Event{SenderID: "alice", TargetID: "bob", HasTarget: true},
			want: DenialNone,
		},
		{
			name: "sticker without reply target",
			ev:   Event{SenderID: "alice", HasTarget: false},
			want: DenialNoTarget,
		},
		{
			name: "excluded sender",
			ev:   Event{SenderID: "anon-admin", TargetID: "bob", HasTarget: true},
			want: DenialSenderExcluded,
		},
		{
			name: "self vote",
			ev:   Event{SenderID: "bob", TargetID: "bob", HasTarget: true},
			want: DenialSelfVote,
		},
		{
			name: "bot target",
			ev:   Event{SenderID: "alice", TargetID: "beep", HasTarget: true, TargetIsBot: true},
			want: DenialBotTarget,
		},
		{
			name: "excluded sender even when target otherwise eligible",
			ev:   Event{SenderID: "svc-account", TargetID: "bob", HasTarget: true},
			want: DenialSenderExcluded,
		},
		{
			name: "missing target reported before excluded sender",
			ev:   Event{SenderID: "anon-admin", HasTarget: false},
			want: DenialNoTarget,
		},
		{
			name: "excluded sender reported before self vote",
			ev:   Event{SenderID: "anon-admin", TargetID: "anon-admin", HasTarget: true},
			want: DenialSenderExcluded,
		},
		{
			name: "self vote reported before bot target",
			ev:   Event{SenderID: "beep", TargetID: "beep", HasTarget: true, TargetIsBot: true},
			want: DenialSelfVote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := guard.Check(tt.ev); got != tt.want {
				t.Errorf("Check() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGuardWithoutExclusions(t *testing.T) {
	guard := NewGuard(nil)
	ev := Event{SenderID: "alice", TargetID: "bob", HasTarget: true}
	if got := guard.Check(ev); got != DenialNone {
		t.Errorf("Check() = %q, want allowed", got)
	}
}
