package bot

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/sskmsk/creditbot/internal/credit"
	"github.com/sskmsk/creditbot/internal/render"
)

// recoverEvent keeps a panicking handler from taking down the session. The
// event is answered with a generic apology and the next event proceeds.
func (b *Bot) recoverEvent(channelID string) {
	if r := recover(); r != nil {
		log.Printf("Recovered from panic in event handler: %v", r)
		if channelID != "" {
			b.session.ChannelMessageSend(channelID, render.ApologyMessage)
		}
	}
}

// onMessageCreate scores sticker replies. A sticker whose ID is not in the
// rule table is ignored without any reply or record creation.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}
	if len(m.StickerItems) == 0 {
		return
	}
	defer b.recoverEvent(m.ChannelID)

	delta, ok := b.rules.Delta(m.StickerItems[0].ID)
	if !ok {
		return
	}

	ev := credit.Event{
		GuildID:  m.GuildID,
		SenderID: m.Author.ID,
	}
	if ref := m.ReferencedMessage; ref != nil && ref.Author != nil {
		ev.HasTarget = true
		ev.TargetID = ref.Author.ID
		ev.TargetName = ref.Author.Username
		ev.TargetIsBot = ref.Author.Bot
	}

	if reason := b.guard.Check(ev); reason != credit.DenialNone {
		s.ChannelMessageSendReply(m.ChannelID, render.DenialMessage(reason), m.Reference())
		return
	}

	res, err := b.credit.ApplySignal(context.Background(), ev.GuildID, ev.SenderID, ev.TargetID, ev.TargetName, delta)
	if err != nil {
		log.Printf("Failed to apply sticker signal in guild %s: %v", ev.GuildID, err)
		s.ChannelMessageSendReply(m.ChannelID, render.ApologyMessage, m.Reference())
		return
	}

	s.ChannelMessageSendReply(m.ChannelID, render.UpdateReply(ev.TargetName, delta, res, nil), m.Reference())
}

// onMessageReactionAdd scores emoji reactions. The target is resolved from
// the reacted-to message itself (fetched by its ID), never from "the latest
// message in the channel".
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" {
		return
	}

	delta, ok := b.rules.Delta(credit.ReactionKey(r.Emoji.Name))
	if !ok {
		return
	}
	defer b.recoverEvent(r.ChannelID)

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Printf("Failed to resolve reacted-to message %s: %v", r.MessageID, err)
		return
	}

	ev := credit.Event{
		GuildID:  r.GuildID,
		SenderID: r.UserID,
	}
	if msg.Author != nil {
		ev.HasTarget = true
		ev.TargetID = msg.Author.ID
		ev.TargetName = msg.Author.Username
		ev.TargetIsBot = msg.Author.Bot
	}

	if reason := b.guard.Check(ev); reason != credit.DenialNone {
		s.ChannelMessageSend(r.ChannelID, render.DenialMessage(reason))
		return
	}

	res, err := b.credit.ApplySignal(context.Background(), ev.GuildID, ev.SenderID, ev.TargetID, ev.TargetName, delta)
	if err != nil {
		log.Printf("Failed to apply reaction signal in guild %s: %v", ev.GuildID, err)
		s.ChannelMessageSend(r.ChannelID, render.ApologyMessage)
		return
	}

	s.ChannelMessageSend(r.ChannelID, render.UpdateReply(ev.TargetName, delta, res, nil))
}
