package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sskmsk/creditbot/internal/db"
)

// Public handlers

func (a *API) handleListScores(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guildID := vars["guild_id"]

	scores, err := a.db.ListGuildScores(r.Context(), guildID)
	if err != nil {
		http.Error(w, "failed to list scores", http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []db.Score{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scores)
}

func (a *API) handleGetScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	guildID := vars["guild_id"]
	userID := vars["user_id"]

	score, err := a.db.GetScore(r.Context(), guildID, userID)
	if err != nil {
		http.Error(w, "failed to get score", http.StatusInternalServerError)
		return
	}
	if score == nil {
		http.Error(w, "score not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(score)
}

// Protected handlers

func (a *API) handleUserGuilds(w http.ResponseWriter, r *http.Request) {
	claims := r.Context().Value("claims").(*Claims)

	guilds, err := a.getDiscordGuilds(claims.AccessToken)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to get guilds: %v", err), http.StatusBadGateway)
		return
	}

	// Guilds that actually have score records
	registeredIDs, err := a.db.GetRegisteredGuildIDs(context.Background())
	if err != nil {
		http.Error(w, "failed to get registered guilds", http.StatusInternalServerError)
		return
	}

	registeredMap := make(map[string]bool)
	for _, id := range registeredIDs {
		registeredMap[id] = true
	}

	var filtered []DiscordGuild
	for _, guild := range guilds {
		if registeredMap[guild.ID] {
			filtered = append(filtered, guild)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filtered)
}
