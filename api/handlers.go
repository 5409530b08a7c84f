package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	clubcacheservice "github.com/Black-And-White-Club/club-mirror/app/modules/clubcache/application"
	"github.com/Black-And-White-Club/club-mirror/clubstate"
	"github.com/Black-And-White-Club/club-mirror/internal/snowflake"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func idParam(r *http.Request, name string) (snowflake.ID, bool) {
	id, err := snowflake.Parse(chi.URLParam(r, name))
	return id, err == nil
}

func mapNotFound(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, clubcacheservice.ErrClubNotFound),
		errors.Is(err, clubcacheservice.ErrChannelNotFound),
		errors.Is(err, clubcacheservice.ErrMemberNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleClubSnapshot(w http.ResponseWriter, r *http.Request) {
	clubID, ok := idParam(r, "clubID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid club id")
		return
	}

	raw, err := s.service.ClubSnapshot(r.Context(), clubID)
	if err != nil {
		mapNotFound(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

type permissionsResponse struct {
	Scope       string       `json:"scope"`
	ClubID      snowflake.ID `json:"club_id"`
	ChannelID   snowflake.ID `json:"channel_id,omitempty"`
	MemberID    snowflake.ID `json:"member_id"`
	Permissions uint64       `json:"permissions"`
}

// handlePermissions resolves club-scope permissions, or channel-scope when
// the channel_id query parameter is present.
func (s *Server) handlePermissions(w http.ResponseWriter, r *http.Request) {
	clubID, ok := idParam(r, "clubID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid club id")
		return
	}
	memberID, ok := idParam(r, "memberID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}

	resp := permissionsResponse{
		Scope:    "club",
		ClubID:   clubID,
		MemberID: memberID,
	}

	var perms clubstate.Permissions
	var err error
	if raw := r.URL.Query().Get("channel_id"); raw != "" {
		channelID, parseErr := snowflake.Parse(raw)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "invalid channel id")
			return
		}
		resp.Scope = "channel"
		resp.ChannelID = channelID
		perms, err = s.service.ResolveChannelPermissions(r.Context(), clubID, channelID, memberID)
	} else {
		perms, err = s.service.ResolveClubPermissions(r.Context(), clubID, memberID)
	}
	if err != nil {
		mapNotFound(w, err)
		return
	}

	resp.Permissions = uint64(perms)
	writeJSON(w, resp)
}
