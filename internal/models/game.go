package models

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// GameInfo is one record of the upstream game-metrics resource.
type GameInfo struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Playing        NullInt `json:"playing"`
	Visits         NullInt `json:"visits"`
	FavoritedCount NullInt `json:"favoritedCount"`
}

// UnmarshalJSON accepts the id as a number or a numeric string.
func (g *GameInfo) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             upstreamID `json:"id"`
		Name           string     `json:"name"`
		Playing        NullInt    `json:"playing"`
		Visits         NullInt    `json:"visits"`
		FavoritedCount NullInt    `json:"favoritedCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = GameInfo{
		ID:             int64(raw.ID),
		Name:           raw.Name,
		Playing:        raw.Playing,
		Visits:         raw.Visits,
		FavoritedCount: raw.FavoritedCount,
	}
	return nil
}

// GameVotes is one record of the upstream votes resource.
type GameVotes struct {
	ID        int64   `json:"id"`
	UpVotes   NullInt `json:"upVotes"`
	DownVotes NullInt `json:"downVotes"`
}

// UnmarshalJSON accepts the id as a number or a numeric string.
func (v *GameVotes) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        upstreamID `json:"id"`
		UpVotes   NullInt    `json:"upVotes"`
		DownVotes NullInt    `json:"downVotes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = GameVotes{
		ID:        int64(raw.ID),
		UpVotes:   raw.UpVotes,
		DownVotes: raw.DownVotes,
	}
	return nil
}

// upstreamID decodes an entity id sent as a number or a numeric string.
// null decodes to zero. Anything else is an error.
type upstreamID int64

func (id *upstreamID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	n := ParseNullInt(string(bytes.Trim(data, `"`)))
	if !n.Valid {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = upstreamID(n.Int64)
	return nil
}

// Group is the subset of the upstream group resource the proxy exposes.
type Group struct {
	MemberCount NullInt `json:"memberCount"`
}

// GameMetric is the normalized record returned for every game.
type GameMetric struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Playing        NullInt `json:"playing"`
	Visits         NullInt `json:"visits"`
	FavoritedCount NullInt `json:"favoritedCount"`
	PeakPlaying    int64   `json:"peakPlaying"`
	UpVotes        NullInt `json:"upVotes"`
	DownVotes      NullInt `json:"downVotes"`
}
