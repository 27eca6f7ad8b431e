// Package models defines the client-side record types: predictions,
// survey records, profiles and badges.
package models

import (
	"strconv"

	json "github.com/goccy/go-json"
)

// Career is one ranked suggestion returned by the prediction endpoint.
type Career struct {
	Career string  `json:"career"`
	Score  float64 `json:"score"`
}

// UnmarshalJSON accepts both "score" and the backend's older "match_score"
// field name.
func (c *Career) UnmarshalJSON(data []byte) error {
	var aux struct {
		Career     string   `json:"career"`
		Score      *float64 `json:"score"`
		MatchScore *float64 `json:"match_score"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.Career = aux.Career
	switch {
	case aux.Score != nil:
		c.Score = *aux.Score
	case aux.MatchScore != nil:
		c.Score = *aux.MatchScore
	}
	return nil
}

// Prediction is the full result of one prediction call.
type Prediction struct {
	UserID    string   `json:"user_id"`
	Careers   []Career `json:"careers"`
	Reasoning string   `json:"reasoning"`
	Roadmap   []string `json:"roadmap"`
}

// FormatScore renders a score the way the original UI did: no trailing
// zeros, integers without a decimal point (0.9 -> "0.9", 3 -> "3").
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
