package models

import (
	"errors"
	"strings"
)

// EducationOptions is the fixed choice list for the education field.
var EducationOptions = []string{
	"High School",
	"Associate Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"PhD",
	"Other",
}

// Ordered validation errors for the survey form. The first unsatisfied
// field wins; later fields are not inspected.
var (
	ErrSkillsRequired      = errors.New("Please enter at least one skill.")
	ErrEducationRequired   = errors.New("Please select your education.")
	ErrInterestsRequired   = errors.New("Please enter at least one interest.")
	ErrPersonalityRequired = errors.New("Please describe your personality.")
	ErrGoalsRequired       = errors.New("Please enter your goals.")
)

// SurveyInput holds the raw form values as entered by the user. Skills and
// interests are comma-separated lists; personality and goals are free text.
type SurveyInput struct {
	Skills      string
	Education   string
	Interests   string
	Personality string
	Goals       string
}

// StepNames label the survey wizard steps, in validation order.
var StepNames = []string{"Skills", "Education", "Interests", "Personality", "Goals"}

// Validate checks the fields in the fixed order skills -> education ->
// interests -> personality -> goals and returns the first failing rule's
// message. A nil result means the form is complete.
func (s SurveyInput) Validate() error {
	if strings.TrimSpace(s.Skills) == "" {
		return ErrSkillsRequired
	}
	if s.Education == "" {
		return ErrEducationRequired
	}
	if strings.TrimSpace(s.Interests) == "" {
		return ErrInterestsRequired
	}
	if strings.TrimSpace(s.Personality) == "" {
		return ErrPersonalityRequired
	}
	if strings.TrimSpace(s.Goals) == "" {
		return ErrGoalsRequired
	}
	return nil
}

// Step reports the 0-based index of the first currently-unsatisfied field.
// It drives the progress display only; fields stay editable in any order.
// A fully satisfied form reports len(StepNames).
func (s SurveyInput) Step() int {
	switch {
	case strings.TrimSpace(s.Skills) == "":
		return 0
	case s.Education == "":
		return 1
	case strings.TrimSpace(s.Interests) == "":
		return 2
	case strings.TrimSpace(s.Personality) == "":
		return 3
	case strings.TrimSpace(s.Goals) == "":
		return 4
	}
	return len(StepNames)
}

// SplitList turns a comma-separated string into a trimmed list with empty
// entries dropped, preserving order.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// SurveyPayload is the normalized request body for the prediction endpoint.
type SurveyPayload struct {
	UserID      string   `json:"user_id"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
	Interests   []string `json:"interests"`
	Personality string   `json:"personality"`
	Goals       string   `json:"goals"`
}

// Normalize builds the request payload: lists are trimmed, split and
// empty-entry-filtered; personality and goals pass through raw.
func (s SurveyInput) Normalize(userID string) SurveyPayload {
	return SurveyPayload{
		UserID:      userID,
		Skills:      SplitList(s.Skills),
		Education:   s.Education,
		Interests:   SplitList(s.Interests),
		Personality: s.Personality,
		Goals:       s.Goals,
	}
}

// SurveyRecord is one completed survey submission and its result, as stored
// in the local history.
type SurveyRecord struct {
	ID          string
	UserID      string
	Date        string
	Skills      []string
	Education   string
	Interests   []string
	Personality string
	Goals       string
	Careers     []Career
}

// TopCareer returns the name of the highest-ranked suggestion, or "-" when
// the record carries none.
func (r SurveyRecord) TopCareer() string {
	if len(r.Careers) == 0 {
		return "-"
	}
	return r.Careers[0].Career
}
