// Package catalog defines the read-only exercise catalog entries consumed by
// context resolution and exercise-identity resolution.
package catalog

import (
	"errors"
	"strings"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found in catalog")
	ErrEmptyCatalog     = errors.New("exercise catalog is empty")
)

// Entry is a single immutable exercise catalog record, loaded once at
// startup. MediaURL points at demonstration media and must be non-empty for
// an entry to be eligible as a resolution target.
type Entry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	BodyPart      string   `json:"body_part"`
	TargetMuscles []string `json:"target_muscles"`
	Equipment     string   `json:"equipment"`
	MediaURL      string   `json:"media_url"`
}

// HasMedia reports whether the entry carries demonstration media
func (e Entry) HasMedia() bool {
	return e.MediaURL != ""
}

// MuscleSet returns the target muscles as a normalized lookup set
func (e Entry) MuscleSet() map[string]struct{} {
	set := make(map[string]struct{}, len(e.TargetMuscles))
	for _, m := range e.TargetMuscles {
		set[strings.ToLower(strings.TrimSpace(m))] = struct{}{}
	}
	return set
}

// MatchesEquipment reports whether the entry can be performed with the given
// equipment list. Bodyweight entries need no equipment at all.
func (e Entry) MatchesEquipment(available []string) bool {
	eq := strings.ToLower(strings.TrimSpace(e.Equipment))
	if eq == "" || eq == "body weight" || eq == "bodyweight" || eq == "none" {
		return true
	}
	for _, a := range available {
		if strings.EqualFold(strings.TrimSpace(a), eq) {
			return true
		}
	}
	return false
}
