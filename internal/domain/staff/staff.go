package staff

import (
	"time"

	"github.com/google/uuid"
)

type Availability string

const (
	Available Availability = "available"
	Busy      Availability = "busy"
	Offline   Availability = "offline"
)

// BusyLoadThreshold is the load percentage above which an on-shift staff
// member is reported as busy rather than available.
const BusyLoadThreshold = 80

// LoadPerActiveTask converts an active-task count into load percentage.
// Five concurrent tasks saturate a staff member.
const LoadPerActiveTask = 20

// Performance holds the three 0–100 performance dimensions tracked per staff member.
type Performance struct {
	Efficiency float64 `json:"efficiency"`
	Quality    float64 `json:"quality"`
	Speed      float64 `json:"speed"`
}

// Average returns the mean of the three performance dimensions.
func (p Performance) Average() float64 {
	return (p.Efficiency + p.Quality + p.Speed) / 3
}

type Staff struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Role        string      `json:"role"`
	CurrentLoad float64     `json:"current_load"` // 0–100, derived from active task count
	OnShift     bool        `json:"on_shift"`
	Skills      []string    `json:"skills"`
	Performance Performance `json:"performance"`
	Location    string      `json:"location"`
	CreatedAt   time.Time   `json:"created_at"`
}

func New(name, role, location string, skills []string, perf Performance) Staff {
	return Staff{
		ID:          uuid.New(),
		Name:        name,
		Role:        role,
		OnShift:     true,
		Skills:      skills,
		Performance: perf,
		Location:    location,
		CreatedAt:   time.Now().UTC(),
	}
}

// Availability derives the staff member's availability from shift state and load.
// Off-shift staff are offline regardless of load.
func (s Staff) Availability() Availability {
	switch {
	case !s.OnShift:
		return Offline
	case s.CurrentLoad > BusyLoadThreshold:
		return Busy
	default:
		return Available
	}
}

func (s Staff) HasSkill(skill string) bool {
	for _, have := range s.Skills {
		if have == skill {
			return true
		}
	}
	return false
}

// MatchedSkills counts how many of the required skills the staff member holds.
func (s Staff) MatchedSkills(required []string) int {
	matched := 0
	for _, req := range required {
		if s.HasSkill(req) {
			matched++
		}
	}
	return matched
}

type ListFilters struct {
	Role     *string
	Location *string
	OnShift  *bool
}
