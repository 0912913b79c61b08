package domain

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// CurriculumEntry is the fixed topic record for one day of the journey.
type CurriculumEntry struct {
	Day        int        `json:"day" validate:"min=1"`
	Topic      string     `json:"topic" validate:"required"`
	Category   string     `json:"category" validate:"required"`
	Difficulty Difficulty `json:"difficulty" validate:"oneof=Beginner Intermediate Advanced"`
	KeyPoints  []string   `json:"key_points"`
	StoryAngle string     `json:"story_angle"`
}

type Curriculum struct {
	Entries []CurriculumEntry `json:"curriculum" validate:"dive"`
}
