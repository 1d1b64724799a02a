package similarity

// Level is a human readable bucket for a cosine score.
type Level string

const (
	VerySimilar       Level = "very similar"
	Similar           Level = "similar"
	Moderate          Level = "moderate"
	SomewhatDifferent Level = "somewhat different"
	Different         Level = "different"
)

// Interpret buckets a cosine score.
func Interpret(score float64) Level {
	switch {
	case score >= 0.9:
		return VerySimilar
	case score >= 0.7:
		return Similar
	case score >= 0.5:
		return Moderate
	case score >= 0.3:
		return SomewhatDifferent
	default:
		return Different
	}
}
