package scoring

// Default scores for a location mismatch. A mismatch is a softer penalty
// when searching from the candidate's perspective, where jobs are
// recommendations rather than a shortlist.
const (
	LocationMismatchEmployerSide  = 50
	LocationMismatchCandidateSide = 60
)

// LocationMatch scores location fit: exact string equality scores 100,
// anything else scores the supplied mismatch default.
func LocationMatch(candidateLocation, jobLocation string, mismatchScore int) int {
	if candidateLocation == jobLocation {
		return 100
	}
	return clampInt(mismatchScore)
}
