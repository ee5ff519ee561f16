package domain

// ComputeProgress returns the share of done tasks as a whole percentage,
// rounded half up. A project without tasks is at 0.
func ComputeProgress(total, done int) int {
	if total <= 0 {
		return 0
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	return (200*done + total) / (2 * total)
}

// ProgressReport is the candidate progress of a project next to the stored value.
type ProgressReport struct {
	Total    int
	Done     int
	Computed int
	Stored   int
}
