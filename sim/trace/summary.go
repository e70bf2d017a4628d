package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalArrivals    int
	AdmittedCount    int
	RejectedCount    int
	TotalGrants      int
	GrantsByPriority map[int]int // priority → number of grants
	MeanGrantWait    float64
	MaxGrantWait     float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		GrantsByPriority: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalArrivals = len(st.Admissions)
	for _, a := range st.Admissions {
		if a.Admitted {
			summary.AdmittedCount++
		} else {
			summary.RejectedCount++
		}
	}

	summary.TotalGrants = len(st.Grants)
	if len(st.Grants) > 0 {
		totalWait := 0.0
		for _, g := range st.Grants {
			summary.GrantsByPriority[g.Priority]++
			totalWait += g.Wait()
			if g.Wait() > summary.MaxGrantWait {
				summary.MaxGrantWait = g.Wait()
			}
		}
		summary.MeanGrantWait = totalWait / float64(len(st.Grants))
	}

	return summary
}
