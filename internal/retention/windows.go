package retention

// Windows holds the three configured retention horizons.
//
// The horizons do NOT form separate daily/weekly/monthly tiers. They
// collapse into one effective cutoff: the maximum of the three expressed
// in days. "7 dailies + 4 weeklies + 3 monthlies" therefore behaves as
// "keep everything younger than 90 days". This matches the long-standing
// behavior of the backup job and is preserved deliberately; confirm with
// stakeholders before replacing it with true tiered retention.
type Windows struct {
	Days   int
	Weeks  int
	Months int
}

// DefaultWindows matches the job's historical defaults.
var DefaultWindows = Windows{Days: 7, Weeks: 4, Months: 3}

// Cutoff returns the single age threshold in days. Weeks count 7 days
// and months 30; no calendar arithmetic. Cutoff is monotone in each
// window: enlarging any horizon never shrinks the result.
func (w Windows) Cutoff() float64 {
	cutoff := float64(w.Days)
	if weekly := float64(w.Weeks * 7); weekly > cutoff {
		cutoff = weekly
	}
	if monthly := float64(w.Months * 30); monthly > cutoff {
		cutoff = monthly
	}
	return cutoff
}
