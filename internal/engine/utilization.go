package engine

import "fmt"

// Off-peak utilization outside this band is unrealistic for an indoor
// facility; the solver clamps into it and reports the clamp.
const (
	MinOffpeakUtil = 0.45
	MaxOffpeakUtil = 0.80
)

// SolveOffpeakUtil inverts the weighted-average utilization equation
//
//	overall = share*prime + (1-share)*offpeak
//
// for the off-peak term. A prime share at or above 1.0 leaves the equation
// undefined; the solver returns 0 with a warning instead of dividing by zero.
// The result is clamped to [MinOffpeakUtil, MaxOffpeakUtil]; a clamp emits a
// warning naming the bound and the unclamped value. The caller decides how to
// surface warnings.
func SolveOffpeakUtil(overallTarget, primeUtil, primeShare float64) (float64, string) {
	if primeShare >= 1.0 {
		return 0, "prime share is 100%, off-peak utilization is undefined"
	}

	offpeak := (overallTarget - primeShare*primeUtil) / (1.0 - primeShare)

	switch {
	case offpeak < MinOffpeakUtil:
		return MinOffpeakUtil, fmt.Sprintf("computed off-peak utilization %.1f%% below minimum %.0f%%, clamping", offpeak*100, MinOffpeakUtil*100)
	case offpeak > MaxOffpeakUtil:
		return MaxOffpeakUtil, fmt.Sprintf("computed off-peak utilization %.1f%% exceeds maximum %.0f%%, clamping", offpeak*100, MaxOffpeakUtil*100)
	}
	return offpeak, ""
}

// OverallUtilization recombines the two regimes into overall utilization.
func OverallUtilization(primeUtil, offpeakUtil, primeShare float64) float64 {
	return primeShare*primeUtil + (1.0-primeShare)*offpeakUtil
}
