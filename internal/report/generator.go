package report

import (
	"fmt"
	"math"
	"strings"
)

const (
	scoreBase      = 40
	scorePerYear   = 5
	scoreBaseCap   = 85
	scoreResume    = 10
	scoreHotSkills = 5
	scoreMax       = 95
)

// Generate builds a complete career report for a validated request.
// It never fails: malformed numeric fields fall back to defaults and
// unknown salary buckets use the default band.
func Generate(req *Request) *CareerReport {
	years := req.Years()
	score := readinessScore(req, years)

	band, ok := salaryBands[req.CurrentSalary]
	if !ok {
		band = defaultSalaryBand
	}

	targetLower := strings.ToLower(req.TargetRole)

	return &CareerReport{
		JobReadinessScore: score,
		SkillGaps:         newSkillGaps(targetLower),
		SalaryPotential: SalaryPotential{
			Current:           strings.ReplaceAll(req.CurrentSalary, "-", " - $"),
			Target:            band.Target,
			PotentialIncrease: band.Increase,
			MarketInsights: fmt.Sprintf(
				"Based on current market trends, %s positions are in high demand. "+
					"With %d years of experience and the right skill development, you can expect significant salary growth. "+
					"The market shows a 15-20%% year-over-year increase in compensation for this role.",
				req.TargetRole, years),
		},
		Roadmap:      newRoadmap(),
		NextSteps:    newNextSteps(req.TargetRole),
		LearningPath: newLearningPath(),
		Timeline: Timeline{
			Realistic:  monthsRange(maxInt(6, ceilMul(years, 2)), maxInt(12, ceilMul(years, 3))),
			Optimistic: monthsRange(maxInt(3, ceilMul(years, 1.5)), maxInt(6, ceilMul(years, 2))),
			Factors:    newTimelineFactors(years),
		},
		Summary: summary(req, years, score, band),
	}
}

// readinessScore computes the 0-95 job readiness score.
func readinessScore(req *Request, years int) int {
	score := scoreBase + years*scorePerYear
	if score > scoreBaseCap {
		score = scoreBaseCap
	}

	if req.ResumeText != "" && len(req.ResumeText) > 50 {
		score += scoreResume
	}

	// substring match, counted once no matter how often a keyword occurs
	skills := strings.ToLower(req.Skills)
	if strings.Contains(skills, "react") || strings.Contains(skills, "node") {
		score += scoreHotSkills
	}

	if score > scoreMax {
		score = scoreMax
	}
	if score < 0 {
		score = 0
	}
	return score
}

func summary(req *Request, years, score int, band salaryBand) string {
	tone := "realistic"
	if years < 3 {
		tone = "ambitious but achievable"
	}

	return fmt.Sprintf(
		"Based on your profile as a %s with %d years of experience, you're %d%% ready for a %s position. "+
			"Your current skills in %s... provide a good foundation, but you'll need to focus on developing %s-specific competencies. "+
			"The transition timeline of %s is %s with dedicated effort. "+
			"Your salary potential shows significant growth opportunity, with the market offering %s increase potential. "+
			"Focus on the critical skill gaps identified, particularly in leadership and specialized technical skills, "+
			"to maximize your readiness score and market value.",
		req.CurrentRole, years, score, req.TargetRole,
		prefix(req.Skills, 50), strings.ToLower(req.TargetRole),
		req.Timeline, tone, band.Increase)
}

func monthsRange(from, to int) string {
	return fmt.Sprintf("%d - %d months", from, to)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

func ceilMul(years int, factor float64) int {
	return int(math.Ceil(float64(years) * factor))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
