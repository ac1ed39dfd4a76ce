package report

import "fmt"

// salaryBand is one entry of the salary projection table.
type salaryBand struct {
	Target   string
	Increase string
}

// salaryBands maps intake salary bucket codes to projections.
// Unknown or missing codes fall back to defaultSalaryBand, never an error.
var salaryBands = map[string]salaryBand{
	"0-30k":     {Target: "$50,000 - $75,000", Increase: "150-250%"},
	"30k-50k":   {Target: "$75,000 - $100,000", Increase: "100-150%"},
	"50k-75k":   {Target: "$100,000 - $150,000", Increase: "50-100%"},
	"75k-100k":  {Target: "$120,000 - $180,000", Increase: "40-80%"},
	"100k-150k": {Target: "$150,000 - $220,000", Increase: "30-60%"},
	"150k-200k": {Target: "$180,000 - $250,000", Increase: "20-40%"},
	"200k+":     {Target: "$220,000 - $300,000+", Increase: "10-30%"},
}

var defaultSalaryBand = salaryBand{Target: "$100,000 - $150,000", Increase: "50-100%"}

func newSkillGaps(targetRoleLower string) SkillGaps {
	return SkillGaps{
		Critical: []string{
			fmt.Sprintf("Lack of %s specific experience", targetRoleLower),
			"Missing leadership and team management skills",
			"Limited experience with modern development tools",
		},
		Moderate: []string{
			"Need to strengthen communication skills",
			"Gap in cloud infrastructure knowledge",
			"Limited project management experience",
		},
		Minor: []string{
			"Could benefit from certifications",
			"Networking and industry connections needed",
		},
	}
}

func newRoadmap() Roadmap {
	return Roadmap{
		Phase1: Phase{
			Title:    "Foundation Building",
			Duration: "1-2 months",
			Actions: []string{
				"Complete online courses in key technologies",
				"Build 2-3 portfolio projects demonstrating target skills",
				"Join relevant professional communities and networks",
				"Update LinkedIn profile and resume with new skills",
			},
		},
		Phase2: Phase{
			Title:    "Skill Enhancement & Certification",
			Duration: "2-4 months",
			Actions: []string{
				"Obtain industry-recognized certifications",
				"Contribute to open-source projects",
				"Attend industry conferences and workshops",
				"Start applying to entry-level positions in target role",
			},
		},
		Phase3: Phase{
			Title:    "Career Transition & Growth",
			Duration: "3-6 months",
			Actions: []string{
				"Secure position in target role",
				"Focus on on-the-job learning and mentorship",
				"Take on challenging projects to demonstrate capabilities",
				"Build track record of success in new role",
			},
		},
	}
}

func newNextSteps(targetRole string) []string {
	return []string{
		fmt.Sprintf("Enroll in a %s focused course or bootcamp", targetRole),
		"Update your resume highlighting transferable skills",
		"Build a portfolio showcasing relevant projects",
		"Network with professionals in your target industry",
	}
}

func newLearningPath() LearningPath {
	return LearningPath{
		Foundational: []string{
			"Introduction to Core Technologies",
			"Basic Programming Concepts",
			"Version Control with Git",
		},
		Intermediate: []string{
			"Advanced Framework Development",
			"Database Design and Management",
			"API Development and Integration",
		},
		Advanced: []string{
			"System Architecture and Design",
			"Performance Optimization",
			"Leadership and Team Management",
		},
	}
}

func newTimelineFactors(years int) []string {
	return []string{
		fmt.Sprintf("Your %d years of experience provides a solid foundation", years),
		"The gap between current and target role requires focused skill development",
		"Market demand and networking will significantly impact timeline",
	}
}
