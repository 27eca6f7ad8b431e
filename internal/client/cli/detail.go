package cli

import (
	"context"
	"fmt"
	"strings"
)

// careerFact is one entry of the static career fact sheet shown by the
// detail command.
type careerFact struct {
	Skills      string
	Salary      string
	Outlook     string
	Description string
}

var careerFacts = map[string]careerFact{
	"Software Engineer": {
		Skills:      "Programming, Problem-solving, Teamwork",
		Salary:      "$80,000 - $150,000",
		Outlook:     "High demand, strong growth",
		Description: "Designs, develops, and maintains software applications.",
	},
	"Data Scientist": {
		Skills:      "Statistics, Machine Learning, Python",
		Salary:      "$90,000 - $160,000",
		Outlook:     "Very high demand",
		Description: "Analyzes and interprets complex data to help organizations make decisions.",
	},
	"Civil Engineer": {
		Skills:      "Structural analysis, Project management, Design",
		Salary:      "$65,000 - $120,000",
		Outlook:     "Steady demand",
		Description: "Designs and oversees construction of infrastructure projects like roads, bridges, and buildings.",
	},
	"Mechanical Engineer": {
		Skills:      "Mechanical design, CAD, Physics",
		Salary:      "$70,000 - $125,000",
		Outlook:     "Steady demand",
		Description: "Designs and builds mechanical systems and devices.",
	},
	"Nurse Practitioner": {
		Skills:      "Nursing, Patient care, Diagnosis",
		Salary:      "$95,000 - $130,000",
		Outlook:     "Very high demand",
		Description: "Provides advanced nursing care and can diagnose and treat illnesses.",
	},
	"Environmental Scientist": {
		Skills:      "Research, Analysis, Communication",
		Salary:      "$55,000 - $100,000",
		Outlook:     "Growing demand",
		Description: "Studies the environment and develops solutions to environmental problems.",
	},
}

// Detail prints the fact sheet for a career. Unknown careers get dashes,
// matching the original modal's fallback.
func (a *App) Detail(ctx context.Context, career string) error {
	career = strings.TrimSpace(career)
	if career == "" {
		fmt.Fprintln(a.out, "Usage: detail <career>")
		return nil
	}

	info, ok := careerFacts[career]
	if !ok {
		info = careerFact{Skills: "-", Salary: "-", Outlook: "-", Description: "-"}
	}

	fmt.Fprintln(a.out, career)
	fmt.Fprintln(a.out, "  Description:", info.Description)
	fmt.Fprintln(a.out, "  Key Skills: ", info.Skills)
	fmt.Fprintln(a.out, "  Salary Range:", info.Salary)
	fmt.Fprintln(a.out, "  Job Outlook: ", info.Outlook)
	return nil
}
