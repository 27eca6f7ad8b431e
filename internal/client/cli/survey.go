package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/careersync/careersync/internal/client/models"
)

// Survey walks the five-field wizard, submits the form and shows the
// resulting dashboard. The step indicator tracks the first incomplete
// field; every field remains editable regardless of it.
func (a *App) Survey(ctx context.Context) error {
	fmt.Fprintln(a.out, "Career Survey")

	var input models.SurveyInput

	a.printStep(input)
	skills, err := getSimpleText(a.reader, "Skills (comma separated, e.g. Python, Communication)", a.out)
	if err != nil {
		return err
	}
	input.Skills = skills

	a.printStep(input)
	input.Education, err = a.askEducation()
	if err != nil {
		return err
	}

	a.printStep(input)
	input.Interests, err = getSimpleText(a.reader, "Interests (comma separated, e.g. AI, Design)", a.out)
	if err != nil {
		return err
	}

	a.printStep(input)
	input.Personality, err = getSimpleText(a.reader, "Personality (e.g. Analytical, Creative)", a.out)
	if err != nil {
		return err
	}

	a.printStep(input)
	input.Goals, err = getSimpleText(a.reader, "Goals (e.g. Become a Data Scientist)", a.out)
	if err != nil {
		return err
	}

	result, err := a.surveySvc.Submit(ctx, input, a.session.UserID(), a.session.Token())
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	a.result = result
	a.checked = make([]bool, len(result.Roadmap))
	return a.Dashboard(ctx)
}

// printStep shows the wizard progress, e.g. "[Step 2/5: Education]".
func (a *App) printStep(input models.SurveyInput) {
	step := input.Step()
	if step >= len(models.StepNames) {
		return
	}
	fmt.Fprintf(a.out, "[Step %d/%d: %s]\n", step+1, len(models.StepNames), models.StepNames[step])
}

// askEducation shows the fixed choice list and accepts either a number or
// the literal option text.
func (a *App) askEducation() (string, error) {
	for i, opt := range models.EducationOptions {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, opt)
	}
	answer, err := getSimpleText(a.reader, "Education (number or text)", a.out)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(models.EducationOptions) {
		return models.EducationOptions[n-1], nil
	}
	for _, opt := range models.EducationOptions {
		if answer == opt {
			return opt, nil
		}
	}
	// Anything else counts as "not selected" and fails validation below.
	return "", nil
}
