package cli

import (
	"context"
	"fmt"
	"strings"
)

// History lists the active user's stored survey submissions. Malformed or
// missing history renders as empty, never as an error.
func (a *App) History(ctx context.Context) error {
	recs := a.surveySvc.History(ctx, a.session.UserID())
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "No survey history found.")
		return nil
	}

	fmt.Fprintln(a.out, "Survey History")
	for i, r := range recs {
		fmt.Fprintf(a.out, "%d. Date: %s\n", i+1, orDash(r.Date))
		fmt.Fprintln(a.out, "   Skills:     ", strings.Join(r.Skills, ", "))
		fmt.Fprintln(a.out, "   Education:  ", r.Education)
		fmt.Fprintln(a.out, "   Interests:  ", strings.Join(r.Interests, ", "))
		fmt.Fprintln(a.out, "   Personality:", r.Personality)
		fmt.Fprintln(a.out, "   Goals:      ", r.Goals)
		fmt.Fprintln(a.out, "   Top Career: ", r.TopCareer())
	}
	return nil
}
