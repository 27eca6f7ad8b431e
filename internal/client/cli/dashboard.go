package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/careersync/careersync/internal/client/export"
	"github.com/careersync/careersync/internal/client/models"
)

var errNoResult = errors.New("no result to show")

// Dashboard renders the last prediction: ranked careers with the top match
// highlighted, personal stats, badges, favorites, reasoning and the
// roadmap checklist.
func (a *App) Dashboard(ctx context.Context) error {
	if a.result == nil {
		fmt.Fprintln(a.out, "No career suggestions yet. Run 'survey' first (or 'results' to re-fetch).")
		return errNoResult
	}

	userID := a.session.UserID()

	fmt.Fprintf(a.out, "\nWelcome, %s! Here are your personalized career suggestions.\n", a.displayName())

	surveyCount := len(a.surveySvc.History(ctx, userID))
	favs, err := a.favorites.ListByUser(ctx, userID)
	if err != nil {
		a.log.Warn(ctx, "could not load favorites", "err", err)
		favs = nil
	}
	fmt.Fprintf(a.out, "Surveys Taken: %d | Favorites: %d\n", surveyCount, len(favs))

	a.printBadges(ctx, userID)

	fmt.Fprintln(a.out, "\nYour Career Suggestions:")
	for i, c := range a.result.Careers {
		line := fmt.Sprintf("  %d. %s (Score: %s)", i+1, c.Career, models.FormatScore(c.Score))
		if i == 0 {
			line += " [Top Match]"
		}
		if isFav(favs, c.Career) {
			line += " ★"
		}
		fmt.Fprintln(a.out, line)
	}

	if len(favs) > 0 {
		names := make([]string, len(favs))
		for i, f := range favs {
			names[i] = f.Career
		}
		fmt.Fprintln(a.out, "\nYour Favorites:", strings.Join(names, ", "))
	}

	fmt.Fprintln(a.out, "\nReasoning:", a.result.Reasoning)

	fmt.Fprintln(a.out, "Roadmap:")
	for i, step := range a.result.Roadmap {
		mark := " "
		if i < len(a.checked) && a.checked[i] {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %d. %s\n", mark, i+1, step)
	}

	fmt.Fprintln(a.out, "\nTip: fav <n> saves a career, check <n> ticks a roadmap step, detail <career> shows more.")
	return nil
}

// Favorite toggles a saved-career mark. The argument is either a 1-based
// index into the current suggestions or a career name. Toggling twice
// restores the prior state.
func (a *App) Favorite(ctx context.Context, arg string) error {
	if arg == "" {
		fmt.Fprintln(a.out, "Usage: fav <n|career>")
		return nil
	}

	career := arg
	if n, err := strconv.Atoi(arg); err == nil {
		if a.result == nil || n < 1 || n > len(a.result.Careers) {
			fmt.Fprintln(a.out, "No such suggestion.")
			return nil
		}
		career = a.result.Careers[n-1].Career
	}

	added, err := a.favorites.Toggle(ctx, a.session.UserID(), career)
	if err != nil {
		a.log.Error(ctx, "favorite toggle failed", "err", err)
		fmt.Fprintln(a.out, "Could not update favorites.")
		return err
	}
	if added {
		fmt.Fprintf(a.out, "★ Saved %q to favorites.\n", career)
	} else {
		fmt.Fprintf(a.out, "Removed %q from favorites.\n", career)
	}
	return nil
}

// Check toggles one roadmap checklist entry. The checklist is local to the
// current result and is never persisted.
func (a *App) Check(ctx context.Context, arg string) error {
	if a.result == nil {
		fmt.Fprintln(a.out, "No roadmap to check. Run 'survey' first.")
		return errNoResult
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.checked) {
		fmt.Fprintln(a.out, "Usage: check <step number>")
		return nil
	}
	a.checked[n-1] = !a.checked[n-1]
	return a.Dashboard(ctx)
}

// Favorites lists the user's saved careers.
func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.favorites.ListByUser(ctx, a.session.UserID())
	if err != nil {
		a.log.Warn(ctx, "could not load favorites", "err", err)
		favs = nil
	}
	if len(favs) == 0 {
		fmt.Fprintln(a.out, "No favorites yet. Use 'fav <n>' on the dashboard to add.")
		return nil
	}
	fmt.Fprintln(a.out, "Your Favorites:")
	for _, f := range favs {
		fmt.Fprintln(a.out, "  ★", f.Career)
	}
	return nil
}

// Export writes the current result to a text file.
func (a *App) Export(ctx context.Context, path string) error {
	if a.result == nil {
		fmt.Fprintln(a.out, "Nothing to export yet.")
		return errNoResult
	}
	name, err := export.WriteFile(a.result, path)
	if err != nil {
		fmt.Fprintln(a.out, "Export failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Saved to", name)
	return nil
}

// CopyResult puts the current result on the system clipboard.
func (a *App) CopyResult(ctx context.Context) error {
	if a.result == nil {
		fmt.Fprintln(a.out, "Nothing to copy yet.")
		return errNoResult
	}
	if err := export.Copy(a.result); err != nil {
		fmt.Fprintln(a.out, "Copy failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Copied!")
	return nil
}

// Results re-fetches the server-stored prediction for the active user.
func (a *App) Results(ctx context.Context) error {
	result, err := a.apiClient.GetResults(ctx, a.session.UserID(), a.session.Token())
	if err != nil {
		fmt.Fprintln(a.out, "Could not fetch results:", err)
		return err
	}
	a.result = result
	a.checked = make([]bool, len(result.Roadmap))
	return a.Dashboard(ctx)
}

func isFav(favs []models.FavoriteMark, career string) bool {
	for _, f := range favs {
		if f.Career == career {
			return true
		}
	}
	return false
}
