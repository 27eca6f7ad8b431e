package cli

import (
	"context"
	"fmt"
)

// Profile shows the stored record for the active user.
func (a *App) Profile(ctx context.Context) error {
	userID := a.session.UserID()
	p := a.profiles.Load(ctx, userID)

	fmt.Fprintln(a.out, "Profile")
	fmt.Fprintln(a.out, "  Username: ", userID)
	fmt.Fprintln(a.out, "  Full Name:", orDash(p.FullName))
	fmt.Fprintln(a.out, "  Email:    ", orDash(p.Email))
	fmt.Fprintln(a.out, "  Age:      ", orDash(p.Age))
	fmt.Fprintln(a.out, "  Phone:    ", orDash(p.Phone))
	if a.profiles.HasAvatar(ctx, userID) {
		fmt.Fprintln(a.out, "  Avatar:    uploaded")
	} else {
		fmt.Fprintln(a.out, "  Avatar:    none (use 'avatar <path>')")
	}

	a.printBadges(ctx, userID)
	return nil
}

// EditProfile prompts for each field; an empty answer keeps the current
// value. The save is local and optimistic; no server round-trip.
func (a *App) EditProfile(ctx context.Context) error {
	userID := a.session.UserID()
	p := a.profiles.Load(ctx, userID)

	var err error
	if p.FullName, err = askKeep(a, "Full Name", p.FullName); err != nil {
		return err
	}
	if p.Email, err = askKeep(a, "Email", p.Email); err != nil {
		return err
	}
	if p.Age, err = askKeep(a, "Age", p.Age); err != nil {
		return err
	}
	if p.Phone, err = askKeep(a, "Phone", p.Phone); err != nil {
		return err
	}
	p.Username = userID

	if err := a.profiles.Save(ctx, p); err != nil {
		fmt.Fprintln(a.out, "Profile not saved:", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated!")
	return nil
}

// Avatar stores an image file as the user's profile picture.
func (a *App) Avatar(ctx context.Context, path string) error {
	if path == "" {
		fmt.Fprintln(a.out, "Usage: avatar <path to image>")
		return nil
	}
	if err := a.profiles.SetAvatar(ctx, a.session.UserID(), path); err != nil {
		fmt.Fprintln(a.out, "Avatar not saved:", err)
		return err
	}
	fmt.Fprintln(a.out, "Avatar updated!")
	return nil
}

// Badges lists the user's earned achievements.
func (a *App) Badges(ctx context.Context) error {
	earned := a.badgeSvc.Earned(ctx, a.session.UserID())
	if len(earned) == 0 {
		fmt.Fprintln(a.out, "No badges earned yet. Complete surveys and explore features!")
		return nil
	}
	fmt.Fprintln(a.out, "Achievements:")
	for _, b := range earned {
		fmt.Fprintf(a.out, "  %s %s - %s\n", b.Icon, b.Label, b.Description)
	}
	return nil
}

// DarkMode flips the persisted appearance preference.
func (a *App) DarkMode(ctx context.Context) error {
	if a.profiles.ToggleDarkMode(ctx) {
		fmt.Fprintln(a.out, "Dark mode on.")
	} else {
		fmt.Fprintln(a.out, "Dark mode off.")
	}
	return nil
}

// printBadges renders the achievements one-liner used by the dashboard and
// profile views.
func (a *App) printBadges(ctx context.Context, userID string) {
	earned := a.badgeSvc.Earned(ctx, userID)
	if len(earned) == 0 {
		return
	}
	fmt.Fprint(a.out, "Achievements: ")
	for i, b := range earned {
		if i > 0 {
			fmt.Fprint(a.out, ", ")
		}
		fmt.Fprintf(a.out, "%s %s", b.Icon, b.Label)
	}
	fmt.Fprintln(a.out)
}

func askKeep(a *App, field, current string) (string, error) {
	prompt := fmt.Sprintf("%s [%s]", field, orDash(current))
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
