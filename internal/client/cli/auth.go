package cli

import (
	"context"
	"fmt"

	"github.com/careersync/careersync/internal/client/models"
	"github.com/careersync/careersync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for credentials plus the optional profile fields and
// creates the account via the remote API. On success the profile slot is
// seeded locally and the user can log in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Full name (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (optional)", a.out)
	if err != nil {
		return err
	}
	age, err := getSimpleText(a.reader, "Age (optional)", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}

	if err := a.apiClient.Signup(ctx, username, string(password)); err != nil {
		fmt.Fprintln(a.out, "Signup failed:", err)
		return err
	}

	profile := models.Profile{
		Username: username,
		FullName: fullName,
		Email:    email,
		Age:      age,
		Phone:    phone,
	}
	if err := a.profiles.Save(ctx, profile); err != nil {
		// The account exists either way; keep the message informational.
		fmt.Fprintln(a.out, "Profile not saved:", err)
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials, gates the attempt behind an additive
// captcha, and starts the session on success. A wrong captcha answer
// blocks the attempt before any network call; the next attempt gets a
// fresh challenge.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	c := newChallenge()
	answer, err := getSimpleText(a.reader, c.question(), a.out)
	if err != nil {
		return err
	}
	if !c.check(answer) {
		fmt.Fprintln(a.out, "Captcha incorrect. Please try again.")
		return common.ErrCaptcha
	}

	token, err := a.apiClient.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	if err := a.session.Start(ctx, token); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	a.result = nil
	a.checked = nil
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.displayName())

	streak, err := a.progress.RecordLogin(ctx, a.session.UserID())
	if err != nil {
		a.log.Warn(ctx, "could not record login", "err", err)
	} else if streak > 1 {
		fmt.Fprintf(a.out, "🔥 %d-day login streak!\n", streak)
	}
	return nil
}

// Logout ends the session and discards the in-memory result.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.result = nil
	a.checked = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
