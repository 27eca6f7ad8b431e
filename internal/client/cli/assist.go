package cli

import (
	"context"
	"fmt"
	"strings"
)

// Assist runs the built-in help bot: one question per line, empty line
// ends the conversation.
func (a *App) Assist(ctx context.Context) error {
	fmt.Fprintln(a.out, "CareerSync Assistant. Ask about surveys, profile, badges, favorites or dashboard.")
	fmt.Fprintln(a.out, "(press Enter on an empty line to leave)")

	for {
		line, err := getSimpleText(a.reader, "", a.out)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}
		fmt.Fprintln(a.out, botReply(line))
	}
}

// botReply maps a question to a canned project answer by keyword.
func botReply(userMsg string) string {
	msg := strings.ToLower(userMsg)
	switch {
	case strings.Contains(msg, "survey"):
		return "You can fill out the career survey to get personalized career recommendations."
	case strings.Contains(msg, "profile"):
		return "On the profile page, you can edit your details and upload a profile picture."
	case strings.Contains(msg, "badge"), strings.Contains(msg, "achievement"):
		return "You earn badges for completing surveys, saving favorites, and uploading a profile picture!"
	case strings.Contains(msg, "favorite"):
		return "You can save favorite careers from your dashboard for quick access later."
	case strings.Contains(msg, "dark"):
		return "Use the darkmode command to toggle the appearance preference."
	case strings.Contains(msg, "dashboard"):
		return "The dashboard shows your career recommendations and achievements."
	case strings.Contains(msg, "help"), strings.Contains(msg, "feedback"):
		return "Just type your question about the app, and I will do my best to help!"
	case strings.Contains(msg, "reset"):
		return "To reset your progress, delete the local database file."
	default:
		return "Sorry, I am a simple project assistant. Please ask about surveys, profile, badges, favorites, or dashboard."
	}
}
