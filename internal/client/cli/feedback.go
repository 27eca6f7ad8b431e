package cli

import (
	"context"
	"fmt"
)

// Feedback sends a free-text suggestion to the backend.
func (a *App) Feedback(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Your suggestion:", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Fprintln(a.out, "Nothing to send.")
		return nil
	}

	if err := a.apiClient.SendFeedback(ctx, a.session.UserID(), text, a.session.Token()); err != nil {
		fmt.Fprintln(a.out, "Could not send feedback:", err)
		return err
	}
	fmt.Fprintln(a.out, "Thank you for your suggestion!")
	return nil
}
