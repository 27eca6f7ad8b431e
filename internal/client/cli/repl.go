package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	consumeNotice() string

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Survey(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Favorite(ctx context.Context, arg string) error
	Check(ctx context.Context, arg string) error
	Favorites(ctx context.Context) error
	History(ctx context.Context) error
	Badges(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Detail(ctx context.Context, career string) error
	Export(ctx context.Context, path string) error
	CopyResult(ctx context.Context) error
	Results(ctx context.Context) error
	Feedback(ctx context.Context) error
	Assist(ctx context.Context) error
	DarkMode(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: survey, dashboard, fav <n|career>, check <n>, favorites, " +
		"history, badges, profile, edit, avatar <path>, detail <career>, export [file], copy, " +
		"results, feedback, assist, darkmode, logout, exit"
)

// runREPL starts the read–eval–print loop: one line per command, first
// token dispatched, remaining tokens passed through as the argument.
// Commands that need a live session are refused while logged out. Handler
// errors are not re-reported here; handlers print their own messages. The
// loop exits on scanner EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if n := a.consumeNotice(); n != "" {
			printlnFn(n)
		}
		printlnFn(fmt.Sprintf("careersync %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "survey", "dashboard", "fav", "check", "favorites", "history",
			"badges", "profile", "edit", "avatar", "detail", "export", "copy",
			"results", "feedback", "assist", "darkmode", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			switch cmd {
			case "survey":
				_ = a.Survey(ctx)
			case "dashboard":
				_ = a.Dashboard(ctx)
			case "fav":
				_ = a.Favorite(ctx, arg)
			case "check":
				_ = a.Check(ctx, arg)
			case "favorites":
				_ = a.Favorites(ctx)
			case "history":
				_ = a.History(ctx)
			case "badges":
				_ = a.Badges(ctx)
			case "profile":
				_ = a.Profile(ctx)
			case "edit":
				_ = a.EditProfile(ctx)
			case "avatar":
				_ = a.Avatar(ctx, arg)
			case "detail":
				_ = a.Detail(ctx, arg)
			case "export":
				_ = a.Export(ctx, arg)
			case "copy":
				_ = a.CopyResult(ctx)
			case "results":
				_ = a.Results(ctx)
			case "feedback":
				_ = a.Feedback(ctx)
			case "assist":
				_ = a.Assist(ctx)
			case "darkmode":
				_ = a.DarkMode(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
