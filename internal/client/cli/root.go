package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Root bootstraps the session and runs the command loop. The available
// command set follows the current screen stack: auth commands while
// anonymous, the home tabs once signed in.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to FitLens (type 'help' for commands)")

	a.sessions.Bootstrap(ctx)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("fittlens %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		if a.dispatch(ctx, cmd, args) {
			return
		}
	}
}

// dispatch executes one command; it returns true when the loop should exit.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Println("Available commands: equipment add|list, workout today|past, preferences, about, logout, exit")
		} else {
			fmt.Println("Available commands: login, signup, exit")
		}

	case "login":
		if a.isLoggedIn() {
			fmt.Println("Already signed in")
			return false
		}
		if err := a.Login(ctx); err != nil {
			a.logger.Error(ctx, "login screen failed", "error", err.Error())
		}

	case "signup":
		if a.isLoggedIn() {
			fmt.Println("Already signed in")
			return false
		}
		if err := a.Signup(ctx); err != nil {
			a.logger.Error(ctx, "signup screen failed", "error", err.Error())
		}

	case "equipment":
		if !a.requireLogin() {
			return false
		}
		if len(args) > 0 && args[0] == "add" {
			a.AddEquipment(ctx)
		} else {
			a.ListEquipment(ctx)
		}

	case "workout":
		if !a.requireLogin() {
			return false
		}
		if len(args) > 0 && args[0] == "past" {
			a.PastWorkouts(ctx)
		} else {
			a.TodaysWorkout(ctx)
		}

	case "preferences":
		if a.requireLogin() {
			a.Preferences(ctx)
		}

	case "about":
		if a.requireLogin() {
			a.About(ctx)
		}

	case "logout":
		if a.requireLogin() {
			_ = a.Logout(ctx)
		}

	case "exit", "quit":
		fmt.Println("Bye!")
		return true

	default:
		fmt.Println("Unknown command:", cmd)
	}

	return false
}

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return false
	}
	return true
}
