package cli

import (
	"context"
	"fmt"
)

// The home-tab screens are placeholders, like the reference app's views.
// They exist so the authenticated command surface matches the screen graph.

func (a *App) AddEquipment(ctx context.Context) {
	fmt.Println("Add Equipment: coming soon")
}

func (a *App) ListEquipment(ctx context.Context) {
	fmt.Println("List Equipment: coming soon")
}

func (a *App) TodaysWorkout(ctx context.Context) {
	fmt.Println("Today's Workout: coming soon")
}

func (a *App) PastWorkouts(ctx context.Context) {
	fmt.Println("Past Workouts: coming soon")
}

func (a *App) Preferences(ctx context.Context) {
	fmt.Println("User Preferences: coming soon")
}

// About shows the about screen: app info plus the signed-in account.
func (a *App) About(ctx context.Context) {
	fmt.Println("FitLens — your AI-powered fitness companion")
	if snap := a.sessions.Snapshot(); snap.CurrentUser != nil {
		fmt.Printf("Signed in as %s <%s>\n", snap.CurrentUser.DisplayName, snap.CurrentUser.Email)
	}
	fmt.Println("Type 'logout' to sign out")
}
