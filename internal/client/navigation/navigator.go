// Package navigation decouples session state transitions from the screen
// layer. The session manager emits stack-switch intents through the Navigator
// interface; the view layer decides what a stack switch looks like.
package navigation

// Stack identifies one of the two top-level screen stacks.
type Stack string

const (
	// StackAuth is the anonymous stack: login and signup screens.
	StackAuth Stack = "auth"
	// StackTabs is the authenticated stack: the tabbed home screens.
	StackTabs Stack = "tabs"
)

// Navigator switches the visible screen stack. Replace discards the current
// stack so the user cannot navigate back across an auth boundary.
type Navigator interface {
	Replace(stack Stack)
}
