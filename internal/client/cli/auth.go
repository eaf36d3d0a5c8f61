package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/fittlens/fittlens-cli/internal/client/models"
	"github.com/fittlens/fittlens-cli/internal/client/session"
)

// getSimpleText, getPassword and newDeviceID are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	newDeviceID   = uuid.NewString
)

// Login renders the login screen: prompts for email and password and asks
// the session manager to sign in. Validation and auth failures are shown to
// the user, not returned; only input I/O errors propagate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter your password", os.Stdout)
	if err != nil {
		return err
	}

	err = a.sessions.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, session.ErrEmptyCredentials) {
			fmt.Println("Email and password are required")
			return nil
		}
		a.printLastError()
		return nil
	}

	fmt.Println("Welcome back!")
	return nil
}

// Signup renders the signup screen: name, email, password, confirmation.
// A fresh device id is generated for the request.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter your password", os.Stdout)
	if err != nil {
		return err
	}

	confirmation, err := getPassword("Confirm your password", os.Stdout)
	if err != nil {
		return err
	}

	req := models.SignupRequest{
		DisplayName:          name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: confirmation,
		DeviceID:             newDeviceID(),
	}

	err = a.sessions.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, session.ErrEmptyFields) {
			fmt.Println("All fields are required")
			return nil
		}
		a.printLastError()
		return nil
	}

	fmt.Println("Account created!")
	return nil
}

// Logout signs the user out. Storage cleanup failures are already logged by
// the session manager; the user ends up signed out either way.
func (a *App) Logout(ctx context.Context) error {
	_ = a.sessions.Logout(ctx)
	fmt.Println("Signed out")
	return nil
}

func (a *App) printLastError() {
	if msg := a.sessions.Snapshot().LastError; msg != "" {
		fmt.Println(msg)
	}
}
