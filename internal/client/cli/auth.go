package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/crewhive/crewhive/internal/client/api"
	"github.com/crewhive/crewhive/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates. On success the token
// pair is persisted, the viewer identity is resolved and pushed into the
// day view. Backend failures are reported through the error taxonomy's
// user-facing messages, never as raw wire text.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	if err := a.auth.SignIn(ctx, email, string(password)); err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Warn(ctx, "signed in but could not load profile", "error", err)
		a.userName = email
	} else {
		a.userName = user.Username
	}
	a.view.SetViewer(a.userName)

	printlnFn("Success!")
	return nil
}

// WhoAmI prints the signed-in user's identity and claims.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		printlnFn(api.UserMessage(err, ""))
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s <%s>", user.Username, user.Email))
	if user.Role != "" {
		printlnFn("Role:    " + user.Role)
	}
	if user.CompanyID != nil {
		printlnFn(fmt.Sprintf("Company: %d", *user.CompanyID))
	}
	return nil
}

// Logout clears the persisted session and the in-memory viewer identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.view.SetViewer("")
	return nil
}
