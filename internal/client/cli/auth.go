package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/healthdash/internal/common"
	"github.com/dmitrijs2005/healthdash/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// Client-side credential checks run before anything reaches the identity
// provider, mirroring the provider's minimum password policy.
const (
	msgInvalidEmail    = "Please enter a valid email address"
	msgInvalidPassword = "Password must be at least 8 characters with uppercase, lowercase, and numbers"
)

// Signup prompts for an email and password and attempts to create a new
// account with the identity provider. Both inputs are checked locally first
// so obviously bad credentials never leave the machine.
//
// The password byte slice is wiped before returning. The provider's outcome
// message is printed either way; a failed signup is also returned as an error.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.IsValidEmail(email) {
		printlnFn(msgInvalidEmail)
		return common.ErrorValidation
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if !validation.IsValidPassword(string(password)) {
		printlnFn(msgInvalidPassword)
		return common.ErrorValidation
	}

	res := a.auth.Signup(ctx, email, string(password))
	printlnFn(res.Message)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

// Confirm prompts for the email and the emailed verification code and
// submits them to the identity provider, unlocking login for the account.
func (a *App) Confirm(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Enter verification code", os.Stdout)
	if err != nil {
		return err
	}

	res := a.auth.ConfirmSignup(ctx, email, code)
	printlnFn(res.Message)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

// Login prompts for credentials and authenticates. On success the gateway
// has already stored the session, so subsequent API calls carry the bearer
// token without further action here.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.auth.Login(ctx, email, string(password))
	printlnFn(res.Message)
	if !res.Success {
		return errors.New(res.Message)
	}
	return nil
}

// Logout drops the session, in memory and on disk. It never fails visibly;
// the user ends up logged out regardless.
func (a *App) Logout(ctx context.Context) error {
	a.session.Clear(ctx)
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the logged-in user, or a hint when there is no session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.Current(ctx)
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn("User:", u.Email)
	if u.ID != "" {
		printlnFn("ID:", u.ID)
	}
	return nil
}
