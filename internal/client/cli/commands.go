package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/shared"
)

// Register creates and registers a secret for user, prints it once, and
// logs in with it.
func (a *App) Register(ctx context.Context, user string) error {
	pw, err := GetNewPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	a.logger.Debug(ctx, "Registering", "user", user)

	x, err := a.authService.Register(ctx, user, pw)
	if x != nil {
		fmt.Fprintf(a.out, "Secret for %s (keep it safe): %s\n", user, x.Text(16))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s\n", user)

	token, err := a.authService.LoginWithSecret(ctx, user, x)
	if err != nil {
		return err
	}
	a.printToken(token)
	return nil
}

// Login proves knowledge of the secret for user. A non-empty secretHex is
// used directly; otherwise the sealed secret is unlocked with a passphrase.
func (a *App) Login(ctx context.Context, user, secretHex string) error {
	a.logger.Debug(ctx, "Logging in", "user", user)

	var (
		token string
		err   error
	)

	if secretHex != "" {
		x, ok := new(big.Int).SetString(secretHex, 16)
		if !ok {
			return fmt.Errorf("secret is not a hex number")
		}
		token, err = a.authService.LoginWithSecret(ctx, user, x)
	} else {
		var pw []byte
		pw, err = GetPassword(a.out, "Enter passphrase: ")
		if err != nil {
			return err
		}
		defer shared.WipeByteArray(pw)
		token, err = a.authService.Login(ctx, user, pw)
	}
	if err != nil {
		return err
	}

	a.printToken(token)
	return nil
}

func (a *App) Forget(ctx context.Context, user string) error {
	if err := a.authService.ForgetSecret(ctx, user); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed local secret for %s\n", user)
	return nil
}

func (a *App) Users(ctx context.Context) error {
	users, err := a.authService.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		fmt.Fprintln(a.out, u)
	}
	return nil
}

func (a *App) printToken(token string) {
	fmt.Fprintln(a.out, "Login successful")
	fmt.Fprintf(a.out, "Session token: %s\n", token)
}
