package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Pritish2005/Event-Hub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a name, email and password and attempts to
// create a new account. Registration does not log the user in; a separate
// login is required to obtain a session token.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Registered %s. Use 'login' to sign in.\n", user.Email)
	return nil
}

// Login prompts the user for credentials and exchanges them for a session
// token. The token lives only in process memory; it expires on its own and
// there is no server-side logout.
//
// The password is wiped before returning.
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

	if _, err := a.api.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userEmail = email
	log.Printf("Login successful")
	return nil
}

// Logout forgets the in-memory session token. The token itself stays valid
// until it expires; the server keeps no session state to invalidate.
func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.userEmail = ""
	fmt.Println("Logged out")
	return nil
}
