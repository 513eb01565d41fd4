package cli

import (
	"context"
	"errors"
	"log"

	"github.com/akarpovs/stockkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for credentials and establishes a session. On success the
// gateway client is switched to bearer-token auth so subsequent reads and
// writes run as the signed-in user. A rejected login leaves the client in
// guest (API-key) mode.
func (a *App) SignIn(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.idp.SignIn(ctx, userName, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidLogin) {
			log.Printf("Sign-in rejected")
		} else {
			log.Printf("Sign-in failed: %s", err.Error())
		}
		return err
	}

	a.client.UseBearer(sess.Token)
	log.Printf("Signed in as %s", sess.Username)
	return nil
}

// SignOut ends the session and reverts the gateway client to the shared
// read credential. Browsing keeps working afterwards.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.idp.SignOut(ctx); err != nil {
		log.Printf("Sign-out: %s", err.Error())
	}
	a.client.UseAPIKey()
	log.Printf("Signed out")
	return nil
}
