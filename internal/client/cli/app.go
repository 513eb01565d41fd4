package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akarpovs/stockkeeper/internal/client/config"
	"github.com/akarpovs/stockkeeper/internal/client/controller"
	"github.com/akarpovs/stockkeeper/internal/client/gateway"
	"github.com/akarpovs/stockkeeper/internal/client/identity"
	"github.com/akarpovs/stockkeeper/internal/logging"
)

// App holds the interactive client's collaborators: the view-state
// controller, the gateway transport, and the identity provider.
type App struct {
	config *config.Config
	ctrl   *controller.Controller
	client gateway.Client
	idp    identity.Provider
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the client against the configured gateway endpoint.
func NewApp(c *config.Config) (*App, error) {
	apiClient, err := gateway.NewHTTPClient(c.GatewayURL, c.APIKey, c.RequestTimeout)
	if err != nil {
		log.Printf("error initializing gateway client: %s", err.Error())
		return nil, err
	}

	idp := identity.NewHTTPProvider(c.GatewayURL)

	logger := logging.NewText(os.Stderr)
	store := controller.NewStore(apiClient, logger)
	ctrl := controller.New(store, apiClient, idp, logger)

	return &App{
		config: c,
		ctrl:   ctrl,
		client: apiClient,
		idp:    idp,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isSignedIn() bool {
	return a.idp.Current().Authenticated
}

// getStatus renders the prompt status: acting identity plus the pending
// edit target, if any.
func (a *App) getStatus() string {
	s := "guest"
	if sess := a.idp.Current(); sess.Authenticated {
		s = sess.Username
	}
	if st := a.ctrl.State(); st.Edit.Active {
		s = fmt.Sprintf("%s editing %s", s, st.Edit.TargetID)
	}
	return fmt.Sprintf("(%s)", s)
}

// Run performs the initial collection fetch (guest reads are allowed) and
// enters the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.client.Close() }()

	if err := a.ctrl.Refresh(ctx); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
