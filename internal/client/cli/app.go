package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/imgurcache/internal/client/client"
	"github.com/dmitrijs2005/imgurcache/internal/client/config"
	"github.com/dmitrijs2005/imgurcache/internal/client/models"
	"github.com/dmitrijs2005/imgurcache/internal/client/storage"
	"github.com/dmitrijs2005/imgurcache/internal/logging"
)

type App struct {
	repos *client.Repositories
	log   logging.Logger
	out   io.Writer
	now   func() time.Time
}

// NewApp opens the cache described by c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, out io.Writer) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.DBPath(), log, storage.WithBusyTimeout(c.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("error initializing cache: %w", err)
	}
	return newApp(repos, log, out), nil
}

func newApp(repos *client.Repositories, log logging.Logger, out io.Writer) *App {
	return &App{repos: repos, log: log, out: out, now: time.Now}
}

// Run serves commands from in until EOF or exit, then closes the cache.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.log.Info(ctx, "cache opened", "path", a.repos.Path())
	runREPL(ctx, a, func() string { return a.status(ctx) }, bufio.NewScanner(in))
	return a.repos.Close()
}

func (a *App) status(ctx context.Context) string {
	acc, err := a.repos.Account.Get(ctx)
	if err != nil || acc == nil {
		return "(signed out)"
	}
	return fmt.Sprintf("(%s)", acc.Username)
}

func (a *App) Account(ctx context.Context) error {
	acc, err := a.repos.Account.Get(ctx)
	if err != nil {
		return a.fail(ctx, "account", err)
	}
	if acc == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	state := "valid"
	if !acc.HasValidToken(a.now().UnixMilli()) {
		state = "expired"
	}
	fmt.Fprintf(a.out, "%s (id %d), reputation %d\n", acc.Username, acc.ID, acc.Reputation)
	fmt.Fprintf(a.out, "  member since:  %s\n", formatMillis(acc.Created))
	fmt.Fprintf(a.out, "  token expires: %s (%s)\n", formatMillis(acc.AccessTokenExpiration), state)
	fmt.Fprintf(a.out, "  pro until:     %s\n", formatMillis(acc.ProExpiration))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.repos.Account.Clear(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Profile(ctx context.Context, username string) error {
	p, err := a.repos.Profiles.Get(ctx, username)
	if err != nil {
		return a.fail(ctx, "profile", err)
	}
	if p == nil {
		fmt.Fprintf(a.out, "No cached profile for %s\n", username)
		return nil
	}

	fmt.Fprintf(a.out, "%s (id %d), reputation %d\n", p.Username, p.ID, p.Reputation)
	if p.Bio != nil {
		fmt.Fprintf(a.out, "  bio:       %s\n", *p.Bio)
	}
	fmt.Fprintf(a.out, "  created:   %s\n", formatMillis(p.Created))
	fmt.Fprintf(a.out, "  last seen: %s\n", formatMillis(p.LastSeen))
	return nil
}

func (a *App) Uploads(ctx context.Context, order models.SortOrder) error {
	list, err := a.repos.Uploads.List(ctx, order)
	if err != nil {
		return a.fail(ctx, "uploads", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No uploads")
		return nil
	}
	for _, u := range list {
		fmt.Fprintf(a.out, "%d\t%s\t%s\n", u.ID, formatMillis(u.UploadDate), u.URL)
	}
	return nil
}

func (a *App) Forget(ctx context.Context, id int64) error {
	if err := a.repos.Uploads.Delete(ctx, &models.UploadedPhoto{ID: id}); err != nil {
		return a.fail(ctx, "forget", err)
	}
	fmt.Fprintf(a.out, "Upload %d removed from the log\n", id)
	return nil
}

func (a *App) Topics(ctx context.Context) error {
	list, err := a.repos.Topics.ListAll(ctx)
	if err != nil {
		return a.fail(ctx, "topics", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No cached topics")
		return nil
	}
	for _, t := range list {
		fmt.Fprintf(a.out, "%d\t%s\n", t.ID, t.Name)
	}
	return nil
}

func (a *App) Topic(ctx context.Context, id int64) error {
	t, err := a.repos.Topics.Get(ctx, id)
	if err != nil {
		return a.fail(ctx, "topic", err)
	}
	if t == nil {
		fmt.Fprintf(a.out, "No cached topic %d\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "%s\n  %s\n", t.Name, t.Description)
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.repos.Stats(ctx)
	if err != nil {
		return a.fail(ctx, "stats", err)
	}
	who := s.SignedInAs
	if who == "" {
		who = "-"
	}
	fmt.Fprintf(a.out, "schema version: %d\n", s.SchemaVersion)
	fmt.Fprintf(a.out, "signed in as:   %s\n", who)
	fmt.Fprintf(a.out, "uploads:        %d\n", s.Uploads)
	fmt.Fprintf(a.out, "topics:         %d\n", s.Topics)
	return nil
}

func (a *App) fail(ctx context.Context, cmd string, err error) error {
	a.log.Error(ctx, "command failed", "command", cmd, "error", err)
	fmt.Fprintln(a.out, "Error:", err)
	return err
}
