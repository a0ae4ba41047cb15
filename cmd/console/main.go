// The ncs-console command drives the admin console from the terminal:
// one subcommand per screen, with the session persisted between
// invocations so a login survives until logout or expiry.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/config"
	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/console"
	"github.com/hospitrack/ncs-console/internal/session"
	"github.com/hospitrack/ncs-console/internal/validate"
	"github.com/hospitrack/ncs-console/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level)

	store, err := session.NewFileStore(cfg.Session.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open session store")
	}

	client := apiclient.New(cfg.API.BaseURL, store,
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		apiclient.WithLogger(log),
	)

	a := &app{client: client, store: store, logger: log}
	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		os.Exit(1)
	}
}

type app struct {
	client *apiclient.Client
	store  session.Store
	logger zerolog.Logger
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		if len(args) != 2 {
			return usageError("login <username> <password>")
		}
		screen := console.NewLoginScreen(a.client, a.logger)
		return render(screen.Submit(ctx, args[0], args[1]))

	case "register":
		if len(args) != 3 {
			return usageError("register <username> <email> <password>")
		}
		screen := console.NewRegisterScreen(a.client, a.logger)
		return render(screen.Submit(ctx, validate.RegisterForm{
			Username: args[0],
			Email:    args[1],
			Password: args[2],
		}))

	case "change-password":
		if len(args) != 3 {
			return usageError("change-password <old> <new> <confirm>")
		}
		screen := console.NewChangePasswordScreen(a.client, a.logger)
		return render(screen.Submit(ctx, args[0], args[1], args[2]))

	case "forgot-password":
		if len(args) != 1 {
			return usageError("forgot-password <email>")
		}
		screen := console.NewForgotPasswordScreen(a.client, a.logger)
		return render(screen.Submit(ctx, args[0]))

	case "reset-password":
		if len(args) != 2 {
			return usageError("reset-password <token> <new-password>")
		}
		if err := a.client.ResetPassword(ctx, args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		fmt.Println("Password reset. You can now log in with the new password.")
		return nil

	case "whoami":
		user, err := a.client.FetchCurrentUser(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		fmt.Printf("%s <%s> (%s)\n", user.Username, user.Email, user.Role)
		return nil

	case "summary":
		return a.summary(ctx)

	case "logout":
		dash := console.NewDashboard(a.client, a.store, a.logger)
		nav := dash.Logout()
		fmt.Println("Logged out. ->", nav.Path)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) summary(ctx context.Context) error {
	dash := console.NewDashboard(a.client, a.store, a.logger)
	if nav := dash.Guard(); nav != nil {
		fmt.Println("Not logged in. ->", nav.Path)
		return errors.New("no session")
	}

	counts, nav, err := dash.Summary(ctx)
	if err != nil {
		if nav != nil {
			fmt.Println("Session expired. ->", nav.Path)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return err
	}

	fmt.Printf("Logged in as %s\n", a.store.Role())
	for _, c := range counts {
		fmt.Printf("  %-18s %d\n", c.Name, c.Count)
	}
	return nil
}

// render prints an outcome the way the screens mean it: inline errors
// to stderr, success copy to stdout, and any deferred navigation after
// its delay.
func render(out console.Outcome) error {
	if out.Busy {
		fmt.Fprintln(os.Stderr, "a submission is already in flight")
		return errors.New("busy")
	}
	if len(out.Errors) > 0 {
		for field, msg := range out.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
		}
		return errors.New("submission failed")
	}
	if out.Message != "" {
		fmt.Println(out.Message)
	}
	if out.Nav != nil {
		if out.Nav.Delay > 0 {
			time.Sleep(out.Nav.Delay)
		}
		fmt.Println("->", out.Nav.Path)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: ncs-console <command> [args]

commands:
  login <username> <password>
  register <username> <email> <password>
  change-password <old> <new> <confirm>
  forgot-password <email>
  reset-password <token> <new-password>
  whoami
  summary
  logout`)
}

func usageError(form string) error {
	fmt.Fprintln(os.Stderr, "usage: ncs-console", form)
	return errors.New("bad arguments")
}
