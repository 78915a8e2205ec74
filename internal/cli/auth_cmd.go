package cli

import (
	"context"
	"fmt"

	"github.com/GuilhermeVerrone/process-mapper/internal/contract"
	"github.com/GuilhermeVerrone/process-mapper/internal/domain"
	"github.com/GuilhermeVerrone/process-mapper/internal/session"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// requireAuth loads the persisted session and validates its token. Commands
// that mutate the store call this first; an expired or missing credential
// fails the same way the API's 401 guard would.
func requireAuth(ctx context.Context, app *App) (*domain.User, error) {
	s, err := session.Load(app.SessionPath)
	if err != nil {
		return nil, err
	}
	if !s.Active() {
		return nil, fmt.Errorf("not logged in (run: procmap login)")
	}
	user, err := app.Auth.Authenticate(ctx, s.Token)
	if err != nil {
		// Stale credential: tear the local session down so the next
		// attempt starts clean.
		_ = session.Clear(app.SessionPath)
		return nil, fmt.Errorf("session expired, log in again: %w", err)
	}
	return user, nil
}

func newRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && app.IsInteractive() {
				if err := passwordForm(&password); err != nil {
					return err
				}
			}
			u, err := app.Auth.Register(context.Background(), contract.RegisterRequest{
				Name: name, Email: email, Password: password,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (%s)\n", u.Name, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && app.IsInteractive() {
				if err := passwordForm(&password); err != nil {
					return err
				}
			}
			resp, err := app.Auth.Login(context.Background(), contract.LoginRequest{
				Email: email, Password: password,
			})
			if err != nil {
				return err
			}
			err = session.Save(app.SessionPath, &session.Session{
				Token:     resp.Token,
				UserID:    resp.User.ID,
				UserName:  resp.User.Name,
				UserEmail: resp.User.Email,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", resp.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := session.Load(app.SessionPath)
			if err != nil {
				return err
			}
			if s.Active() {
				_ = app.Auth.Logout(context.Background(), s.Token)
			}
			if err := session.Clear(app.SessionPath); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := requireAuth(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", u.Name, u.Email)
			return nil
		},
	}
}

func passwordForm(password *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(password),
		),
	).WithTheme(procmapHuhTheme()).WithShowHelp(false)
	return form.Run()
}
