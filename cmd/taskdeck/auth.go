package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gcunha/taskdeck/internal/domain"
	"github.com/gcunha/taskdeck/internal/redact"
	"github.com/gcunha/taskdeck/internal/session"
)

func registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if password == "" {
				password = promptLine("Password: ")
			}
			payload := domain.RegisterRequest{Name: name, Email: email, Password: password}
			if err := payload.Validate(); err != nil {
				return err
			}

			resp, err := a.client.Register(cmd.Context(), payload)
			if err != nil {
				return err
			}
			a.notifier.Success(resp.Message)
			fmt.Println("You can now log in with `taskdeck login`.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if password == "" {
				password = promptLine("Password: ")
			}

			sess, err := a.store.Login(cmd.Context(), domain.LoginRequest{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if !sess.IsAuthenticated() {
				// The token arrived already expired; the store has
				// said so.
				return fmt.Errorf("login did not produce a usable session")
			}

			a.notifier.Success(fmt.Sprintf("Logged in as %s.", sess.Identity))
			if sess.HasExpiry() {
				fmt.Printf("Session valid until %s.\n",
					time.UnixMilli(sess.ExpiresAt).Local().Format("02/01/2006 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			a.store.Logout(session.ReasonManual, nil)
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.store.Current()
			if !sess.IsAuthenticated() {
				fmt.Println("Not logged in.")
				fmt.Printf("Help: %s\n", a.cfg.Links.HelpURL)
				return nil
			}

			fmt.Printf("Logged in as %s (token %s)\n", sess.Identity, redact.Token(sess.Token))
			if sess.HasExpiry() {
				remaining := sess.ExpiresIn(time.Now())
				fmt.Printf("Session expires in %s.\n", remaining.Round(time.Second))
			} else {
				fmt.Println("Session has no known expiry.")
			}
			fmt.Printf("API: %s\n", a.cfg.API.BaseURL)
			fmt.Printf("Status page: %s\n", a.cfg.Links.StatusURL)
			return nil
		},
	}
}

// promptLine reads one line from stdin after printing a prompt.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
