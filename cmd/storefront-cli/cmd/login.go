package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nfrund/storefront/internal/apiclient"
	"github.com/nfrund/storefront/internal/config"
	"github.com/nfrund/storefront/internal/logging"
	"github.com/nfrund/storefront/internal/login"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
	loginAPI      string
	loginTimeout  time.Duration
	loginFormat   string
	loginLogLevel string
)

// errLoginRejected is returned when the backend answered with errors.
var errLoginRejected = errors.New("login rejected")

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in against the users API",
	Long: `Submit an email and password to the users API and print the feedback the
login form would show.

Examples:
  storefront-cli login --email user@example.com --password 'secret'
  storefront-cli login --email user@example.com --password 'secret' --format json
  storefront-cli login --api http://localhost:10001 --email a@b.c --password x`,
	RunE: loginHandler,
}

func loginHandler(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger(cmd.ErrOrStderr(), "text", loginLogLevel)

	client := apiclient.New(loginAPI, apiclient.WithTimeout(loginTimeout))
	ctrl := login.NewController(client, login.WithLogger(logger))
	ctrl.SetEmail(loginEmail)
	ctrl.SetPassword(loginPassword)

	state, err := ctrl.Submit(cmd.Context())
	if err != nil {
		return err
	}

	if err := printFeedback(cmd, state.Feedback); err != nil {
		return err
	}
	if state.Feedback.Message == "" {
		return errLoginRejected
	}
	return nil
}

func printFeedback(cmd *cobra.Command, fb login.FeedbackState) error {
	out := cmd.OutOrStdout()
	if loginFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(fb)
	}

	if fb.Empty() {
		fmt.Fprintln(out, "No feedback received from the backend.")
		return nil
	}
	for _, line := range []struct{ label, value string }{
		{"message", fb.Message},
		{"email", fb.EmailError},
		{"password", fb.PasswordError},
		{"form", fb.FormError},
	} {
		if line.value != "" {
			fmt.Fprintf(out, "%-9s %s\n", line.label+":", line.value)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)

	apiDefault := config.DefaultAPIBaseURL
	if v := os.Getenv("API_BASE_URL"); v != "" {
		apiDefault = v
	}

	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address to sign in with")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password to sign in with")
	loginCmd.Flags().StringVar(&loginAPI, "api", apiDefault, "Base URL of the backend API")
	loginCmd.Flags().DurationVar(&loginTimeout, "timeout", 10*time.Second, "Request timeout (0 disables it)")
	loginCmd.Flags().StringVarP(&loginFormat, "format", "f", "text", "Output format (text, json)")
	loginCmd.Flags().StringVar(&loginLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
