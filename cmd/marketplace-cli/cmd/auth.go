package cmd

import (
	"fmt"

	"github.com/nfrund/marketplace/internal/domain"
	"github.com/spf13/cobra"
)

func credentialFlags(c *cobra.Command, creds *domain.Credentials) {
	c.Flags().StringVar(&creds.Email, "email", "", "account email")
	c.Flags().StringVar(&creds.Password, "password", "", "account password")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
}

func newLoginCmd(resolve func() (*environment, error)) *cobra.Command {
	var creds domain.Credentials
	c := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the token for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolve()
			if err != nil {
				return err
			}
			res, err := env.client.Login(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("%w: %w", domain.ErrLoginFailed, err)
			}
			if !res.HasToken() {
				return domain.ErrLoginFailed
			}
			if err := env.tokens.Save(res.Token); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Logged in. Token saved to %s\n", env.tokens.Path())
			return nil
		},
	}
	credentialFlags(c, &creds)
	return c
}

func newSignupCmd(resolve func() (*environment, error)) *cobra.Command {
	var creds domain.Credentials
	c := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolve()
			if err != nil {
				return err
			}
			if err := env.client.Signup(cmd.Context(), creds); err != nil {
				return fmt.Errorf("%w: %w", domain.ErrSignupFailed, err)
			}
			fmt.Fprintln(out(cmd), "Account created. Please log in.")
			return nil
		},
	}
	credentialFlags(c, &creds)
	return c
}
