package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		phone string
		otp   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with a one-time password",
		Long:  "Request an OTP for a phone number and verify it to sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			session := client.Session()

			if phone == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Phone number: ")
				phone, _ = reader.ReadString('\n')
				phone = strings.TrimSpace(phone)
			}

			if phone == "" {
				return ErrPhoneRequired
			}

			err = session.RequestOTP(ctx, phone)
			if err != nil {
				return fmt.Errorf("requesting OTP: %w", err)
			}

			if devOTP := session.DevelopmentOTP(); devOTP != "" {
				fmt.Printf("Development OTP: %s\n", devOTP)
			}

			if otp == "" {
				fmt.Print("OTP code: ")

				byteOTP, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading OTP: %w", err)
				}

				otp = strings.TrimSpace(string(byteOTP))

				fmt.Println()
			}

			if otp == "" {
				return ErrOTPRequired
			}

			err = session.VerifyOTP(ctx, otp)
			if err != nil {
				return fmt.Errorf("verifying OTP: %w", err)
			}

			if user := session.User(); user != nil {
				fmt.Printf("Logged in as %s\n", user.Phone)
			} else {
				fmt.Println("Logged in")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&phone, "phone", "p", "", "phone number to sign in with")
	cmd.Flags().StringVar(&otp, "otp", "", "OTP code (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			// Local credentials are cleared even when the remote call fails.
			err = client.Session().Logout(context.Background())
			if err != nil {
				return fmt.Errorf("logging out: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			err = client.Session().Initialize(ctx)
			if err != nil {
				return fmt.Errorf("initializing session: %w", err)
			}

			user := client.Session().User()
			if user == nil {
				return ErrNotLoggedIn
			}

			fmt.Printf("Phone: %s\n", user.Phone)

			if user.Name != "" {
				fmt.Printf("Name:  %s\n", user.Name)
			}

			if user.Role != "" {
				fmt.Printf("Role:  %s\n", user.Role)
			}

			return nil
		},
	}
}
