package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ucstools/ucs-config-report/pkg/creds"
)

// newEncryptPasswordCmd writes an encrypted password file usable by
// --password-file and batch targets, so batch runs never need plaintext
// passwords on disk.
func newEncryptPasswordCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "encrypt-password",
		Short: "Write an encrypted password file",
		Long: `Prompts for a controller password and a passphrase, then writes the
password sealed under the passphrase (PBKDF2 + AES-256-GCM). At run time
the passphrase is supplied via the variable named by --key-env.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := creds.Prompt("Password to encrypt")
			if err != nil {
				return err
			}
			if password == "" {
				return errors.New("empty password")
			}
			passphrase, err := creds.Prompt("Passphrase")
			if err != nil {
				return err
			}
			confirm, err := creds.Prompt("Passphrase (again)")
			if err != nil {
				return err
			}
			if passphrase != confirm {
				return errors.New("passphrases do not match")
			}

			sealed, err := creds.Seal(password, passphrase)
			if err != nil {
				return err
			}
			if err := creds.WriteSecretFile(out, sealed); err != nil {
				return err
			}
			fmt.Printf("Encrypted password written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "ucs-password.enc", "output file")
	return cmd
}
