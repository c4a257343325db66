package util

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// PasswordEnv overrides the interactive password prompt, for scripted use
const PasswordEnv = "BITPAPER_PASSWORD"

// PromptPassword reads a password without echo. With confirm the password is read twice.
func PromptPassword(w io.Writer, prompt string, confirm bool) (string, error) {
	if password, ok := os.LookupEnv(PasswordEnv); ok {
		if password == "" {
			return "", errors.Errorf("%s is set but empty", PasswordEnv)
		}
		return password, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.Errorf("stdin is not a terminal, set %s to provide a password", PasswordEnv)
	}

	password, err := readPassword(w, fd, prompt)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	if confirm {
		again, err := readPassword(w, fd, "Confirm password: ")
		if err != nil {
			return "", err
		}
		if again != password {
			return "", errors.New("passwords do not match")
		}
	}

	return password, nil
}

func readPassword(w io.Writer, fd int, prompt string) (string, error) {
	fmt.Fprint(w, prompt)

	passwordBytes, err := term.ReadPassword(fd)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Fprintln(w)

	return string(passwordBytes), nil
}
