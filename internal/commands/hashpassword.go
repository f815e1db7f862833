package commands

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"frontend/internal/auth"
	"frontend/internal/config"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

const defaultAuthFile = "./auth.secret"

// HashPassword handles the hash-password subcommand. It returns the process
// exit code.
func HashPassword(args []string) int {
	fs := flag.NewFlagSet("hash-password", flag.ContinueOnError)
	overwrite := fs.Bool("overwrite", false, "Overwrite existing auth file")
	appendUser := fs.Bool("append", false, "Add the user to an existing auth file")
	insecureUnmask := fs.Bool("insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: frontend hash-password [OPTIONS] [username]\n\n")
		fmt.Fprintf(os.Stderr, "Creates the analytics auth file with a bcrypt password hash.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nThe auth file is security.analytics_auth_file from the config file or\n")
		fmt.Fprintf(os.Stderr, "ANALYTICS_AUTH_FILE (default: %s).\n", defaultAuthFile)
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	path, err := authFilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	in := bufio.NewReader(os.Stdin)
	username := strings.TrimSpace(fs.Arg(0))
	if username == "" {
		fmt.Print("Enter username: ")
		if username, err = readLine(in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading username: %v\n", err)
			return 1
		}
	}

	var password, passwordConfirm string
	if *insecureUnmask {
		fmt.Fprintf(os.Stderr, "WARNING: Password will be visible on screen!\n")
		fmt.Print("Enter password:   ")
		if password, err = readLine(in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			return 1
		}
		fmt.Print("Confirm password: ")
		if passwordConfirm, err = readLine(in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password confirmation: %v\n", err)
			return 1
		}
	} else {
		password = readPasswordWithMask("Enter password:   ")
		passwordConfirm = readPasswordWithMask("Confirm password: ")
	}

	if password != passwordConfirm {
		fmt.Fprintf(os.Stderr, "Passwords do not match\n")
		return 1
	}

	mode := AuthCreate
	switch {
	case *overwrite:
		mode = AuthOverwrite
	case *appendUser:
		mode = AuthAppend
	}
	if err := CreateAuthFile(path, username, password, mode, *cost); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("Wrote credentials for %q to %s\n", username, path)
	return 0
}

// authFilePath resolves the auth file the same way the server does.
func authFilePath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if p := strings.TrimSpace(cfg.Security.AnalyticsAuthFile); p != "" {
		return p, nil
	}
	return defaultAuthFile, nil
}

type WriteMode int

const (
	AuthCreate WriteMode = iota
	AuthOverwrite
	AuthAppend
)

var ErrAuthFileExists = errors.New("auth file already exists (use -overwrite or -append)")

// CreateAuthFile writes "username:hash" to path with owner-only permissions.
func CreateAuthFile(path, username, password string, mode WriteMode, cost int) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username cannot be empty")
	}
	if strings.ContainsAny(username, ": \t") {
		return errors.New("username cannot contain ':' or whitespace")
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	line := auth.FormatEntry(username, hash) + "\n"

	flags := os.O_WRONLY | os.O_CREATE
	switch mode {
	case AuthOverwrite:
		flags |= os.O_TRUNC
	case AuthAppend:
		flags |= os.O_APPEND
	default:
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrAuthFileExists
		}
		return fmt.Errorf("open auth file: %w", err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write auth file: %w", err)
	}
	return f.Close()
}

func readLine(r *bufio.Reader) (string, error) {
	s, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	fd := int(syscall.Stdin)
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal: fall back to hidden input
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}
	defer term.Restore(fd, oldState)

	var password []rune
	reader := bufio.NewReader(os.Stdin)
	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}
		switch char {
		case '\n', '\r':
			fmt.Print("\r\n")
			return string(password)
		case 127, 8:
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			term.Restore(fd, oldState)
			fmt.Println()
			os.Exit(1)
		default:
			if char >= 32 {
				password = append(password, char)
				fmt.Print("*")
			}
		}
	}
	fmt.Print("\r\n")
	return string(password)
}
