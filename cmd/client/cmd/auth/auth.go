package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func promptLogin(login string) (string, error) {
	if login != "" {
		return login, nil
	}

	fmt.Print("Login: ")
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		login = strings.TrimSpace(scanner.Text())
	}
	if login == "" {
		return "", fmt.Errorf("login is required")
	}

	return login, nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(password) == 0 {
		return "", fmt.Errorf("password is required")
	}

	return string(password), nil
}
