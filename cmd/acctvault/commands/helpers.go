package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"acctvault/internal/domain"
	"acctvault/internal/ui"
)

const passwordEnv = "ACCTVAULT_PASSWORD"

// mainPassword returns a fresh copy of the main password on every call;
// the store erases the slice it is given.
func mainPassword() ([]byte, error) {
	if password != "" {
		return []byte(password), nil
	}
	if v := os.Getenv(passwordEnv); v != "" {
		return []byte(v), nil
	}
	return ui.ReadPassword("Main password: ")
}

func newMainPassword() ([]byte, error) {
	if password != "" {
		return []byte(password), nil
	}
	if v := os.Getenv(passwordEnv); v != "" {
		return []byte(v), nil
	}
	return ui.ReadNewPassword("New main password: ")
}

// accountPassword prompts twice when in is the terminal and otherwise reads
// one line from in.
func accountPassword(in io.Reader) ([]byte, error) {
	if in == io.Reader(os.Stdin) && ui.IsTerminal() {
		return ui.ReadNewPassword("Account password: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil, errors.New("empty password on stdin")
	}
	return []byte(line), nil
}

func view(fn func(domain.AccountStore) error) error {
	pw, err := mainPassword()
	if err != nil {
		return err
	}
	return appCtx.Vault.View(cfg.Database, pw, fn)
}

func update(fn func(domain.AccountStore) error) error {
	pw, err := mainPassword()
	if err != nil {
		return err
	}
	return appCtx.Vault.Update(cfg.Database, pw, fn)
}

func parseID(s string) (domain.AccountID, error) {
	id, err := domain.ParseAccountID(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid account id %q", s)
	}
	return id, nil
}

func parseIDs(ss []string) (domain.IDSet, error) {
	ids := make([]domain.AccountID, 0, len(ss))
	for _, s := range ss {
		id, err := parseID(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return domain.NewIDSet(ids...), nil
}

// optionalParent maps "" to no parent.
func optionalParent(s string) (*domain.AccountID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := parseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// optionalString maps "" to an absent value.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseFields turns key=value pairs into a map.
func parseFields(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q (want key=value)", p)
		}
		m[k] = v
	}
	return m, nil
}
