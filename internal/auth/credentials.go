package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Credentials guard the analytics pages. The file format is one
// "username:bcrypt-hash" per line; blank lines and # comments are skipped.
type Credentials struct {
	users map[string][]byte
}

// dummyHash keeps unknown-user checks about as slow as known ones.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

func LoadCredentials(path string) (*Credentials, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open auth file: %w", err)
	}
	defer f.Close()
	return ParseCredentials(f)
}

func ParseCredentials(r io.Reader) (*Credentials, error) {
	c := &Credentials{users: map[string][]byte{}}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		user, hash, ok := strings.Cut(text, ":")
		user = strings.TrimSpace(user)
		hash = strings.TrimSpace(hash)
		if !ok || user == "" || hash == "" {
			return nil, fmt.Errorf("auth file line %d: expected username:hash", line)
		}
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, fmt.Errorf("auth file line %d: %w", line, err)
		}
		c.users[user] = []byte(hash)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(c.users) == 0 {
		return nil, fmt.Errorf("auth file has no users")
	}
	return c, nil
}

func (c *Credentials) Verify(username, password string) bool {
	hash, ok := c.users[username]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

func (c *Credentials) Len() int { return len(c.users) }

// HashPassword returns a bcrypt hash for the auth file.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// FormatEntry renders one auth file line.
func FormatEntry(username, hash string) string {
	return username + ":" + hash
}
