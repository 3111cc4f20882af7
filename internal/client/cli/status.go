package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goldpos/jrdclient/internal/client/session"
	"github.com/goldpos/jrdclient/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	data, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'jrdclient login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", data.Username)
	c.io.Printf("Saved at: %s\n", time.UnixMilli(data.SavedAt).Format(time.RFC3339))

	// Срок действия сессии берем из JWT куки, если она есть
	for _, cookie := range data.Cookies {
		expiresAt, ok := session.TokenExpiry(cookie.Value)
		if !ok {
			continue
		}
		remaining := time.Until(expiresAt)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Session has expired. Please login again.")
		}
		break
	}

	return nil
}
