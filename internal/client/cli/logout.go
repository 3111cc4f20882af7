package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// 1. Сообщаем серверу о завершении сессии.
	// Ошибка сервера не мешает локальному логауту.
	if err := c.apiClient.Logout(ctx); err != nil {
		c.logger.Warn("server logout failed", "error", err)
	}

	// 2. Удаляем локальную сессию
	if err := c.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("✓ Logged out")
	return nil
}
