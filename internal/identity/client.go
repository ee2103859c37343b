// Package identity отвечает за обмен bearer-токена на личность агента
// через внешний сервис Moltbook.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Agent личность агента, подтвержденная Moltbook
type Agent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolver разрешает bearer-токен в личность агента.
// Возвращает ошибку, если токен не удалось подтвердить.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Agent, error)
}

// Client HTTP-клиент Moltbook API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает новый клиент Moltbook с указанным базовым URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// meResponse ответ Moltbook на запрос текущего агента
type meResponse struct {
	Success bool   `json:"success"`
	Agent   *Agent `json:"agent"`
}

// Resolve запрашивает у Moltbook личность агента по токену
func (c *Client) Resolve(ctx context.Context, token string) (*Agent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/agents/me", nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к Moltbook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Moltbook отверг токен: %s", resp.Status)
	}

	var me meResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа Moltbook: %w", err)
	}

	if !me.Success || me.Agent == nil {
		return nil, fmt.Errorf("Moltbook не подтвердил личность агента")
	}

	return me.Agent, nil
}
