package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Devdiop221/deenquest/internal/config"
)

type Clients struct {
	*ContentAPI
	*ActionAPI
	*StatsAPI
}

func InitClients(cfg config.RemoteConfig) Clients {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return Clients{
		ContentAPI: NewContentAPI(cfg.BaseURL, httpClient),
		ActionAPI:  NewActionAPI(cfg.BaseURL, httpClient),
		StatsAPI:   NewStatsAPI(cfg.BaseURL, httpClient),
	}
}

func getJSON(ctx context.Context, client *http.Client, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

func postJSON(ctx context.Context, client *http.Client, url string, body, dest any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
