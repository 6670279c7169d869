package gsheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client клиент для работы с Google Sheets
type Client struct {
	sheets  *sheets.Service
	sheetID string
}

// NewClient создаёт новый клиент Google Sheets
func NewClient(credentialsPath, sheetID string) (*Client, error) {
	ctx := context.Background()

	// Читаем credentials
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать credentials: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	client := config.Client(ctx)

	sheetsSrv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания Sheets сервиса: %w", err)
	}

	return &Client{
		sheets:  sheetsSrv,
		sheetID: sheetID,
	}, nil
}

// readTab читает все заполненные строки листа
func (c *Client) readTab(ctx context.Context, tab string) ([][]interface{}, error) {
	resp, err := c.sheets.Spreadsheets.Values.Get(c.sheetID, tab+"!A1:Z1000").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %s: %w", tab, err)
	}
	return resp.Values, nil
}
