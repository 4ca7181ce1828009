package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const sqlGetConnectedWhatsAppInstance = `
SELECT id, company_id, instance_name, status, created_at
FROM whatsapp_instances
WHERE company_id = $1 AND status = 'connected'
ORDER BY created_at DESC
LIMIT 1
`

// GetConnectedWhatsAppInstance retrieves the newest connected gateway instance of a company
func (s *Store) GetConnectedWhatsAppInstance(ctx context.Context, companyID int64) (WhatsAppInstance, error) {
	var instance WhatsAppInstance
	err := s.db.GetContext(ctx, &instance, sqlGetConnectedWhatsAppInstance, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WhatsAppInstance{}, ErrNotFound
		}
		return WhatsAppInstance{}, fmt.Errorf("failed to get whatsapp instance: %w", err)
	}
	return instance, nil
}

const sqlGetGlobalSettings = `
SELECT key, value
FROM global_settings
WHERE key = ANY(ARRAY['evolution_api_url', 'evolution_api_key'])
`

// GetGatewayCredentials retrieves the global Evolution API URL and key.
// Missing keys come back empty; callers decide whether that is fatal.
func (s *Store) GetGatewayCredentials(ctx context.Context) (GatewayCredentials, error) {
	var rows []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := s.db.SelectContext(ctx, &rows, sqlGetGlobalSettings); err != nil {
		return GatewayCredentials{}, fmt.Errorf("failed to get gateway credentials: %w", err)
	}

	var creds GatewayCredentials
	for _, row := range rows {
		switch row.Key {
		case SettingEvolutionAPIURL:
			creds.BaseURL = row.Value
		case SettingEvolutionAPIKey:
			creds.APIKey = row.Value
		}
	}
	return creds, nil
}
