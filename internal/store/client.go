package store

import (
	"context"
	"fmt"

	"github.com/lib/pq"
)

const sqlListReachableClients = `
SELECT id, company_id, name, phone
FROM clients
WHERE company_id = $1 AND phone IS NOT NULL AND btrim(phone) <> ''
ORDER BY id ASC
`

// ListReachableClients retrieves every client of a company that has a phone
func (s *Store) ListReachableClients(ctx context.Context, companyID int64) ([]Client, error) {
	var clients []Client
	err := s.db.SelectContext(ctx, &clients, sqlListReachableClients, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

const sqlListReachableClientsByIDs = `
SELECT id, company_id, name, phone
FROM clients
WHERE company_id = $1 AND id = ANY($2) AND phone IS NOT NULL AND btrim(phone) <> ''
ORDER BY id ASC
`

// ListReachableClientsByIDs retrieves the selected clients of a company that have a phone
func (s *Store) ListReachableClientsByIDs(ctx context.Context, companyID int64, clientIDs []int64) ([]Client, error) {
	if len(clientIDs) == 0 {
		return nil, nil
	}

	var clients []Client
	err := s.db.SelectContext(ctx, &clients, sqlListReachableClientsByIDs, companyID, pq.Array(clientIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list selected clients: %w", err)
	}
	return clients, nil
}
