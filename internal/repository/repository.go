// Package repository holds the three workshop collections in memory and
// mirrors every mutation to a named storage slot. Loading never fails:
// absent or corrupt slots fall back to the seed datasets, and every record
// read from storage goes through the sanitizers first.
package repository

import (
	"context"

	"github.com/re-fagiano/fixlab/internal/platform/logger"
)

const (
	slotCustomers = "customers"
	slotTickets   = "tickets"
	slotInventory = "inventory"
)

// storageWarning is the non-blocking banner text for a failed slot write.
// Memory stays authoritative for the session.
const storageWarning = "salvataggio non riuscito: i dati restano in memoria ma non sopravviveranno al riavvio"

func warnWriteFailed(slot string, err error) {
	logger.Warn(context.Background(), "slot write failed",
		logger.String("slot", slot),
		logger.ErrorF(err),
	)
}
