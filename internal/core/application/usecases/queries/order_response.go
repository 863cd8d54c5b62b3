// Package queries contains read operations of the CQRS split. Query handlers
// read the database directly, bypassing the domain aggregates, and return
// flat response structures shaped for the transport layer.
package queries

import (
	"database/sql"

	"titipin/internal/core/domain/model/kernel"
	"titipin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the read model for a single order.
type OrderResponse struct {
	ID              kernel.UUID
	RequesterID     kernel.UUID
	DelivererID     *kernel.UUID
	ItemDescription string
	Quantity        int
	Destination     string
	FinalFee        *int64
	Status          order.Status
	CreatedAt       int64
}

// orderColumns is the select list scanOrderRow expects, in scan order.
const orderColumns = `
	id,
	requester_id,
	deliverer_id,
	item_description,
	quantity,
	destination,
	final_fee,
	status,
	created_at
`

// scanOrderRow maps one row of orderColumns onto an OrderResponse.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp        OrderResponse
		id          uuid.UUID
		requesterID uuid.UUID
		delivererID *uuid.UUID
		finalFee    sql.NullInt64
		status      int
	)

	err := rows.Scan(
		&id,
		&requesterID,
		&delivererID,
		&resp.ItemDescription,
		&resp.Quantity,
		&resp.Destination,
		&finalFee,
		&status,
		&resp.CreatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return OrderResponse{}, err
	}
	if delivererID != nil {
		dID, dErr := kernel.UUIDFromBytes((*delivererID)[:])
		if dErr != nil {
			return OrderResponse{}, dErr
		}
		resp.DelivererID = &dID
	}
	if finalFee.Valid {
		fee := finalFee.Int64
		resp.FinalFee = &fee
	}
	resp.Status = order.Status(status)

	return resp, nil
}
