package entities

import (
	"time"
)

// OrderedPart is a purchase order waiting for delivery. Quantity stays a
// string: the form does not constrain it beyond being filled in.
type OrderedPart struct {
	OrderNumber  string    `db:"order_number"`
	PartNumber   string    `db:"part_number"`
	PartName     string    `db:"part_name"`
	Quantity     string    `db:"quantity"`
	OrderDate    time.Time `db:"order_date"`
	SupplierName string    `db:"supplier_name"`
	DataLocation string    `db:"data_location"`
	Remarks      string    `db:"remarks"`
	OrderedBy    string    `db:"ordered_by"`
	CreatedAt    time.Time `db:"created_at"`
}

// ReceivedPart is an OrderedPart after its delivery was registered. It waits
// in the uninspected queue until an inspector picks it up.
type ReceivedPart struct {
	OrderNumber  string    `db:"order_number"`
	PartNumber   string    `db:"part_number"`
	PartName     string    `db:"part_name"`
	Quantity     string    `db:"quantity"`
	OrderDate    time.Time `db:"order_date"`
	SupplierName string    `db:"supplier_name"`
	DataLocation string    `db:"data_location"`
	Remarks      string    `db:"remarks"`
	ReceivedDate time.Time `db:"received_date"`
	OrderedBy    string    `db:"ordered_by"`
	CreatedAt    time.Time `db:"created_at"`
}
