package domain

// Status is the order lifecycle state. Legal transitions:
//
//	Pending -> Processing -> Shipped -> Delivered
//	Pending, Processing   -> Cancelled
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }
