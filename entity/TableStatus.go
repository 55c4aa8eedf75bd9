package entity

const (
	TableAvailable = "available"
	TableReserved  = "reserved"
	TableOccupied  = "occupied"
)
