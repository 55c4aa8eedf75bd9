package entity

const (
	DishAvailable   = "available"
	DishUnavailable = "unavailable"
)
