package constant

import (
	"time"
)

const (
	Empty = ""
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Storage keys of the persisted collections. Each key maps to one JSON
// document in the local store.
const (
	StorageKeyUsers       = "users"
	StorageKeyBookings    = "bookings"
	StorageKeyCurrentUser = "current_user"
	StorageKeyRememberMe  = "remember_me"
)

// Identifier prefixes keep user and booking ids distinguishable; both are
// derived from creation time like the ids the store was seeded with.
const (
	UserIDPrefix    = "user_"
	BookingIDPrefix = "BK"
)

// Actions checked against the permissions table.
const (
	ActionBookingCreate  = "booking:create"
	ActionBookingListOwn = "booking:list-own"
	ActionBookingListAll = "booking:list-all"
	ActionBookingUpdate  = "booking:update"
	ActionBookingDelete  = "booking:delete"
	ActionReportStats    = "report:stats"
)

const (
	DateFormat        = time.RFC3339
	BookingDateFormat = "2006-01-02"
)

const (
	MinPasswordLength = 6
)

const (
	CacheKeyBooking  = "booking:get"
	CacheKeyBookings = "booking:gets"
	CacheKeyStats    = "report:stats"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStoreScopeName      = "store"
)
