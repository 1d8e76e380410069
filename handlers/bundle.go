package handlers

// HandlerBundle groups every handler for route registration.
type HandlerBundle struct {
	Auth         *AuthHandler
	Appointments *AppointmentHandler
	BlockedDates *BlockedDateHandler
	OpenHours    *OpenHourHandler
	Services     *ServiceHandler
	Availability *AvailabilityHandler
}
