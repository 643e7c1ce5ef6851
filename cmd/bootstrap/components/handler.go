package components

import (
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewBlockedDateHandler,
		api.NewCalendarSyncHandler,
		middleware.NewAuthMiddleware,
		func(
			availability *api.AvailabilityHandler,
			pricing *api.PricingHandler,
			booking *api.BookingHandler,
			blocked *api.BlockedDateHandler,
			sync *api.CalendarSyncHandler,
		) handler.Handlers {
			return handler.Handlers{
				Availability: availability,
				Pricing:      pricing,
				Booking:      booking,
				BlockedDates: blocked,
				CalendarSync: sync,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
