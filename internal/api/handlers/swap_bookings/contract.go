package swap_bookings

import (
	"context"

	"github.com/AdrianLinares/microreserva/internal/domain"
	swapBookings "github.com/AdrianLinares/microreserva/internal/usecase/swap_bookings"
)

type SwapBookingsUseCase interface {
	Execute(ctx context.Context, req *swapBookings.Request) (*swapBookings.Response, error)
	Reconcile(ctx context.Context, actor domain.Actor) (*swapBookings.ReconcileReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
