package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"

	"elysian/config"
	"elysian/infras/kafka"
	"elysian/infras/otel"
	"elysian/shared/constant"

	"github.com/rs/zerolog/log"
)

// BookingAlert is the payload pushed to staff when a new online booking
// request lands.
type BookingAlert struct {
	BookingUUID  string  `json:"booking_uuid"`
	GuestName    string  `json:"guest_name"`
	PhoneNumber  string  `json:"phone_number"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
}

// StaffNotifier is a fire-and-forget sink. Delivery failure is logged and
// never propagated to the caller.
type StaffNotifier interface {
	NotifyBookingRequest(ctx context.Context, alert BookingAlert)
}

type kafkaNotifier struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) StaffNotifier {
	return &kafkaNotifier{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (n *kafkaNotifier) NotifyBookingRequest(ctx context.Context, alert BookingAlert) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".NotifyBookingRequest")
	defer scope.End()

	message := kafka.Message{
		Key:   alert.BookingUUID,
		Value: alert,
	}

	if err := n.client.SendMessages(ctx, n.cfg.Kafka.AlertTopic, message); err != nil {
		scope.TraceError(err)
		log.Error().
			Err(err).
			Str("booking_uuid", alert.BookingUUID).
			Msg("failed to send staff alert, continuing")
	}
}
