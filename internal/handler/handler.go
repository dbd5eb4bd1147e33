package handler

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "termine-api/gen/termine/v1"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store"
)

type Handler struct {
	pb.UnimplementedTermineServiceServer
	appointments *service.AppointmentService
	customers    *service.CustomerService
	log          *zap.Logger
}

func New(as *service.AppointmentService, cs *service.CustomerService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{appointments: as, customers: cs, log: log}
}

// toStatus maps service and validator errors onto gRPC codes. Per-field
// messages travel as a BadRequest detail.
func (h *Handler) toStatus(err error) error {
	var (
		ve  *service.ValidationError
		ord *schedule.OrderingError
		ovl *schedule.OverlapError
	)
	switch {
	case errors.As(err, &ve):
		st := status.New(codes.InvalidArgument, ve.Error())
		br := &errdetails.BadRequest{}
		for _, f := range ve.Fields() {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       f.Field,
				Description: f.Message,
			})
		}
		if withDetails, derr := st.WithDetails(br); derr == nil {
			st = withDetails
		}
		return st.Err()
	case errors.As(err, &ord):
		return status.Error(codes.InvalidArgument, ord.Error())
	case errors.As(err, &ovl):
		return status.Error(codes.AlreadyExists, ovl.Error())
	case errors.Is(err, store.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, schedule.ErrSourceUnavailable):
		h.log.Warn("overlap source unavailable", zap.Error(err))
		return status.Error(codes.Unavailable, "existing appointments could not be read")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	h.log.Error("request failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

// timestamp leaves unset instants out of the message.
func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
