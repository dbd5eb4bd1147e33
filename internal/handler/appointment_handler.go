package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "termine-api/gen/termine/v1"
	"termine-api/internal/model"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
)

func appointmentInput(in *pb.AppointmentInput) service.AppointmentInput {
	if in == nil {
		return service.AppointmentInput{}
	}
	return service.AppointmentInput{
		Title:          in.Title,
		StartDate:      in.StartDate,
		StartTime:      in.StartTime,
		EndDate:        in.EndDate,
		EndTime:        in.EndTime,
		Status:         in.Status,
		CustomerID:     in.CustomerId,
		UnlinkCustomer: in.UnlinkCustomer,
	}
}

func (h *Handler) CreateAppointment(ctx context.Context, req *pb.AppointmentInput) (*pb.AppointmentResponse, error) {
	a, err := h.appointments.Create(ctx, appointmentInput(req))
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: h.toProto(a)}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *pb.UpdateAppointmentRequest) (*pb.AppointmentResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	a, err := h.appointments.Update(ctx, req.Id, appointmentInput(req.Input))
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: h.toProto(a)}, nil
}

func (h *Handler) GetAppointment(ctx context.Context, req *pb.IDRequest) (*pb.AppointmentResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	a, err := h.appointments.Get(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.AppointmentResponse{Appointment: h.toProto(a)}, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.appointments.Delete(ctx, req.Id); err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *Handler) ListAppointments(ctx context.Context, req *pb.ListAppointmentsRequest) (*pb.ListAppointmentsResponse, error) {
	w := schedule.Window{From: fromTimestamp(req.From), To: fromTimestamp(req.To)}
	if !w.From.IsZero() && !w.To.IsZero() && !w.To.After(w.From) {
		return nil, status.Error(codes.InvalidArgument, "range end must be after range start")
	}

	apts, err := h.appointments.List(ctx, w)
	if err != nil {
		return nil, h.toStatus(err)
	}
	out := make([]*pb.Appointment, len(apts))
	for i := range apts {
		out[i] = h.toProto(&apts[i])
	}
	return &pb.ListAppointmentsResponse{Appointments: out}, nil
}

func (h *Handler) ValidateAppointment(ctx context.Context, req *pb.ValidateAppointmentRequest) (*pb.ValidateAppointmentResponse, error) {
	iv, err := h.appointments.Validate(ctx, appointmentInput(req.Input), req.ExcludeId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.ValidateAppointmentResponse{Start: timestamp(iv.Start), End: timestamp(iv.End)}, nil
}

func (h *Handler) toProto(a *model.Appointment) *pb.Appointment {
	loc := h.appointments.Location()
	p := &pb.Appointment{
		Id:         a.ID,
		Title:      a.Title,
		Start:      timestamp(a.Start),
		End:        timestamp(a.End),
		Status:     string(a.Status),
		CustomerId: a.CustomerID,
		CreatedAt:  timestamp(a.CreatedAt),
		UpdatedAt:  timestamp(a.UpdatedAt),
	}
	p.StartDate, p.StartTime = schedule.SplitInstant(a.Start, loc)
	p.EndDate, p.EndTime = schedule.SplitInstant(a.End, loc)
	return p
}
