package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "termine-api/gen/termine/v1"
	"termine-api/internal/model"
	"termine-api/internal/service"
)

func customerInput(in *pb.CustomerInput) service.CustomerInput {
	if in == nil {
		return service.CustomerInput{}
	}
	return service.CustomerInput{
		Title:     in.Title,
		LastName:  in.LastName,
		FirstName: in.FirstName,
		BirthDate: in.BirthDate,
		Street:    in.Street,
		Zip:       in.Zip,
		City:      in.City,
		Phone:     in.Phone,
		Mobile:    in.Mobile,
		Email:     in.Email,
		Website:   in.Website,
	}
}

func customerProto(c *model.Customer) *pb.Customer {
	return &pb.Customer{
		Id:        c.ID,
		Title:     c.Title,
		LastName:  c.LastName,
		FirstName: c.FirstName,
		BirthDate: c.BirthDate,
		Street:    c.Street,
		Zip:       c.Zip,
		City:      c.City,
		Phone:     c.Phone,
		Mobile:    c.Mobile,
		Email:     c.Email,
		Website:   c.Website,
		CreatedAt: timestamp(c.CreatedAt),
		UpdatedAt: timestamp(c.UpdatedAt),
	}
}

func customerList(cs []model.Customer) *pb.ListCustomersResponse {
	out := make([]*pb.Customer, len(cs))
	for i := range cs {
		out[i] = customerProto(&cs[i])
	}
	return &pb.ListCustomersResponse{Customers: out}
}

func (h *Handler) CreateCustomer(ctx context.Context, req *pb.CreateCustomerRequest) (*pb.CustomerResponse, error) {
	res, err := h.customers.Create(ctx, customerInput(req.Input), req.AppointmentId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.CustomerResponse{Customer: customerProto(res.Customer), LinkWarning: res.LinkWarning}, nil
}

func (h *Handler) UpdateCustomer(ctx context.Context, req *pb.UpdateCustomerRequest) (*pb.CustomerResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	c, err := h.customers.Update(ctx, req.Id, customerInput(req.Input))
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.CustomerResponse{Customer: customerProto(c)}, nil
}

func (h *Handler) GetCustomer(ctx context.Context, req *pb.IDRequest) (*pb.CustomerResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	c, err := h.customers.Get(ctx, req.Id)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.CustomerResponse{Customer: customerProto(c)}, nil
}

func (h *Handler) DeleteCustomer(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := h.customers.Delete(ctx, req.Id); err != nil {
		return nil, h.toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *Handler) ListCustomers(ctx context.Context, _ *pb.Empty) (*pb.ListCustomersResponse, error) {
	cs, err := h.customers.List(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return customerList(cs), nil
}

func (h *Handler) SearchCustomers(ctx context.Context, req *pb.SearchCustomersRequest) (*pb.ListCustomersResponse, error) {
	cs, err := h.customers.Search(ctx, req.Query)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return customerList(cs), nil
}
