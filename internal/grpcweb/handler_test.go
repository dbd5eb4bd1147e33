package grpcweb

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	pb "termine-api/gen/termine/v1"
	"termine-api/internal/handler"
	"termine-api/internal/middleware"
	"termine-api/internal/schedule"
	"termine-api/internal/service"
	"termine-api/internal/store/filestore"
)

func setup(t *testing.T) http.Handler {
	t.Helper()
	st := filestore.NewMemory()
	loc, _ := time.LoadLocation("Europe/Berlin")
	v := schedule.NewValidator(st, schedule.DefaultPolicy(), loc, nil)
	h := handler.New(service.NewAppointmentService(st, v, nil), service.NewCustomerService(st, nil), nil)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterTermineServiceServer(srv, h)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return NewWithConn(conn, nil).Handler()
}

func call(t *testing.T, h http.Handler, method string, msg proto.Message) (data []byte, trailers map[string]string) {
	t.Helper()
	payload, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, method, bytes.NewReader(frame(0x00, payload)))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("http status %d", rec.Code)
	}
	return parseFrames(t, rec.Body.Bytes())
}

func parseFrames(t *testing.T, b []byte) ([]byte, map[string]string) {
	t.Helper()
	var data []byte
	trailers := map[string]string{}
	for len(b) >= 5 {
		flag := b[0]
		n := binary.BigEndian.Uint32(b[1:5])
		payload := b[5 : 5+n]
		b = b[5+n:]
		if flag&0x80 == 0 {
			data = payload
			continue
		}
		for _, line := range strings.Split(string(payload), "\r\n") {
			if k, v, ok := strings.Cut(line, ":"); ok {
				trailers[k] = v
			}
		}
	}
	return data, trailers
}

func TestForwardSuccess(t *testing.T) {
	h := setup(t)
	data, tr := call(t, h, pb.TermineService_CreateAppointment_FullMethodName, &pb.AppointmentInput{
		Title: "Beratung", StartDate: "2024-01-01", StartTime: "10:00",
		EndDate: "2024-01-01", EndTime: "11:00", Status: "Offen",
	})
	if tr["grpc-status"] != "0" {
		t.Fatalf("expected status 0, got %v", tr)
	}
	var resp pb.AppointmentResponse
	if err := proto.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Appointment == nil || resp.Appointment.Title != "Beratung" || resp.Appointment.Status != "open" {
		t.Fatalf("unexpected response: %+v", resp.Appointment)
	}
}

func TestForwardNotFound(t *testing.T) {
	h := setup(t)
	_, tr := call(t, h, pb.TermineService_GetAppointment_FullMethodName, &pb.IDRequest{Id: "missing"})
	if tr["grpc-status"] != "5" {
		t.Fatalf("expected NotFound (5), got %v", tr)
	}
}

func TestForwardValidationDetails(t *testing.T) {
	h := setup(t)
	_, tr := call(t, h, pb.TermineService_CreateAppointment_FullMethodName, &pb.AppointmentInput{})
	if tr["grpc-status"] != "3" {
		t.Fatalf("expected InvalidArgument (3), got %v", tr)
	}
	if strings.ContainsAny(tr["grpc-message"], "äöü") {
		t.Fatalf("grpc-message must be percent-encoded: %q", tr["grpc-message"])
	}

	raw, err := base64.RawStdEncoding.DecodeString(tr["grpc-status-details-bin"])
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	var st spb.Status
	if err := proto.Unmarshal(raw, &st); err != nil {
		t.Fatalf("status proto: %v", err)
	}
	if len(st.Details) != 1 {
		t.Fatalf("expected one detail, got %d", len(st.Details))
	}
	var br errdetails.BadRequest
	if err := st.Details[0].UnmarshalTo(&br); err != nil {
		t.Fatalf("bad request detail: %v", err)
	}
	if len(br.FieldViolations) != 6 {
		t.Fatalf("expected all six appointment fields, got %d", len(br.FieldViolations))
	}
}

func TestRejectsNonGRPCWeb(t *testing.T) {
	h := setup(t)
	tests := []struct {
		name   string
		method string
		ct     string
		want   int
	}{
		{"wrong method", http.MethodGet, "application/grpc-web+proto", http.StatusMethodNotAllowed},
		{"json", http.MethodPost, "application/json", http.StatusUnsupportedMediaType},
		{"text mode", http.MethodPost, "application/grpc-web-text", http.StatusUnsupportedMediaType},
		{"preflight", http.MethodOptions, "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, pb.TermineService_GetAppointment_FullMethodName, nil)
			if tt.ct != "" {
				req.Header.Set("Content-Type", tt.ct)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestShortBody(t *testing.T) {
	h := setup(t)
	req := httptest.NewRequest(http.MethodPost, pb.TermineService_GetAppointment_FullMethodName, bytes.NewReader([]byte{0, 0, 0, 0, 9}))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	_, tr := parseFrames(t, rec.Body.Bytes())
	if tr["grpc-status"] != "3" {
		t.Fatalf("expected InvalidArgument for truncated frame, got %v", tr)
	}
}

func TestIsGRPCWeb(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/x", nil)
	r.Header.Set("Content-Type", "application/grpc-web+proto")
	if !IsGRPCWeb(r) {
		t.Fatal("expected grpc-web request")
	}

	pre := httptest.NewRequest(http.MethodOptions, "/x", nil)
	pre.Header.Set("Access-Control-Request-Headers", "content-type,x-grpc-web")
	if !IsGRPCWeb(pre) {
		t.Fatal("expected grpc-web preflight")
	}

	rest := httptest.NewRequest(http.MethodPost, "/api/appointments", nil)
	rest.Header.Set("Content-Type", "application/json")
	if IsGRPCWeb(rest) {
		t.Fatal("json request must not go to the bridge")
	}
}

// captureConn records the outgoing metadata of the last call.
type captureConn struct{ md metadata.MD }

func (c *captureConn) Invoke(ctx context.Context, _ string, _, _ any, _ ...grpc.CallOption) error {
	c.md, _ = metadata.FromOutgoingContext(ctx)
	return nil
}

func (c *captureConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("streams not supported")
}

func TestForwardedAddress(t *testing.T) {
	proxies, err := middleware.ParseTrustedProxies([]string{"10.0.0.1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tests := []struct {
		name    string
		proxies middleware.TrustedProxies
		remote  string
		want    string
	}{
		{"header from untrusted client ignored", middleware.TrustedProxies{}, "192.0.2.1:5000", "192.0.2.1"},
		{"header from other host ignored", proxies, "192.0.2.1:5000", "192.0.2.1"},
		{"header from trusted proxy used", proxies, "10.0.0.1:5000", "203.0.113.7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &captureConn{}
			h := NewWithConn(conn, nil).TrustProxies(tt.proxies).Handler()
			req := httptest.NewRequest(http.MethodPost, pb.TermineService_ListCustomers_FullMethodName, bytes.NewReader(frame(0x00, nil)))
			req.Header.Set("Content-Type", "application/grpc-web+proto")
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			req.RemoteAddr = tt.remote
			h.ServeHTTP(httptest.NewRecorder(), req)
			if got := conn.md.Get(middleware.ForwardedForKey); len(got) != 1 || got[0] != tt.want {
				t.Fatalf("forwarded %v, want %q", got, tt.want)
			}
		})
	}
}
