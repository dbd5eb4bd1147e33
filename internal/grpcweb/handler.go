package grpcweb

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"termine-api/internal/middleware"
)

const (
	contentType = "application/grpc-web+proto"
	// largest request frame accepted from a browser
	maxFrame = 4 << 20
)

// Bridge translates gRPC-Web (browser HTTP/1.1) → native gRPC.
type Bridge struct {
	conn    grpc.ClientConnInterface
	closer  io.Closer
	proxies middleware.TrustedProxies
	log     *zap.Logger
}

// New dials the gRPC server at addr (e.g. "localhost:50051"). The address
// must be loopback for the forwarded client address to be honoured.
func New(addr string, log *zap.Logger) (*Bridge, error) {
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("grpcweb dial: %w", err)
	}
	b := NewWithConn(conn, log)
	b.closer = conn
	return b, nil
}

// NewWithConn forwards over an existing connection, which the caller owns.
func NewWithConn(conn grpc.ClientConnInterface, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{conn: conn, log: log}
}

// TrustProxies makes the bridge read the browser address from proxy
// headers set by one of proxies.
func (b *Bridge) TrustProxies(proxies middleware.TrustedProxies) *Bridge {
	b.proxies = proxies
	return b
}

func (b *Bridge) Close() {
	if b.closer != nil {
		b.closer.Close()
	}
}

// IsGRPCWeb reports whether r should be routed to the bridge.
func IsGRPCWeb(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc-web") {
		return true
	}
	// CORS preflight of a grpc-web call
	return r.Method == http.MethodOptions &&
		strings.Contains(strings.ToLower(r.Header.Get("Access-Control-Request-Headers")), "x-grpc-web")
}

// Handler returns an http.Handler that translates gRPC-Web → gRPC.
func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, x-grpc-web")
		w.Header().Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ct := r.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "application/grpc-web") || strings.HasPrefix(ct, "application/grpc-web-text") {
			http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
			return
		}

		b.log.Debug("grpc-web", zap.String("method", r.URL.Path))
		b.forward(w, r)
	})
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxFrame+5))
	if err != nil {
		writeError(w, status.New(codes.Internal, "read body failed"))
		return
	}
	if len(body) < 5 {
		writeError(w, status.New(codes.InvalidArgument, "body too short"))
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + protobuf
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if msgLen > maxFrame || int(msgLen)+5 > len(body) {
		writeError(w, status.New(codes.InvalidArgument, "incomplete frame"))
		return
	}
	payload := body[5 : 5+msgLen]

	md := metadata.Pairs(middleware.ForwardedForKey, b.proxies.ClientIP(r))
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	// invoke gRPC method using raw codec (pass-through bytes)
	resp := &rawMsg{}
	err = b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{}))
	if err != nil {
		st := status.Convert(err)
		b.log.Debug("grpc-web error", zap.String("method", r.URL.Path), zap.String("code", st.Code().String()))
		writeError(w, st)
		return
	}

	writeSuccess(w, resp.data)
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(*rawMsg)
	if !ok {
		return nil, fmt.Errorf("grpcweb: cannot marshal %T", v)
	}
	return m.data, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(*rawMsg)
	if !ok {
		return fmt.Errorf("grpcweb: cannot unmarshal into %T", v)
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "proto" }

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	copy(f[5:], data)
	return f
}

// trailer renders the status as a grpc-web trailer frame. Details are
// carried base64 encoded, as native gRPC does in grpc-status-details-bin.
func trailer(st *status.Status) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grpc-status:%d\r\n", st.Code())
	if msg := st.Message(); msg != "" {
		fmt.Fprintf(&sb, "grpc-message:%s\r\n", encodeMessage(msg))
	}
	if len(st.Details()) > 0 {
		if raw, err := proto.Marshal(st.Proto()); err == nil {
			fmt.Fprintf(&sb, "grpc-status-details-bin:%s\r\n", base64.RawStdEncoding.EncodeToString(raw))
		}
	}
	return frame(0x80, []byte(sb.String()))
}

// encodeMessage percent-encodes bytes outside printable ASCII, like the
// grpc-message header.
func encodeMessage(msg string) string {
	var sb strings.Builder
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c >= 0x20 && c <= 0x7e && c != '%' {
			sb.WriteByte(c)
			continue
		}
		fmt.Fprintf(&sb, "%%%02X", c)
	}
	return sb.String()
}

func writeError(w http.ResponseWriter, st *status.Status) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(trailer(st))
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(frame(0x00, data))
	w.Write(trailer(status.New(codes.OK, "")))
}
