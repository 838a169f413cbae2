package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.JournalServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if tok := s.token(); tok != "" {
		ctx = withAccessToken(ctx, tok)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewJournalClient dials endpointURL lazily; the first call establishes the
// connection.
func NewJournalClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewJournalServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, key []byte) error {
	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: key}
	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName string, key []byte) (*models.Profile, error) {
	req := &pb.LoginRequest{Username: userName, VerifierCandidate: key}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.AccessToken)
	return profileFromPB(resp.Profile), nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{UserId: userID})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Profile == nil {
		return nil, common.ErrorNotFound
	}
	return profileFromPB(resp.Profile), nil
}

func (s *GRPCClient) UpdateProfile(ctx context.Context, userID string, st *int32, sex *int32) error {
	req := &pb.UpdateProfileRequest{UserId: userID, Status: st, Sex: sex}
	if _, err := s.client.UpdateProfile(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateEntry(ctx context.Context, entry models.Submission) (*models.Receipt, error) {
	images := make([]string, 0, len(entry.Images))
	for _, ref := range entry.Images {
		images = append(images, string(ref))
	}
	req := &pb.CreateEntryRequest{
		Title:     entry.Title,
		Body:      entry.Body,
		Images:    images,
		Latitude:  entry.Coordinates.Latitude,
		Longitude: entry.Coordinates.Longitude,
		Location:  entry.Location,
	}

	resp, err := s.client.CreateEntry(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.Receipt{Code: resp.Code, Message: resp.Message, EntryID: resp.EntryId}, nil
}

func (s *GRPCClient) PresignUploads(ctx context.Context, count int, category string) ([]PresignedUpload, error) {
	req := &pb.PresignUploadsRequest{Count: int32(count), Category: category}

	resp, err := s.client.PresignUploads(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	if len(resp.Uploads) != count {
		return nil, fmt.Errorf("presign: requested %d slots, got %d", count, len(resp.Uploads))
	}

	out := make([]PresignedUpload, 0, len(resp.Uploads))
	for _, u := range resp.Uploads {
		out = append(out, PresignedUpload{Key: u.Key, URL: u.Url})
	}
	return out, nil
}

func profileFromPB(p *pb.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	return &models.Profile{Id: p.Id, Username: p.Username, Status: p.Status, Sex: p.Sex}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
