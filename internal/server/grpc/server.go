package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/diarykeeper/internal/logging"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account surface the handlers depend on.
type UserService interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifierCandidate []byte) (*services.LoginResult, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, status, sex *int32) error
}

type EntryService interface {
	Create(ctx context.Context, userID string, entry *models.Entry) (*services.CreateResult, error)
}

type MediaService interface {
	Presign(ctx context.Context, ownerID, category string, count int) ([]services.PresignedUpload, error)
}

type GRPCServer struct {
	pb.UnimplementedJournalServiceServer
	address   string
	users     UserService
	entries   EntryService
	media     MediaService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us UserService, es EntryService, ms MediaService, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		entries:   es,
		media:     ms,
		jwtSecret: []byte(secretKey),
	}
}

// Register attaches the journal service to srv.
func (s *GRPCServer) Register(srv *grpc.Server) {
	pb.RegisterJournalServiceServer(srv, s)
}

// NewServer creates a grpc.Server with the access token interceptor installed.
func (s *GRPCServer) NewServer() *grpc.Server {
	return grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()
	s.Register(srv)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
