package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	pb "github.com/dmitrijs2005/diarykeeper/internal/proto"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, status.Error(codes.AlreadyExists, "user already exists")
		case errors.Is(err, services.ErrInvalidArgument):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "register failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "user_id", result.ID)
	return &pb.RegisterUserResponse{}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	res, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: res.AccessToken, Profile: toProfile(res.User)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	userID, err := s.callerFor(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, s.serviceError(ctx, "get profile", err)
	}
	return &pb.GetProfileResponse{Profile: toProfile(u)}, nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*emptypb.Empty, error) {
	userID, err := s.callerFor(ctx, req.UserId)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, userID, req.Status, req.Sex); err != nil {
		return nil, s.serviceError(ctx, "update profile", err)
	}
	return &emptypb.Empty{}, nil
}

// CreateEntry returns business rejections in the response body and keeps
// gRPC errors for transport, auth and storage failures.
func (s *GRPCServer) CreateEntry(ctx context.Context, req *pb.CreateEntryRequest) (*pb.CreateEntryResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.entries.Create(ctx, userID, &models.Entry{
		Title:     req.Title,
		Body:      req.Body,
		Images:    req.Images,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Location:  req.Location,
	})
	if err != nil {
		return nil, s.serviceError(ctx, "create entry", err)
	}

	if res.Code == common.EntryCodeAccepted {
		s.logger.Info(ctx, "entry saved", "entry_id", res.EntryID, "images", len(req.Images))
	}
	return &pb.CreateEntryResponse{Code: res.Code, Message: res.Message, EntryId: res.EntryID}, nil
}

func (s *GRPCServer) PresignUploads(ctx context.Context, req *pb.PresignUploadsRequest) (*pb.PresignUploadsResponse, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.media.Presign(ctx, userID, req.Category, int(req.Count))
	if err != nil {
		return nil, s.serviceError(ctx, "presign uploads", err)
	}

	out := make([]*pb.PresignedUpload, 0, len(slots))
	for _, slot := range slots {
		out = append(out, &pb.PresignedUpload{Key: slot.Key, Url: slot.URL})
	}
	return &pb.PresignUploadsResponse{Uploads: out}, nil
}

// callerFor resolves the caller and checks it against an optional requested id.
func (s *GRPCServer) callerFor(ctx context.Context, requested string) (string, error) {
	userID, err := userIDFrom(ctx)
	if err != nil {
		return "", err
	}
	if requested != "" && requested != userID {
		return "", status.Error(codes.PermissionDenied, "profile belongs to another user")
	}
	return userID, nil
}

func (s *GRPCServer) serviceError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, services.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toProfile(u *models.User) *pb.Profile {
	if u == nil {
		return nil
	}
	return &pb.Profile{Id: u.ID, Username: u.UserName, Status: u.Status, Sex: u.Sex}
}
