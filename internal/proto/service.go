package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const ServiceName = "diarykeeper.JournalService"

const (
	JournalService_RegisterUser_FullMethodName   = "/diarykeeper.JournalService/RegisterUser"
	JournalService_GetSalt_FullMethodName        = "/diarykeeper.JournalService/GetSalt"
	JournalService_Login_FullMethodName          = "/diarykeeper.JournalService/Login"
	JournalService_Ping_FullMethodName           = "/diarykeeper.JournalService/Ping"
	JournalService_GetProfile_FullMethodName     = "/diarykeeper.JournalService/GetProfile"
	JournalService_UpdateProfile_FullMethodName  = "/diarykeeper.JournalService/UpdateProfile"
	JournalService_CreateEntry_FullMethodName    = "/diarykeeper.JournalService/CreateEntry"
	JournalService_PresignUploads_FullMethodName = "/diarykeeper.JournalService/PresignUploads"
)

// JournalServiceClient is the client API for the journal service.
type JournalServiceClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*CreateEntryResponse, error)
	PresignUploads(ctx context.Context, in *PresignUploadsRequest, opts ...grpc.CallOption) (*PresignUploadsResponse, error)
}

type journalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJournalServiceClient(cc grpc.ClientConnInterface) JournalServiceClient {
	return &journalServiceClient{cc}
}

func (c *journalServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *journalServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	out := new(RegisterUserResponse)
	if err := c.invoke(ctx, JournalService_RegisterUser_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	out := new(GetSaltResponse)
	if err := c.invoke(ctx, JournalService_GetSalt_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.invoke(ctx, JournalService_Login_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.invoke(ctx, JournalService_Ping_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*GetProfileResponse, error) {
	out := new(GetProfileResponse)
	if err := c.invoke(ctx, JournalService_GetProfile_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.invoke(ctx, JournalService_UpdateProfile_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) CreateEntry(ctx context.Context, in *CreateEntryRequest, opts ...grpc.CallOption) (*CreateEntryResponse, error) {
	out := new(CreateEntryResponse)
	if err := c.invoke(ctx, JournalService_CreateEntry_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *journalServiceClient) PresignUploads(ctx context.Context, in *PresignUploadsRequest, opts ...grpc.CallOption) (*PresignUploadsResponse, error) {
	out := new(PresignUploadsResponse)
	if err := c.invoke(ctx, JournalService_PresignUploads_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// JournalServiceServer is the server API for the journal service.
// Implementations must embed UnimplementedJournalServiceServer.
type JournalServiceServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*emptypb.Empty, error)
	CreateEntry(context.Context, *CreateEntryRequest) (*CreateEntryResponse, error)
	PresignUploads(context.Context, *PresignUploadsRequest) (*PresignUploadsResponse, error)
	mustEmbedUnimplementedJournalServiceServer()
}

type UnimplementedJournalServiceServer struct{}

func (UnimplementedJournalServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedJournalServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedJournalServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedJournalServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedJournalServiceServer) GetProfile(context.Context, *GetProfileRequest) (*GetProfileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProfile not implemented")
}
func (UnimplementedJournalServiceServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateProfile not implemented")
}
func (UnimplementedJournalServiceServer) CreateEntry(context.Context, *CreateEntryRequest) (*CreateEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateEntry not implemented")
}
func (UnimplementedJournalServiceServer) PresignUploads(context.Context, *PresignUploadsRequest) (*PresignUploadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PresignUploads not implemented")
}
func (UnimplementedJournalServiceServer) mustEmbedUnimplementedJournalServiceServer() {}

func RegisterJournalServiceServer(s grpc.ServiceRegistrar, srv JournalServiceServer) {
	s.RegisterService(&JournalService_ServiceDesc, srv)
}

// unaryHandler builds a grpc method handler for a typed server method.
func unaryHandler[Req any, Resp any](fullMethod string, call func(JournalServiceServer, context.Context, *Req) (Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(JournalServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(JournalServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var JournalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*JournalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterUser",
			Handler:    unaryHandler(JournalService_RegisterUser_FullMethodName, JournalServiceServer.RegisterUser),
		},
		{
			MethodName: "GetSalt",
			Handler:    unaryHandler(JournalService_GetSalt_FullMethodName, JournalServiceServer.GetSalt),
		},
		{
			MethodName: "Login",
			Handler:    unaryHandler(JournalService_Login_FullMethodName, JournalServiceServer.Login),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(JournalService_Ping_FullMethodName, JournalServiceServer.Ping),
		},
		{
			MethodName: "GetProfile",
			Handler:    unaryHandler(JournalService_GetProfile_FullMethodName, JournalServiceServer.GetProfile),
		},
		{
			MethodName: "UpdateProfile",
			Handler:    unaryHandler(JournalService_UpdateProfile_FullMethodName, JournalServiceServer.UpdateProfile),
		},
		{
			MethodName: "CreateEntry",
			Handler:    unaryHandler(JournalService_CreateEntry_FullMethodName, JournalServiceServer.CreateEntry),
		},
		{
			MethodName: "PresignUploads",
			Handler:    unaryHandler(JournalService_PresignUploads_FullMethodName, JournalServiceServer.PresignUploads),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "journal.proto",
}
