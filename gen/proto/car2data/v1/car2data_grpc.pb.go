// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: car2data/v1/car2data.proto

package car2datapb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DocumentsService_UploadDocument_FullMethodName    = "/car2data.v1.DocumentsService/UploadDocument"
	DocumentsService_GetDocument_FullMethodName       = "/car2data.v1.DocumentsService/GetDocument"
	DocumentsService_GetDocumentStatus_FullMethodName = "/car2data.v1.DocumentsService/GetDocumentStatus"
	DocumentsService_ReprocessDocument_FullMethodName = "/car2data.v1.DocumentsService/ReprocessDocument"
	DocumentsService_ListDocuments_FullMethodName     = "/car2data.v1.DocumentsService/ListDocuments"
	DocumentsService_TestExtractor_FullMethodName     = "/car2data.v1.DocumentsService/TestExtractor"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService manages uploaded vehicle documents and their
// background extraction.
type DocumentsServiceClient interface {
	// UploadDocument stores the PDF, registers it and queues extraction.
	// Re-uploading identical content returns the existing document.
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	GetDocumentStatus(ctx context.Context, in *GetDocumentStatusRequest, opts ...grpc.CallOption) (*GetDocumentStatusResponse, error)
	// ReprocessDocument resets the document's outcome and queues a fresh
	// extraction.
	ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	// TestExtractor checks connectivity to the extraction model.
	TestExtractor(ctx context.Context, in *TestExtractorRequest, opts ...grpc.CallOption) (*TestExtractorResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocumentStatus(ctx context.Context, in *GetDocumentStatusRequest, opts ...grpc.CallOption) (*GetDocumentStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentStatusResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocumentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ReprocessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) TestExtractor(ctx context.Context, in *TestExtractorRequest, opts ...grpc.CallOption) (*TestExtractorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TestExtractorResponse)
	err := c.cc.Invoke(ctx, DocumentsService_TestExtractor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService manages uploaded vehicle documents and their
// background extraction.
type DocumentsServiceServer interface {
	// UploadDocument stores the PDF, registers it and queues extraction.
	// Re-uploading identical content returns the existing document.
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	GetDocumentStatus(context.Context, *GetDocumentStatusRequest) (*GetDocumentStatusResponse, error)
	// ReprocessDocument resets the document's outcome and queues a fresh
	// extraction.
	ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	// TestExtractor checks connectivity to the extraction model.
	TestExtractor(context.Context, *TestExtractorRequest) (*TestExtractorResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocumentStatus(context.Context, *GetDocumentStatusRequest) (*GetDocumentStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentStatus not implemented")
}
func (UnimplementedDocumentsServiceServer) ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReprocessDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) TestExtractor(context.Context, *TestExtractorRequest) (*TestExtractorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TestExtractor not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocumentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocumentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocumentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocumentStatus(ctx, req.(*GetDocumentStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ReprocessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ReprocessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ReprocessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ReprocessDocument(ctx, req.(*ReprocessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_TestExtractor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TestExtractorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).TestExtractor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_TestExtractor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).TestExtractor(ctx, req.(*TestExtractorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "car2data.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _DocumentsService_UploadDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _DocumentsService_GetDocument_Handler,
		},
		{
			MethodName: "GetDocumentStatus",
			Handler:    _DocumentsService_GetDocumentStatus_Handler,
		},
		{
			MethodName: "ReprocessDocument",
			Handler:    _DocumentsService_ReprocessDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
		{
			MethodName: "TestExtractor",
			Handler:    _DocumentsService_TestExtractor_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "car2data/v1/car2data.proto",
}

const (
	FormsService_GenerateForm_FullMethodName        = "/car2data.v1.FormsService/GenerateForm"
	FormsService_ListGeneratedForms_FullMethodName  = "/car2data.v1.FormsService/ListGeneratedForms"
	FormsService_DeleteGeneratedForm_FullMethodName = "/car2data.v1.FormsService/DeleteGeneratedForm"
)

// FormsServiceClient is the client API for FormsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FormsService renders self-filled PDFs from a processed document plus
// user-entered form fields.
type FormsServiceClient interface {
	GenerateForm(ctx context.Context, in *GenerateFormRequest, opts ...grpc.CallOption) (*GenerateFormResponse, error)
	ListGeneratedForms(ctx context.Context, in *ListGeneratedFormsRequest, opts ...grpc.CallOption) (*ListGeneratedFormsResponse, error)
	DeleteGeneratedForm(ctx context.Context, in *DeleteGeneratedFormRequest, opts ...grpc.CallOption) (*DeleteGeneratedFormResponse, error)
}

type formsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFormsServiceClient(cc grpc.ClientConnInterface) FormsServiceClient {
	return &formsServiceClient{cc}
}

func (c *formsServiceClient) GenerateForm(ctx context.Context, in *GenerateFormRequest, opts ...grpc.CallOption) (*GenerateFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GenerateFormResponse)
	err := c.cc.Invoke(ctx, FormsService_GenerateForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *formsServiceClient) ListGeneratedForms(ctx context.Context, in *ListGeneratedFormsRequest, opts ...grpc.CallOption) (*ListGeneratedFormsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListGeneratedFormsResponse)
	err := c.cc.Invoke(ctx, FormsService_ListGeneratedForms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *formsServiceClient) DeleteGeneratedForm(ctx context.Context, in *DeleteGeneratedFormRequest, opts ...grpc.CallOption) (*DeleteGeneratedFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteGeneratedFormResponse)
	err := c.cc.Invoke(ctx, FormsService_DeleteGeneratedForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FormsServiceServer is the server API for FormsService service.
// All implementations must embed UnimplementedFormsServiceServer
// for forward compatibility.
//
// FormsService renders self-filled PDFs from a processed document plus
// user-entered form fields.
type FormsServiceServer interface {
	GenerateForm(context.Context, *GenerateFormRequest) (*GenerateFormResponse, error)
	ListGeneratedForms(context.Context, *ListGeneratedFormsRequest) (*ListGeneratedFormsResponse, error)
	DeleteGeneratedForm(context.Context, *DeleteGeneratedFormRequest) (*DeleteGeneratedFormResponse, error)
	mustEmbedUnimplementedFormsServiceServer()
}

// UnimplementedFormsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFormsServiceServer struct{}

func (UnimplementedFormsServiceServer) GenerateForm(context.Context, *GenerateFormRequest) (*GenerateFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateForm not implemented")
}
func (UnimplementedFormsServiceServer) ListGeneratedForms(context.Context, *ListGeneratedFormsRequest) (*ListGeneratedFormsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGeneratedForms not implemented")
}
func (UnimplementedFormsServiceServer) DeleteGeneratedForm(context.Context, *DeleteGeneratedFormRequest) (*DeleteGeneratedFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteGeneratedForm not implemented")
}
func (UnimplementedFormsServiceServer) mustEmbedUnimplementedFormsServiceServer() {}
func (UnimplementedFormsServiceServer) testEmbeddedByValue()                      {}

// UnsafeFormsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FormsServiceServer will
// result in compilation errors.
type UnsafeFormsServiceServer interface {
	mustEmbedUnimplementedFormsServiceServer()
}

func RegisterFormsServiceServer(s grpc.ServiceRegistrar, srv FormsServiceServer) {
	// If the following call pancis, it indicates UnimplementedFormsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FormsService_ServiceDesc, srv)
}

func _FormsService_GenerateForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormsServiceServer).GenerateForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FormsService_GenerateForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FormsServiceServer).GenerateForm(ctx, req.(*GenerateFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FormsService_ListGeneratedForms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGeneratedFormsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormsServiceServer).ListGeneratedForms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FormsService_ListGeneratedForms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FormsServiceServer).ListGeneratedForms(ctx, req.(*ListGeneratedFormsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FormsService_DeleteGeneratedForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteGeneratedFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FormsServiceServer).DeleteGeneratedForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FormsService_DeleteGeneratedForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FormsServiceServer).DeleteGeneratedForm(ctx, req.(*DeleteGeneratedFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FormsService_ServiceDesc is the grpc.ServiceDesc for FormsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FormsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "car2data.v1.FormsService",
	HandlerType: (*FormsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateForm",
			Handler:    _FormsService_GenerateForm_Handler,
		},
		{
			MethodName: "ListGeneratedForms",
			Handler:    _FormsService_ListGeneratedForms_Handler,
		},
		{
			MethodName: "DeleteGeneratedForm",
			Handler:    _FormsService_DeleteGeneratedForm_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "car2data/v1/car2data.proto",
}
