// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: car2data/v1/car2data.proto

package car2datapb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId         string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name            string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Status          string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	DocType         string                 `protobuf:"bytes,5,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	UploadedAt      string                 `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt     string                 `protobuf:"bytes,7,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	ExtractionError string                 `protobuf:"bytes,8,opt,name=extraction_error,json=extractionError,proto3" json:"extraction_error,omitempty"`
	// extracted_json carries the canonical extraction as a JSON object,
	// empty until the document completes.
	ExtractedJson string `protobuf:"bytes,9,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Document) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *Document) GetExtractionError() string {
	if x != nil {
		return x.ExtractionError
	}
	return ""
}

func (x *Document) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

type UploadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *UploadDocumentRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{3}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentStatusRequest) Reset() {
	*x = GetDocumentStatusRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatusRequest) ProtoMessage() {}

func (x *GetDocumentStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatusRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentStatusRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentStatusResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Status          string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	ExtractionError string                 `protobuf:"bytes,2,opt,name=extraction_error,json=extractionError,proto3" json:"extraction_error,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetDocumentStatusResponse) Reset() {
	*x = GetDocumentStatusResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentStatusResponse) ProtoMessage() {}

func (x *GetDocumentStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentStatusResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentStatusResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetDocumentStatusResponse) GetExtractionError() string {
	if x != nil {
		return x.ExtractionError
	}
	return ""
}

type ReprocessDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentRequest) Reset() {
	*x = ReprocessDocumentRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentRequest) ProtoMessage() {}

func (x *ReprocessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{7}
}

func (x *ReprocessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ReprocessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprocessDocumentResponse) Reset() {
	*x = ReprocessDocumentResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprocessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprocessDocumentResponse) ProtoMessage() {}

func (x *ReprocessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprocessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ReprocessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{8}
}

func (x *ReprocessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{10}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type TestExtractorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TestExtractorRequest) Reset() {
	*x = TestExtractorRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestExtractorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestExtractorRequest) ProtoMessage() {}

func (x *TestExtractorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestExtractorRequest.ProtoReflect.Descriptor instead.
func (*TestExtractorRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{11}
}

type TestExtractorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TestExtractorResponse) Reset() {
	*x = TestExtractorResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestExtractorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestExtractorResponse) ProtoMessage() {}

func (x *TestExtractorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestExtractorResponse.ProtoReflect.Descriptor instead.
func (*TestExtractorResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{12}
}

func (x *TestExtractorResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *TestExtractorResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type GeneratedForm struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FormType      string                 `protobuf:"bytes,4,opt,name=form_type,json=formType,proto3" json:"form_type,omitempty"`
	OutputPath    string                 `protobuf:"bytes,5,opt,name=output_path,json=outputPath,proto3" json:"output_path,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GeneratedForm) Reset() {
	*x = GeneratedForm{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GeneratedForm) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GeneratedForm) ProtoMessage() {}

func (x *GeneratedForm) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GeneratedForm.ProtoReflect.Descriptor instead.
func (*GeneratedForm) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{13}
}

func (x *GeneratedForm) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GeneratedForm) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GeneratedForm) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GeneratedForm) GetFormType() string {
	if x != nil {
		return x.FormType
	}
	return ""
}

func (x *GeneratedForm) GetOutputPath() string {
	if x != nil {
		return x.OutputPath
	}
	return ""
}

func (x *GeneratedForm) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GenerateFormRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	OwnerId    string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	DocumentId string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// form_type: contrato_mandato, contrato_compraventa or
	// formulario_tramite.
	FormType string `protobuf:"bytes,3,opt,name=form_type,json=formType,proto3" json:"form_type,omitempty"`
	// form_fields carry user-entered values keyed by dotted canonical
	// names ("mandante.nombre", "valor_venta"); they take precedence over
	// extracted and persisted values.
	FormFields    map[string]string `protobuf:"bytes,4,rep,name=form_fields,json=formFields,proto3" json:"form_fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateFormRequest) Reset() {
	*x = GenerateFormRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateFormRequest) ProtoMessage() {}

func (x *GenerateFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateFormRequest.ProtoReflect.Descriptor instead.
func (*GenerateFormRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{14}
}

func (x *GenerateFormRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GenerateFormRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *GenerateFormRequest) GetFormType() string {
	if x != nil {
		return x.FormType
	}
	return ""
}

func (x *GenerateFormRequest) GetFormFields() map[string]string {
	if x != nil {
		return x.FormFields
	}
	return nil
}

type GenerateFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *GeneratedForm         `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateFormResponse) Reset() {
	*x = GenerateFormResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateFormResponse) ProtoMessage() {}

func (x *GenerateFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateFormResponse.ProtoReflect.Descriptor instead.
func (*GenerateFormResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{15}
}

func (x *GenerateFormResponse) GetForm() *GeneratedForm {
	if x != nil {
		return x.Form
	}
	return nil
}

type ListGeneratedFormsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGeneratedFormsRequest) Reset() {
	*x = ListGeneratedFormsRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGeneratedFormsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGeneratedFormsRequest) ProtoMessage() {}

func (x *ListGeneratedFormsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGeneratedFormsRequest.ProtoReflect.Descriptor instead.
func (*ListGeneratedFormsRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{16}
}

func (x *ListGeneratedFormsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListGeneratedFormsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Forms         []*GeneratedForm       `protobuf:"bytes,1,rep,name=forms,proto3" json:"forms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGeneratedFormsResponse) Reset() {
	*x = ListGeneratedFormsResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGeneratedFormsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGeneratedFormsResponse) ProtoMessage() {}

func (x *ListGeneratedFormsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGeneratedFormsResponse.ProtoReflect.Descriptor instead.
func (*ListGeneratedFormsResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{17}
}

func (x *ListGeneratedFormsResponse) GetForms() []*GeneratedForm {
	if x != nil {
		return x.Forms
	}
	return nil
}

type DeleteGeneratedFormRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FormId        string                 `protobuf:"bytes,1,opt,name=form_id,json=formId,proto3" json:"form_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGeneratedFormRequest) Reset() {
	*x = DeleteGeneratedFormRequest{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGeneratedFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGeneratedFormRequest) ProtoMessage() {}

func (x *DeleteGeneratedFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGeneratedFormRequest.ProtoReflect.Descriptor instead.
func (*DeleteGeneratedFormRequest) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{18}
}

func (x *DeleteGeneratedFormRequest) GetFormId() string {
	if x != nil {
		return x.FormId
	}
	return ""
}

type DeleteGeneratedFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGeneratedFormResponse) Reset() {
	*x = DeleteGeneratedFormResponse{}
	mi := &file_car2data_v1_car2data_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGeneratedFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGeneratedFormResponse) ProtoMessage() {}

func (x *DeleteGeneratedFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_car2data_v1_car2data_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGeneratedFormResponse.ProtoReflect.Descriptor instead.
func (*DeleteGeneratedFormResponse) Descriptor() ([]byte, []int) {
	return file_car2data_v1_car2data_proto_rawDescGZIP(), []int{19}
}

var File_car2data_v1_car2data_proto protoreflect.FileDescriptor

const file_car2data_v1_car2data_proto_rawDesc = "" +
	"\n" +
	"\x1acar2data/v1/car2data.proto\x12\vcar2data.v1\"\x92\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x19\n" +
	"\bdoc_type\x18\x05 \x01(\tR\adocType\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\a \x01(\tR\vprocessedAt\x12)\n" +
	"\x10extraction_error\x18\b \x01(\tR\x0fextractionError\x12%\n" +
	"\x0eextracted_json\x18\t \x01(\tR\rextractedJson\"`\n" +
	"\x15UploadDocumentRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"K\n" +
	"\x16UploadDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.car2data.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"H\n" +
	"\x13GetDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.car2data.v1.DocumentR\bdocument\";\n" +
	"\x18GetDocumentStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"^\n" +
	"\x19GetDocumentStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12)\n" +
	"\x10extraction_error\x18\x02 \x01(\tR\x0fextractionError\";\n" +
	"\x18ReprocessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"N\n" +
	"\x19ReprocessDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.car2data.v1.DocumentR\bdocument\"1\n" +
	"\x14ListDocumentsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.car2data.v1.DocumentR\tdocuments\"\x16\n" +
	"\x14TestExtractorRequest\"A\n" +
	"\x15TestExtractorResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xb8\x01\n" +
	"\rGeneratedForm\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tform_type\x18\x04 \x01(\tR\bformType\x12\x1f\n" +
	"\voutput_path\x18\x05 \x01(\tR\n" +
	"outputPath\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"\x80\x02\n" +
	"\x13GenerateFormRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tform_type\x18\x03 \x01(\tR\bformType\x12Q\n" +
	"\vform_fields\x18\x04 \x03(\v20.car2data.v1.GenerateFormRequest.FormFieldsEntryR\n" +
	"formFields\x1a=\n" +
	"\x0fFormFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"F\n" +
	"\x14GenerateFormResponse\x12.\n" +
	"\x04form\x18\x01 \x01(\v2\x1a.car2data.v1.GeneratedFormR\x04form\"6\n" +
	"\x19ListGeneratedFormsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"N\n" +
	"\x1aListGeneratedFormsResponse\x120\n" +
	"\x05forms\x18\x01 \x03(\v2\x1a.car2data.v1.GeneratedFormR\x05forms\"5\n" +
	"\x1aDeleteGeneratedFormRequest\x12\x17\n" +
	"\aform_id\x18\x01 \x01(\tR\x06formId\"\x1d\n" +
	"\x1bDeleteGeneratedFormResponse2\xb7\x04\n" +
	"\x10DocumentsService\x12Y\n" +
	"\x0eUploadDocument\x12\".car2data.v1.UploadDocumentRequest\x1a#.car2data.v1.UploadDocumentResponse\x12P\n" +
	"\vGetDocument\x12\x1f.car2data.v1.GetDocumentRequest\x1a .car2data.v1.GetDocumentResponse\x12b\n" +
	"\x11GetDocumentStatus\x12%.car2data.v1.GetDocumentStatusRequest\x1a&.car2data.v1.GetDocumentStatusResponse\x12b\n" +
	"\x11ReprocessDocument\x12%.car2data.v1.ReprocessDocumentRequest\x1a&.car2data.v1.ReprocessDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.car2data.v1.ListDocumentsRequest\x1a\".car2data.v1.ListDocumentsResponse\x12V\n" +
	"\rTestExtractor\x12!.car2data.v1.TestExtractorRequest\x1a\".car2data.v1.TestExtractorResponse2\xb4\x02\n" +
	"\fFormsService\x12S\n" +
	"\fGenerateForm\x12 .car2data.v1.GenerateFormRequest\x1a!.car2data.v1.GenerateFormResponse\x12e\n" +
	"\x12ListGeneratedForms\x12&.car2data.v1.ListGeneratedFormsRequest\x1a'.car2data.v1.ListGeneratedFormsResponse\x12h\n" +
	"\x13DeleteGeneratedForm\x12'.car2data.v1.DeleteGeneratedFormRequest\x1a(.car2data.v1.DeleteGeneratedFormResponseB=Z;github.com/dfmora/car2data/gen/proto/car2data/v1;car2datapbb\x06proto3"

var (
	file_car2data_v1_car2data_proto_rawDescOnce sync.Once
	file_car2data_v1_car2data_proto_rawDescData []byte
)

func file_car2data_v1_car2data_proto_rawDescGZIP() []byte {
	file_car2data_v1_car2data_proto_rawDescOnce.Do(func() {
		file_car2data_v1_car2data_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_car2data_v1_car2data_proto_rawDesc), len(file_car2data_v1_car2data_proto_rawDesc)))
	})
	return file_car2data_v1_car2data_proto_rawDescData
}

var file_car2data_v1_car2data_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_car2data_v1_car2data_proto_goTypes = []any{
	(*Document)(nil),                    // 0: car2data.v1.Document
	(*UploadDocumentRequest)(nil),       // 1: car2data.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 2: car2data.v1.UploadDocumentResponse
	(*GetDocumentRequest)(nil),          // 3: car2data.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),         // 4: car2data.v1.GetDocumentResponse
	(*GetDocumentStatusRequest)(nil),    // 5: car2data.v1.GetDocumentStatusRequest
	(*GetDocumentStatusResponse)(nil),   // 6: car2data.v1.GetDocumentStatusResponse
	(*ReprocessDocumentRequest)(nil),    // 7: car2data.v1.ReprocessDocumentRequest
	(*ReprocessDocumentResponse)(nil),   // 8: car2data.v1.ReprocessDocumentResponse
	(*ListDocumentsRequest)(nil),        // 9: car2data.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 10: car2data.v1.ListDocumentsResponse
	(*TestExtractorRequest)(nil),        // 11: car2data.v1.TestExtractorRequest
	(*TestExtractorResponse)(nil),       // 12: car2data.v1.TestExtractorResponse
	(*GeneratedForm)(nil),               // 13: car2data.v1.GeneratedForm
	(*GenerateFormRequest)(nil),         // 14: car2data.v1.GenerateFormRequest
	(*GenerateFormResponse)(nil),        // 15: car2data.v1.GenerateFormResponse
	(*ListGeneratedFormsRequest)(nil),   // 16: car2data.v1.ListGeneratedFormsRequest
	(*ListGeneratedFormsResponse)(nil),  // 17: car2data.v1.ListGeneratedFormsResponse
	(*DeleteGeneratedFormRequest)(nil),  // 18: car2data.v1.DeleteGeneratedFormRequest
	(*DeleteGeneratedFormResponse)(nil), // 19: car2data.v1.DeleteGeneratedFormResponse
	nil,                                 // 20: car2data.v1.GenerateFormRequest.FormFieldsEntry
}
var file_car2data_v1_car2data_proto_depIdxs = []int32{
	0,  // 0: car2data.v1.UploadDocumentResponse.document:type_name -> car2data.v1.Document
	0,  // 1: car2data.v1.GetDocumentResponse.document:type_name -> car2data.v1.Document
	0,  // 2: car2data.v1.ReprocessDocumentResponse.document:type_name -> car2data.v1.Document
	0,  // 3: car2data.v1.ListDocumentsResponse.documents:type_name -> car2data.v1.Document
	20, // 4: car2data.v1.GenerateFormRequest.form_fields:type_name -> car2data.v1.GenerateFormRequest.FormFieldsEntry
	13, // 5: car2data.v1.GenerateFormResponse.form:type_name -> car2data.v1.GeneratedForm
	13, // 6: car2data.v1.ListGeneratedFormsResponse.forms:type_name -> car2data.v1.GeneratedForm
	1,  // 7: car2data.v1.DocumentsService.UploadDocument:input_type -> car2data.v1.UploadDocumentRequest
	3,  // 8: car2data.v1.DocumentsService.GetDocument:input_type -> car2data.v1.GetDocumentRequest
	5,  // 9: car2data.v1.DocumentsService.GetDocumentStatus:input_type -> car2data.v1.GetDocumentStatusRequest
	7,  // 10: car2data.v1.DocumentsService.ReprocessDocument:input_type -> car2data.v1.ReprocessDocumentRequest
	9,  // 11: car2data.v1.DocumentsService.ListDocuments:input_type -> car2data.v1.ListDocumentsRequest
	11, // 12: car2data.v1.DocumentsService.TestExtractor:input_type -> car2data.v1.TestExtractorRequest
	14, // 13: car2data.v1.FormsService.GenerateForm:input_type -> car2data.v1.GenerateFormRequest
	16, // 14: car2data.v1.FormsService.ListGeneratedForms:input_type -> car2data.v1.ListGeneratedFormsRequest
	18, // 15: car2data.v1.FormsService.DeleteGeneratedForm:input_type -> car2data.v1.DeleteGeneratedFormRequest
	2,  // 16: car2data.v1.DocumentsService.UploadDocument:output_type -> car2data.v1.UploadDocumentResponse
	4,  // 17: car2data.v1.DocumentsService.GetDocument:output_type -> car2data.v1.GetDocumentResponse
	6,  // 18: car2data.v1.DocumentsService.GetDocumentStatus:output_type -> car2data.v1.GetDocumentStatusResponse
	8,  // 19: car2data.v1.DocumentsService.ReprocessDocument:output_type -> car2data.v1.ReprocessDocumentResponse
	10, // 20: car2data.v1.DocumentsService.ListDocuments:output_type -> car2data.v1.ListDocumentsResponse
	12, // 21: car2data.v1.DocumentsService.TestExtractor:output_type -> car2data.v1.TestExtractorResponse
	15, // 22: car2data.v1.FormsService.GenerateForm:output_type -> car2data.v1.GenerateFormResponse
	17, // 23: car2data.v1.FormsService.ListGeneratedForms:output_type -> car2data.v1.ListGeneratedFormsResponse
	19, // 24: car2data.v1.FormsService.DeleteGeneratedForm:output_type -> car2data.v1.DeleteGeneratedFormResponse
	16, // [16:25] is the sub-list for method output_type
	7,  // [7:16] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_car2data_v1_car2data_proto_init() }
func file_car2data_v1_car2data_proto_init() {
	if File_car2data_v1_car2data_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_car2data_v1_car2data_proto_rawDesc), len(file_car2data_v1_car2data_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_car2data_v1_car2data_proto_goTypes,
		DependencyIndexes: file_car2data_v1_car2data_proto_depIdxs,
		MessageInfos:      file_car2data_v1_car2data_proto_msgTypes,
	}.Build()
	File_car2data_v1_car2data_proto = out.File
	file_car2data_v1_car2data_proto_goTypes = nil
	file_car2data_v1_car2data_proto_depIdxs = nil
}
