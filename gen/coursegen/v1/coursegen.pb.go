// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/amara-obi/course-gen \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/amara-obi/course-gen \
//          proto/coursegen/v1/coursegen.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: coursegen/v1/coursegen.proto

package coursegenv1

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

type Job struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	CourseName         string                 `protobuf:"bytes,2,opt,name=course_name,json=courseName,proto3" json:"course_name,omitempty"`
	CourseDescription  string                 `protobuf:"bytes,3,opt,name=course_description,json=courseDescription,proto3" json:"course_description,omitempty"`
	DifficultyLevel    string                 `protobuf:"bytes,4,opt,name=difficulty_level,json=difficultyLevel,proto3" json:"difficulty_level,omitempty"`
	LessonCount        int32                  `protobuf:"varint,5,opt,name=lesson_count,json=lessonCount,proto3" json:"lesson_count,omitempty"`
	IncludeQuiz        bool                   `protobuf:"varint,6,opt,name=include_quiz,json=includeQuiz,proto3" json:"include_quiz,omitempty"`
	IncludeAiTutor     bool                   `protobuf:"varint,7,opt,name=include_ai_tutor,json=includeAiTutor,proto3" json:"include_ai_tutor,omitempty"`
	IncludeVideoLinks  bool                   `protobuf:"varint,8,opt,name=include_video_links,json=includeVideoLinks,proto3" json:"include_video_links,omitempty"`
	RequesterId        string                 `protobuf:"bytes,9,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	OrganizationDomain string                 `protobuf:"bytes,10,opt,name=organization_domain,json=organizationDomain,proto3" json:"organization_domain,omitempty"`
	Status             string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	ProgressPercent    int32                  `protobuf:"varint,12,opt,name=progress_percent,json=progressPercent,proto3" json:"progress_percent,omitempty"`
	ProgressMessage    string                 `protobuf:"bytes,13,opt,name=progress_message,json=progressMessage,proto3" json:"progress_message,omitempty"`
	ResultCourseId     string                 `protobuf:"bytes,14,opt,name=result_course_id,json=resultCourseId,proto3" json:"result_course_id,omitempty"`
	ErrorMessage       string                 `protobuf:"bytes,15,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt          string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt          string                 `protobuf:"bytes,17,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,18,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetCourseName() string {
	if x != nil {
		return x.CourseName
	}
	return ""
}

func (x *Job) GetCourseDescription() string {
	if x != nil {
		return x.CourseDescription
	}
	return ""
}

func (x *Job) GetDifficultyLevel() string {
	if x != nil {
		return x.DifficultyLevel
	}
	return ""
}

func (x *Job) GetLessonCount() int32 {
	if x != nil {
		return x.LessonCount
	}
	return 0
}

func (x *Job) GetIncludeQuiz() bool {
	if x != nil {
		return x.IncludeQuiz
	}
	return false
}

func (x *Job) GetIncludeAiTutor() bool {
	if x != nil {
		return x.IncludeAiTutor
	}
	return false
}

func (x *Job) GetIncludeVideoLinks() bool {
	if x != nil {
		return x.IncludeVideoLinks
	}
	return false
}

func (x *Job) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *Job) GetOrganizationDomain() string {
	if x != nil {
		return x.OrganizationDomain
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetProgressPercent() int32 {
	if x != nil {
		return x.ProgressPercent
	}
	return 0
}

func (x *Job) GetProgressMessage() string {
	if x != nil {
		return x.ProgressMessage
	}
	return ""
}

func (x *Job) GetResultCourseId() string {
	if x != nil {
		return x.ResultCourseId
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *Job) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type CreateJobRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	CourseName         string                 `protobuf:"bytes,1,opt,name=course_name,json=courseName,proto3" json:"course_name,omitempty"`
	CourseDescription  string                 `protobuf:"bytes,2,opt,name=course_description,json=courseDescription,proto3" json:"course_description,omitempty"`
	DifficultyLevel    string                 `protobuf:"bytes,3,opt,name=difficulty_level,json=difficultyLevel,proto3" json:"difficulty_level,omitempty"`
	LessonCount        int32                  `protobuf:"varint,4,opt,name=lesson_count,json=lessonCount,proto3" json:"lesson_count,omitempty"`
	IncludeQuiz        bool                   `protobuf:"varint,5,opt,name=include_quiz,json=includeQuiz,proto3" json:"include_quiz,omitempty"`
	IncludeAiTutor     bool                   `protobuf:"varint,6,opt,name=include_ai_tutor,json=includeAiTutor,proto3" json:"include_ai_tutor,omitempty"`
	IncludeVideoLinks  bool                   `protobuf:"varint,7,opt,name=include_video_links,json=includeVideoLinks,proto3" json:"include_video_links,omitempty"`
	RequesterId        string                 `protobuf:"bytes,8,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	OrganizationDomain string                 `protobuf:"bytes,9,opt,name=organization_domain,json=organizationDomain,proto3" json:"organization_domain,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{1}
}

func (x *CreateJobRequest) GetCourseName() string {
	if x != nil {
		return x.CourseName
	}
	return ""
}

func (x *CreateJobRequest) GetCourseDescription() string {
	if x != nil {
		return x.CourseDescription
	}
	return ""
}

func (x *CreateJobRequest) GetDifficultyLevel() string {
	if x != nil {
		return x.DifficultyLevel
	}
	return ""
}

func (x *CreateJobRequest) GetLessonCount() int32 {
	if x != nil {
		return x.LessonCount
	}
	return 0
}

func (x *CreateJobRequest) GetIncludeQuiz() bool {
	if x != nil {
		return x.IncludeQuiz
	}
	return false
}

func (x *CreateJobRequest) GetIncludeAiTutor() bool {
	if x != nil {
		return x.IncludeAiTutor
	}
	return false
}

func (x *CreateJobRequest) GetIncludeVideoLinks() bool {
	if x != nil {
		return x.IncludeVideoLinks
	}
	return false
}

func (x *CreateJobRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *CreateJobRequest) GetOrganizationDomain() string {
	if x != nil {
		return x.OrganizationDomain
	}
	return ""
}

type CreateJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{2}
}

func (x *CreateJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_coursegen_v1_coursegen_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_coursegen_v1_coursegen_proto_rawDescGZIP(), []int{6}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

var File_coursegen_v1_coursegen_proto protoreflect.FileDescriptor

const file_coursegen_v1_coursegen_proto_rawDesc = "" +
	"\n" +
	"\x1ccoursegen/v1/coursegen.proto\x12\fcoursegen.v1\"\xa2\x05\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vcourse_name\x18\x02 \x01(\tR\n" +
	"courseName\x12-\n" +
	"\x12course_description\x18\x03 \x01(\tR\x11courseDescription\x12)\n" +
	"\x10difficulty_level\x18\x04 \x01(\tR\x0fdifficultyLevel\x12!\n" +
	"\flesson_count\x18\x05 \x01(\x05R\vlessonCount\x12!\n" +
	"\finclude_quiz\x18\x06 \x01(\bR\vincludeQuiz\x12(\n" +
	"\x10include_ai_tutor\x18\a \x01(\bR\x0eincludeAiTutor\x12.\n" +
	"\x13include_video_links\x18\b \x01(\bR\x11includeVideoLinks\x12!\n" +
	"\frequester_id\x18\t \x01(\tR\vrequesterId\x12/\n" +
	"\x13organization_domain\x18\n" +
	" \x01(\tR\x12organizationDomain\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12)\n" +
	"\x10progress_percent\x18\f \x01(\x05R\x0fprogressPercent\x12)\n" +
	"\x10progress_message\x18\r \x01(\tR\x0fprogressMessage\x12(\n" +
	"\x10result_course_id\x18\x0e \x01(\tR\x0eresultCourseId\x12#\n" +
	"\rerror_message\x18\x0f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\x11 \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\x12 \x01(\tR\vcompletedAt\"\x81\x03\n" +
	"\x10CreateJobRequest\x12\x1f\n" +
	"\vcourse_name\x18\x01 \x01(\tR\n" +
	"courseName\x12-\n" +
	"\x12course_description\x18\x02 \x01(\tR\x11courseDescription\x12)\n" +
	"\x10difficulty_level\x18\x03 \x01(\tR\x0fdifficultyLevel\x12!\n" +
	"\flesson_count\x18\x04 \x01(\x05R\vlessonCount\x12!\n" +
	"\finclude_quiz\x18\x05 \x01(\bR\vincludeQuiz\x12(\n" +
	"\x10include_ai_tutor\x18\x06 \x01(\bR\x0eincludeAiTutor\x12.\n" +
	"\x13include_video_links\x18\a \x01(\bR\x11includeVideoLinks\x12!\n" +
	"\frequester_id\x18\b \x01(\tR\vrequesterId\x12/\n" +
	"\x13organization_domain\x18\t \x01(\tR\x12organizationDomain\"8\n" +
	"\x11CreateJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.coursegen.v1.JobR\x03job\"\x1f\n" +
	"\rGetJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"5\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.coursegen.v1.JobR\x03job\"'\n" +
	"\x0fListJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"9\n" +
	"\x10ListJobsResponse\x12%\n" +
	"\x04jobs\x18\x01 \x03(\v2\x11.coursegen.v1.JobR\x04jobs2\xea\x01\n" +
	"\n" +
	"JobService\x12L\n" +
	"\tCreateJob\x12\x1e.coursegen.v1.CreateJobRequest\x1a\x1f.coursegen.v1.CreateJobResponse\x12C\n" +
	"\x06GetJob\x12\x1b.coursegen.v1.GetJobRequest\x1a\x1c.coursegen.v1.GetJobResponse\x12I\n" +
	"\bListJobs\x12\x1d.coursegen.v1.ListJobsRequest\x1a\x1e.coursegen.v1.ListJobsResponseB>Z<github.com/amara-obi/course-gen/gen/coursegen/v1;coursegenv1b\x06proto3"

var (
	file_coursegen_v1_coursegen_proto_rawDescOnce sync.Once
	file_coursegen_v1_coursegen_proto_rawDescData []byte
)

func file_coursegen_v1_coursegen_proto_rawDescGZIP() []byte {
	file_coursegen_v1_coursegen_proto_rawDescOnce.Do(func() {
		file_coursegen_v1_coursegen_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_coursegen_v1_coursegen_proto_rawDesc), len(file_coursegen_v1_coursegen_proto_rawDesc)))
	})
	return file_coursegen_v1_coursegen_proto_rawDescData
}

var file_coursegen_v1_coursegen_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_coursegen_v1_coursegen_proto_goTypes = []any{
	(*Job)(nil),               // 0: coursegen.v1.Job
	(*CreateJobRequest)(nil),  // 1: coursegen.v1.CreateJobRequest
	(*CreateJobResponse)(nil), // 2: coursegen.v1.CreateJobResponse
	(*GetJobRequest)(nil),     // 3: coursegen.v1.GetJobRequest
	(*GetJobResponse)(nil),    // 4: coursegen.v1.GetJobResponse
	(*ListJobsRequest)(nil),   // 5: coursegen.v1.ListJobsRequest
	(*ListJobsResponse)(nil),  // 6: coursegen.v1.ListJobsResponse
}
var file_coursegen_v1_coursegen_proto_depIdxs = []int32{
	0, // 0: coursegen.v1.CreateJobResponse.job:type_name -> coursegen.v1.Job
	0, // 1: coursegen.v1.GetJobResponse.job:type_name -> coursegen.v1.Job
	0, // 2: coursegen.v1.ListJobsResponse.jobs:type_name -> coursegen.v1.Job
	1, // 3: coursegen.v1.JobService.CreateJob:input_type -> coursegen.v1.CreateJobRequest
	3, // 4: coursegen.v1.JobService.GetJob:input_type -> coursegen.v1.GetJobRequest
	5, // 5: coursegen.v1.JobService.ListJobs:input_type -> coursegen.v1.ListJobsRequest
	2, // 6: coursegen.v1.JobService.CreateJob:output_type -> coursegen.v1.CreateJobResponse
	4, // 7: coursegen.v1.JobService.GetJob:output_type -> coursegen.v1.GetJobResponse
	6, // 8: coursegen.v1.JobService.ListJobs:output_type -> coursegen.v1.ListJobsResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_coursegen_v1_coursegen_proto_init() }
func file_coursegen_v1_coursegen_proto_init() {
	if File_coursegen_v1_coursegen_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_coursegen_v1_coursegen_proto_rawDesc), len(file_coursegen_v1_coursegen_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_coursegen_v1_coursegen_proto_goTypes,
		DependencyIndexes: file_coursegen_v1_coursegen_proto_depIdxs,
		MessageInfos:      file_coursegen_v1_coursegen_proto_msgTypes,
	}.Build()
	File_coursegen_v1_coursegen_proto = out.File
	file_coursegen_v1_coursegen_proto_goTypes = nil
	file_coursegen_v1_coursegen_proto_depIdxs = nil
}
