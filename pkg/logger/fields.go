package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldGeneration request generation token of the Note List View
	FieldGeneration = "generation"

	// FieldCount 数量字段
	FieldCount = "count"

	// FieldStatusCode HTTP 状态码字段
	FieldStatusCode = "statusCode"

	// FieldBaseURL note store address
	FieldBaseURL = "baseUrl"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldPath 请求路径字段
	FieldPath = "path"
)
