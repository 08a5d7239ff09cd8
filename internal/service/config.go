// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	// TitleMaxLength 标题最大字符数，对应 note.title varchar(100)
	TitleMaxLength int
}

// DefaultServiceConfig returns the limits enforced by the note table.
func DefaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{TitleMaxLength: 100}
}
