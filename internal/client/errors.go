package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// TransportError 网络不可达、超时或响应无法解析
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServiceError 后端返回非 2xx，Message 取自响应体中的 error 字段
type ServiceError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func statusOf(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
