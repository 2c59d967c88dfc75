// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package merr

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

const (
	CanceledCode int32 = 10000
	TimeoutCode  int32 = 10001
)

type ErrorType int32

const (
	SystemError ErrorType = 0
	InputError  ErrorType = 1
)

var ErrorTypeName = map[ErrorType]string{
	SystemError: "system_error",
	InputError:  "input_error",
}

func (err ErrorType) String() string {
	return ErrorTypeName[err]
}

// 在这里定义叶子错误。
// WARN: 新增错误前请先确认下面已有的错误是否可以复用。
// 命名：Err + 相关前缀 + 错误名
var (
	// Service 相关
	ErrServiceNotReady      = newGameError("service not ready", 1, true)
	ErrServiceInternal      = newGameError("service internal error", 5, false)
	ErrServiceUnimplemented = newGameError("service unimplemented", 10, false)

	// IO 相关
	ErrIoKeyNotFound = newGameError("key not found", 1000, false)
	ErrIoFailed      = newGameError("IO failed", 1001, false)
	ErrIoUnexpectEOF = newGameError("unexpected EOF", 1002, true)

	// Parameter 相关
	ErrParameterInvalid  = newGameError("invalid parameter", 1100, false)
	ErrParameterMissing  = newGameError("missing parameter", 1101, false)
	ErrParameterTooLarge = newGameError("parameter too large", 1102, false)

	// Config 相关
	ErrConfigNotFound = newGameError("config not found", 1200, false)
	ErrConfigInvalid  = newGameError("invalid config", 1201, false)

	// System message 相关
	ErrSysMsgIDMissing   = newGameError("system message id is nil", 1300, false)
	ErrSysMsgNotFound    = newGameError("system message not found", 1301, false)
	ErrSysMsgDuplicated  = newGameError("system message duplicated", 1302, false)
	ErrSysMsgCatalogLoad = newGameError("fail to load system message catalog", 1303, false)

	// Packet 相关
	ErrPacketBufferUnderflow = newGameError("packet buffer underflow", 1400, false)
	ErrPacketStringTooLong   = newGameError("packet string too long", 1401, false)
	ErrPacketEncodeFailed    = newGameError("packet encode failed", 1402, false)

	// 不要导出，仅用于把未知错误转换为 gameError。
	errUnexpected = newGameError("unexpected error", (1<<16)-1, false)

	// 通用
	ErrOperationNotSupported = newGameError("unsupported operation", 3000, false)
)

type errorOption func(*gameError)

func WithDetail(detail string) errorOption {
	return func(err *gameError) {
		err.detail = detail
	}
}

func WithErrorType(etype ErrorType) errorOption {
	return func(err *gameError) {
		err.errType = etype
	}
}

type gameError struct {
	msg       string
	detail    string
	retriable bool
	errCode   int32
	errType   ErrorType
}

func newGameError(msg string, code int32, retriable bool, options ...errorOption) gameError {
	err := gameError{
		msg:       msg,
		detail:    msg,
		retriable: retriable,
		errCode:   code,
	}

	for _, option := range options {
		option(&err)
	}
	return err
}

func (e gameError) code() int32 {
	return e.errCode
}

func (e gameError) Error() string {
	return e.msg
}

func (e gameError) Detail() string {
	return e.detail
}

func (e gameError) Is(err error) bool {
	cause := errors.Cause(err)
	if cause, ok := cause.(gameError); ok {
		return e.errCode == cause.errCode
	}
	return false
}

type multiErrors struct {
	errs []error
}

func (e multiErrors) Unwrap() error {
	if len(e.errs) <= 1 {
		return nil
	}
	// 多错误的 cause 定义为最后一个错误。
	if len(e.errs) == 2 {
		return e.errs[1]
	}

	return multiErrors{
		errs: e.errs[1:],
	}
}

func (e multiErrors) Error() string {
	final := e.errs[0]
	for i := 1; i < len(e.errs); i++ {
		final = errors.Wrap(e.errs[i], final.Error())
	}
	return final.Error()
}

func (e multiErrors) Is(err error) bool {
	for _, item := range e.errs {
		if errors.Is(item, err) {
			return true
		}
	}
	return false
}

// Combine 合并多个错误，nil 会被过滤；全部为 nil 时返回 nil。
func Combine(errs ...error) error {
	errs = lo.Filter(errs, func(err error, _ int) bool { return err != nil })
	if len(errs) == 0 {
		return nil
	}
	return multiErrors{
		errs,
	}
}
