// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package merr

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/lk2023060901/lineage-gameserver-go/pkg/log"
)

// Code 返回给定错误对应的错误码。
func Code(err error) int32 {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	switch specificErr := cause.(type) {
	case gameError:
		return specificErr.code()

	default:
		if errors.Is(specificErr, context.Canceled) {
			return CanceledCode
		} else if errors.Is(specificErr, context.DeadlineExceeded) {
			return TimeoutCode
		} else {
			return errUnexpected.code()
		}
	}
}

func IsRetryableErr(err error) bool {
	if err, ok := err.(gameError); ok {
		return err.retriable
	}

	return false
}

func IsCanceledOrTimeout(err error) bool {
	return errors.IsAny(err, context.Canceled, context.DeadlineExceeded)
}

func WrapErrAsInputError(err error) error {
	if merr, ok := err.(gameError); ok {
		WithErrorType(InputError)(&merr)
		return merr
	}
	return err
}

func WrapErrAsInputErrorWhen(err error, targets ...gameError) error {
	if merr, ok := err.(gameError); ok {
		for _, target := range targets {
			if target.errCode == merr.errCode {
				log.Info("mark error as input error", zap.Error(err))
				WithErrorType(InputError)(&merr)
				return merr
			}
		}
	}
	return err
}

func GetErrorType(err error) ErrorType {
	if merr, ok := err.(gameError); ok {
		return merr.errType
	}

	return SystemError
}

// Service 相关错误封装。
func WrapErrServiceNotReady(role string, state string, msg ...string) error {
	err := wrapFieldsWithDesc(ErrServiceNotReady, state, value("role", role))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrServiceInternal(reason string, msg ...string) error {
	err := wrapFieldsWithDesc(ErrServiceInternal, reason)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// IO 相关错误封装。
func WrapErrIoKeyNotFound(key string, msg ...string) error {
	err := wrapFields(ErrIoKeyNotFound, value("key", key))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrIoFailed(key string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrIoFailed, err.Error(), value("key", key))
}

func WrapErrIoUnexpectEOF(key string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrIoUnexpectEOF, err.Error(), value("key", key))
}

// Parameter 相关错误封装。
func WrapErrParameterInvalid[T any](expected, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		value("expected", expected),
		value("actual", actual),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidRange[T any](lower, upper, actual T, msg ...string) error {
	err := wrapFields(ErrParameterInvalid,
		bound("value", actual, lower, upper),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrParameterInvalidMsg(fmt string, args ...any) error {
	return errors.Wrapf(ErrParameterInvalid, fmt, args...)
}

func WrapErrParameterMissing[T any](param T, msg ...string) error {
	err := wrapFields(ErrParameterMissing,
		value("missing_param", param),
	)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

// Config 相关错误封装。
func WrapErrConfigNotFound(key string, msg ...string) error {
	err := wrapFields(ErrConfigNotFound, value("key", key))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrConfigInvalid(key string, reason string) error {
	return wrapFieldsWithDesc(ErrConfigInvalid, reason, value("key", key))
}

// System message 相关错误封装。
func WrapErrSysMsgIDMissing(msg ...string) error {
	err := error(ErrSysMsgIDMissing)
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrSysMsgNotFound(id any, msg ...string) error {
	err := wrapFields(ErrSysMsgNotFound, value("id", id))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrSysMsgDuplicated(field string, v any, msg ...string) error {
	err := wrapFields(ErrSysMsgDuplicated, value(field, v))
	if len(msg) > 0 {
		err = errors.Wrap(err, strings.Join(msg, "->"))
	}
	return err
}

func WrapErrSysMsgCatalogLoad(source string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrSysMsgCatalogLoad, err.Error(), value("source", source))
}

// Packet 相关错误封装。
func WrapErrPacketBufferUnderflow(need, remaining int) error {
	return wrapFields(ErrPacketBufferUnderflow,
		value("need", need),
		value("remaining", remaining),
	)
}

func WrapErrPacketStringTooLong(units, limit int) error {
	return wrapFields(ErrPacketStringTooLong,
		value("units", units),
		value("limit", limit),
	)
}

func WrapErrPacketEncodeFailed(packet string, err error) error {
	if err == nil {
		return nil
	}
	return wrapFieldsWithDesc(ErrPacketEncodeFailed, err.Error(), value("packet", packet))
}

// WrapErrOperationNotSupported 表示 target 不支持 op 操作。
func WrapErrOperationNotSupported(target string, op string) error {
	return wrapFields(ErrOperationNotSupported,
		value("target", target),
		value("op", op),
	)
}

func wrapFields(err gameError, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.detail = err.msg
	return err
}

func wrapFieldsWithDesc(err gameError, desc string, fields ...errorField) error {
	for i := range fields {
		err.msg += fmt.Sprintf("[%s]", fields[i].String())
	}
	err.msg += ": " + desc
	err.detail = err.msg
	return err
}

type errorField interface {
	String() string
}

type valueField struct {
	name  string
	value any
}

func value(name string, value any) valueField {
	return valueField{
		name,
		value,
	}
}

func (f valueField) String() string {
	return fmt.Sprintf("%s=%v", f.name, f.value)
}

type boundField struct {
	name  string
	value any
	lower any
	upper any
}

func bound(name string, value, lower, upper any) boundField {
	return boundField{
		name,
		value,
		lower,
		upper,
	}
}

func (f boundField) String() string {
	return fmt.Sprintf("%v out of range %v <= %s <= %v", f.value, f.lower, f.name, f.upper)
}
