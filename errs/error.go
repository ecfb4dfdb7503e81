package errs

import (
	"errors"
	"fmt"
)

type InputErr struct {
	msg  string
	code int64
	err  error
}

// Error 输出格式：
// [错误码] 错误类型描述 ( => 包含错误详细描述 )
// 解释：(xxx) 表示可选内容
func (ie *InputErr) Error() string {
	details := fmt.Sprintf("[%d] %s", ie.code, ie.msg)
	if ie.err != nil {
		details += fmt.Sprintf(" => %s", ie.err)
	}

	return details
}

func (ie *InputErr) Code() int64 {
	return ie.code
}

func (ie *InputErr) Unwrap() error {
	return ie.err
}

func (ie *InputErr) WithErr(err error) *InputErr {
	ie.err = err
	return ie
}

func GetCode(err error) int64 {
	var ie *InputErr
	if errors.As(err, &ie) {
		return ie.code
	}
	return UnknownErrCode
}

const (
	UnknownErrCode          = 0
	InvalidParamErrCode     = 300001
	NoDeviceErrCode         = 300002
	NotSupportedErrCode     = 300003
	PollErrCode             = 300004
	ReadEventErrCode        = 300005
	IoctlErrCode            = 300006
	OpenFileErrCode         = 300007
	MkdirErrCode            = 300008
	FileStatErrCode         = 300009
	FileNoPermissionErrCode = 300010
	ReadConfigErrCode       = 300011
)

func NewUnknownErr() *InputErr {
	return &InputErr{msg: "unknown error", code: UnknownErrCode}
}

func NewInvalidParamErr() *InputErr {
	return &InputErr{msg: "invalid params", code: InvalidParamErrCode}
}

func NewNoDeviceErr() *InputErr {
	return &InputErr{msg: "no input device available", code: NoDeviceErrCode}
}

func NewNotSupportedErr() *InputErr {
	return &InputErr{msg: "event type not supported", code: NotSupportedErrCode}
}

func NewPollErr() *InputErr {
	return &InputErr{msg: "poll input devices failed", code: PollErrCode}
}

func NewReadEventErr() *InputErr {
	return &InputErr{msg: "read input event failed", code: ReadEventErrCode}
}

func NewIoctlErr() *InputErr {
	return &InputErr{msg: "ioctl input device failed", code: IoctlErrCode}
}

func NewOpenFileErr() *InputErr {
	return &InputErr{msg: "open file failed", code: OpenFileErrCode}
}

func NewMkdirErr() *InputErr {
	return &InputErr{msg: "mkdir failed", code: MkdirErrCode}
}

func NewFileStatErr() *InputErr {
	return &InputErr{msg: "file stat failed", code: FileStatErrCode}
}

func NewFileNoPermissionErr() *InputErr {
	return &InputErr{msg: "file no permission", code: FileNoPermissionErrCode}
}

func NewReadConfigErr() *InputErr {
	return &InputErr{msg: "read config failed", code: ReadConfigErrCode}
}
