package utils

import "go.uber.org/zap"

func HandlePanic(fn func()) {
	if r := recover(); r != nil {
		zap.L().Error("recovered from panic", zap.Any("panic", r))
	}

	fn()
}
