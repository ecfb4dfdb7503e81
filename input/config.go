package input

import (
	"time"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// withConfig 从consts.DefaultConfigPath读取yaml配置，
// 配置文件不存在时退回默认值，库的使用方不强制准备配置
func (s *Subscriber) withConfig() error {
	s.config = viper.New()
	s.config.AddConfigPath(consts.DefaultConfigPath)
	s.config.SetConfigName("config")
	s.config.SetConfigType("yaml")
	s.config.SetDefault(consts.ConfigKeyDevicePrefix, consts.DefaultEventPrefix)
	s.config.SetDefault(consts.ConfigKeyMaxInputEvents, consts.DefaultMaxInputEvents)
	s.config.SetDefault(consts.ConfigKeyPollTimeoutMs, int64(consts.DefaultPollTimeout/time.Millisecond))
	s.config.SetDefault(consts.ConfigKeyMetricsPushAddr, "")
	if err := s.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errs.NewReadConfigErr().WithErr(err)
		}
	}
	return nil
}
