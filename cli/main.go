//go:build linux

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/errs"
	"github.com/Trinoooo/eggie_input/input"
	"github.com/Trinoooo/eggie_input/logs"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	wrapper := NewWrapper()
	if err := wrapper.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	flagDevicePrefix = &cli.StringFlag{
		Name:    "device-prefix",
		Aliases: []string{"d"},
		Value:   consts.DefaultEventPrefix,
		Usage:   "input device path prefix, devices are <prefix><index>.",
		EnvVars: []string{consts.DevicePrefix},
	}
	flagMaxInputEvents = &cli.Int64Flag{
		Name:    "max-input-events",
		Aliases: []string{"m"},
		Value:   consts.DefaultMaxInputEvents,
		Usage:   "number of device files to probe, 0 < number <= 255 are available.",
		Action: func(c *cli.Context, number int64) error {
			if number <= 0 || number > 255 {
				e := errs.NewInvalidParamErr()
				logs.Error(e.Error(), zap.String(consts.LogFieldParams, "max-input-events"), zap.Int64(consts.LogFieldValue, number))
				return e
			}
			return nil
		},
		EnvVars: []string{consts.MaxInputEvents},
	}
	flagTypes = &cli.Int64SliceFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Value:   cli.NewInt64Slice(int64(consts.EvKey)),
		Usage:   "event types to match, 65535 matches any type.",
		Action:  validateUint16Slice("type"),
	}
	flagCodes = &cli.Int64SliceFlag{
		Name:    "code",
		Aliases: []string{"c"},
		Value:   cli.NewInt64Slice(int64(consts.WildcardEvent)),
		Usage:   "event codes to match, 65535 matches any code.",
		Action:  validateUint16Slice("code"),
	}
)

func validateUint16Slice(name string) func(*cli.Context, []int64) error {
	return func(c *cli.Context, values []int64) error {
		for _, value := range values {
			if value < 0 || value > int64(consts.WildcardEvent) {
				e := errs.NewInvalidParamErr()
				logs.Error(e.Error(), zap.String(consts.LogFieldParams, name), zap.Int64(consts.LogFieldValue, value))
				return e
			}
		}
		return nil
	}
}

type Wrapper struct {
	app *cli.App
}

func NewWrapper() *Wrapper {
	wrapper := &Wrapper{
		app: &cli.App{
			Name:    "eggie_input",
			Usage:   "watch and query linux input events",
			Version: "0.0.1.240831_alpha",
		},
	}
	wrapper.modifyDefaultHelp()
	wrapper.withFlags()
	wrapper.withCommands()
	wrapper.withAction()
	wrapper.withAuthor()
	return wrapper
}

func (wrapper *Wrapper) Run(args []string) error {
	return wrapper.app.Run(args)
}

func (wrapper *Wrapper) modifyDefaultHelp() {
	cli.HelpFlag = &cli.BoolFlag{
		Name: "help",
	}
	cli.AppHelpTemplate = consts.HelpTemplate
}

func (wrapper *Wrapper) withFlags() {
	wrapper.app.Flags = []cli.Flag{
		flagDevicePrefix,
		flagMaxInputEvents,
		flagTypes,
		flagCodes,
	}
}

func (wrapper *Wrapper) withCommands() {
	wrapper.app.Commands = []*cli.Command{
		{
			Name:  "value",
			Usage: "query the current state of one event code across all devices",
			Flags: []cli.Flag{
				flagDevicePrefix,
				flagMaxInputEvents,
				&cli.Int64Flag{
					Name:    "type",
					Aliases: []string{"t"},
					Value:   int64(consts.EvKey),
					Usage:   "event type, only key and switch types are supported.",
				},
				&cli.Int64Flag{
					Name:     "code",
					Aliases:  []string{"c"},
					Usage:    "event code to query.",
					Required: true,
				},
			},
			Action: func(ctx *cli.Context) error {
				sub, err := input.NewSubscriberWithPrefix(ctx.String("device-prefix"), int(ctx.Int64("max-input-events")))
				if err != nil {
					return err
				}
				defer sub.Close()

				value, err := sub.Value(uint16(ctx.Int64("type")), uint16(ctx.Int64("code")))
				if err != nil {
					return err
				}
				log.Printf("# %d\n", value)
				return nil
			},
		},
	}
}

func (wrapper *Wrapper) withAction() {
	wrapper.app.Action = func(ctx *cli.Context) error {
		sub, err := input.NewSubscriberWithPrefix(ctx.String("device-prefix"), int(ctx.Int64("max-input-events")))
		if err != nil {
			return err
		}
		defer sub.Close()

		err = sub.Subscribe(toUint16(ctx.Int64Slice("type")), toUint16(ctx.Int64Slice("code")), func(n *input.Notification) {
			if n.Err != nil {
				log.Printf("subscription terminated, err: %v", n.Err)
				return
			}
			log.Printf("event type=%d code=%d value=%d", n.Event.Type, n.Event.Code, n.Event.Value)
		})
		if err != nil {
			return err
		}

		// bugfix: 使用缓冲通道避免执行信号处理程序之前有信号到达会被丢弃
		sig := make(chan os.Signal, 5)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logs.Info("shutdown...")
		sub.Unsubscribe()
		return nil
	}
}

func (wrapper *Wrapper) withAuthor() {
	wrapper.app.Authors = []*cli.Author{
		{
			Name:  "Trino",
			Email: "sujun.trinoooo@gmail.com",
		},
	}
}

func toUint16(values []int64) []uint16 {
	converted := make([]uint16, 0, len(values))
	for _, value := range values {
		converted = append(converted, uint16(value))
	}
	return converted
}
