//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Trinoooo/eggie_input/consts"
	"github.com/Trinoooo/eggie_input/input"
	"github.com/Trinoooo/eggie_input/utils"
	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"
)

var strToEventType = map[string]uint16{
	"key":    consts.EvKey,
	"sw":     consts.EvSw,
	"switch": consts.EvSw,
	"led":    consts.EvLed,
	"snd":    consts.EvSnd,
	"abs":    consts.EvAbs,
	"rel":    consts.EvRel,
	"*":      consts.WildcardEvent,
}

func main() {
	wrapper := NewCliWrapper()
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
				return errors.New("invalid params")
			}
			return nil
		},
		EnvVars: []string{consts.MaxInputEvents},
	}
)

type CliWrapper struct {
	app *cli.App
}

func NewCliWrapper() *CliWrapper {
	wrapper := &CliWrapper{
		app: &cli.App{
			Name:    "eggie_input_cli",
			Usage:   "interactive shell for watching and querying linux input events",
			Version: "0.0.1.240831_alpha",
		},
	}
	wrapper.modifyDefaultHelp()
	wrapper.withFlags()
	wrapper.withAction()
	wrapper.withAuthor()
	return wrapper
}

func (wrapper *CliWrapper) Run(args []string) error {
	return wrapper.app.Run(args)
}

func (wrapper *CliWrapper) modifyDefaultHelp() {
	cli.HelpFlag = &cli.BoolFlag{
		Name: "help",
	}
}

func (wrapper *CliWrapper) withFlags() {
	wrapper.app.Flags = []cli.Flag{
		flagDevicePrefix,
		flagMaxInputEvents,
	}
}

func (wrapper *CliWrapper) withAction() {
	wrapper.app.Action = func(ctx *cli.Context) error {
		cancelCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sub, err := input.NewSubscriberWithPrefix(ctx.String("device-prefix"), int(ctx.Int64("max-input-events")))
		if err != nil {
			return err
		}
		defer sub.Close()

		historyFile := fmt.Sprintf("%s/cli/cmd_history_%s", consts.TmpDir, time.Now().Format("20060102"))
		if fd, err := utils.CheckAndCreateFile(historyFile, syscall.O_APPEND|syscall.O_CREAT|syscall.O_RDWR, 0660); err == nil {
			_ = fd.Close()
		}

		line, err := readline.NewEx(&readline.Config{
			Prompt: "> ",
			AutoComplete: readline.NewPrefixCompleter(
				readline.PcItem("value"),
				readline.PcItem("watch"),
				readline.PcItem("devices"),
				readline.PcItem("exit"),
			),
			HistoryFile: historyFile,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer line.Close()

		cSignal := make(chan os.Signal, 1)
		signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-cSignal
			cancel()
		}()

		for {
			select {
			case <-cancelCtx.Done():
				return nil
			default:
				str, err := line.Readline()
				if err != nil {
					if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
						return errors.New("exit")
					}
					log.Println(err)
					continue
				}
				if strings.EqualFold(str, "exit") {
					return nil
				}
				handleInput(str, sub)
			}
		}
	}
}

func (wrapper *CliWrapper) withAuthor() {
	wrapper.app.Authors = []*cli.Author{
		{
			Name:  "Trino",
			Email: "sujun.trinoooo@gmail.com",
		},
	}
}

func handleInput(str string, sub *input.Subscriber) {
	inputs := strings.Fields(str)
	if len(inputs) <= 0 {
		fmt.Println(utils.WrapError("error occur when get command"))
		return
	}

	cmd := inputs[0]
	args := inputs[1:]
	switch strings.ToLower(cmd) {
	case "value":
		handleValue(sub, args)
	case "watch":
		handleWatch(sub, args)
	case "devices":
		fmt.Println(utils.WrapInfo("%d device(s) open", sub.Devices()))
	default:
		fmt.Println(utils.WrapError("unsupported command type %s", cmd))
	}
}

func handleValue(sub *input.Subscriber, args []string) {
	if len(args) < 2 {
		fmt.Println(utils.WrapWarn("usage: value <type> <code>"))
		return
	}

	eventType, ok := parseEventType(args[0])
	if !ok {
		fmt.Println(utils.WrapError("unknown event type %s", args[0]))
		return
	}
	eventCode, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		fmt.Println(utils.WrapError("invalid event code %s", args[1]))
		return
	}

	value, err := sub.Value(eventType, uint16(eventCode))
	if err != nil {
		fmt.Println(utils.WrapError("value failed, err: %v", err))
		return
	}
	fmt.Println(utils.WrapInfo("# %d", value))
}

func handleWatch(sub *input.Subscriber, args []string) {
	if len(args) < 2 {
		fmt.Println(utils.WrapWarn("usage: watch <type> <code> [seconds]"))
		return
	}

	eventType, ok := parseEventType(args[0])
	if !ok {
		fmt.Println(utils.WrapError("unknown event type %s", args[0]))
		return
	}
	eventCode, err := strconv.ParseUint(args[1], 10, 16)
	if err != nil {
		fmt.Println(utils.WrapError("invalid event code %s", args[1]))
		return
	}

	seconds := 5
	if len(args) >= 3 {
		parsed, err := strconv.Atoi(args[2])
		if err != nil || parsed <= 0 {
			fmt.Println(utils.WrapError("invalid duration %s", args[2]))
			return
		}
		seconds = parsed
	}

	err = sub.Subscribe([]uint16{eventType}, []uint16{uint16(eventCode)}, func(n *input.Notification) {
		if n.Err != nil {
			fmt.Println(utils.WrapError("subscription terminated, err: %v", n.Err))
			return
		}
		fmt.Println(utils.WrapInfo("event type=%d code=%d value=%d", n.Event.Type, n.Event.Code, n.Event.Value))
	})
	if err != nil {
		fmt.Println(utils.WrapError("subscribe failed, err: %v", err))
		return
	}

	time.Sleep(time.Duration(seconds) * time.Second)
	sub.Unsubscribe()
	fmt.Println(utils.WrapInfo("watch finished"))
}

func parseEventType(str string) (uint16, bool) {
	if eventType, ok := strToEventType[strings.ToLower(str)]; ok {
		return eventType, true
	}
	parsed, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(parsed), true
}
