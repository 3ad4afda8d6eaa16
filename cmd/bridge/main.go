package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/thewh1teagle/tauri/event"
	"github.com/thewh1teagle/tauri/ipc"
)

func main() {
	var (
		url         = flag.String("url", "", "WebSocket URL of the host bridge endpoint")
		cmdName     = flag.String("cmd", "", "Command to invoke (e.g. plugin:app|version)")
		payload     = flag.String("payload", "", "JSON argument payload")
		headers     = flag.String("headers", "", "Invoke headers (KEY=VAL,KEY2=VAL2)")
		listenEvent = flag.String("listen", "", "Event name to subscribe to and print")
		timeout     = flag.Duration("timeout", 30*time.Second, "Invoke timeout")
		verbose     = flag.Bool("v", false, "Verbose bridge logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "Usage: bridge -url ws://host:port/path -cmd <name> [-payload json]")
		fmt.Fprintln(os.Stderr, "       bridge -url ws://host:port/path -listen <event>")
		fmt.Fprintln(os.Stderr, "       bridge -url ws://host:port/path -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ipc.SetLogger(zl)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*url); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*url, *cmdName, *payload, *headers, *listenEvent, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(url, cmdName, payload, headerStr, listenEvent string, timeout time.Duration) error {
	ctx := context.Background()

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	t, err := ipc.Dial(dialCtx, url)
	cancel()
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	bridge := ipc.New(t)
	defer bridge.Close()

	if listenEvent != "" {
		return tail(ctx, bridge, listenEvent)
	}

	if cmdName == "" {
		return fmt.Errorf("nothing to do: pass -cmd or -listen")
	}

	var args any
	if payload != "" {
		var raw json.RawMessage
		if err := json.Unmarshal([]byte(payload), &raw); err != nil {
			return fmt.Errorf("parse payload: %w", err)
		}
		args = raw
	}

	var opts []ipc.InvokeOption
	if headerStr != "" {
		for _, kv := range strings.Split(headerStr, ",") {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) == 2 {
				opts = append(opts, ipc.WithHeader(parts[0], parts[1]))
			}
		}
	}

	invokeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	result, err := bridge.Invoke(invokeCtx, cmdName, args, opts...)
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(result, &pretty); err == nil {
		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Printf("%s\n", out)
	} else {
		fmt.Printf("%s\n", result)
	}
	return nil
}

// tail subscribes to one event and prints envelopes until interrupted.
func tail(ctx context.Context, bridge *ipc.Bridge, name string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	unlisten, err := event.Listen(ctx, bridge, name, event.TargetAny(), func(ev event.Event) {
		fmt.Printf("[%d] %s %s\n", ev.ID, ev.Name, ev.Payload)
	})
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Listening for %q, ctrl+c to stop\n", name)
	<-ctx.Done()

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return unlisten(cleanupCtx)
}
