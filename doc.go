// Package tauri provides Go client bindings for a Tauri-style desktop host
// runtime.
//
// The host process owns all native state (windows, web views, menus, tray
// icons). This library is the bridge: every operation is a named command
// invoked over a transport, and every piece of host state reached from Go is
// either a label (windows, web views) or a numeric resource handle (menus,
// tray icons, images).
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	tauri/         Root package with shared value types
//	├── ipc/       Invocation primitive, ordered callback channels, transports
//	├── event/     Event subscription and emission with target scoping
//	├── resource/  Handles to host-owned state with explicit release
//	├── errors/    Structured error types for debugging
//	├── dpi/       Logical/physical size and position values
//	├── window/    Window facade
//	├── webview/   Webview and webview-window facades
//	├── menu/      Menu and menu item facades
//	├── tray/      Tray icon facade
//	├── image/     Host-side image facade
//	├── path/      Well-known path resolution
//	└── app/       Application metadata and app-wide operations
//
// # Quick Start
//
// Connect to a host and open a window:
//
//	ws, err := ipc.Dial(ctx, "ws://127.0.0.1:9223/bridge")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bridge := ipc.New(ws)
//	defer bridge.Close()
//
//	w := window.New(bridge, "main", window.WithTitle("hello"))
//	if err := w.Ready(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Subscribe to an event from any window:
//
//	unlisten, err := event.Listen(ctx, bridge, "download-progress", event.TargetAny(),
//	    func(e event.Event) {
//	        fmt.Println(string(e.Payload))
//	    })
package tauri
