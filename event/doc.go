// Package event provides subscription and emission of named events between
// the Go process and the host runtime.
//
// Subscriptions are scoped by a Target: any label, a label filter, or one
// specific window, webview, or webview window. Delivery rides an ipc.Channel,
// so events on one subscription arrive strictly in order; nothing is
// guaranteed across different subscriptions.
//
//	unlisten, err := event.Listen(ctx, bridge, "download-progress",
//	    event.TargetWindow("main"), func(e event.Event) {
//	        fmt.Println(string(e.Payload))
//	    })
//	...
//	unlisten(ctx)
//
// Two synthetic lifecycle events, Created and ErrorEvent, exist only inside
// the Go process: facades fire them during construction and they never reach
// the host. Scope intercepts them into a local Listeners table.
package event
