// Package path resolves well-known host filesystem locations and manipulates
// paths using the host's platform rules. All operations run host-side: the Go
// process may not share a filesystem view with the host.
package path

import (
	"context"

	"github.com/thewh1teagle/tauri/ipc"
)

// BaseDirectory names a well-known host location.
type BaseDirectory int

// Base directory discriminants, matching the host's numbering.
const (
	Audio BaseDirectory = iota + 1
	Cache
	Config
	Data
	LocalData
	Document
	Download
	Picture
	Public
	Video
	Resource
	Temp
	AppConfig
	AppData
	AppLocalData
	AppCache
	AppLog
	Desktop
	Executable
	Font
	Home
	Runtime
	Template
)

// Dir resolves a base directory to an absolute path.
func Dir(ctx context.Context, inv ipc.Invoker, base BaseDirectory) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|resolve_directory", map[string]any{
		"directory": base,
	}, &out)
	return out, err
}

// AppConfigDir resolves the application's config directory.
func AppConfigDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, AppConfig)
}

// AppDataDir resolves the application's data directory.
func AppDataDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, AppData)
}

// AppLocalDataDir resolves the application's local data directory.
func AppLocalDataDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, AppLocalData)
}

// AppCacheDir resolves the application's cache directory.
func AppCacheDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, AppCache)
}

// AppLogDir resolves the application's log directory.
func AppLogDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, AppLog)
}

// HomeDir resolves the user's home directory.
func HomeDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, Home)
}

// TempDir resolves the host's temporary directory.
func TempDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, Temp)
}

// DesktopDir resolves the user's desktop directory.
func DesktopDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, Desktop)
}

// DownloadDir resolves the user's download directory.
func DownloadDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, Download)
}

// ResourceDir resolves the application's bundled resource directory.
func ResourceDir(ctx context.Context, inv ipc.Invoker) (string, error) {
	return Dir(ctx, inv, Resource)
}

// Resolve resolves a sequence of path segments against the host's current
// directory, collapsing any "." and "..".
func Resolve(ctx context.Context, inv ipc.Invoker, paths ...string) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|resolve", map[string]any{
		"paths": paths,
	}, &out)
	return out, err
}

// Normalize collapses "." and ".." segments without resolving.
func Normalize(ctx context.Context, inv ipc.Invoker, path string) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|normalize", map[string]any{
		"path": path,
	}, &out)
	return out, err
}

// Join joins path segments with the host's separator and normalizes.
func Join(ctx context.Context, inv ipc.Invoker, paths ...string) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|join", map[string]any{
		"paths": paths,
	}, &out)
	return out, err
}

// Dirname returns the directory portion of path.
func Dirname(ctx context.Context, inv ipc.Invoker, path string) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|dirname", map[string]any{
		"path": path,
	}, &out)
	return out, err
}

// Basename returns the last portion of path. A non-empty ext is stripped
// from the result.
func Basename(ctx context.Context, inv ipc.Invoker, path, ext string) (string, error) {
	args := map[string]any{"path": path}
	if ext != "" {
		args["ext"] = ext
	}
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|basename", args, &out)
	return out, err
}

// Extname returns the extension of path, without the dot.
func Extname(ctx context.Context, inv ipc.Invoker, path string) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|extname", map[string]any{
		"path": path,
	}, &out)
	return out, err
}

// Sep returns the host platform's path separator ("/" or "\\").
func Sep(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|sep", nil, &out)
	return out, err
}

// Delimiter returns the host platform's PATH list delimiter (":" or ";").
func Delimiter(ctx context.Context, inv ipc.Invoker) (string, error) {
	var out string
	err := ipc.InvokeInto(ctx, inv, "plugin:path|delimiter", nil, &out)
	return out, err
}

// IsAbsolute reports whether path is absolute under the host's rules.
func IsAbsolute(ctx context.Context, inv ipc.Invoker, path string) (bool, error) {
	var out bool
	err := ipc.InvokeInto(ctx, inv, "plugin:path|is_absolute", map[string]any{
		"path": path,
	}, &out)
	return out, err
}
