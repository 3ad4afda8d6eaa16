package tauri

// Theme is a host UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Ptr returns a pointer to v. Facade options use pointers to distinguish
// "unset" from a zero value.
func Ptr[T any](v T) *T {
	return &v
}
